package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adrianliechti/voicedesk/pkg/pipeline"
)

const (
	messageInvalidMode   = "Invalid conversionType. Must be 'raw' or 'polished'"
	messageMissingFile   = "Please upload an audio file"
	messageProcessFailed = "Failed to transcribe audio"
)

func (h *Handler) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	mode, err := pipeline.ParseMode(valueConversionType(r))

	if err != nil {
		writeMessage(w, http.StatusBadRequest, messageInvalidMode)
		return
	}

	audio, err := readAudio(r)

	if err != nil {
		writeMessage(w, http.StatusBadRequest, messageMissingFile)
		return
	}

	slog.InfoContext(r.Context(), "converting audio to text", "file", audio.Name, "mode", mode)

	payload, err := h.processor.Process(r.Context(), *audio, mode)

	if err != nil {
		slog.ErrorContext(r.Context(), "failed to process audio", "kind", errorKind(err), "error", err)

		writeMessage(w, http.StatusInternalServerError, messageProcessFailed)
		return
	}

	if acceptsJson(r) {
		writeJson(w, Coupon{
			MimeType: payload.ContentType,
			Base64:   payload.Base64(),
		})

		return
	}

	if payload.IsText() {
		writeMessage(w, http.StatusOK, payload.Text())
		return
	}

	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload.Content)))
	w.Header().Set("Content-Disposition", `attachment; filename="qrcode.png"`)

	w.WriteHeader(http.StatusOK)
	w.Write(payload.Content)
}

func errorKind(err error) string {
	kinds := []struct {
		err  error
		name string
	}{
		{pipeline.ErrAudioRead, "audio_read"},
		{pipeline.ErrEmptyModelResponse, "empty_model_response"},
		{pipeline.ErrMalformedDecision, "malformed_decision"},
		{pipeline.ErrEmptyBarcodeResponse, "empty_barcode_response"},
		{pipeline.ErrBarcodeGeneration, "barcode_generation"},
		{pipeline.ErrModelInvocation, "model_invocation"},
	}

	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return "unknown"
}
