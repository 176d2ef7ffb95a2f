package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/adrianliechti/voicedesk/pkg/pipeline"
)

func (h *Handler) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	synthesis, err := h.speaker.Speak(r.Context(), pipeline.Question{
		Question: req.Question,
	})

	if err != nil {
		slog.ErrorContext(r.Context(), "failed to synthesize speech", "error", err)

		writeError(w, http.StatusInternalServerError, nil)
		return
	}

	contentType := synthesis.ContentType

	if contentType == "" {
		contentType = "audio/mpeg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(synthesis.Content)))

	w.WriteHeader(http.StatusOK)
	w.Write(synthesis.Content)
}
