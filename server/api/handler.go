package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/voicedesk/pkg/pipeline"
	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/go-chi/chi/v5"
)

type Processor interface {
	Process(ctx context.Context, audio pipeline.Audio, mode pipeline.Mode) (*pipeline.Payload, error)
}

type Speaker interface {
	Speak(ctx context.Context, q pipeline.Question) (*provider.Synthesis, error)
}

type Handler struct {
	processor Processor
	speaker   Speaker
}

func New(processor Processor, speaker Speaker) (*Handler, error) {
	h := &Handler{
		processor: processor,
		speaker:   speaker,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/text-to-speech", h.handleSpeech)
	r.Post("/speech-to-text", h.handleTranscribe)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	w.Write([]byte(text))
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	w.Write([]byte(message))
}
