package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/adrianliechti/voicedesk/pkg/provider"
)

type Transcriber struct {
	transcriber provider.Transcriber
}

func NewTranscriber(transcriber provider.Transcriber) *Transcriber {
	return &Transcriber{
		transcriber: transcriber,
	}
}

// Transcribe always requests plain text. ModeRaw pins the temperature to
// zero, any other mode leaves it to the provider.
func (t *Transcriber) Transcribe(ctx context.Context, audio Audio, mode Mode) (string, error) {
	if audio.Reader == nil {
		return "", fmt.Errorf("%w: no audio provided", ErrAudioRead)
	}

	data, err := io.ReadAll(audio.Reader)

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAudioRead, err)
	}

	slog.InfoContext(ctx, "converting audio file to text", "file", audio.Name, "mode", mode, "size", len(data))

	input := provider.File{
		Name: audio.Name,

		Content:     data,
		ContentType: audio.ContentType,
	}

	options := &provider.TranscribeOptions{
		Format: provider.TranscriptionFormatText,
	}

	if mode == ModeRaw {
		temperature := float32(0)
		options.Temperature = &temperature
	}

	transcription, err := t.transcriber.Transcribe(ctx, input, options)

	if err != nil {
		return "", fmt.Errorf("%w: transcription: %w", ErrModelInvocation, err)
	}

	slog.InfoContext(ctx, "transcription completed")

	return transcription.Text, nil
}
