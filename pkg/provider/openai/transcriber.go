package openai

import (
	"bytes"
	"context"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var _ provider.Transcriber = (*Transcriber)(nil)

type Transcriber struct {
	*Config
	transcriptions openai.AudioTranscriptionService
}

func NewTranscriber(url, model string, options ...Option) (*Transcriber, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Transcriber{
		Config:         cfg,
		transcriptions: openai.NewAudioTranscriptionService(cfg.Options()...),
	}, nil
}

func (t *Transcriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	if options == nil {
		options = new(provider.TranscribeOptions)
	}

	req := openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(t.model),

		File: openai.File(bytes.NewReader(input.Content), input.Name, input.ContentType),

		ResponseFormat: openai.AudioResponseFormatJSON,
	}

	if options.Format == provider.TranscriptionFormatText {
		req.ResponseFormat = openai.AudioResponseFormatText
	}

	if options.Language != "" {
		req.Language = openai.String(options.Language)
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	result := &provider.Transcription{
		ID:    uuid.NewString(),
		Model: t.model,
	}

	if req.ResponseFormat == openai.AudioResponseFormatText {
		// text responses are plain bodies, not json
		var text string

		if _, err := t.transcriptions.New(ctx, req, option.WithResponseBodyInto(&text)); err != nil {
			return nil, convertError(err)
		}

		result.Text = strings.TrimSpace(text)

		return result, nil
	}

	transcription, err := t.transcriptions.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	result.Text = transcription.Text

	return result, nil
}
