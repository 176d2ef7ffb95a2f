package openai

import (
	"context"
	"io"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := strings.ToLower(options.Voice)

	if voice == "" {
		voice = string(openai.AudioSpeechNewParamsVoiceAlloy)
	}

	format := strings.ToLower(options.Format)

	if format == "" {
		format = string(openai.AudioSpeechNewParamsResponseFormatMP3)
	}

	req := openai.AudioSpeechNewParams{
		Model: s.model,
		Input: content,

		Voice: openai.AudioSpeechNewParamsVoice(voice),

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(format),
	}

	if options.Speed != nil {
		req.Speed = openai.Float(float64(*options.Speed))
	}

	if options.Instructions != "" {
		req.Instructions = openai.String(options.Instructions)
	}

	result, err := s.speech.New(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: contentType(format),
	}, nil
}

func contentType(format string) string {
	switch format {
	case "mp3":
		return "audio/mpeg"

	case "opus":
		return "audio/ogg"

	case "aac":
		return "audio/aac"

	case "flac":
		return "audio/flac"

	case "wav":
		return "audio/wav"

	case "pcm":
		return "audio/pcm"

	default:
		return "application/octet-stream"
	}
}
