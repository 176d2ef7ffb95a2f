package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/pkg/text"
)

const (
	DefaultVoice  = "alloy"
	DefaultFormat = "mp3"
	DefaultSpeed  = float32(1.0)
)

type Speaker struct {
	synthesizer provider.Synthesizer
	redactor    *text.Redactor
}

func NewSpeaker(synthesizer provider.Synthesizer, redactor *text.Redactor) (*Speaker, error) {
	if synthesizer == nil {
		return nil, errors.New("synthesizer is required")
	}

	return &Speaker{
		synthesizer: synthesizer,
		redactor:    redactor,
	}, nil
}

// Speak masks blocked words in the question and renders it as MP3 audio.
func (s *Speaker) Speak(ctx context.Context, q Question) (*provider.Synthesis, error) {
	input := s.redactor.Redact(q.Question)

	speed := DefaultSpeed

	options := &provider.SynthesizeOptions{
		Voice: DefaultVoice,
		Speed: &speed,

		Format: DefaultFormat,
	}

	synthesis, err := s.synthesizer.Synthesize(ctx, input, options)

	if err != nil {
		return nil, fmt.Errorf("%w: synthesize: %w", ErrModelInvocation, err)
	}

	return synthesis, nil
}
