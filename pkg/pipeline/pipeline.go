// Package pipeline converts speech into a discount decision and text into
// speech on top of injected provider capabilities.
//
// A Pipeline run is a strict sequence: transcribe, polish (polished mode
// only), classify and, for a positive decision, issue a coupon. Any failing
// step aborts the run. Pipelines hold no per-request state and are safe for
// concurrent use.
package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/adrianliechti/voicedesk/pkg/provider"
)

const (
	DefaultCouponCode = "DISCOUNT2024"

	NoDiscountMessage = "Transcribed Text does not indicate a discount is needed"
)

type Pipeline struct {
	transcriber *Transcriber
	polisher    *Polisher
	classifier  *Classifier
	issuer      *Issuer

	couponCode string
}

type Option func(*Pipeline)

func WithCouponCode(code string) Option {
	return func(p *Pipeline) {
		p.couponCode = code
	}
}

// WithPolisher uses a separate completer for the polish step.
func WithPolisher(completer provider.Completer) Option {
	return func(p *Pipeline) {
		p.polisher = NewPolisher(completer)
	}
}

func New(transcriber provider.Transcriber, completer provider.Completer, renderer provider.Renderer, options ...Option) (*Pipeline, error) {
	if transcriber == nil {
		return nil, errors.New("transcriber is required")
	}

	if completer == nil {
		return nil, errors.New("completer is required")
	}

	if renderer == nil {
		return nil, errors.New("renderer is required")
	}

	classifier, err := NewClassifier(completer)

	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		transcriber: NewTranscriber(transcriber),
		polisher:    NewPolisher(completer),
		classifier:  classifier,
		issuer:      NewIssuer(renderer),

		couponCode: DefaultCouponCode,
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

func (p *Pipeline) Process(ctx context.Context, audio Audio, mode Mode) (*Payload, error) {
	text, err := p.transcriber.Transcribe(ctx, audio, mode)

	if err != nil {
		return nil, err
	}

	if mode == ModePolished {
		slog.InfoContext(ctx, "polishing transcribed text")

		if text, err = p.polisher.Polish(ctx, text); err != nil {
			return nil, err
		}
	}

	decision, err := p.classifier.Classify(ctx, text)

	if err != nil {
		return nil, err
	}

	if decision.ApplyDiscount {
		return p.issuer.Issue(ctx, p.couponCode)
	}

	slog.InfoContext(ctx, "no discount needed based on the transcribed text")

	return TextPayload(NoDiscountMessage), nil
}
