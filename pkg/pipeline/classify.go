package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/pkg/structured"
)

const classifyPolicy = `Based on the following transcribed text, determine if a discount should be applied.
A discount should be applied if the text describes a shopping, checkout or shipping functionality failure.`

type Classifier struct {
	completer provider.Completer

	format *structured.Format[Decision]
}

func NewClassifier(completer provider.Completer) (*Classifier, error) {
	format, err := structured.New[Decision]("discount_decision")

	if err != nil {
		return nil, err
	}

	return &Classifier{
		completer: completer,

		format: format,
	}, nil
}

// Prompt renders the policy, the output contract and the text to classify.
func (c *Classifier) Prompt(text string) string {
	var b strings.Builder

	b.WriteString(classifyPolicy)
	b.WriteString("\n\n")
	b.WriteString(c.format.Instructions())
	b.WriteString("\n\nTranscribed text:\n")
	b.WriteString(text)

	return b.String()
}

func (c *Classifier) Classify(ctx context.Context, text string) (*Decision, error) {
	messages := []provider.Message{
		provider.UserMessage(c.Prompt(text)),
	}

	options := &provider.CompleteOptions{
		Schema: c.format.Schema(),
	}

	completion, err := c.completer.Complete(ctx, messages, options)

	if err != nil {
		return nil, fmt.Errorf("%w: classify: %w", ErrModelInvocation, err)
	}

	decision, err := c.format.Parse(completion.Text())

	if errors.Is(err, structured.ErrEmptyResponse) {
		return nil, ErrEmptyModelResponse
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDecision, err)
	}

	slog.InfoContext(ctx, "discount decision", "apply_discount", decision.ApplyDiscount)

	return decision, nil
}
