package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adrianliechti/voicedesk/pkg/provider"
)

const polishPrompt = `Please improve the following transcribed text by:
1. Fixing any grammatical errors
2. Adding proper punctuation
3. Correcting capitalization
4. Improving sentence structure while maintaining the original meaning
5. Removing filler words (um, uh, like, etc.)

Original text:
%s

Polished text:`

type Polisher struct {
	completer provider.Completer
}

func NewPolisher(completer provider.Completer) *Polisher {
	return &Polisher{
		completer: completer,
	}
}

// Polish returns the model's reply verbatim.
func (p *Polisher) Polish(ctx context.Context, text string) (string, error) {
	messages := []provider.Message{
		provider.UserMessage(fmt.Sprintf(polishPrompt, text)),
	}

	completion, err := p.completer.Complete(ctx, messages, nil)

	if err != nil {
		return "", fmt.Errorf("%w: polish: %w", ErrModelInvocation, err)
	}

	slog.InfoContext(ctx, "text polishing completed")

	return completion.Text(), nil
}
