package anthropic

import (
	"context"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := c.convertMessageRequest(messages, options)

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, err
	}

	result := &provider.Completion{
		ID:     message.ID,
		Model:  string(message.Model),
		Reason: toCompletionResult(message.StopReason),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(message.Usage),
	}

	for _, block := range message.Content {
		if block.Type != "text" || block.Text == "" {
			continue
		}

		result.Message.Content = append(result.Message.Content, provider.TextContent(block.Text))
	}

	return result, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) *anthropic.MessageNewParams {
	req := &anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 4096,
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	var system []anthropic.TextBlockParam
	var messages []anthropic.MessageParam

	for _, m := range input {
		text := strings.TrimRight(m.Text(), " \t\n\r")

		if text == "" {
			continue
		}

		switch m.Role {
		case provider.MessageRoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: text})

		case provider.MessageRoleUser:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))

		case provider.MessageRoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))
		}
	}

	if len(system) > 0 {
		req.System = system
	}

	req.Messages = messages

	return req
}

func toCompletionResult(reason anthropic.StopReason) provider.CompletionReason {
	switch reason {
	case anthropic.StopReasonEndTurn, anthropic.StopReasonStopSequence:
		return provider.CompletionReasonStop

	case anthropic.StopReasonMaxTokens:
		return provider.CompletionReasonLength

	case anthropic.StopReasonRefusal:
		return provider.CompletionReasonFilter

	default:
		return provider.CompletionReasonStop
	}
}

func toUsage(usage anthropic.Usage) *provider.Usage {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
	}
}
