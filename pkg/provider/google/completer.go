package google

import (
	"context"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
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
		Config: cfg,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	client, err := c.newClient(ctx)

	if err != nil {
		return nil, err
	}

	contents, config := convertRequest(messages, options)

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, err
	}

	result := &provider.Completion{
		ID:     uuid.NewString(),
		Model:  c.model,
		Reason: provider.CompletionReasonStop,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,
		},

		Usage: toUsage(resp.UsageMetadata),
	}

	if len(resp.Candidates) > 0 {
		result.Reason = toCompletionResult(resp.Candidates[0].FinishReason)
	}

	if text := resp.Text(); text != "" {
		result.Message.Content = append(result.Message.Content, provider.TextContent(text))
	}

	return result, nil
}

func convertRequest(messages []provider.Message, options *provider.CompleteOptions) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{}

	var system []string
	var contents []*genai.Content

	for _, m := range messages {
		text := m.Text()

		if text == "" {
			continue
		}

		switch m.Role {
		case provider.MessageRoleSystem:
			system = append(system, text)

		case provider.MessageRoleUser:
			contents = append(contents, genai.NewContentFromText(text, genai.RoleUser))

		case provider.MessageRoleAssistant:
			contents = append(contents, genai.NewContentFromText(text, genai.RoleModel))
		}
	}

	if len(system) > 0 {
		config.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	if options.Format == provider.CompletionFormatJSON || options.Schema != nil {
		config.ResponseMIMEType = "application/json"
	}

	return contents, config
}

func toCompletionResult(reason genai.FinishReason) provider.CompletionReason {
	switch reason {
	case genai.FinishReasonMaxTokens:
		return provider.CompletionReasonLength

	case genai.FinishReasonSafety, genai.FinishReasonRecitation:
		return provider.CompletionReasonFilter

	default:
		return provider.CompletionReasonStop
	}
}

func toUsage(metadata *genai.GenerateContentResponseUsageMetadata) *provider.Usage {
	if metadata == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(metadata.PromptTokenCount),
		OutputTokens: int(metadata.CandidatesTokenCount),
	}
}
