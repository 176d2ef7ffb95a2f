package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/pkg/provider/openai"

	"github.com/stretchr/testify/require"
)

const completionResponse = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o-mini",
	"choices": [
		{
			"index": 0,
			"finish_reason": "stop",
			"message": {
				"role": "assistant",
				"content": "{\"applyDiscount\": true}"
			}
		}
	],
	"usage": {
		"prompt_tokens": 42,
		"completion_tokens": 7,
		"total_tokens": 49
	}
}`

func TestComplete(t *testing.T) {
	var path string
	var body map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionResponse)
	}))

	defer server.Close()

	p, err := openai.NewCompleter(server.URL, "gpt-4o-mini")
	require.NoError(t, err)

	temperature := float32(0)

	messages := []provider.Message{
		provider.SystemMessage("You classify feedback."),
		provider.UserMessage("The checkout page crashed"),
	}

	options := &provider.CompleteOptions{
		Temperature: &temperature,

		Schema: &provider.Schema{
			Name: "decision",

			Schema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"applyDiscount": map[string]any{"type": "boolean"},
				},
			},
		},
	}

	result, err := p.Complete(context.Background(), messages, options)
	require.NoError(t, err)

	require.Equal(t, "chatcmpl-1", result.ID)
	require.Equal(t, provider.CompletionReasonStop, result.Reason)
	require.Equal(t, `{"applyDiscount": true}`, result.Text())
	require.Equal(t, &provider.Usage{InputTokens: 42, OutputTokens: 7}, result.Usage)

	require.Equal(t, "/chat/completions", path)
	require.Equal(t, "gpt-4o-mini", body["model"])
	require.EqualValues(t, 0, body["temperature"])

	sent, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, sent, 2)

	format, ok := body["response_format"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "json_schema", format["type"])
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "chatcmpl-2", "object": "chat.completion", "model": "gpt-4o-mini", "choices": []}`)
	}))

	defer server.Close()

	p, err := openai.NewCompleter(server.URL, "gpt-4o-mini")
	require.NoError(t, err)

	_, err = p.Complete(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)
	require.Error(t, err)
}
