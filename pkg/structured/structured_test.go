package structured_test

import (
	"strings"
	"testing"

	"github.com/adrianliechti/voicedesk/pkg/structured"

	"github.com/stretchr/testify/require"
)

type verdict struct {
	Approve bool   `json:"approve" jsonschema:"whether the request is approved"`
	Reason  string `json:"reason"`
}

func newFormat(t *testing.T) *structured.Format[verdict] {
	t.Helper()

	f, err := structured.New[verdict]("verdict")
	require.NoError(t, err)

	return f
}

func TestInstructions(t *testing.T) {
	f := newFormat(t)

	instructions := f.Instructions()

	require.Contains(t, instructions, "JSON")
	require.Contains(t, instructions, `"approve"`)
	require.Contains(t, instructions, `"boolean"`)
	require.Contains(t, instructions, "whether the request is approved")
}

func TestSchema(t *testing.T) {
	f := newFormat(t)

	schema := f.Schema()

	require.Equal(t, "verdict", schema.Name)
	require.Equal(t, "object", schema.Schema["type"])

	properties, ok := schema.Schema["properties"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, properties, "approve")
	require.Contains(t, properties, "reason")
}

func TestParse(t *testing.T) {
	f := newFormat(t)

	tests := []struct {
		name  string
		input string
		want  verdict
	}{
		{
			name:  "plain json",
			input: `{"approve": true, "reason": "checkout failed"}`,
			want:  verdict{Approve: true, Reason: "checkout failed"},
		},
		{
			name:  "surrounding whitespace",
			input: "\n  {\"approve\": false, \"reason\": \"\"}  \n",
			want:  verdict{},
		},
		{
			name:  "json code fence",
			input: "```json\n{\"approve\": true, \"reason\": \"x\"}\n```",
			want:  verdict{Approve: true, Reason: "x"},
		},
		{
			name:  "bare code fence",
			input: "```\n{\"approve\": false, \"reason\": \"y\"}\n```",
			want:  verdict{Reason: "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, *result)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	f := newFormat(t)

	for _, input := range []string{"", "   ", "\n\t", "```json\n```"} {
		_, err := f.Parse(input)
		require.ErrorIs(t, err, structured.ErrEmptyResponse, "input %q", input)
	}
}

func TestParseMalformed(t *testing.T) {
	f := newFormat(t)

	inputs := []string{
		"yes, apply the discount",
		`{"approve": true`,
		`{"approve": "true", "reason": "x"}`,
		`{"reason": "missing approve"}`,
		`{"approve": true, "reason": "x", "extra": 1}`,
		`[true]`,
		`true`,
		strings.Repeat("{", 3),
	}

	for _, input := range inputs {
		_, err := f.Parse(input)

		require.ErrorIs(t, err, structured.ErrMalformedResponse, "input %q", input)
		require.NotErrorIs(t, err, structured.ErrEmptyResponse)
	}
}

func TestParseConcurrent(t *testing.T) {
	f := newFormat(t)

	done := make(chan error)

	for range 8 {
		go func() {
			_, err := f.Parse(`{"approve": true, "reason": "concurrent"}`)
			done <- err
		}()
	}

	for range 8 {
		require.NoError(t, <-done)
	}
}
