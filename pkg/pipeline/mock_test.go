package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/adrianliechti/voicedesk/pkg/provider"
)

var testPNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 'c', 'o', 'u', 'p', 'o', 'n'}

type mockTranscriber struct {
	mu sync.Mutex

	text string
	err  error

	inputs  []provider.File
	options []*provider.TranscribeOptions
}

func (m *mockTranscriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inputs = append(m.inputs, input)
	m.options = append(m.options, options)

	if m.err != nil {
		return nil, m.err
	}

	return &provider.Transcription{
		ID:    "transcription",
		Model: "whisper-1",

		Text: m.text,
	}, nil
}

func (m *mockTranscriber) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.inputs)
}

type mockCompleter struct {
	mu sync.Mutex

	handler func(prompt string) (string, error)

	prompts []string
	options []*provider.CompleteOptions
}

func (m *mockCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	var parts []string

	for _, msg := range messages {
		parts = append(parts, msg.Text())
	}

	prompt := strings.Join(parts, "\n")

	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.options = append(m.options, options)
	m.mu.Unlock()

	text, err := m.handler(prompt)

	if err != nil {
		return nil, err
	}

	return &provider.Completion{
		ID: "completion",

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent(text)},
		},
	}, nil
}

func (m *mockCompleter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.prompts)
}

func (m *mockCompleter) count(prefix string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int

	for _, p := range m.prompts {
		if strings.HasPrefix(p, prefix) {
			n++
		}
	}

	return n
}

func replyWith(text string) *mockCompleter {
	return &mockCompleter{
		handler: func(string) (string, error) {
			return text, nil
		},
	}
}

func failWith(err error) *mockCompleter {
	return &mockCompleter{
		handler: func(string) (string, error) {
			return "", err
		},
	}
}

type mockRenderer struct {
	mu sync.Mutex

	content []byte
	err     error
	empty   bool

	inputs  []string
	options []*provider.RenderOptions
}

func (m *mockRenderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.inputs = append(m.inputs, input)
	m.options = append(m.options, options)

	if m.err != nil {
		return nil, m.err
	}

	if m.empty {
		return nil, nil
	}

	return &provider.Rendering{
		ID:    "rendering",
		Model: "qrcode",

		Content:     m.content,
		ContentType: "image/png",
	}, nil
}

func (m *mockRenderer) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.inputs)
}

type mockSynthesizer struct {
	inputs  []string
	options []*provider.SynthesizeOptions

	err error
}

func (m *mockSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	m.inputs = append(m.inputs, input)
	m.options = append(m.options, options)

	if m.err != nil {
		return nil, m.err
	}

	return &provider.Synthesis{
		ID:    "synthesis",
		Model: "tts-1",

		Content:     []byte("mp3:" + input),
		ContentType: "audio/mpeg",
	}, nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}
