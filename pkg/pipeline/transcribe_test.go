package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adrianliechti/voicedesk/pkg/pipeline"
	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestTranscribeRaw(t *testing.T) {
	mock := &mockTranscriber{text: "hello world"}
	transcriber := pipeline.NewTranscriber(mock)

	audio := pipeline.Audio{
		Name:        "clip.wav",
		ContentType: "audio/wav",

		Reader: strings.NewReader("RIFF"),
	}

	text, err := transcriber.Transcribe(context.Background(), audio, pipeline.ModeRaw)
	require.NoError(t, err)
	require.Equal(t, "hello world", text)

	require.Len(t, mock.options, 1)
	require.Equal(t, provider.TranscriptionFormatText, mock.options[0].Format)
	require.NotNil(t, mock.options[0].Temperature)
	require.Zero(t, *mock.options[0].Temperature)

	require.Equal(t, "clip.wav", mock.inputs[0].Name)
	require.Equal(t, "audio/wav", mock.inputs[0].ContentType)
	require.Equal(t, []byte("RIFF"), mock.inputs[0].Content)
}

func TestTranscribePolished(t *testing.T) {
	mock := &mockTranscriber{text: "um hello"}
	transcriber := pipeline.NewTranscriber(mock)

	_, err := transcriber.Transcribe(context.Background(), pipeline.Audio{Name: "clip.mp3", Reader: strings.NewReader("ID3")}, pipeline.ModePolished)
	require.NoError(t, err)

	require.Len(t, mock.options, 1)
	require.Equal(t, provider.TranscriptionFormatText, mock.options[0].Format)
	require.Nil(t, mock.options[0].Temperature)
}

func TestTranscribeReadError(t *testing.T) {
	mock := &mockTranscriber{text: "unused"}
	transcriber := pipeline.NewTranscriber(mock)

	_, err := transcriber.Transcribe(context.Background(), pipeline.Audio{Name: "clip.wav", Reader: failingReader{}}, pipeline.ModeRaw)
	require.ErrorIs(t, err, pipeline.ErrAudioRead)
	require.ErrorContains(t, err, "connection reset")

	require.Zero(t, mock.calls())
}

func TestTranscribeMissingReader(t *testing.T) {
	mock := &mockTranscriber{text: "unused"}
	transcriber := pipeline.NewTranscriber(mock)

	_, err := transcriber.Transcribe(context.Background(), pipeline.Audio{Name: "clip.wav"}, pipeline.ModeRaw)
	require.ErrorIs(t, err, pipeline.ErrAudioRead)

	require.Zero(t, mock.calls())
}

func TestTranscribeProviderError(t *testing.T) {
	cause := errors.New("whisper unavailable")

	mock := &mockTranscriber{err: cause}
	transcriber := pipeline.NewTranscriber(mock)

	_, err := transcriber.Transcribe(context.Background(), pipeline.Audio{Name: "clip.wav", Reader: strings.NewReader("RIFF")}, pipeline.ModeRaw)
	require.ErrorIs(t, err, pipeline.ErrModelInvocation)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, pipeline.ErrAudioRead)
}
