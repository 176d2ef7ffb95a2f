package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/voicedesk/pkg/pipeline"
	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var testPNG = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type fakeProcessor struct {
	payload *pipeline.Payload
	err     error

	audio []byte
	mode  pipeline.Mode
	calls int
}

func (f *fakeProcessor) Process(ctx context.Context, audio pipeline.Audio, mode pipeline.Mode) (*pipeline.Payload, error) {
	f.calls++
	f.mode = mode
	f.audio, _ = io.ReadAll(audio.Reader)

	return f.payload, f.err
}

type fakeSpeaker struct {
	question string
	err      error
}

func (f *fakeSpeaker) Speak(ctx context.Context, q pipeline.Question) (*provider.Synthesis, error) {
	f.question = q.Question

	if f.err != nil {
		return nil, f.err
	}

	return &provider.Synthesis{
		Content:     []byte("ID3" + q.Question),
		ContentType: "audio/mpeg",
	}, nil
}

func newServer(t *testing.T, processor *fakeProcessor, speaker *fakeSpeaker) *httptest.Server {
	t.Helper()

	h, err := api.New(processor, speaker)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", h.Attach)

	s := httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

func upload(t *testing.T, url string, audio []byte, conversionType string, accept string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	if audio != nil {
		part, err := w.CreateFormFile("file", "clip.wav")
		require.NoError(t, err)

		part.Write(audio)
	}

	if conversionType != "" {
		w.WriteField("conversionType", conversionType)
	}

	w.Close()

	req, err := http.NewRequest("POST", url+"/api/speech-to-text", &body)
	require.NoError(t, err)

	req.Header.Set("Content-Type", w.FormDataContentType())

	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return data
}

func TestSpeechToTextImage(t *testing.T) {
	processor := &fakeProcessor{payload: pipeline.ImagePayload(testPNG)}
	s := newServer(t, processor, &fakeSpeaker{})

	resp := upload(t, s.URL, []byte("RIFF"), "", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename="qrcode.png"`, resp.Header.Get("Content-Disposition"))
	require.Equal(t, testPNG, readBody(t, resp))

	require.Equal(t, pipeline.ModeRaw, processor.mode)
	require.Equal(t, []byte("RIFF"), processor.audio)
}

func TestSpeechToTextText(t *testing.T) {
	processor := &fakeProcessor{payload: pipeline.TextPayload(pipeline.NoDiscountMessage)}
	s := newServer(t, processor, &fakeSpeaker{})

	resp := upload(t, s.URL, []byte("RIFF"), "polished", "")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"))
	require.Equal(t, pipeline.NoDiscountMessage, string(readBody(t, resp)))

	require.Equal(t, pipeline.ModePolished, processor.mode)
}

func TestSpeechToTextJson(t *testing.T) {
	processor := &fakeProcessor{payload: pipeline.ImagePayload(testPNG)}
	s := newServer(t, processor, &fakeSpeaker{})

	resp := upload(t, s.URL, []byte("RIFF"), "raw", "application/json")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var coupon api.Coupon
	require.NoError(t, json.Unmarshal(readBody(t, resp), &coupon))

	require.Equal(t, "image/png", coupon.MimeType)

	data, err := base64.StdEncoding.DecodeString(coupon.Base64)
	require.NoError(t, err)
	require.Equal(t, testPNG, data)
}

func TestSpeechToTextInvalidMode(t *testing.T) {
	processor := &fakeProcessor{}
	s := newServer(t, processor, &fakeSpeaker{})

	resp := upload(t, s.URL, []byte("RIFF"), "fancy", "")

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid conversionType. Must be 'raw' or 'polished'", string(readBody(t, resp)))
	require.Zero(t, processor.calls)
}

func TestSpeechToTextMissingFile(t *testing.T) {
	processor := &fakeProcessor{}
	s := newServer(t, processor, &fakeSpeaker{})

	for _, audio := range [][]byte{nil, {}} {
		resp := upload(t, s.URL, audio, "raw", "")

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Please upload an audio file", string(readBody(t, resp)))
	}

	require.Zero(t, processor.calls)
}

func TestSpeechToTextFailure(t *testing.T) {
	processor := &fakeProcessor{err: pipeline.ErrMalformedDecision}
	s := newServer(t, processor, &fakeSpeaker{})

	resp := upload(t, s.URL, []byte("RIFF"), "raw", "")

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "Failed to transcribe audio", string(readBody(t, resp)))
}

func TestTextToSpeech(t *testing.T) {
	speaker := &fakeSpeaker{}
	s := newServer(t, &fakeProcessor{}, speaker)

	resp, err := http.Post(s.URL+"/api/text-to-speech", "application/json", strings.NewReader(`{"question": "Where is my order?"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "audio/mpeg", resp.Header.Get("Content-Type"))
	require.Equal(t, "ID3Where is my order?", string(readBody(t, resp)))

	require.Equal(t, "Where is my order?", speaker.question)
}

func TestTextToSpeechInvalidJson(t *testing.T) {
	s := newServer(t, &fakeProcessor{}, &fakeSpeaker{})

	resp, err := http.Post(s.URL+"/api/text-to-speech", "application/json", strings.NewReader(`{"question":`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTextToSpeechFailure(t *testing.T) {
	s := newServer(t, &fakeProcessor{}, &fakeSpeaker{err: errors.New("quota exceeded")})

	resp, err := http.Post(s.URL+"/api/text-to-speech", "application/json", strings.NewReader(`{"question": "hi"}`))
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.NotContains(t, string(readBody(t, resp)), "quota")
}
