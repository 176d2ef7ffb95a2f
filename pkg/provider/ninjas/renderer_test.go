package ninjas_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/pkg/provider/ninjas"

	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x00, 0x01}

func TestRender(t *testing.T) {
	var path string
	var query url.Values
	var header http.Header

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		query = r.URL.Query()
		header = r.Header.Clone()

		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))

	defer server.Close()

	r, err := ninjas.NewRenderer(server.URL+"/v1", "", ninjas.WithToken("ninja-key"))
	require.NoError(t, err)

	result, err := r.Render(context.Background(), "DISCOUNT2024", &provider.RenderOptions{Format: "png"})
	require.NoError(t, err)

	require.Equal(t, pngBytes, result.Content)
	require.Equal(t, "image/png", result.ContentType)
	require.Equal(t, "qrcode", result.Model)

	require.Equal(t, "/v1/qrcode", path)
	require.Equal(t, "png", query.Get("format"))
	require.Equal(t, "DISCOUNT2024", query.Get("data"))
	require.Equal(t, "ninja-key", header.Get("X-Api-Key"))
	require.Equal(t, "image/png", header.Get("Accept"))
}

func TestRenderEscapesData(t *testing.T) {
	var data string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data = r.URL.Query().Get("data")
		w.Write(pngBytes)
	}))

	defer server.Close()

	r, err := ninjas.NewRenderer(server.URL, "qrcode")
	require.NoError(t, err)

	_, err = r.Render(context.Background(), "A&B=C D", nil)
	require.NoError(t, err)

	require.Equal(t, "A&B=C D", data)
}

func TestRenderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Invalid API Key."}`))
	}))

	defer server.Close()

	r, err := ninjas.NewRenderer(server.URL, "qrcode")
	require.NoError(t, err)

	_, err = r.Render(context.Background(), "DISCOUNT2024", nil)
	require.ErrorContains(t, err, "401")
	require.ErrorContains(t, err, "Invalid API Key.")
}
