package api

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/pipeline"
)

const maxUploadSize = 32 << 20

var errEmptyFile = errors.New("empty file")

func valueConversionType(r *http.Request) string {
	if val := r.FormValue("conversionType"); val != "" {
		return val
	}

	return ""
}

func acceptsJson(r *http.Request) bool {
	for _, val := range strings.Split(r.Header.Get("Accept"), ",") {
		mediatype, _, err := mime.ParseMediaType(strings.TrimSpace(val))

		if err == nil && mediatype == "application/json" {
			return true
		}
	}

	return false
}

// readAudio buffers the uploaded file part. Missing and empty uploads are
// rejected.
func readAudio(r *http.Request) (*pipeline.Audio, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, err
	}

	file, header, err := r.FormFile("file")

	if err != nil {
		return nil, err
	}

	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errEmptyFile
	}

	contentType := header.Header.Get("Content-Type")

	if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediatype
	}

	return &pipeline.Audio{
		Name:        header.Filename,
		ContentType: contentType,

		Reader: bytes.NewReader(data),
	}, nil
}
