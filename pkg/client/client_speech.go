package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/adrianliechti/voicedesk/server/api"
)

type SpeechService struct {
	Options []RequestOption
}

func NewSpeechService(opts ...RequestOption) SpeechService {
	return SpeechService{
		Options: opts,
	}
}

type SpeechRequest = api.SpeechRequest

type Speech struct {
	ContentType string
	Content     []byte
}

func (r *SpeechService) New(ctx context.Context, input SpeechRequest, opts ...RequestOption) (*Speech, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL+"/api/text-to-speech", bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	return &Speech{
		ContentType: resp.Header.Get("Content-Type"),
		Content:     data,
	}, nil
}
