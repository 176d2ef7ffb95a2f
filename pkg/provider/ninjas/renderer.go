package ninjas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Renderer = (*Renderer)(nil)

// Renderer encodes text as a scannable code image through the API Ninjas
// qrcode endpoint.
type Renderer struct {
	*Config
}

func NewRenderer(url, model string, options ...Option) (*Renderer, error) {
	if url == "" {
		url = "https://api.api-ninjas.com/v1"
	}

	if model == "" {
		model = "qrcode"
	}

	cfg := &Config{
		url:   url,
		model: model,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Renderer{
		Config: cfg,
	}, nil
}

func (r *Renderer) Render(ctx context.Context, input string, options *provider.RenderOptions) (*provider.Rendering, error) {
	if options == nil {
		options = new(provider.RenderOptions)
	}

	format := strings.ToLower(options.Format)

	if format == "" {
		format = "png"
	}

	contentType := "image/" + format

	query := url.Values{}
	query.Set("format", format)
	query.Set("data", input)

	u, _ := url.JoinPath(r.url, "/qrcode")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u+"?"+query.Encode(), nil)

	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Api-Key", r.token)
	req.Header.Set("Accept", contentType)

	resp, err := r.client.Do(req)

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

	return &provider.Rendering{
		ID:    uuid.NewString(),
		Model: r.model,

		Content:     data,
		ContentType: contentType,
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if len(data) == 0 {
		return errors.New(resp.Status)
	}

	return fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(data)))
}
