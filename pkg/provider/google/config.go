package google

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genai"
)

type Config struct {
	url string

	token string
	model string

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithToken(token string) Option {
	return func(c *Config) {
		c.token = token
	}
}

// newClient creates a Gemini API client. A custom url replaces the public
// endpoint, e.g. for a proxy.
func (c *Config) newClient(ctx context.Context) (*genai.Client, error) {
	if c.token == "" {
		return nil, errors.New("google: missing api key")
	}

	config := &genai.ClientConfig{
		APIKey:  c.token,
		Backend: genai.BackendGeminiAPI,

		HTTPClient: c.client,
	}

	if c.url != "" {
		config.HTTPOptions = genai.HTTPOptions{
			BaseURL: c.url,
		}
	}

	return genai.NewClient(ctx, config)
}
