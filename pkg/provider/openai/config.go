package openai

import (
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3/option"
)

const defaultURL = "https://api.openai.com/v1/"

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

func (c *Config) baseURL() string {
	url := c.url

	if url == "" {
		url = defaultURL
	}

	return strings.TrimRight(url, "/") + "/"
}

func (c *Config) isAzure() bool {
	return strings.Contains(c.url, "openai.azure.com") || strings.Contains(c.url, "cognitiveservices.azure.com")
}

// Options builds the request options for the configured endpoint. Azure
// endpoints authenticate with an Api-Key header instead of a bearer token.
func (c *Config) Options() []option.RequestOption {
	client := c.client

	if client == nil {
		client = http.DefaultClient
	}

	options := []option.RequestOption{
		option.WithBaseURL(c.baseURL()),
		option.WithHTTPClient(client),
	}

	if c.isAzure() {
		options = append(options, option.WithQueryAdd("api-version", "preview"))

		if c.token != "" {
			options = append(options, option.WithHeader("Api-Key", c.token))
		}

		return options
	}

	if c.token != "" {
		options = append(options, option.WithAPIKey(c.token))
	}

	return options
}
