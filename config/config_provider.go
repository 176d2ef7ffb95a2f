package config

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/limiter"
	"github.com/adrianliechti/voicedesk/pkg/otel"
	"github.com/adrianliechti/voicedesk/pkg/provider"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type providerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Limit *int `yaml:"limit"`

	Models yaml.Node `yaml:"models"`
}

type modelConfig struct {
	Type string `yaml:"type"`

	// upstream model name, defaults to the registry id
	ID string `yaml:"id"`
}

type modelContext struct {
	ID string

	Limiter *rate.Limiter
	Client  *http.Client
}

func (cfg *Config) RegisterModel(id string) {
	if cfg.models == nil {
		cfg.models = make(map[string]provider.Model)
	}

	cfg.models[id] = provider.Model{
		ID: id,
	}
}

func (cfg *Config) Models() []provider.Model {
	var result []provider.Model

	for _, m := range cfg.models {
		result = append(result, m)
	}

	slices.SortFunc(result, func(a, b provider.Model) int {
		return strings.Compare(a.ID, b.ID)
	})

	return result
}

func (cfg *Config) registerProviders(f *configFile) error {
	for _, p := range f.Providers {
		if p.Models.IsZero() {
			return errors.New("no models configured for provider: " + p.Type)
		}

		var models map[string]modelConfig

		if err := p.Models.Decode(&models); err != nil {
			return err
		}

		// one limiter and client per provider entry, shared by its models
		limit := createLimiter(p.Limit)

		client := &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}

		// mapping node content alternates key and value
		for i := 0; i < len(p.Models.Content); i += 2 {
			id := p.Models.Content[i].Value

			m, ok := models[id]

			if !ok {
				continue
			}

			context := modelContext{
				ID: id,

				Limiter: limit,
				Client:  client,
			}

			if m.ID != "" {
				context.ID = m.ID
			}

			if err := cfg.registerModel(p, id, m, context); err != nil {
				return err
			}
		}
	}

	return nil
}

func (cfg *Config) registerModel(p providerConfig, id string, m modelConfig, context modelContext) error {
	switch strings.ToLower(m.Type) {
	case "completer":
		completer, err := createCompleter(p, context)

		if err != nil {
			return err
		}

		if _, ok := completer.(limiter.Completer); !ok {
			completer = limiter.NewCompleter(context.Limiter, completer)
		}

		if _, ok := completer.(otel.Completer); !ok {
			completer = otel.NewCompleter(p.Type, context.ID, completer)
		}

		cfg.RegisterCompleter(id, completer)

	case "synthesizer":
		synthesizer, err := createSynthesizer(p, context)

		if err != nil {
			return err
		}

		if _, ok := synthesizer.(limiter.Synthesizer); !ok {
			synthesizer = limiter.NewSynthesizer(context.Limiter, synthesizer)
		}

		if _, ok := synthesizer.(otel.Synthesizer); !ok {
			synthesizer = otel.NewSynthesizer(p.Type, context.ID, synthesizer)
		}

		cfg.RegisterSynthesizer(id, synthesizer)

	case "transcriber":
		transcriber, err := createTranscriber(p, context)

		if err != nil {
			return err
		}

		if _, ok := transcriber.(limiter.Transcriber); !ok {
			transcriber = limiter.NewTranscriber(context.Limiter, transcriber)
		}

		if _, ok := transcriber.(otel.Transcriber); !ok {
			transcriber = otel.NewTranscriber(p.Type, context.ID, transcriber)
		}

		cfg.RegisterTranscriber(id, transcriber)

	case "renderer":
		renderer, err := createRenderer(p, context)

		if err != nil {
			return err
		}

		if _, ok := renderer.(limiter.Renderer); !ok {
			renderer = limiter.NewRenderer(context.Limiter, renderer)
		}

		if _, ok := renderer.(otel.Renderer); !ok {
			renderer = otel.NewRenderer(p.Type, context.ID, renderer)
		}

		cfg.RegisterRenderer(id, renderer)

	default:
		return errors.New("invalid model type: " + m.Type)
	}

	return nil
}
