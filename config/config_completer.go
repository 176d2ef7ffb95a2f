package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/pkg/provider/anthropic"
	"github.com/adrianliechti/voicedesk/pkg/provider/google"
	"github.com/adrianliechti/voicedesk/pkg/provider/openai"
)

func (cfg *Config) RegisterCompleter(id string, p provider.Completer) {
	cfg.RegisterModel(id)

	if cfg.completer == nil {
		cfg.completer = make(map[string]provider.Completer)
	}

	if _, ok := cfg.completer[""]; !ok {
		cfg.completer[""] = p
	}

	cfg.completer[id] = p
}

func (cfg *Config) Completer(id string) (provider.Completer, error) {
	if cfg.completer != nil {
		if c, ok := cfg.completer[id]; ok {
			return c, nil
		}
	}

	return nil, errors.New("completer not found: " + id)
}

func createCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	switch strings.ToLower(cfg.Type) {
	case "anthropic":
		return anthropicCompleter(cfg, model)

	case "gemini", "google":
		return googleCompleter(cfg, model)

	case "openai", "openai-compatible":
		return openaiCompleter(cfg, model)

	default:
		return nil, errors.New("invalid completer type: " + cfg.Type)
	}
}

func anthropicCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	var options []anthropic.Option

	if cfg.Token != "" {
		options = append(options, anthropic.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, anthropic.WithClient(model.Client))
	}

	return anthropic.NewCompleter(cfg.URL, model.ID, options...)
}

func googleCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, google.WithClient(model.Client))
	}

	return google.NewCompleter(cfg.URL, model.ID, options...)
}

func openaiCompleter(cfg providerConfig, model modelContext) (provider.Completer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, openai.WithClient(model.Client))
	}

	return openai.NewCompleter(cfg.URL, model.ID, options...)
}
