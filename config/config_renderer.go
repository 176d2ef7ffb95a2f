package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"
	"github.com/adrianliechti/voicedesk/pkg/provider/ninjas"
)

func (cfg *Config) RegisterRenderer(id string, p provider.Renderer) {
	cfg.RegisterModel(id)

	if cfg.renderer == nil {
		cfg.renderer = make(map[string]provider.Renderer)
	}

	if _, ok := cfg.renderer[""]; !ok {
		cfg.renderer[""] = p
	}

	cfg.renderer[id] = p
}

func (cfg *Config) Renderer(id string) (provider.Renderer, error) {
	if cfg.renderer != nil {
		if r, ok := cfg.renderer[id]; ok {
			return r, nil
		}
	}

	return nil, errors.New("renderer not found: " + id)
}

func createRenderer(cfg providerConfig, model modelContext) (provider.Renderer, error) {
	switch strings.ToLower(cfg.Type) {
	case "ninjas", "api-ninjas":
		return ninjasRenderer(cfg, model)

	default:
		return nil, errors.New("invalid renderer type: " + cfg.Type)
	}
}

func ninjasRenderer(cfg providerConfig, model modelContext) (provider.Renderer, error) {
	var options []ninjas.Option

	if cfg.Token != "" {
		options = append(options, ninjas.WithToken(cfg.Token))
	}

	if model.Client != nil {
		options = append(options, ninjas.WithClient(model.Client))
	}

	return ninjas.NewRenderer(cfg.URL, model.ID, options...)
}
