package config

import (
	"github.com/adrianliechti/voicedesk/pkg/pipeline"
	"github.com/adrianliechti/voicedesk/pkg/text"
)

type pipelineConfig struct {
	BlockedWords []string `yaml:"blocked_words"`

	CouponCode string `yaml:"coupon_code"`

	Completer   string `yaml:"completer"`
	Polisher    string `yaml:"polisher"`
	Synthesizer string `yaml:"synthesizer"`
	Transcriber string `yaml:"transcriber"`
	Renderer    string `yaml:"renderer"`
}

// registerPipeline resolves the pipeline capabilities by model id. Empty ids
// select the first registered model of each kind.
func (cfg *Config) registerPipeline(f *configFile) error {
	p := f.Pipeline

	transcriber, err := cfg.Transcriber(p.Transcriber)

	if err != nil {
		return err
	}

	completer, err := cfg.Completer(p.Completer)

	if err != nil {
		return err
	}

	renderer, err := cfg.Renderer(p.Renderer)

	if err != nil {
		return err
	}

	synthesizer, err := cfg.Synthesizer(p.Synthesizer)

	if err != nil {
		return err
	}

	var options []pipeline.Option

	if p.CouponCode != "" {
		options = append(options, pipeline.WithCouponCode(p.CouponCode))
	}

	if p.Polisher != "" {
		polisher, err := cfg.Completer(p.Polisher)

		if err != nil {
			return err
		}

		options = append(options, pipeline.WithPolisher(polisher))
	}

	if cfg.Pipeline, err = pipeline.New(transcriber, completer, renderer, options...); err != nil {
		return err
	}

	if cfg.Speaker, err = pipeline.NewSpeaker(synthesizer, text.NewRedactor(p.BlockedWords...)); err != nil {
		return err
	}

	return nil
}
