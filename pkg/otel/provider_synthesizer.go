package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/semconv/v1.38.0/genaiconv"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer

	operationDurationMetric genaiconv.ClientOperationDuration
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	meter := otel.Meter(instrumentationName)

	operationDurationMetric, _ := genaiconv.NewClientOperationDuration(meter)

	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,

		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.synthesizer.Synthesize(ctx, content, options)

	if err != nil {
		recordError(span, err)
		return nil, err
	}

	p.operationDurationMetric.Record(ctx, time.Since(timestamp).Seconds(),
		genaiconv.OperationNameGenerateContent,
		genaiconv.ProviderNameAttr(p.provider),
		KeyValues([]KeyValue{
			p.operationDurationMetric.AttrRequestModel(p.model),
		}, EndUserAttrs(ctx))...,
	)

	return result, nil
}
