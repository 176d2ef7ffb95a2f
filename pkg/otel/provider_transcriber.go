package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/semconv/v1.38.0/genaiconv"
)

type Transcriber interface {
	Observable
	provider.Transcriber
}

type observableTranscriber struct {
	model    string
	provider string

	transcriber provider.Transcriber

	operationDurationMetric genaiconv.ClientOperationDuration
}

func NewTranscriber(provider, model string, p provider.Transcriber) Transcriber {
	meter := otel.Meter(instrumentationName)

	operationDurationMetric, _ := genaiconv.NewClientOperationDuration(meter)

	return &observableTranscriber{
		transcriber: p,

		model:    model,
		provider: provider,

		operationDurationMetric: operationDurationMetric,
	}
}

func (p *observableTranscriber) otelSetup() {
}

func (p *observableTranscriber) Transcribe(ctx context.Context, input provider.File, options *provider.TranscribeOptions) (*provider.Transcription, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "transcribe "+p.model)
	defer span.End()

	span.SetAttributes(
		String("file.name", input.Name),
		String("file.content_type", input.ContentType),
	)

	timestamp := time.Now()

	result, err := p.transcriber.Transcribe(ctx, input, options)

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
