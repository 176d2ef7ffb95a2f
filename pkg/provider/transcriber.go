package provider

import (
	"context"
)

type Transcriber interface {
	Transcribe(ctx context.Context, input File, options *TranscribeOptions) (*Transcription, error)
}

type TranscribeOptions struct {
	Language string

	// nil leaves the decoding temperature to the provider
	Temperature *float32

	Format TranscriptionFormat
}

type TranscriptionFormat string

const (
	TranscriptionFormatText TranscriptionFormat = "text"
	TranscriptionFormatJSON TranscriptionFormat = "json"
)

type Transcription struct {
	ID    string
	Model string

	Text string
}
