package pipeline

import (
	"errors"
)

var (
	ErrAudioRead = errors.New("failed to read audio")

	ErrModelInvocation    = errors.New("model invocation failed")
	ErrEmptyModelResponse = errors.New("no response received from model")
	ErrMalformedDecision  = errors.New("model response is not a valid decision")

	ErrEmptyBarcodeResponse = errors.New("empty response received from barcode api")
	ErrBarcodeGeneration    = errors.New("error while generating barcode")
)
