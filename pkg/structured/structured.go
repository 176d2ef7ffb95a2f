// Package structured turns free-form model replies into typed values. A
// Format derives a JSON schema from a Go type, renders it as instructions
// for the prompt and validates the reply against it.
package structured

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"

	"github.com/google/jsonschema-go/jsonschema"
)

var (
	ErrEmptyResponse     = errors.New("empty response")
	ErrMalformedResponse = errors.New("malformed response")
)

type Format[T any] struct {
	name string

	schema   *jsonschema.Schema
	resolved *jsonschema.Resolved

	data []byte
}

func New[T any](name string) (*Format[T], error) {
	schema, err := jsonschema.For[T](nil)

	if err != nil {
		return nil, err
	}

	resolved, err := schema.Resolve(nil)

	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(schema, "", "  ")

	if err != nil {
		return nil, err
	}

	return &Format[T]{
		name: name,

		schema:   schema,
		resolved: resolved,

		data: data,
	}, nil
}

// Instructions is the output contract to embed in a prompt.
func (f *Format[T]) Instructions() string {
	var b strings.Builder

	b.WriteString("Your response must be a single JSON object.\n")
	b.WriteString("Do not include any explanations, only provide a RFC8259 compliant JSON response following this format without deviation.\n")
	b.WriteString("Do not wrap the JSON in markdown code blocks.\n")
	b.WriteString("Here is the JSON Schema your output must adhere to:\n")
	b.Write(f.data)

	return b.String()
}

// Schema exposes the format to providers with native structured output.
func (f *Format[T]) Schema() *provider.Schema {
	var schema map[string]any
	json.Unmarshal(f.data, &schema)

	return &provider.Schema{
		Name: f.name,

		Schema: schema,
	}
}

// Parse decodes a model reply. Empty replies fail with ErrEmptyResponse;
// anything that is not a JSON document matching the schema fails with
// ErrMalformedResponse.
func (f *Format[T]) Parse(text string) (*T, error) {
	text = trimFences(text)

	if text == "" {
		return nil, ErrEmptyResponse
	}

	var instance any

	if err := json.Unmarshal([]byte(text), &instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if err := f.resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	var result T

	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return &result, nil
}

func trimFences(text string) string {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```JSON")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}
