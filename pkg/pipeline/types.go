package pipeline

import (
	"encoding/base64"
	"errors"
	"io"
)

// Question is the text to synthesize. Empty text is allowed.
type Question struct {
	Question string `json:"question"`
}

type Mode string

const (
	ModeRaw      Mode = "raw"
	ModePolished Mode = "polished"
)

var ErrInvalidMode = errors.New("invalid conversionType. Must be 'raw' or 'polished'")

// ParseMode validates a mode at the boundary. An empty value selects ModeRaw.
func ParseMode(val string) (Mode, error) {
	switch val {
	case "", string(ModeRaw):
		return ModeRaw, nil

	case string(ModePolished):
		return ModePolished, nil
	}

	return "", ErrInvalidMode
}

type Audio struct {
	Name        string
	ContentType string

	Reader io.Reader
}

type Decision struct {
	ApplyDiscount bool `json:"applyDiscount" jsonschema:"true if a discount coupon should be issued, false otherwise"`
}

const (
	ContentTypePNG  = "image/png"
	ContentTypeText = "text/plain"
)

// Payload is the result of a pipeline run: either a rendered image or a
// plain text message. Content always holds the raw bytes of the variant.
type Payload struct {
	ContentType string
	Content     []byte
}

func ImagePayload(data []byte) *Payload {
	return &Payload{
		ContentType: ContentTypePNG,
		Content:     data,
	}
}

func TextPayload(text string) *Payload {
	return &Payload{
		ContentType: ContentTypeText,
		Content:     []byte(text),
	}
}

func (p *Payload) IsText() bool {
	return p.ContentType == ContentTypeText
}

func (p *Payload) Text() string {
	if !p.IsText() {
		return ""
	}

	return string(p.Content)
}

// Base64 encodes either variant.
func (p *Payload) Base64() string {
	return base64.StdEncoding.EncodeToString(p.Content)
}
