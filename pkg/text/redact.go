package text

import (
	"regexp"
	"strings"
)

// Mask replaces every redacted word.
const Mask = "****"

// Redactor masks blocked words as whole, case-insensitive tokens. The
// patterns are compiled once so a Redactor can be shared between requests.
type Redactor struct {
	patterns []*regexp.Regexp
}

func NewRedactor(words ...string) *Redactor {
	r := &Redactor{}

	for _, word := range words {
		word = strings.TrimSpace(word)

		if word == "" {
			continue
		}

		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		r.patterns = append(r.patterns, pattern)
	}

	return r
}

// Redact applies the blocked words in order.
func (r *Redactor) Redact(text string) string {
	if r == nil {
		return text
	}

	for _, p := range r.patterns {
		text = p.ReplaceAllLiteralString(text, Mask)
	}

	return text
}

func Redact(text string, words []string) string {
	return NewRedactor(words...).Redact(text)
}
