package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/adrianliechti/voicedesk/pkg/provider"
)

// MinCodeLength is the shortest payload the barcode symbology accepts.
const MinCodeLength = 11

// NormalizeCode left-justifies short codes to MinCodeLength and turns every
// space into a zero. Longer codes are returned unchanged.
func NormalizeCode(code string) string {
	if len([]rune(code)) >= MinCodeLength {
		return code
	}

	padded := fmt.Sprintf("%-*s", MinCodeLength, code)

	return strings.ReplaceAll(padded, " ", "0")
}

type Issuer struct {
	renderer provider.Renderer
}

func NewIssuer(renderer provider.Renderer) *Issuer {
	return &Issuer{
		renderer: renderer,
	}
}

func (i *Issuer) Issue(ctx context.Context, code string) (*Payload, error) {
	code = NormalizeCode(code)

	slog.InfoContext(ctx, "generating coupon barcode", "code", code)

	rendering, err := i.renderer.Render(ctx, code, &provider.RenderOptions{
		Format: "png",
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBarcodeGeneration, err)
	}

	if rendering == nil || len(rendering.Content) == 0 {
		return nil, ErrEmptyBarcodeResponse
	}

	slog.InfoContext(ctx, "generated coupon barcode", "size", len(rendering.Content))

	return ImagePayload(rendering.Content), nil
}
