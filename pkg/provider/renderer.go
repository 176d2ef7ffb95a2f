package provider

import (
	"context"
)

type Renderer interface {
	Render(ctx context.Context, input string, options *RenderOptions) (*Rendering, error)
}

type RenderOptions struct {
	Format string
}

type Rendering struct {
	ID    string
	Model string

	Content     []byte
	ContentType string
}
