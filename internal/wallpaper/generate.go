// Package wallpaper talks to the remote wallpaper generation endpoint.
package wallpaper

import (
	"context"
	"strings"

	"wallpaper-studio/internal/catalog"
)

// AspectRatio is pinned to a phone screen and is not caller-configurable.
const AspectRatio = "9:16"

// Quality is an opaque fidelity hint passed through to the generator.
type Quality string

const (
	QualityHigh   Quality = "high"
	QualityMedium Quality = "medium"
)

type Request struct {
	Prompt  string
	Style   catalog.Style
	Quality Quality
}

// Validate rejects a request before any network call is made.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return ErrEmptyPrompt
	}
	if !catalog.IsValid(r.Style) {
		return catalog.ErrUnknownStyle
	}
	if r.Quality != QualityHigh && r.Quality != QualityMedium {
		return ErrBadQuality
	}
	return nil
}

type Result struct {
	ImageURL string
}

type Generator interface {
	Generate(context.Context, Request) (Result, error)
}
