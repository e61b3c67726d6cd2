// Package share hands the displayed wallpaper URL to whatever sharing
// mechanism the host offers. Sharing is best-effort: a native failure
// falls through to the clipboard, never to the caller.
package share

import (
	"context"
	"errors"

	"wallpaper-studio/internal/log"
)

var ErrNoSharer = errors.New("no sharing mechanism available")

type Sharer interface {
	Share(ctx context.Context, title, url string) error
}

// FallbackSharer tries the native path first and silently falls back.
type FallbackSharer struct {
	Primary  Sharer
	Fallback Sharer
}

func (s *FallbackSharer) Share(ctx context.Context, title, url string) error {
	logger := log.FromContextOrDiscard(ctx).WithGroup("share")

	if s.Primary != nil {
		err := s.Primary.Share(ctx, title, url)
		if err == nil {
			return nil
		}
		logger.Warn("native share failed, falling back", "error", err)
	}
	if s.Fallback == nil {
		return ErrNoSharer
	}
	return s.Fallback.Share(ctx, title, url)
}
