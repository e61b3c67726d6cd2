// Package export turns the displayed wallpaper into a local file, the
// terminal equivalent of the browser "save as" action.
package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"wallpaper-studio/internal/log"
	"wallpaper-studio/internal/session"
)

// Exporter downloads an image URL and hands it to a Saver under a
// wallpaper-<timestamp>.webp name.
type Exporter struct {
	Client *http.Client
	Saver  Saver
	// Now is overridable for deterministic names; zero means time.Now.
	Now func() time.Time
}

func (e *Exporter) Export(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return "", session.ErrNoImage
	}

	log := log.FromContextOrDiscard(ctx).WithGroup("export").With("url", imageURL)
	log.Info("downloading wallpaper")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching image: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	name := "wallpaper-" + now().UTC().Format("20060102150405") + ".webp"

	if err := e.Saver.Save(ctx, SaveParams{Name: name, Data: data}); err != nil {
		return "", err
	}
	return name, nil
}
