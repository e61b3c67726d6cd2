package wallpaper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"wallpaper-studio/internal/log"
)

const generatePath = "/api/wallpaper/generate"

type apiRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style"`
	AspectRatio string `json:"aspect_ratio"`
	Quality     string `json:"quality"`
}

type apiResponse struct {
	Success      bool   `json:"success"`
	WallpaperURL string `json:"wallpaper_url"`
	Error        string `json:"error,omitempty"`
}

// HTTPGenerator issues one POST per Generate call against the configured
// base URL.
type HTTPGenerator struct {
	Client  *http.Client
	BaseURL string
}

var _ Generator = (*HTTPGenerator)(nil)

func (g *HTTPGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	log := log.FromContextOrDiscard(ctx).WithGroup("wallpaper").With("style", req.Style, "quality", req.Quality)
	log.Info("requesting wallpaper generation")

	body, err := json.Marshal(apiRequest{
		Prompt:      strings.TrimSpace(req.Prompt),
		Style:       string(req.Style),
		AspectRatio: AspectRatio,
		Quality:     string(req.Quality),
	})
	if err != nil {
		return Result{}, err
	}

	url := strings.TrimRight(g.BaseURL, "/") + generatePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return Result{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &TransportError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, &TransportError{Err: fmt.Errorf("decoding response: %w", err)}
	}

	if !out.Success {
		return Result{}, &ServiceError{Message: out.Error}
	}
	if out.WallpaperURL == "" {
		return Result{}, &ServiceError{Message: "response carried no wallpaper url"}
	}

	log.Info("wallpaper ready", "url", out.WallpaperURL)
	return Result{ImageURL: out.WallpaperURL}, nil
}
