// Package server is the local development endpoint the studio points at
// by default. It mirrors the production wallpaper API contract: one JSON
// POST to generate, a bounded history listing and an RSS feed.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"wallpaper-studio/internal/catalog"
	"wallpaper-studio/internal/log"
	"wallpaper-studio/internal/wallpaper"
)

type Server struct {
	picker  Picker
	history *HistoryStore
	router  *gin.Engine
}

type generateRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style"`
	AspectRatio string `json:"aspect_ratio"`
	Quality     string `json:"quality"`
}

type generateResponse struct {
	Success      bool              `json:"success"`
	WallpaperURL string            `json:"wallpaper_url"`
	Prompt       string            `json:"prompt"`
	Style        string            `json:"style"`
	AspectRatio  string            `json:"aspect_ratio"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Error        string            `json:"error,omitempty"`
}

type historyResponse struct {
	Success    bool     `json:"success"`
	Wallpapers []Record `json:"wallpapers"`
	Count      int      `json:"count"`
	Error      string   `json:"error,omitempty"`
}

func New(picker Picker) *Server {
	s := &Server{
		picker:  picker,
		history: NewHistoryStore(),
	}

	router := gin.Default()
	router.GET("/", s.handleHealth)
	router.GET("/health", s.handleHealth)

	api := router.Group("/api/wallpaper")
	api.POST("/generate", s.handleGenerate)
	api.GET("/history", s.handleHistory)
	api.GET("/feed", s.handleFeed)

	s.router = router
	return s
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "wallpaper-studio-devserver"})
}

func (s *Server) handleGenerate(c *gin.Context) {
	logger := log.FromContextOrDiscard(c.Request.Context()).WithGroup("devserver")

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, generateResponse{Success: false, Error: "invalid request body"})
		return
	}

	req.Style = lo.Ternary(req.Style != "", req.Style, string(catalog.StyleModern))
	req.AspectRatio = lo.Ternary(req.AspectRatio != "", req.AspectRatio, wallpaper.AspectRatio)
	req.Quality = lo.Ternary(req.Quality != "", req.Quality, string(wallpaper.QualityHigh))

	fail := func(msg string) {
		c.JSON(http.StatusOK, generateResponse{
			Success:     false,
			Prompt:      req.Prompt,
			Style:       req.Style,
			AspectRatio: req.AspectRatio,
			Error:       msg,
		})
	}

	if req.Prompt == "" {
		fail("prompt is required")
		return
	}
	if !catalog.IsValid(catalog.Style(req.Style)) {
		fail(fmt.Sprintf("unknown style %q", req.Style))
		return
	}

	enhanced := enhancePrompt(req.Prompt, req.Style, req.AspectRatio)
	qualityLabel := lo.Ternary(req.Quality == string(wallpaper.QualityHigh), "1", "0.25")

	url, err := s.picker.PickURL(c.Request.Context(), enhanced)
	if err != nil {
		logger.Error("image selection failed", "error", err)
		fail(err.Error())
		return
	}

	rec := s.history.Add(Record{
		Prompt:         req.Prompt,
		EnhancedPrompt: enhanced,
		Style:          req.Style,
		AspectRatio:    req.AspectRatio,
		Quality:        req.Quality,
		WallpaperURL:   url,
		Metadata: map[string]string{
			"quality":         qualityLabel,
			"format":          "webp",
			"generation_time": time.Now().UTC().Format(time.RFC3339),
		},
	})
	logger.Info("wallpaper generated", "id", rec.ID, "style", rec.Style)

	c.JSON(http.StatusOK, generateResponse{
		Success:      true,
		WallpaperURL: url,
		Prompt:       req.Prompt,
		Style:        req.Style,
		AspectRatio:  req.AspectRatio,
		Metadata:     rec.Metadata,
	})
}

func (s *Server) handleHistory(c *gin.Context) {
	wallpapers := s.history.Recent()
	c.JSON(http.StatusOK, historyResponse{
		Success:    true,
		Wallpapers: wallpapers,
		Count:      len(wallpapers),
	})
}

// enhancePrompt folds the style and aspect wording into the prompt the
// way the production generator expects.
func enhancePrompt(prompt, style, aspectRatio string) string {
	return fmt.Sprintf("%s, %s style, phone wallpaper, %s aspect ratio, high quality, detailed, vibrant colors",
		prompt, style, aspectRatio)
}
