package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/feeds"

	"wallpaper-studio/internal/log"
)

func (s *Server) handleFeed(c *gin.Context) {
	logger := log.FromContextOrDiscard(c.Request.Context()).WithGroup("feed")
	logger.Debug("generating rss feed")

	feed := feeds.Feed{
		Title:       "Wallpaper Studio",
		Description: "AI generated phone wallpapers",
		Link:        &feeds.Link{Href: "http://" + c.Request.Host},
		Updated:     time.Now().UTC(),
	}

	for _, r := range s.history.Recent() {
		feed.Add(&feeds.Item{
			Id:      r.ID,
			Title:   fmt.Sprintf("%s:%s", r.Prompt, r.Style),
			Link:    &feeds.Link{Href: r.WallpaperURL},
			Created: r.Timestamp,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(rss))
}
