package session

import (
	"context"
	"errors"
	"strings"

	"github.com/samber/lo"

	"wallpaper-studio/internal/catalog"
	"wallpaper-studio/internal/log"
	"wallpaper-studio/internal/wallpaper"
)

var (
	// ErrBusy rejects re-submission while a request is in flight.
	ErrBusy     = errors.New("a generation is already in flight")
	ErrNotFound = errors.New("no history entry with that id")
	ErrNoImage  = errors.New("no image has been generated yet")
)

// Controller mediates exactly one external call per user action and
// applies the resulting state transition.
type Controller struct {
	generator wallpaper.Generator
	state     State
	lastID    int64
	now       func() int64
}

func NewController(g wallpaper.Generator) *Controller {
	return &Controller{
		generator: g,
		state: State{
			Style:   catalog.StyleModern,
			Quality: wallpaper.QualityHigh,
			Frame:   FrameVariants[0],
		},
		now: nowUnixNano,
	}
}

// State returns a copy; History shares no backing array with the
// controller's own slice.
func (c *Controller) State() State {
	s := c.state
	s.History = append([]HistoryEntry(nil), c.state.History...)
	return s
}

// Generate validates, dispatches one request and settles the session
// state. While a request is pending further calls fail with ErrBusy and
// send nothing.
func (c *Controller) Generate(ctx context.Context, prompt string, style catalog.Style, quality wallpaper.Quality) (HistoryEntry, error) {
	if c.state.Pending {
		return HistoryEntry{}, ErrBusy
	}

	req := wallpaper.Request{Prompt: prompt, Style: style, Quality: quality}
	if err := req.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	c.state.Prompt = prompt
	c.state.Style = style
	c.state.Quality = quality
	c.state = begin(c.state)

	log := log.FromContextOrDiscard(ctx).WithGroup("session")
	res, err := c.generator.Generate(ctx, req)
	if err != nil {
		// Displayed image and history stay as they were.
		c.state = fail(c.state)
		log.Warn("generation failed", "error", err)
		return HistoryEntry{}, err
	}

	entry := HistoryEntry{
		ID:        c.nextID(),
		Prompt:    strings.TrimSpace(prompt),
		Style:     style,
		ImageURL:  res.ImageURL,
		CreatedAt: unixNanoTime(c.lastID),
	}
	c.state = succeed(c.state, entry)
	log.Info("generation succeeded", "id", entry.ID, "url", entry.ImageURL)
	return entry, nil
}

// SelectFromHistory makes a past result the displayed image. History
// order and length are unchanged.
func (c *Controller) SelectFromHistory(id int64) (HistoryEntry, error) {
	next, ok := selectEntry(c.state, id)
	if !ok {
		return HistoryEntry{}, ErrNotFound
	}
	c.state = next
	entry, _ := lo.Find(c.state.History, func(e HistoryEntry) bool { return e.ID == id })
	return entry, nil
}

// CurrentImage is the URL export and share act on.
func (c *Controller) CurrentImage() (string, error) {
	if c.state.Current == "" {
		return "", ErrNoImage
	}
	return c.state.Current, nil
}

func (c *Controller) History() []HistoryEntry {
	return append([]HistoryEntry(nil), c.state.History...)
}

// SetFrame picks a mockup border; unknown variants are ignored.
func (c *Controller) SetFrame(variant string) {
	if lo.Contains(FrameVariants, variant) {
		c.state.Frame = variant
	}
}

// nextID is a creation timestamp bumped when the clock does not move
// between two successes, so ids stay strictly monotonic.
func (c *Controller) nextID() int64 {
	id := c.now()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return id
}
