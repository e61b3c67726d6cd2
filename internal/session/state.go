// Package session owns the in-memory state of one studio session: the
// form fields, the displayed image, the pending flag and a bounded
// most-recent-first history. State lives only as long as the process.
package session

import (
	"time"

	"wallpaper-studio/internal/catalog"
	"wallpaper-studio/internal/wallpaper"
)

// HistoryLimit bounds the recall list; older entries are evicted.
const HistoryLimit = 10

// FrameVariants are the phone-frame mockup borders. Purely
// presentational, never part of a generation request.
var FrameVariants = []string{"black", "silver", "gold", "rose"}

type HistoryEntry struct {
	ID        int64
	Prompt    string
	Style     catalog.Style
	ImageURL  string
	CreatedAt time.Time
}

type State struct {
	Prompt  string
	Style   catalog.Style
	Quality wallpaper.Quality
	Frame   string
	// Current is the displayed image URL, empty until the first success.
	Current string
	Pending bool
	History []HistoryEntry
}

// The transitions below are pure: each takes a State by value and
// returns the next one, leaving the input untouched.

func begin(s State) State {
	s.Pending = true
	return s
}

func fail(s State) State {
	s.Pending = false
	return s
}

// succeed settles the request, swaps the displayed image and prepends a
// history entry. Prepend and truncation happen in one step so no
// intermediate state exceeds HistoryLimit.
func succeed(s State, e HistoryEntry) State {
	s.Pending = false
	s.Current = e.ImageURL

	h := make([]HistoryEntry, 0, len(s.History)+1)
	h = append(h, e)
	h = append(h, s.History...)
	if len(h) > HistoryLimit {
		h = h[:HistoryLimit]
	}
	s.History = h
	return s
}

// selectEntry swaps the displayed image without touching history.
func selectEntry(s State, id int64) (State, bool) {
	for _, e := range s.History {
		if e.ID == id {
			s.Current = e.ImageURL
			return s, true
		}
	}
	return s, false
}
