package server

import (
	"strconv"
	"sync"
	"time"
)

// historyLimit matches the original backend's recall window.
const historyLimit = 50

// Record is one generated wallpaper as reported by the history endpoint.
type Record struct {
	ID             string            `json:"id"`
	Prompt         string            `json:"prompt"`
	EnhancedPrompt string            `json:"enhanced_prompt"`
	Style          string            `json:"style"`
	AspectRatio    string            `json:"aspect_ratio"`
	Quality        string            `json:"quality"`
	WallpaperURL   string            `json:"wallpaper_url"`
	Timestamp      time.Time         `json:"timestamp"`
	Metadata       map[string]string `json:"metadata"`
}

// HistoryStore keeps recent generations in memory, newest first. Nothing
// survives a restart; persistence is out of scope.
type HistoryStore struct {
	mu      sync.Mutex
	lastID  int64
	entries []Record
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Add assigns an id and timestamp, prepends and truncates in one step.
func (s *HistoryStore) Add(r Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	id := now.UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	r.ID = strconv.FormatInt(id, 36)
	r.Timestamp = now

	entries := make([]Record, 0, len(s.entries)+1)
	entries = append(entries, r)
	entries = append(entries, s.entries...)
	if len(entries) > historyLimit {
		entries = entries[:historyLimit]
	}
	s.entries = entries
	return r
}

// Recent returns a copy, newest first.
func (s *HistoryStore) Recent() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.entries...)
}
