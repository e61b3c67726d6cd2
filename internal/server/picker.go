package server

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"wallpaper-studio/internal/log"
)

// Picker resolves an enhanced prompt to an image URL.
type Picker interface {
	PickURL(ctx context.Context, prompt string) (string, error)
}

// samples are stock phone wallpapers matched by prompt keyword. Order
// matters: the first matching keyword wins.
var samples = []struct {
	keyword string
	url     string
}{
	{"sunset", "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=711&fit=crop&crop=center"},
	{"mountains", "https://images.unsplash.com/photo-1464822759844-d150bb1e7ead?w=400&h=711&fit=crop&crop=center"},
	{"abstract", "https://images.unsplash.com/photo-1558618666-fcd25d1cd2f6?w=400&h=711&fit=crop&crop=center"},
	{"geometric", "https://images.unsplash.com/photo-1520637836862-4d197d17c13a?w=400&h=711&fit=crop&crop=center"},
	{"nature", "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=711&fit=crop&crop=center"},
	{"minimal", "https://images.unsplash.com/photo-1553356084-58ef4a67b2a7?w=400&h=711&fit=crop&crop=center"},
	{"gradient", "https://images.unsplash.com/photo-1509114397022-ed747cca3f65?w=400&h=711&fit=crop&crop=center"},
	{"neon", "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=711&fit=crop&crop=center"},
	{"artistic", "https://images.unsplash.com/photo-1549490349-8643362247b5?w=400&h=711&fit=crop&crop=center"},
	{"space", "https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=400&h=711&fit=crop&crop=center"},
}

// SamplePicker serves development traffic without a real generator:
// keyword match first, then a stable hash of the prompt. Results are
// memoized so a prompt keeps its wallpaper for the process lifetime.
type SamplePicker struct {
	cache *lru.Cache[string, string]
}

func NewSamplePicker() *SamplePicker {
	cache, _ := lru.New[string, string](256)
	return &SamplePicker{cache: cache}
}

func (p *SamplePicker) PickURL(ctx context.Context, prompt string) (string, error) {
	if url, ok := p.cache.Get(prompt); ok {
		return url, nil
	}

	log := log.FromContextOrDiscard(ctx).WithGroup("sample")
	log.Debug("selecting sample wallpaper")

	var url string
	lower := strings.ToLower(prompt)
	for _, s := range samples {
		if strings.Contains(lower, s.keyword) {
			url = s.url
			break
		}
	}
	if url == "" {
		sum := md5.Sum([]byte(prompt))
		idx := binary.BigEndian.Uint32(sum[:4]) % uint32(len(samples))
		url = samples[idx].url
	}

	p.cache.Add(prompt, url)
	return url, nil
}
