package server_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper-studio/internal/server"
)

func TestHistoryStoreBoundAndOrder(t *testing.T) {
	s := server.NewHistoryStore()

	for i := 0; i < 55; i++ {
		s.Add(server.Record{Prompt: fmt.Sprintf("prompt %d", i)})
	}

	recent := s.Recent()
	require.Len(t, recent, 50)
	assert.Equal(t, "prompt 54", recent[0].Prompt, "newest first")
	assert.Equal(t, "prompt 5", recent[49].Prompt, "oldest entries evicted")

	seen := map[string]bool{}
	for i, r := range recent {
		assert.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "ids are unique")
		seen[r.ID] = true
		if i > 0 {
			assert.False(t, r.Timestamp.After(recent[i-1].Timestamp))
		}
	}
}
