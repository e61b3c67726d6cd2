package session_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper-studio/internal/catalog"
	"wallpaper-studio/internal/session"
	"wallpaper-studio/internal/wallpaper"
)

type stubGenerator struct {
	calls    int
	generate func(ctx context.Context, req wallpaper.Request) (wallpaper.Result, error)
}

func (g *stubGenerator) Generate(ctx context.Context, req wallpaper.Request) (wallpaper.Result, error) {
	g.calls++
	return g.generate(ctx, req)
}

func okGenerator(url string) *stubGenerator {
	return &stubGenerator{generate: func(context.Context, wallpaper.Request) (wallpaper.Result, error) {
		return wallpaper.Result{ImageURL: url}, nil
	}}
}

func TestGenerateSuccessUpdatesStateAndHistory(t *testing.T) {
	gen := okGenerator("https://x/y.webp")
	c := session.NewController(gen)

	entry, err := c.Generate(context.Background(), "Sunset over mountains with purple clouds", catalog.StyleNature, wallpaper.QualityHigh)
	require.NoError(t, err)

	assert.Equal(t, "Sunset over mountains with purple clouds", entry.Prompt)
	assert.Equal(t, catalog.StyleNature, entry.Style)
	assert.Equal(t, "https://x/y.webp", entry.ImageURL)

	st := c.State()
	assert.False(t, st.Pending)
	assert.Equal(t, "https://x/y.webp", st.Current)
	require.Len(t, st.History, 1)
	assert.Equal(t, entry.ID, st.History[0].ID)
}

func TestGenerateValidationLeavesStateIdle(t *testing.T) {
	gen := okGenerator("https://x/y.webp")
	c := session.NewController(gen)

	_, err := c.Generate(context.Background(), "   ", catalog.StyleNature, wallpaper.QualityHigh)
	assert.ErrorIs(t, err, wallpaper.ErrEmptyPrompt)
	assert.Zero(t, gen.calls, "no request may be sent for an empty prompt")
	assert.False(t, c.State().Pending)
	assert.Empty(t, c.State().History)
}

func TestGenerateFailureKeepsImageAndHistory(t *testing.T) {
	gen := okGenerator("https://x/first.webp")
	c := session.NewController(gen)

	_, err := c.Generate(context.Background(), "misty forest", catalog.StyleNature, wallpaper.QualityMedium)
	require.NoError(t, err)

	gen.generate = func(context.Context, wallpaper.Request) (wallpaper.Result, error) {
		return wallpaper.Result{}, &wallpaper.ServiceError{Message: "quota exceeded"}
	}

	_, err = c.Generate(context.Background(), "neon alley", catalog.StyleNeon, wallpaper.QualityHigh)
	var svcErr *wallpaper.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "quota exceeded", svcErr.Message)

	st := c.State()
	assert.False(t, st.Pending, "the session must return to idle")
	assert.Equal(t, "https://x/first.webp", st.Current, "displayed image is unchanged")
	assert.Len(t, st.History, 1, "no history entry on failure")

	// The session stays usable.
	gen.generate = func(context.Context, wallpaper.Request) (wallpaper.Result, error) {
		return wallpaper.Result{ImageURL: "https://x/second.webp"}, nil
	}
	_, err = c.Generate(context.Background(), "second try", catalog.StyleNeon, wallpaper.QualityHigh)
	assert.NoError(t, err)
}

func TestGenerateRejectsReentrancy(t *testing.T) {
	var c *session.Controller
	var inner error
	gen := &stubGenerator{}
	gen.generate = func(ctx context.Context, req wallpaper.Request) (wallpaper.Result, error) {
		// Re-submitting while the call is outstanding must be rejected
		// without a second request.
		_, inner = c.Generate(ctx, "again", catalog.StyleModern, wallpaper.QualityHigh)
		return wallpaper.Result{ImageURL: "https://x/one.webp"}, nil
	}
	c = session.NewController(gen)

	_, err := c.Generate(context.Background(), "first", catalog.StyleModern, wallpaper.QualityHigh)
	require.NoError(t, err)
	assert.ErrorIs(t, inner, session.ErrBusy)
	assert.Equal(t, 1, gen.calls)
}

func TestHistoryBoundAndOrder(t *testing.T) {
	n := 0
	gen := &stubGenerator{generate: func(context.Context, wallpaper.Request) (wallpaper.Result, error) {
		n++
		return wallpaper.Result{ImageURL: fmt.Sprintf("https://x/%d.webp", n)}, nil
	}}
	c := session.NewController(gen)

	for i := 1; i <= session.HistoryLimit+1; i++ {
		_, err := c.Generate(context.Background(), fmt.Sprintf("prompt %d", i), catalog.StyleAbstract, wallpaper.QualityHigh)
		require.NoError(t, err)
	}

	h := c.History()
	require.Len(t, h, session.HistoryLimit)
	assert.Equal(t, "https://x/11.webp", h[0].ImageURL, "newest first")
	assert.Equal(t, "https://x/2.webp", h[len(h)-1].ImageURL, "oldest entry was evicted")

	for i := 1; i < len(h); i++ {
		assert.Greater(t, h[i-1].ID, h[i].ID, "ids are monotonic")
	}
}

func TestSelectFromHistory(t *testing.T) {
	n := 0
	gen := &stubGenerator{generate: func(context.Context, wallpaper.Request) (wallpaper.Result, error) {
		n++
		return wallpaper.Result{ImageURL: fmt.Sprintf("https://x/%d.webp", n)}, nil
	}}
	c := session.NewController(gen)

	for i := 0; i < 3; i++ {
		_, err := c.Generate(context.Background(), "prompt", catalog.StyleGradient, wallpaper.QualityMedium)
		require.NoError(t, err)
	}

	before := c.History()
	oldest := before[len(before)-1]

	entry, err := c.SelectFromHistory(oldest.ID)
	require.NoError(t, err)
	assert.Equal(t, oldest.ImageURL, entry.ImageURL)

	st := c.State()
	assert.Equal(t, oldest.ImageURL, st.Current)
	assert.Equal(t, before, c.History(), "selection must not reorder or shrink history")

	_, err = c.SelectFromHistory(-42)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestCurrentImageBeforeFirstGeneration(t *testing.T) {
	c := session.NewController(okGenerator("https://x/y.webp"))
	_, err := c.CurrentImage()
	assert.ErrorIs(t, err, session.ErrNoImage)
}

func TestSetFrame(t *testing.T) {
	c := session.NewController(okGenerator("https://x/y.webp"))
	c.SetFrame("gold")
	assert.Equal(t, "gold", c.State().Frame)

	c.SetFrame("plaid")
	assert.Equal(t, "gold", c.State().Frame, "unknown variants are ignored")
}
