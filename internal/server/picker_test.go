package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper-studio/internal/server"
)

func TestSamplePickerKeywordMatch(t *testing.T) {
	p := server.NewSamplePicker()

	url, err := p.PickURL(context.Background(), "Sunset over mountains, nature style, phone wallpaper")
	require.NoError(t, err)
	assert.Contains(t, url, "1506905925346", "the sunset keyword comes first in the table")
}

func TestSamplePickerHashFallbackIsStable(t *testing.T) {
	p := server.NewSamplePicker()

	first, err := p.PickURL(context.Background(), "an indescribable scene")
	require.NoError(t, err)
	second, err := p.PickURL(context.Background(), "an indescribable scene")
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSamplePickerStableAcrossInstances(t *testing.T) {
	a, err := server.NewSamplePicker().PickURL(context.Background(), "an indescribable scene")
	require.NoError(t, err)
	b, err := server.NewSamplePicker().PickURL(context.Background(), "an indescribable scene")
	require.NoError(t, err)
	assert.Equal(t, a, b, "fallback is a pure hash, not random")
}
