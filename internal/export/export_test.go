package export_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper-studio/internal/export"
	"wallpaper-studio/internal/session"
)

func TestExportWritesTimestampedFile(t *testing.T) {
	payload := []byte("not really webp")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dir := t.TempDir()
	e := &export.Exporter{
		Client: srv.Client(),
		Saver:  &export.DirSaver{Dir: dir},
		Now:    func() time.Time { return time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC) },
	}

	name, err := e.Export(context.Background(), srv.URL+"/y.webp")
	require.NoError(t, err)
	assert.Equal(t, "wallpaper-20240309170405.webp", name)
	assert.Regexp(t, regexp.MustCompile(`^wallpaper-\d{14}\.webp$`), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestExportWithoutImage(t *testing.T) {
	e := &export.Exporter{Client: http.DefaultClient, Saver: &export.DirSaver{Dir: t.TempDir()}}
	_, err := e.Export(context.Background(), "")
	assert.ErrorIs(t, err, session.ErrNoImage)
}

func TestExportFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	e := &export.Exporter{Client: srv.Client(), Saver: &export.DirSaver{Dir: t.TempDir()}}
	_, err := e.Export(context.Background(), srv.URL+"/missing.webp")
	assert.Error(t, err)
}
