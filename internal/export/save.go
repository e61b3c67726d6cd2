package export

import (
	"context"
	"os"
	"path/filepath"

	"wallpaper-studio/internal/log"
)

type SaveParams struct {
	Name string
	Data []byte
}

// Saver persists a downloaded wallpaper under a generated name.
type Saver interface {
	Save(context.Context, SaveParams) error
}

// DirSaver writes into a local directory, creating it on first use.
type DirSaver struct {
	Dir string
}

func (s *DirSaver) Save(ctx context.Context, params SaveParams) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("saver")
	log.Info("writing", "file", params.Name, "dir", s.Dir)

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, params.Name), params.Data, 0600)
}
