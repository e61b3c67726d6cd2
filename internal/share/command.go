package share

import (
	"context"
	"os/exec"
	"strings"

	"wallpaper-studio/internal/log"
)

// CommandSharer invokes an external share command (termux-share and the
// like) with the URL as its final argument.
type CommandSharer struct {
	Name string
	Args []string
}

func (s *CommandSharer) Share(ctx context.Context, title, url string) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("share")
	log.Info("sharing via command", "command", s.Name, "title", title)

	args := append(append([]string(nil), s.Args...), url)
	return exec.CommandContext(ctx, s.Name, args...).Run()
}

// ClipboardSharer pipes the URL into a clipboard command.
type ClipboardSharer struct {
	Name string
	Args []string
}

func (s *ClipboardSharer) Share(ctx context.Context, title, url string) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("share")
	log.Info("copying url to clipboard", "command", s.Name)

	cmd := exec.CommandContext(ctx, s.Name, s.Args...)
	cmd.Stdin = strings.NewReader(url)
	return cmd.Run()
}
