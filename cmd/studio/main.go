// studio is an interactive wallpaper generation session: type a prompt,
// pick a style and quality, recall recent results, export or share them.
// Session state lives in memory and dies with the process.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/do"

	"wallpaper-studio/internal/catalog"
	"wallpaper-studio/internal/config"
	"wallpaper-studio/internal/export"
	"wallpaper-studio/internal/inject"
	"wallpaper-studio/internal/log"
	"wallpaper-studio/internal/session"
	"wallpaper-studio/internal/share"
	"wallpaper-studio/internal/wallpaper"
)

func main() {
	prompt := flag.String("p", "", "Generate once with this prompt and exit")
	style := flag.String("s", string(catalog.StyleModern), "Style for -p")
	quality := flag.String("q", string(wallpaper.QualityHigh), "Quality for -p (high or medium)")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	logOut := io.Writer(io.Discard)
	if *verbose {
		logOut = os.Stderr
	}
	ctx := log.NewContext(context.Background(), log.New(logOut, *verbose))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	injector := inject.Setup(ctx, cfg)
	defer func() { _ = injector.Shutdown() }()

	s := &studio{
		controller: do.MustInvoke[*session.Controller](injector),
		randomizer: do.MustInvoke[*catalog.Randomizer](injector),
		exporter:   do.MustInvoke[*export.Exporter](injector),
		sharer:     do.MustInvoke[share.Sharer](injector),
		style:      catalog.StyleModern,
		quality:    wallpaper.QualityHigh,
	}

	if *prompt != "" {
		if err := s.generateOnce(ctx, *prompt, catalog.Style(*style), wallpaper.Quality(*quality)); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	s.run(ctx)
}

type studio struct {
	controller *session.Controller
	randomizer *catalog.Randomizer
	exporter   *export.Exporter
	sharer     share.Sharer

	// form fields for the next generation
	style   catalog.Style
	quality wallpaper.Quality
}

func (s *studio) generateOnce(ctx context.Context, prompt string, style catalog.Style, quality wallpaper.Quality) error {
	entry, err := s.controller.Generate(ctx, prompt, style, quality)
	if err != nil {
		return err
	}
	fmt.Println("generated", entry.ImageURL)

	name, err := s.exporter.Export(ctx, entry.ImageURL)
	if err != nil {
		return err
	}
	fmt.Println("saved", name)
	return nil
}

func (s *studio) run(ctx context.Context) {
	fmt.Println("wallpaper studio - type \"help\" for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("[%s/%s] > ", s.style, s.quality)
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(line, " ")

		switch cmd {
		case "quit", "exit":
			return
		case "help":
			s.help()
		case "styles":
			s.styles()
		case "style":
			s.setStyle(rest)
		case "quality":
			s.setQuality(rest)
		case "frame":
			s.controller.SetFrame(strings.TrimSpace(rest))
		case "random":
			ex := s.randomizer.Pick(ctx)
			fmt.Printf("suggestion: %q (%s: %s)\n", ex.Prompt, ex.Style, ex.Description)
			s.generate(ctx, ex.Prompt, ex.Style)
		case "generate":
			s.generate(ctx, rest, s.style)
		case "history":
			s.history()
		case "select":
			s.selectEntry(rest)
		case "export":
			s.export(ctx)
		case "share":
			s.share(ctx)
		default:
			fmt.Println("unknown command; type \"help\"")
		}
	}
}

func (s *studio) help() {
	fmt.Print(`commands:
  generate <prompt>   request a wallpaper with the current style/quality
  random              generate from a random catalog example
  styles              list the available styles
  style <name>        switch style
  quality <q>         switch quality (high or medium)
  frame <variant>     pick a phone-frame mockup (` + strings.Join(session.FrameVariants, ", ") + `)
  history             list recent generations
  select <n>          display history entry n again
  export              save the displayed wallpaper to disk
  share               hand the displayed wallpaper to the system share
  quit
`)
}

func (s *studio) styles() {
	for _, st := range catalog.All() {
		desc, _ := catalog.Describe(st)
		fmt.Printf("  %-10s %s\n", st, desc)
	}
}

func (s *studio) setStyle(arg string) {
	st := catalog.Style(strings.TrimSpace(arg))
	if !catalog.IsValid(st) {
		fmt.Println("unknown style; try \"styles\"")
		return
	}
	s.style = st
}

func (s *studio) setQuality(arg string) {
	q := wallpaper.Quality(strings.TrimSpace(arg))
	if q != wallpaper.QualityHigh && q != wallpaper.QualityMedium {
		fmt.Println(`quality must be "high" or "medium"`)
		return
	}
	s.quality = q
}

func (s *studio) generate(ctx context.Context, prompt string, style catalog.Style) {
	entry, err := s.controller.Generate(ctx, prompt, style, s.quality)
	if err != nil {
		s.notify(err)
		return
	}
	fmt.Println("generated", entry.ImageURL)
}

func (s *studio) history() {
	entries := s.controller.History()
	if len(entries) == 0 {
		fmt.Println("nothing generated yet")
		return
	}
	for i, e := range entries {
		fmt.Printf("  %2d. [%s] %s  %s\n", i+1, e.Style, e.Prompt, e.ImageURL)
	}
}

func (s *studio) selectEntry(arg string) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	entries := s.controller.History()
	if err != nil || n < 1 || n > len(entries) {
		fmt.Println("select needs a history number; try \"history\"")
		return
	}
	entry, err := s.controller.SelectFromHistory(entries[n-1].ID)
	if err != nil {
		s.notify(err)
		return
	}
	fmt.Println("displaying", entry.ImageURL)
}

func (s *studio) export(ctx context.Context) {
	url, err := s.controller.CurrentImage()
	if err != nil {
		s.notify(err)
		return
	}
	name, err := s.exporter.Export(ctx, url)
	if err != nil {
		s.notify(err)
		return
	}
	fmt.Println("saved", name)
}

func (s *studio) share(ctx context.Context) {
	url, err := s.controller.CurrentImage()
	if err != nil {
		s.notify(err)
		return
	}
	if err := s.sharer.Share(ctx, "AI Wallpaper", url); err != nil {
		s.notify(err)
		return
	}
	fmt.Println("shared", url)
}

// notify surfaces an error as a transient message; the session stays
// usable.
func (s *studio) notify(err error) {
	switch {
	case errors.Is(err, wallpaper.ErrEmptyPrompt):
		fmt.Println("enter a prompt first")
	case errors.Is(err, session.ErrNoImage):
		fmt.Println("generate a wallpaper first")
	default:
		fmt.Println("error:", err)
	}
}
