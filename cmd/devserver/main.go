// devserver is the local development endpoint the studio points at by
// default. Without an OpenAI key it serves deterministic sample
// wallpapers; with one it generates for real.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"wallpaper-studio/internal/config"
	"wallpaper-studio/internal/log"
	"wallpaper-studio/internal/server"
)

func main() {
	logger := log.New(os.Stderr, false)
	baseCtx := log.NewContext(context.Background(), logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}

	var picker server.Picker
	if cfg.OpenAIApiKey != "" {
		logger.Info("using openai image generation", "model", cfg.OpenAIImageModel)
		picker = server.NewOpenAIPicker(cfg.OpenAIApiKey, cfg.OpenAIImageModel)
	} else {
		logger.Info("no api key configured, serving sample wallpapers")
		picker = server.NewSamplePicker()
	}

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     server.New(picker).Router(),
		BaseContext: func(net.Listener) context.Context { return baseCtx },
	}

	ctx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("devserver listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return srv.Shutdown(context.Background())
	})

	if err := group.Wait(); err != nil {
		logger.Error("devserver error", "error", err)
		os.Exit(1)
	}
}
