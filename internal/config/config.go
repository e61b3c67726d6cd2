// Package config loads studio and devserver settings from the
// environment, with an optional .env file for local development.
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAPIBaseURL   = "WALLPAPER_API_URL"
	EnvOutDir       = "WALLPAPER_OUT_DIR"
	EnvPort         = "PORT"
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvOpenAIModel  = "OPENAI_IMAGE_MODEL"
	EnvShareCommand = "SHARE_COMMAND"
)

type Config struct {
	// APIBaseURL is where the studio sends generation requests.
	APIBaseURL string
	// OutDir receives exported wallpaper files.
	OutDir string
	// Port is the devserver listen port.
	Port string
	// OpenAIApiKey switches the devserver to real generation when set.
	OpenAIApiKey     string
	OpenAIImageModel string
	// ShareCommand overrides native share command detection.
	ShareCommand string
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:       getEnv(EnvAPIBaseURL, "http://localhost:8000"),
		OutDir:           getEnv(EnvOutDir, "wallpapers"),
		Port:             getEnv(EnvPort, "8000"),
		OpenAIApiKey:     os.Getenv(EnvOpenAIKey),
		OpenAIImageModel: getEnv(EnvOpenAIModel, "dall-e-3"),
		ShareCommand:     os.Getenv(EnvShareCommand),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", EnvAPIBaseURL, c.APIBaseURL)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
