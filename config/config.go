package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = 8080
	DefaultYouTubeBaseURL = "https://www.youtube.com"
	DefaultHTTPTimeout    = 15 * time.Second
	DefaultAcceptLanguage = "en-US"
)

// Config holds process-wide settings read once at startup.
type Config struct {
	Port     int
	LogLevel string

	YouTubeBaseURL        string
	YouTubeHTTPTimeout    time.Duration
	YouTubeAcceptLanguage string
}

// Load reads settings from the environment. If envFile is non-empty it is loaded
// first; a missing file is only an error when it was requested explicitly.
func Load(envFile string, explicit bool) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
			}
		}
	}

	cfg := Config{
		Port:                  DefaultPort,
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		YouTubeBaseURL:        getEnv("YOUTUBE_BASE_URL", DefaultYouTubeBaseURL),
		YouTubeHTTPTimeout:    DefaultHTTPTimeout,
		YouTubeAcceptLanguage: getEnv("YOUTUBE_ACCEPT_LANGUAGE", DefaultAcceptLanguage),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("YOUTUBE_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid YOUTUBE_HTTP_TIMEOUT %q", v)
		}
		cfg.YouTubeHTTPTimeout = d
	}

	return cfg, nil
}

// ListenAddr returns the address passed to fiber's Listen.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
