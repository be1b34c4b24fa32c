package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"videothingy/transcript-api/config"
	"videothingy/transcript-api/handlers"
	"videothingy/transcript-api/internal/transcript"
	"videothingy/transcript-api/internal/youtube"
	"videothingy/transcript-api/routes"
)

var version = "1.0.0"

// @title        YouTube Transcript API
// @version      1.0
// @description  Get transcripts from YouTube videos
// @BasePath     /api
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		envFile  string
		port     int
		logLevel string
	)

	cmd := &cobra.Command{
		Use:     "transcript-api",
		Short:   "Serve YouTube transcripts over HTTP",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile, cmd.Flags().Changed("env-file"))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			return run(cmd.Context(), cfg)
		},
	}
	cmd.SilenceUsage = true

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "HTTP listen port (overrides PORT)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (overrides LOG_LEVEL)")

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	logger := config.InitLogger(cfg.LogLevel)

	client := youtube.NewClient(
		youtube.WithBaseURL(cfg.YouTubeBaseURL),
		youtube.WithHTTPClient(&http.Client{Timeout: cfg.YouTubeHTTPTimeout}),
		youtube.WithAcceptLanguage(cfg.YouTubeAcceptLanguage),
		youtube.WithLogger(logger),
	)
	h := handlers.NewApplicationHandler(transcript.NewService(client, logger), logger)
	app := routes.NewApp(h, logger)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.ListenAddr()).Info("Starting Transcript API")
		errCh <- app.Listen(cfg.ListenAddr())
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("Shutting down Transcript API")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
