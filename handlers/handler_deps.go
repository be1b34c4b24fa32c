package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"videothingy/transcript-api/models"
)

// TranscriptResolver defines what the transcript handler expects from the
// selection layer. The concrete implementation is transcript.Service.
type TranscriptResolver interface {
	Resolve(ctx context.Context, videoID string) (*models.TranscriptResponse, error)
}

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Transcripts TranscriptResolver
	Logger      *logrus.Logger
}

var validate = validator.New()

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(transcripts TranscriptResolver, logger *logrus.Logger) *ApplicationHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ApplicationHandler{
		Transcripts: transcripts,
		Logger:      logger,
	}
}
