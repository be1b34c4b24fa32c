// Package transcript picks one caption track for a video and shapes it into
// the API response envelope.
package transcript

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"videothingy/transcript-api/internal/metrics"
	"videothingy/transcript-api/internal/youtube"
	"videothingy/transcript-api/models"
)

const preferredLanguage = "en"

// Source is the subset of the YouTube client the service depends on.
type Source interface {
	ListTranscripts(ctx context.Context, videoID string) (*youtube.TranscriptList, error)
	Fetch(ctx context.Context, t youtube.Transcript) ([]youtube.Snippet, error)
}

// Service resolves video identifiers into transcript envelopes. It holds no
// per-request state and is safe for concurrent use.
type Service struct {
	source Source
	logger *logrus.Logger
}

// NewService creates a Service backed by source.
func NewService(source Source, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{source: source, logger: logger}
}

// Resolve lists the tracks for videoID, selects one, fetches it and builds the
// envelope. Any failure is returned as *Error; nothing is retried.
func (s *Service) Resolve(ctx context.Context, videoID string) (*models.TranscriptResponse, error) {
	start := time.Now()
	list, err := s.source.ListTranscripts(ctx, videoID)
	metrics.ObserveUpstream("list", start)
	if err != nil {
		return nil, classify(err)
	}

	chosen, ok := Select(list)
	if !ok {
		return nil, &Error{Kind: KindNotFound, Err: ErrNoTranscripts}
	}
	s.logger.WithFields(logrus.Fields{
		"video_id":      videoID,
		"language_code": chosen.LanguageCode,
		"generated":     chosen.IsGenerated,
	}).Debug("transcript selected")

	start = time.Now()
	snippets, err := s.source.Fetch(ctx, chosen)
	metrics.ObserveUpstream("fetch", start)
	if err != nil {
		return nil, classify(err)
	}

	segments := Format(snippets)
	return &models.TranscriptResponse{
		Status:         "success",
		VideoID:        videoID,
		VideoURL:       VideoURL(videoID),
		ThumbnailURL:   ThumbnailURL(videoID),
		Transcript:     segments,
		TranscriptType: TypeOf(chosen),
		Language:       chosen.Language,
		LanguageCode:   chosen.LanguageCode,
		TotalSegments:  len(segments),
	}, nil
}

// Select applies the track preference order: English first (manual before
// generated), then the first manual track, then the first generated one.
// Order within each group is the order the watch page lists the tracks.
func Select(list *youtube.TranscriptList) (youtube.Transcript, bool) {
	if list == nil {
		return youtube.Transcript{}, false
	}
	if t, err := list.FindTranscript(preferredLanguage); err == nil {
		return t, true
	}
	all := list.All()
	for _, t := range all {
		if !t.IsGenerated {
			return t, true
		}
	}
	for _, t := range all {
		if t.IsGenerated {
			return t, true
		}
	}
	return youtube.Transcript{}, false
}

// Format converts fetched snippets into response segments with trimmed text.
func Format(snippets []youtube.Snippet) []models.TranscriptSegment {
	segments := make([]models.TranscriptSegment, 0, len(snippets))
	for _, sn := range snippets {
		segments = append(segments, models.TranscriptSegment{
			Start:    sn.Start,
			Duration: sn.Duration,
			Text:     strings.TrimSpace(sn.Text),
		})
	}
	return segments
}

// TypeOf reports the transcript_type value for t.
func TypeOf(t youtube.Transcript) string {
	if t.IsGenerated {
		return models.TranscriptTypeAutoGenerated
	}
	return models.TranscriptTypeManual
}

// VideoURL is the canonical watch URL for id.
func VideoURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// ThumbnailURL is the high quality thumbnail for id.
func ThumbnailURL(id string) string {
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
