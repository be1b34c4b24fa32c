package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"videothingy/transcript-api/internal/metrics"
	"videothingy/transcript-api/internal/transcript"
	"videothingy/transcript-api/internal/videoid"
	"videothingy/transcript-api/utils"
)

const msgInvalidURL = "Missing or invalid YouTube URL"

// TranscriptQuery is the query string of GET /api/transcript.
type TranscriptQuery struct {
	URL string `query:"url" validate:"required"`
}

// GetTranscript godoc
// @Summary      Get transcript via YouTube URL
// @Description  Returns the captions of a YouTube video. English is preferred, then the first manual track, then the first auto-generated one.
// @Tags         transcript
// @Produce      json
// @Param        url  query     string  true  "YouTube video URL"
// @Success      200  {object}  models.TranscriptResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /transcript [get]
func (h *ApplicationHandler) GetTranscript(c *fiber.Ctx) error {
	var q TranscriptQuery
	if err := c.QueryParser(&q); err != nil {
		metrics.IncTranscriptRequest("bad_request")
		return utils.RespondWithError(c, fiber.StatusBadRequest, msgInvalidURL)
	}
	q.URL = utils.SanitizeInput(q.URL)

	if err := validate.Struct(q); err != nil {
		h.Logger.WithField("validation", strings.Join(utils.FormatValidationErrors(err), ", ")).Debug("rejecting transcript request")
		metrics.IncTranscriptRequest("bad_request")
		return utils.RespondWithError(c, fiber.StatusBadRequest, msgInvalidURL)
	}

	videoID, ok := videoid.Extract(q.URL)
	if !ok {
		metrics.IncTranscriptRequest("bad_request")
		return utils.RespondWithError(c, fiber.StatusBadRequest, msgInvalidURL)
	}

	resp, err := h.Transcripts.Resolve(c.UserContext(), videoID)
	if err != nil {
		kind := transcript.KindOf(err)
		status, message := errorResponseFor(kind, err)

		entry := h.Logger.WithFields(logrus.Fields{
			"video_id":   videoID,
			"error_kind": kind.String(),
			"error":      err.Error(),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Error("transcript lookup failed")
		} else {
			entry.Info("transcript lookup rejected")
		}

		metrics.IncTranscriptRequest(kind.String())
		return utils.RespondWithError(c, status, message)
	}

	h.Logger.WithFields(logrus.Fields{
		"video_id":       videoID,
		"language_code":  resp.LanguageCode,
		"total_segments": resp.TotalSegments,
	}).Info("transcript served")
	metrics.IncTranscriptRequest("success")
	return c.Status(fiber.StatusOK).JSON(resp)
}

// errorResponseFor maps a lookup failure kind to its HTTP status and message.
func errorResponseFor(kind transcript.Kind, err error) (int, string) {
	switch kind {
	case transcript.KindNotFound:
		return fiber.StatusNotFound, "No transcripts found"
	case transcript.KindDisabled:
		return fiber.StatusForbidden, "Transcripts are disabled"
	case transcript.KindUnavailable:
		return fiber.StatusNotFound, "Video is unavailable or private"
	default:
		return fiber.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err)
	}
}
