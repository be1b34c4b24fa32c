package routes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videothingy/transcript-api/handlers"
	"videothingy/transcript-api/internal/transcript"
	"videothingy/transcript-api/internal/youtube"
	"videothingy/transcript-api/middleware"
	"videothingy/transcript-api/models"
)

type stubSource struct {
	list     *youtube.TranscriptList
	listErr  error
	snippets []youtube.Snippet
	fetchErr error
}

func (s *stubSource) ListTranscripts(_ context.Context, videoID string) (*youtube.TranscriptList, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.list, nil
}

func (s *stubSource) Fetch(_ context.Context, _ youtube.Transcript) ([]youtube.Snippet, error) {
	return s.snippets, s.fetchErr
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestApp(src transcript.Source) *fiber.App {
	logger := quietLogger()
	h := handlers.NewApplicationHandler(transcript.NewService(src, logger), logger)
	return NewApp(h, logger)
}

func englishManual() *stubSource {
	return &stubSource{
		list: &youtube.TranscriptList{
			VideoID: "abc123",
			Manual:  []youtube.Transcript{{VideoID: "abc123", Language: "English", LanguageCode: "en"}},
		},
		snippets: []youtube.Snippet{{Text: " Hello ", Start: 0.0, Duration: 2.5}},
	}
}

func doGet(t *testing.T, app *fiber.App, target string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestGetTranscriptSuccess(t *testing.T) {
	app := newTestApp(englishManual())

	resp, body := doGet(t, app, "/api/transcript?url=https://www.youtube.com/watch?v=abc123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got models.TranscriptResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, models.TranscriptResponse{
		Status:         "success",
		VideoID:        "abc123",
		VideoURL:       "https://www.youtube.com/watch?v=abc123",
		ThumbnailURL:   "https://img.youtube.com/vi/abc123/hqdefault.jpg",
		Transcript:     []models.TranscriptSegment{{Start: 0.0, Duration: 2.5, Text: "Hello"}},
		TranscriptType: "manual",
		Language:       "English",
		LanguageCode:   "en",
		TotalSegments:  1,
	}, got)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	for _, key := range []string{"status", "video_id", "video_url", "thumbnail_url", "transcript", "transcript_type", "language", "language_code", "total_segments"} {
		assert.Contains(t, raw, key)
	}
}

func TestGetTranscriptEncodedURL(t *testing.T) {
	app := newTestApp(englishManual())

	resp, body := doGet(t, app, "/api/transcript?url="+url.QueryEscape("  https://youtu.be/abc123?t=10  "), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, string(body), `"video_id":"abc123"`)
}

func TestGetTranscriptBadRequest(t *testing.T) {
	app := newTestApp(englishManual())

	for _, target := range []string{
		"/api/transcript",
		"/api/transcript?url=",
		"/api/transcript?url=%20%20",
		"/api/transcript?url=not-a-url",
		"/api/transcript?url=" + url.QueryEscape("https://vimeo.com/123"),
	} {
		t.Run(target, func(t *testing.T) {
			resp, body := doGet(t, app, target, nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var got models.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "error", got.Status)
			assert.Equal(t, "Missing or invalid YouTube URL", got.Message)
		})
	}
}

func TestGetTranscriptErrorMapping(t *testing.T) {
	wrap := func(err error) error { return &youtube.Error{VideoID: "abc123", Err: err} }

	tests := []struct {
		name        string
		src         *stubSource
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "transcripts disabled",
			src:         &stubSource{listErr: wrap(youtube.ErrTranscriptsDisabled)},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Transcripts are disabled",
		},
		{
			name:        "video unavailable",
			src:         &stubSource{listErr: wrap(youtube.ErrVideoUnavailable)},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Video is unavailable or private",
		},
		{
			name:        "no transcripts",
			src:         &stubSource{list: &youtube.TranscriptList{VideoID: "abc123"}},
			wantStatus:  http.StatusNotFound,
			wantMessage: "No transcripts found",
		},
		{
			name:        "upstream failure",
			src:         &stubSource{listErr: errors.New("dial tcp: connection refused")},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error: dial tcp: connection refused",
		},
		{
			name: "fetch failure",
			src: &stubSource{
				list:     englishManual().list,
				fetchErr: fmt.Errorf("timedtext for abc123: %w", errors.New("HTTP 500: oops")),
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error: timedtext for abc123: HTTP 500: oops",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.src)

			resp, body := doGet(t, app, "/api/transcript?url=https://www.youtube.com/watch?v=abc123", nil)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			var got models.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, "error", got.Status)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	app := newTestApp(englishManual())

	resp, _ := doGet(t, app, "/api/transcript?url=https://youtu.be/abc123", map[string]string{"Origin": "https://example.org"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/transcript", nil)
	req.Header.Set("Origin", "https://elsewhere.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	pre, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, pre.StatusCode)
	assert.Equal(t, "*", pre.Header.Get("Access-Control-Allow-Origin"))
}

func TestAuxiliaryRoutes(t *testing.T) {
	app := newTestApp(englishManual())

	resp, body := doGet(t, app, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"ok"`)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	// Count at least one lookup so the counter vector is exported.
	doGet(t, app, "/api/transcript?url=https://youtu.be/abc123", nil)
	resp, body = doGet(t, app, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "transcript_requests_total")

	resp, body = doGet(t, app, "/api/docs/doc.json", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"/transcript"`)

	resp, _ = doGet(t, app, "/api/docs", nil)
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/api/docs/index.html", resp.Header.Get("Location"))

	resp, body = doGet(t, app, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"error"`)
}

// Full stack: real youtube.Client against a fake YouTube.
func TestGetTranscriptAgainstFakeYouTube(t *testing.T) {
	mux := http.NewServeMux()
	yt := httptest.NewServer(mux)
	t.Cleanup(yt.Close)

	mux.HandleFunc("/watch", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("v") {
		case "nocaps":
			fmt.Fprint(w, `<html><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"}};</script></html>`)
		case "gone":
			fmt.Fprint(w, `<html><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}};</script></html>`)
		default:
			fmt.Fprintf(w, `<html><script>var ytInitialPlayerResponse = {"playabilityStatus":{"status":"OK"},"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
				{"baseUrl":"%[1]s/api/timedtext?lang=es","name":{"simpleText":"Spanish"},"languageCode":"es"},
				{"baseUrl":"%[1]s/api/timedtext?lang=en&kind=asr","name":{"simpleText":"English (auto-generated)"},"languageCode":"en","kind":"asr"}
			]}}};</script></html>`, yt.URL)
		}
	})
	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("lang"))
		fmt.Fprint(w, `<transcript><text start="0.5" dur="1.5">  first  </text><text start="2" dur="2">second &amp;amp; last</text></transcript>`)
	})

	logger := quietLogger()
	client := youtube.NewClient(youtube.WithBaseURL(yt.URL), youtube.WithHTTPClient(yt.Client()), youtube.WithLogger(logger))
	app := NewApp(handlers.NewApplicationHandler(transcript.NewService(client, logger), logger), logger)

	resp, body := doGet(t, app, "/api/transcript?url="+url.QueryEscape("https://www.youtube.com/shorts/vid42"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var got models.TranscriptResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "vid42", got.VideoID)
	assert.Equal(t, "auto-generated", got.TranscriptType)
	assert.Equal(t, "en", got.LanguageCode)
	assert.Equal(t, "English (auto-generated)", got.Language)
	assert.Equal(t, []models.TranscriptSegment{
		{Start: 0.5, Duration: 1.5, Text: "first"},
		{Start: 2, Duration: 2, Text: "second & last"},
	}, got.Transcript)
	assert.Equal(t, 2, got.TotalSegments)

	resp, _ = doGet(t, app, "/api/transcript?url="+url.QueryEscape("https://youtu.be/nocaps"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doGet(t, app, "/api/transcript?url="+url.QueryEscape("https://youtu.be/gone"), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
