package models

// TranscriptSegment is one timed caption unit.
type TranscriptSegment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// TranscriptType values.
const (
	TranscriptTypeManual        = "manual"
	TranscriptTypeAutoGenerated = "auto-generated"
)

// TranscriptResponse is the envelope returned by GET /api/transcript.
type TranscriptResponse struct {
	Status         string              `json:"status" example:"success"`
	VideoID        string              `json:"video_id" example:"dQw4w9WgXcQ"`
	VideoURL       string              `json:"video_url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
	ThumbnailURL   string              `json:"thumbnail_url" example:"https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg"`
	Transcript     []TranscriptSegment `json:"transcript"`
	TranscriptType string              `json:"transcript_type" example:"manual"`
	Language       string              `json:"language" example:"English"`
	LanguageCode   string              `json:"language_code" example:"en"`
	TotalSegments  int                 `json:"total_segments" example:"1"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Missing or invalid YouTube URL"`
}
