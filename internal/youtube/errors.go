package youtube

import (
	"errors"
	"fmt"
)

// Sentinel causes reported by the client. Use errors.Is to test for them.
var (
	ErrTranscriptsDisabled = errors.New("subtitles are disabled for this video")
	ErrVideoUnavailable    = errors.New("the video is no longer available")
	ErrNoTranscriptFound   = errors.New("no transcript found for the requested languages")
	ErrTooManyRequests     = errors.New("youtube is receiving too many requests from this IP")
	ErrRequestBlocked      = errors.New("youtube is blocking requests from this IP")
	ErrInvalidVideoID      = errors.New("video id looks like a URL, pass the id instead")
)

// Error ties a failure to the video it was raised for.
type Error struct {
	VideoID string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("could not retrieve a transcript for video %s: %v", e.VideoID, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
