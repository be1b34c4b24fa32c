package transcript

import (
	"errors"

	"videothingy/transcript-api/internal/youtube"
)

// Kind classifies why a lookup failed.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindDisabled
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDisabled:
		return "disabled"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// ErrNoTranscripts is returned when a video publishes no caption tracks at all.
var ErrNoTranscripts = errors.New("no transcripts found")

// Error is the only error type Resolve returns.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind carried by err, or KindInternal.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindInternal
}

func classify(err error) *Error {
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	switch {
	case errors.Is(err, ErrNoTranscripts), errors.Is(err, youtube.ErrNoTranscriptFound):
		return &Error{Kind: KindNotFound, Err: err}
	case errors.Is(err, youtube.ErrTranscriptsDisabled):
		return &Error{Kind: KindDisabled, Err: err}
	case errors.Is(err, youtube.ErrVideoUnavailable):
		return &Error{Kind: KindUnavailable, Err: err}
	default:
		return &Error{Kind: KindInternal, Err: err}
	}
}
