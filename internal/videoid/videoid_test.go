package videoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"watch", "https://www.youtube.com/watch?v=abc123", "abc123", true},
		{"watch with params", "https://www.youtube.com/watch?v=abc123&t=42s", "abc123", true},
		{"watch without scheme", "youtube.com/watch?v=abc123", "abc123", true},
		{"watch http no www", "http://youtube.com/watch?v=abc123#frag", "abc123", true},
		{"embed", "https://www.youtube.com/embed/XyZ_-9?autoplay=1", "XyZ_-9", true},
		{"legacy v", "https://www.youtube.com/v/legacyId&hl=en", "legacyId", true},
		{"short link", "https://youtu.be/shortId?si=tracking", "shortId", true},
		{"short link bare", "youtu.be/shortId", "shortId", true},
		{"shorts", "https://www.youtube.com/shorts/shortsId#x", "shortsId", true},
		{"stops at newline", "https://youtu.be/abc\nmore", "abc", true},
		{"embedded in text", "see https://youtu.be/inText?t=5 here", "inText", true},
		{"empty", "", "", false},
		{"not a url", "not-a-url", "", false},
		{"other host", "https://vimeo.com/12345", "", false},
		{"watch without id", "https://www.youtube.com/watch?v=", "", false},
		{"channel page", "https://www.youtube.com/@somechannel", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.url)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFirstPatternWins(t *testing.T) {
	// A watch URL whose query mentions an embed path still yields the watch id.
	got, ok := Extract("https://www.youtube.com/watch?v=first&next=youtube.com/embed/second")
	assert.True(t, ok)
	assert.Equal(t, "first", got)
}
