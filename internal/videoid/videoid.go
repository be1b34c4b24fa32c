// Package videoid pulls YouTube video identifiers out of free-form URLs.
package videoid

import "regexp"

// Tried in order; the first pattern that matches wins.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/watch\?v=([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/embed/([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/v/([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?youtu\.be/([^&\n?#]+)`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([^&\n?#]+)`),
}

// Extract returns the video identifier captured from url and true, or "" and
// false when no recognised URL shape is present.
func Extract(url string) (string, bool) {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(url); len(m) == 2 {
			return m[1], true
		}
	}
	return "", false
}
