package youtube

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const playerResponseMarker = "ytInitialPlayerResponse"

// playerResponseAssignRE matches the assignment of the player response object,
// not other references to the variable such as `window["ytInitialPlayerResponse"] = null`.
var playerResponseAssignRE = regexp.MustCompile(`ytInitialPlayerResponse\s*=\s*\{`)

var tagRE = regexp.MustCompile(`<[^>]*>`)

// parseWatchPage locates ytInitialPlayerResponse in the watch page scripts and
// turns its caption tracks into a TranscriptList.
func parseWatchPage(videoID string, page []byte) (*TranscriptList, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse watch page: %w", err)
	}

	if doc.Find(".g-recaptcha").Length() > 0 {
		return nil, &Error{VideoID: videoID, Err: ErrTooManyRequests}
	}

	var (
		player *playerResponse
		decErr error
	)
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, playerResponseMarker) {
			return true
		}
		pr, err := decodePlayerResponse(text)
		if err != nil {
			decErr = err
			return true
		}
		player = pr
		return player == nil
	})
	if player == nil {
		if decErr != nil {
			return nil, fmt.Errorf("decode player response for %s: %w", videoID, decErr)
		}
		return nil, &Error{VideoID: videoID, Detail: "watch page has no player response", Err: ErrVideoUnavailable}
	}

	if ps := player.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		if strings.Contains(strings.ToLower(ps.Reason), "not a bot") {
			return nil, &Error{VideoID: videoID, Detail: ps.Reason, Err: ErrRequestBlocked}
		}
		return nil, &Error{VideoID: videoID, Detail: ps.Reason, Err: ErrVideoUnavailable}
	}

	if player.Captions == nil || len(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		return nil, &Error{VideoID: videoID, Err: ErrTranscriptsDisabled}
	}

	list := &TranscriptList{VideoID: videoID}
	for _, ct := range player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks {
		t := Transcript{
			VideoID:      videoID,
			Language:     ct.Name.String(),
			LanguageCode: ct.LanguageCode,
			IsGenerated:  ct.Kind == "asr",
			baseURL:      ct.BaseURL,
		}
		if t.IsGenerated {
			list.Generated = append(list.Generated, t)
		} else {
			list.Manual = append(list.Manual, t)
		}
	}
	return list, nil
}

// decodePlayerResponse decodes the object assigned to ytInitialPlayerResponse.
// It returns nil, nil when the script holds no such assignment, or when the
// decoded object carries neither playabilityStatus nor captions.
// Trailing script content after the object is ignored.
func decodePlayerResponse(script string) (*playerResponse, error) {
	loc := playerResponseAssignRE.FindStringIndex(script)
	if loc == nil {
		return nil, nil
	}

	var pr playerResponse
	if err := json.NewDecoder(strings.NewReader(script[loc[1]-1:])).Decode(&pr); err != nil {
		return nil, err
	}
	if pr.PlayabilityStatus == nil && pr.Captions == nil {
		return nil, nil
	}
	return &pr, nil
}

// parseTimedText parses a timedtext XML document. Elements without text are
// skipped; markup inside the text is removed.
func parseTimedText(data []byte) ([]Snippet, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	snippets := make([]Snippet, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		if line.Text == "" {
			continue
		}
		snippets = append(snippets, Snippet{
			Text:     tagRE.ReplaceAllString(html.UnescapeString(line.Text), ""),
			Start:    parseSeconds(line.Start),
			Duration: parseSeconds(line.Duration),
		})
	}
	return snippets, nil
}

func parseSeconds(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
