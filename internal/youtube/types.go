package youtube

import "strings"

// Transcript describes one caption track available for a video. Its text is
// not retrieved until Client.Fetch is called.
type Transcript struct {
	VideoID      string
	Language     string
	LanguageCode string
	IsGenerated  bool

	baseURL string
}

// Snippet is one timed line of a fetched transcript.
type Snippet struct {
	Text     string
	Start    float64
	Duration float64
}

// TranscriptList holds the tracks published for a video, split by origin.
// Each slice keeps the order in which the watch page lists the tracks.
type TranscriptList struct {
	VideoID   string
	Manual    []Transcript
	Generated []Transcript
}

// All returns manual tracks followed by generated ones.
func (l *TranscriptList) All() []Transcript {
	out := make([]Transcript, 0, len(l.Manual)+len(l.Generated))
	out = append(out, l.Manual...)
	return append(out, l.Generated...)
}

// Len reports the total number of tracks.
func (l *TranscriptList) Len() int {
	return len(l.Manual) + len(l.Generated)
}

// FindTranscript returns the first track whose language code matches one of
// codes, trying codes in priority order. Manual tracks are preferred over
// generated ones for the same code.
func (l *TranscriptList) FindTranscript(codes ...string) (Transcript, error) {
	for _, code := range codes {
		for _, group := range [][]Transcript{l.Manual, l.Generated} {
			for _, t := range group {
				if t.LanguageCode == code {
					return t, nil
				}
			}
		}
	}
	return Transcript{}, &Error{VideoID: l.VideoID, Err: ErrNoTranscriptFound}
}

// --- watch page player response ---

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string    `json:"baseUrl"`
	Name         trackName `json:"name"`
	LanguageCode string    `json:"languageCode"`
	Kind         string    `json:"kind"` // "asr" = auto-generated
}

type trackName struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (n trackName) String() string {
	if n.SimpleText != "" {
		return n.SimpleText
	}
	var sb strings.Builder
	for _, r := range n.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// --- timedtext XML ---

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start    string `xml:"start,attr"`
	Duration string `xml:"dur,attr"`
	Text     string `xml:",chardata"`
}
