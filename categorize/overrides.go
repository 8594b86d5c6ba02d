package categorize

import "regexp"

// Static override tables for channels the model is known to miscategorize.
// They take precedence over both the keyword heuristic and the LLM call,
// but an override only applies when its category exists in the active
// brand's taxonomy.

// knownChannels maps channel display names and @handles to categories.
var knownChannels = map[string]string{
	"Benaminute":                  "Politics / News (Left Wing)",
	"@itsbenaminute":              "Politics / News (Left Wing)",
	"Wendigoon":                   "True Crime or Mystery",
	"@Wendigoon":                  "True Crime or Mystery",
	"Dark Skies":                  "Guns / Military",
	"@Dark_Skies":                 "Guns / Military",
	"@DarkSkiesChannel":           "Guns / Military",
	"Military Aviation History":   "Guns / Military",
	"@MilitaryAviationHistory":    "Guns / Military",
	"Law By Mike":                 "Police Cam Footage",
	"@lawbymike":                  "Police Cam Footage",
	"Real World Police":           "Police Cam Footage",
	"@realworldpolice":            "Police Cam Footage",
	"Yep The Boys":                "True Crime or Mystery",
	"@yeptheboys":                 "True Crime or Mystery",
}

// knownChannelIDs maps canonical channel IDs to categories.
var knownChannelIDs = map[string]string{
	"UCazRf1jcMNZEL1MS5i_rWQQ": "Police Cam Footage",               // Real World Police
	"UCJWKjrrUh2KL1d3zXQW79cQ": "Police Cam Footage",
	"UCTuDW_RrS0Di2L7CsJfFOnA": "True Crime or Mystery",            // Yep The Boys
	"UCsvqVGtbbyHaMoevxPAq9Fg": "Internet Reacts / Internet Gossip",
}

// knownVideoIDs maps individual video IDs to categories.
var knownVideoIDs = map[string]string{
	"z1sKwev21gE": "Internet Reacts / Internet Gossip",
}

var (
	videoIDRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([^&\s?/]+)`),
		regexp.MustCompile(`youtube\.com/embed/([^&\s?/]+)`),
		regexp.MustCompile(`youtube\.com/v/([^&\s?/]+)`),
		regexp.MustCompile(`youtube\.com/shorts/([^&\s?/]+)`),
	}
	handleRe    = regexp.MustCompile(`@([^/\s?&]+)`)
	channelIDRe = regexp.MustCompile(`UC[a-zA-Z0-9_-]{22}`)
)

// extractVideoID pulls a video ID out of any recognized YouTube video URL
// shape, including embeds and shorts. Returns "" when the URL is not a
// video URL.
func extractVideoID(url string) string {
	for _, re := range videoIDRes {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractHandle returns the @handle embedded in the URL, "@" included, or
// "" when there is none.
func extractHandle(url string) string {
	if m := handleRe.FindStringSubmatch(url); m != nil {
		return "@" + m[1]
	}
	return ""
}

// extractChannelID returns the canonical UC… channel ID embedded in the
// URL, or "" when there is none.
func extractChannelID(url string) string {
	return channelIDRe.FindString(url)
}
