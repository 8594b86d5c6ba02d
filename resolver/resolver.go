// Package resolver classifies raw YouTube URLs and extracts the best-effort
// identifier from them. It is pure string work: no network calls, fully
// deterministic.
package resolver

import (
	"regexp"
	"strings"
)

// RefKind says what a URL turned out to reference.
type RefKind string

const (
	KindVideo      RefKind = "video"
	KindShort      RefKind = "short"
	KindChannelID  RefKind = "channelId"
	KindHandle     RefKind = "handle"
	KindCustomSlug RefKind = "customSlug"
	KindUnknown    RefKind = "unknown"
)

// Ref is the result of resolving a URL: the kind of reference and the
// extracted identifier. Value is empty when Kind is KindUnknown.
type Ref struct {
	Kind  RefKind
	Value string
}

// Identifier captures stop at '/', '?', '&' and whitespace, which also takes
// care of trailing channel-tab segments such as /videos or /featured.
var (
	videoRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([^&\s?/]+)`)
	shortRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/shorts/([^&\s?/]+)`)
	channelRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/channel/([^/\s?&]+)`)
	customRe  = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(?:c|user)/([^/\s?&]+)`)
	handleRe  = regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/@([^/\s?&]+)`)
	bareAtRe  = regexp.MustCompile(`@([^/\s?&]+)`)
)

// Resolve determines whether url references a video, a short, or a channel,
// and extracts the identifier. Callers must treat KindUnknown as a terminal
// per-record error, not a retryable condition.
func Resolve(url string) Ref {
	url = strings.TrimSpace(url)
	if url == "" {
		return Ref{Kind: KindUnknown}
	}

	if m := shortRe.FindStringSubmatch(url); m != nil {
		return Ref{Kind: KindShort, Value: m[1]}
	}
	if m := videoRe.FindStringSubmatch(url); m != nil {
		return Ref{Kind: KindVideo, Value: m[1]}
	}
	if m := channelRe.FindStringSubmatch(url); m != nil {
		return Ref{Kind: KindChannelID, Value: m[1]}
	}
	if m := customRe.FindStringSubmatch(url); m != nil {
		return Ref{Kind: KindCustomSlug, Value: m[1]}
	}
	if m := handleRe.FindStringSubmatch(url); m != nil {
		return Ref{Kind: KindHandle, Value: m[1]}
	}

	// No URL pattern matched. A bare @handle (or any string containing one)
	// is still usable as a search term.
	if strings.Contains(url, "@") {
		if m := bareAtRe.FindStringSubmatch(url); m != nil {
			return Ref{Kind: KindHandle, Value: m[1]}
		}
	}

	return Ref{Kind: KindUnknown}
}

// ChannelURL builds the canonical channel URL a video/short record is
// rewritten to once its owning channel is known.
func ChannelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}
