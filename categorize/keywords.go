package categorize

import "strings"

// policeCamKeywords are the title markers for police footage content.
// Matching is case-insensitive substring containment.
var policeCamKeywords = []string{
	"bodycam", "body cam", "police cam", "officer", "arrest", "dashcam",
	"dash cam", "police footage", "body camera", "police shooting",
	"police video", "officer involved", "use of force",
}

// DetectPoliceCamFootage reports whether the video titles strongly indicate
// police footage content: at least 3 matching titles, or at least 40% of
// the titles matching when any were fetched at all.
func DetectPoliceCamFootage(titles []string) bool {
	if len(titles) == 0 {
		return false
	}

	matches := 0
	for _, title := range titles {
		lower := strings.ToLower(title)
		for _, kw := range policeCamKeywords {
			if strings.Contains(lower, kw) {
				matches++
				break
			}
		}
	}

	return matches >= 3 || float64(matches)/float64(len(titles)) >= 0.4
}
