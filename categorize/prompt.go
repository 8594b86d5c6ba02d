package categorize

import (
	"fmt"
	"strings"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

// BuildPrompt renders the categorization prompt: the brand's full category
// list with descriptions, the channel's metadata, and any recent video
// titles, ending with the instruction to answer with exactly one category
// name.
func BuildPrompt(rec model.ChannelRecord, brand model.Brand, recentTitles []string) string {
	var descriptions strings.Builder
	for i, cat := range brand.Categories {
		if i > 0 {
			descriptions.WriteString("\n\n")
		}
		descriptions.WriteString(cat.Name)
		descriptions.WriteString(": ")
		descriptions.WriteString(cat.Description)
	}

	var titlesSection string
	if len(recentTitles) > 0 {
		var b strings.Builder
		b.WriteString("\nRecent Video Titles:\n")
		for i, title := range recentTitles {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}
		titlesSection = b.String()
	}

	return fmt.Sprintf(`
You are an expert at categorizing YouTube channels based on their content.

I will provide you with information about a YouTube channel, and you need to categorize it into one of the following categories:

%s

Here is the channel information:
Channel Name: %s
Channel Description: %s
Subscriber Count: %s
Video Count: %s
View Count: %s
%s
Based only on these predefined categories, which ONE category best describes this channel?
Respond with just the category name, exactly as written above.

Note that political commentary channels should be categorized as either "Politics / News (Left Wing)" or "Politics / News (Right Wing)" even if their description is short. Pay special attention to the video titles as they often reveal the true nature of the channel's content and political leaning better than the description.

If the channel discusses strange, dark, or mysterious topics, unsolved mysteries, true crime, conspiracy theories, or horror stories, it should be categorized as "True Crime or Mystery".

If the channel is focused on military topics, weapons, firearms, aviation history, combat footage, defense systems, armed forces, military history, military technology, or similar content, it should be categorized as "Guns / Military". This includes channels about aircraft, tanks, naval vessels, and other military equipment, even if they don't directly show people firing guns.

If the channel features police body camera footage, dash cam videos, police chase videos, arrest videos, or commentaries on police incidents captured on camera, it should be categorized as "Police Cam Footage".
`,
		descriptions.String(),
		rec.Name,
		orUnavailable(rec.Description, "Not available"),
		orUnavailable(rec.SubscriberCount, "Unknown"),
		orUnavailable(rec.VideoCount, "Unknown"),
		orUnavailable(rec.ViewCount, "Unknown"),
		titlesSection,
	)
}

func orUnavailable(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
