package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectPoliceCamFootage(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   bool
	}{
		{
			name:   "no titles",
			titles: nil,
			want:   false,
		},
		{
			name:   "three absolute matches out of many",
			titles: []string{"Bodycam video 1", "BODYCAM video 2", "Dashcam compilation", "Cooking pasta", "Travel vlog", "Gaming stream", "Q&A", "Unboxing", "Podcast ep 4", "Behind the scenes"},
			want:   true,
		},
		{
			name:   "three of four qualifies on the absolute threshold",
			titles: []string{"Officer pulls over driver", "Arrest caught on camera", "Use of force review", "Cat video"},
			want:   true,
		},
		{
			name:   "forty percent of five",
			titles: []string{"Police footage breakdown", "dash cam crash", "Cooking", "Vlog", "Music"},
			want:   true,
		},
		{
			name:   "one of five stays below both thresholds",
			titles: []string{"bodycam review", "Cooking", "Vlog", "Music", "Gaming"},
			want:   false,
		},
		{
			name:   "single matching title is 100 percent",
			titles: []string{"Bodycam: full incident"},
			want:   true,
		},
		{
			name:   "case insensitive keyword match",
			titles: []string{"OFFICER INVOLVED shooting", "POLICE VIDEO analysis", "DASHCAM fails"},
			want:   true,
		},
		{
			name:   "no matches",
			titles: []string{"Minecraft speedrun", "Recipe of the week", "Travel diary"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectPoliceCamFootage(tt.titles))
		})
	}
}
