package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

func TestChannelDetailsFromItem(t *testing.T) {
	tests := []struct {
		name string
		item *ytapi.Channel
		want ChannelDetails
	}{
		{
			name: "full statistics and thumbnail",
			item: &ytapi.Channel{
				Id: "UCabc",
				Snippet: &ytapi.ChannelSnippet{
					Title:       "Some Channel",
					Description: "About the channel",
					Thumbnails: &ytapi.ThumbnailDetails{
						Default: &ytapi.Thumbnail{Url: "https://example.com/thumb.jpg"},
					},
				},
				Statistics: &ytapi.ChannelStatistics{
					SubscriberCount: 1200,
					VideoCount:      34,
					ViewCount:       56789,
				},
			},
			want: ChannelDetails{
				ID:              "UCabc",
				Title:           "Some Channel",
				Description:     "About the channel",
				ThumbnailURL:    "https://example.com/thumb.jpg",
				SubscriberCount: "1200",
				VideoCount:      "34",
				ViewCount:       "56789",
			},
		},
		{
			name: "missing statistics defaults counters to zero",
			item: &ytapi.Channel{
				Id:      "UCdef",
				Snippet: &ytapi.ChannelSnippet{Title: "Sparse Channel"},
			},
			want: ChannelDetails{
				ID:              "UCdef",
				Title:           "Sparse Channel",
				SubscriberCount: "0",
				VideoCount:      "0",
				ViewCount:       "0",
			},
		},
		{
			name: "hidden subscriber count keeps other counters",
			item: &ytapi.Channel{
				Id:      "UCghi",
				Snippet: &ytapi.ChannelSnippet{Title: "Private Subs"},
				Statistics: &ytapi.ChannelStatistics{
					HiddenSubscriberCount: true,
					SubscriberCount:       9999,
					VideoCount:            12,
					ViewCount:             340,
				},
			},
			want: ChannelDetails{
				ID:              "UCghi",
				Title:           "Private Subs",
				SubscriberCount: "0",
				VideoCount:      "12",
				ViewCount:       "340",
			},
		},
		{
			name: "missing thumbnail leaves URL empty",
			item: &ytapi.Channel{
				Id: "UCjkl",
				Snippet: &ytapi.ChannelSnippet{
					Title:      "No Thumb",
					Thumbnails: &ytapi.ThumbnailDetails{},
				},
				Statistics: &ytapi.ChannelStatistics{SubscriberCount: 5},
			},
			want: ChannelDetails{
				ID:              "UCjkl",
				Title:           "No Thumb",
				SubscriberCount: "5",
				VideoCount:      "0",
				ViewCount:       "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := channelDetailsFromItem(tt.item)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *details)
		})
	}
}

func TestChannelDetailsFromItemMissingSnippet(t *testing.T) {
	details, err := channelDetailsFromItem(&ytapi.Channel{Id: "UCmno"})

	assert.Nil(t, details)
	var platErr *model.PlatformError
	assert.ErrorAs(t, err, &platErr)
	assert.Contains(t, platErr.Message, "UCmno")
}
