// Package client provides the external API clients the categorizer talks
// to: the YouTube Data API for channel resolution and the OpenAI chat
// completions API for classification.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

// VideoOwner is the channel behind a video.
type VideoOwner struct {
	ChannelID    string
	ChannelTitle string
}

// ChannelDetails is the snippet + statistics view of a channel the pipeline
// needs. Statistics are kept as strings; absent counters default to "0"
// (the platform omits counters below a visibility threshold or when the
// channel hides them).
type ChannelDetails struct {
	ID              string
	Title           string
	Description     string
	ThumbnailURL    string
	SubscriberCount string
	VideoCount      string
	ViewCount       string
}

// YouTubeClient defines the YouTube Data API operations the pipeline uses.
type YouTubeClient interface {
	// LookupVideo resolves a video ID to its owning channel. No retry;
	// callers treat failure as fatal for the record.
	LookupVideo(ctx context.Context, videoID string) (*VideoOwner, error)

	// SearchChannel resolves a free-text term to a channel ID via the
	// search endpoint, type filtered to channels.
	SearchChannel(ctx context.Context, term string) (string, error)

	// FetchChannelDetails retrieves snippet and statistics for a channel.
	FetchChannelDetails(ctx context.Context, channelID string) (*ChannelDetails, error)

	// RecentVideoTitles returns up to limit titles of the channel's most
	// recent uploads, newest first.
	RecentVideoTitles(ctx context.Context, channelID string, limit int64) ([]string, error)
}

// YouTubeDataClient implements YouTubeClient against the YouTube Data API v3.
type YouTubeDataClient struct {
	service *ytapi.Service
	apiKey  string
}

// NewYouTubeDataClient creates a new YouTube data client.
func NewYouTubeDataClient(apiKey string) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	return &YouTubeDataClient{
		apiKey: apiKey,
	}, nil
}

// Connect establishes a connection to the YouTube API.
func (c *YouTubeDataClient) Connect(ctx context.Context) error {
	log.Info().Msg("Connecting to YouTube API")

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	service, err := ytapi.NewService(ctx, option.WithAPIKey(c.apiKey), option.WithHTTPClient(httpClient))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	return nil
}

// LookupVideo retrieves the owning channel of a video via videos.list.
func (c *YouTubeDataClient) LookupVideo(ctx context.Context, videoID string) (*VideoOwner, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("video_id", videoID).Msg("Fetching video details")

	response, err := c.service.Videos.List([]string{"snippet"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	if len(response.Items) == 0 {
		return nil, model.NotFoundError("video not found, it might be private or removed")
	}

	snippet := response.Items[0].Snippet
	if snippet == nil {
		return nil, &model.PlatformError{Message: fmt.Sprintf("video %s returned without a snippet", videoID)}
	}

	log.Info().
		Str("video_id", videoID).
		Str("channel_id", snippet.ChannelId).
		Str("channel_title", snippet.ChannelTitle).
		Msg("Resolved video to channel")

	return &VideoOwner{
		ChannelID:    snippet.ChannelId,
		ChannelTitle: snippet.ChannelTitle,
	}, nil
}

// SearchChannel resolves a term to a channel ID via search.list. The first
// result wins. Zero results yields model.ErrNotFound so callers can relax
// the term and try again.
func (c *YouTubeDataClient) SearchChannel(ctx context.Context, term string) (string, error) {
	if c.service == nil {
		return "", fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("term", term).Msg("Searching for channel")

	response, err := c.service.Search.List([]string{"snippet"}).
		Q(term).
		Type("channel").
		MaxResults(5).
		Context(ctx).
		Do()
	if err != nil {
		return "", classifyAPIError(err)
	}

	if len(response.Items) == 0 || response.Items[0].Id == nil || response.Items[0].Id.ChannelId == "" {
		return "", fmt.Errorf("no channel matched term %q: %w", term, model.ErrNotFound)
	}

	channelID := response.Items[0].Id.ChannelId
	log.Info().Str("term", term).Str("channel_id", channelID).Msg("Found channel through search")
	return channelID, nil
}

// FetchChannelDetails retrieves snippet and statistics for a channel via
// channels.list.
func (c *YouTubeDataClient) FetchChannelDetails(ctx context.Context, channelID string) (*ChannelDetails, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("channel_id", channelID).Msg("Fetching channel details")

	response, err := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(channelID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	if len(response.Items) == 0 {
		return nil, model.NotFoundError("channel not found, the channel ID might be invalid or the channel might be private")
	}

	details, err := channelDetailsFromItem(response.Items[0])
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("channel_id", details.ID).
		Str("title", details.Title).
		Str("subscribers", details.SubscriberCount).
		Msg("Channel details retrieved")

	return details, nil
}

// channelDetailsFromItem maps a channels.list item onto ChannelDetails.
// Counters the platform omits or hides stay "0"; a missing snippet is an
// API anomaly and surfaces as a platform error.
func channelDetailsFromItem(item *ytapi.Channel) (*ChannelDetails, error) {
	if item.Snippet == nil {
		return nil, &model.PlatformError{Message: fmt.Sprintf("channel %s returned without a snippet", item.Id)}
	}

	details := &ChannelDetails{
		ID:              item.Id,
		Title:           item.Snippet.Title,
		Description:     item.Snippet.Description,
		SubscriberCount: "0",
		VideoCount:      "0",
		ViewCount:       "0",
	}

	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
		details.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
	}

	if stats := item.Statistics; stats != nil {
		if !stats.HiddenSubscriberCount {
			details.SubscriberCount = fmt.Sprintf("%d", stats.SubscriberCount)
		}
		details.VideoCount = fmt.Sprintf("%d", stats.VideoCount)
		details.ViewCount = fmt.Sprintf("%d", stats.ViewCount)
	}

	return details, nil
}

// RecentVideoTitles returns up to limit titles of the channel's most recent
// uploads via a date-ordered video search.
func (c *YouTubeDataClient) RecentVideoTitles(ctx context.Context, channelID string, limit int64) ([]string, error) {
	if c.service == nil {
		return nil, fmt.Errorf("YouTube client not connected")
	}

	log.Info().Str("channel_id", channelID).Int64("limit", limit).Msg("Fetching recent video titles")

	response, err := c.service.Search.List([]string{"snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(limit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, classifyAPIError(err)
	}

	titles := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Snippet != nil {
			titles = append(titles, item.Snippet.Title)
		}
	}

	log.Info().Str("channel_id", channelID).Int("count", len(titles)).Msg("Retrieved recent video titles")
	return titles, nil
}
