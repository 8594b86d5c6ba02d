// Package categorize implements the classification engine: static override
// tables, a police-footage keyword heuristic, and an LLM fallback, in that
// order.
package categorize

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/channel-categorizer/client"
	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

// recentTitleLimit is how many of the channel's latest uploads feed the
// heuristic and the prompt.
const recentTitleLimit = 10

// Source says which stage of the engine produced a verdict.
type Source string

const (
	SourceVideoOverride     Source = "video_override"
	SourceNameOverride      Source = "name_override"
	SourceChannelIDOverride Source = "channel_id_override"
	SourceHandleOverride    Source = "handle_override"
	SourceHeuristic         Source = "heuristic"
	SourceLLM               Source = "llm"
	SourceDefault           Source = "default"
)

// Result is a classification verdict. Warning is set when the engine
// degraded to "Other" because something failed internally, so callers can
// tell that apart from a genuine "Other".
type Result struct {
	Category string
	Source   Source
	Warning  string
}

// Engine classifies resolved channel records against a brand taxonomy.
type Engine struct {
	yt  client.YouTubeClient
	llm client.LLMClient
}

// NewEngine creates a classification engine.
func NewEngine(yt client.YouTubeClient, llm client.LLMClient) *Engine {
	return &Engine{yt: yt, llm: llm}
}

// Classify determines the category for a record under the given brand. It
// never fails outward: every internal error degrades to "Other" with the
// diagnostic preserved in Result.Warning. The record is not mutated; the
// caller stamps the brand name.
//
// Resolution order, first match wins: video-ID override, channel-name
// override, channel-ID override, handle override, police-footage keyword
// heuristic over recent titles, LLM. Every override and the heuristic are
// gated on the category being part of the brand's taxonomy.
func (e *Engine) Classify(ctx context.Context, rec model.ChannelRecord, brand model.Brand) Result {
	if rec.Status == model.StatusError || rec.Name == "" {
		log.Warn().Str("url", rec.URL).Msg("Cannot categorize channel due to insufficient data")
		return Result{Category: model.CategoryOther, Source: SourceDefault}
	}

	log.Info().
		Str("channel", rec.Name).
		Str("url", rec.URL).
		Str("brand", brand.Name).
		Msg("Categorizing channel")

	if res, ok := e.overrideMatch(rec, brand); ok {
		return res
	}

	titles := e.recentTitles(ctx, rec.URL)

	if DetectPoliceCamFootage(titles) && brand.HasCategory(model.CategoryPoliceCam) {
		log.Info().Str("channel", rec.Name).Msg("Detected police footage content from video titles")
		return Result{Category: model.CategoryPoliceCam, Source: SourceHeuristic}
	}

	prompt := BuildPrompt(rec, brand, titles)
	answer, err := e.llm.SuggestCategory(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("channel", rec.Name).Msg("Classification call failed, defaulting to Other")
		return Result{
			Category: model.CategoryOther,
			Source:   SourceDefault,
			Warning:  fmt.Sprintf("classification degraded to Other: %v", err),
		}
	}

	return matchAnswer(answer, brand)
}

// overrideMatch consults the static override tables in priority order:
// extracted video ID, video ID as URL substring, channel name, channel ID,
// handle. A hit only counts when the mapped category belongs to the brand.
func (e *Engine) overrideMatch(rec model.ChannelRecord, brand model.Brand) (Result, bool) {
	if videoID := extractVideoID(rec.URL); videoID != "" {
		if category, ok := knownVideoIDs[videoID]; ok && brand.HasCategory(category) {
			log.Info().Str("video_id", videoID).Str("category", category).Msg("Matched known video ID")
			return Result{Category: category, Source: SourceVideoOverride}, true
		}
	}

	// Backup for malformed extraction: a known video ID anywhere in the URL.
	for videoID, category := range knownVideoIDs {
		if strings.Contains(rec.URL, videoID) && brand.HasCategory(category) {
			log.Info().Str("video_id", videoID).Str("category", category).Msg("URL contains known video ID")
			return Result{Category: category, Source: SourceVideoOverride}, true
		}
	}

	if category, ok := knownChannels[rec.Name]; ok && brand.HasCategory(category) {
		log.Info().Str("channel", rec.Name).Str("category", category).Msg("Matched known channel name")
		return Result{Category: category, Source: SourceNameOverride}, true
	}

	for channelID, category := range knownChannelIDs {
		if strings.Contains(rec.URL, channelID) && brand.HasCategory(category) {
			log.Info().Str("channel_id", channelID).Str("category", category).Msg("Matched known channel ID")
			return Result{Category: category, Source: SourceChannelIDOverride}, true
		}
	}

	if handle := extractHandle(rec.URL); handle != "" {
		if category, ok := knownChannels[handle]; ok && brand.HasCategory(category) {
			log.Info().Str("handle", handle).Str("category", category).Msg("Matched known handle")
			return Result{Category: category, Source: SourceHandleOverride}, true
		}
	}

	return Result{}, false
}

// recentTitles fetches up to recentTitleLimit titles of the channel's most
// recent uploads. Best-effort: any failure is logged and treated as zero
// titles.
func (e *Engine) recentTitles(ctx context.Context, url string) []string {
	channelID := extractChannelID(url)
	if channelID == "" {
		return nil
	}

	titles, err := e.yt.RecentVideoTitles(ctx, channelID, recentTitleLimit)
	if err != nil {
		log.Warn().Err(err).Str("channel_id", channelID).Msg("Failed to fetch recent videos, proceeding with basic info")
		return nil
	}
	return titles
}

// matchAnswer maps the LLM's free-text answer back onto the brand's
// taxonomy: exact name match first, then substring containment, otherwise
// "Other".
func matchAnswer(answer string, brand model.Brand) Result {
	for _, cat := range brand.Categories {
		if cat.Name == answer {
			return Result{Category: cat.Name, Source: SourceLLM}
		}
	}
	for _, cat := range brand.Categories {
		if strings.Contains(answer, cat.Name) {
			return Result{Category: cat.Name, Source: SourceLLM}
		}
	}

	log.Warn().Str("answer", answer).Str("brand", brand.Name).Msg("LLM answer matched no category, using Other")
	return Result{Category: model.CategoryOther, Source: SourceLLM}
}
