package client

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/researchaccelerator-hub/channel-categorizer/model"
)

// maxSearchAttempts bounds the progressive term relaxation: the raw term
// plus at most two looser variants.
const maxSearchAttempts = 3

var (
	nonAlnumRe   = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	camelSplitRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// SearchChannelFallback resolves a non-canonical identifier (handle, custom
// slug, or free-text name) to a channel ID, relaxing the search term when a
// query comes back empty. Quota and platform errors abort immediately;
// only a no-results outcome moves on to the next variant.
func SearchChannelFallback(ctx context.Context, c YouTubeClient, term string) (string, error) {
	terms := relaxedTerms(term)

	for _, t := range terms {
		channelID, err := c.SearchChannel(ctx, t)
		if err == nil {
			return channelID, nil
		}
		if !errors.Is(err, model.ErrNotFound) {
			return "", err
		}
		log.Info().Str("term", t).Msg("Search returned no results, relaxing term")
	}

	return "", fmt.Errorf("channel not found through search for %q: %w", term, model.ErrNotFound)
}

// relaxedTerms produces up to maxSearchAttempts progressively looser search
// terms: the raw term, the term with non-alphanumerics collapsed to spaces,
// and the term split on camel-case word boundaries. Duplicates after
// relaxation are dropped.
func relaxedTerms(term string) []string {
	term = strings.TrimSpace(term)

	variants := []string{
		term,
		strings.TrimSpace(nonAlnumRe.ReplaceAllString(term, " ")),
		strings.TrimSpace(nonAlnumRe.ReplaceAllString(camelSplitRe.ReplaceAllString(term, "$1 $2"), " ")),
	}

	terms := make([]string, 0, maxSearchAttempts)
	seen := make(map[string]bool)
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		terms = append(terms, v)
		if len(terms) == maxSearchAttempts {
			break
		}
	}
	return terms
}
