// Package orchestrator runs the per-record processing pipeline: resolve the
// URL, fetch channel details, classify, and track each record's lifecycle.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/researchaccelerator-hub/channel-categorizer/categorize"
	"github.com/researchaccelerator-hub/channel-categorizer/client"
	"github.com/researchaccelerator-hub/channel-categorizer/common"
	"github.com/researchaccelerator-hub/channel-categorizer/model"
	"github.com/researchaccelerator-hub/channel-categorizer/resolver"
)

// Classifier is the classification engine surface the pipeline needs.
type Classifier interface {
	Classify(ctx context.Context, rec model.ChannelRecord, brand model.Brand) categorize.Result
}

// Observer receives a snapshot of the full record list after every state
// transition, so callers see monotonic per-record progress.
type Observer func(records []model.ChannelRecord)

// Pipeline processes batches of channel records strictly sequentially, one
// network round-trip at a time, to stay under the external APIs' rate
// limits. Only one batch may be in flight at a time.
type Pipeline struct {
	yt         client.YouTubeClient
	classifier Classifier
	observer   Observer

	// slot enforces the single-in-flight-batch invariant even if callers
	// run Process from multiple goroutines.
	slot *semaphore.Weighted

	mu            sync.RWMutex
	records       []model.ChannelRecord
	quotaExceeded bool
	batchID       string
}

// NewPipeline creates a processing pipeline. The observer may be nil.
func NewPipeline(yt client.YouTubeClient, classifier Classifier, observer Observer) *Pipeline {
	return &Pipeline{
		yt:         yt,
		classifier: classifier,
		observer:   observer,
		slot:       semaphore.NewWeighted(1),
	}
}

// Records returns a copy of the current record list.
func (p *Pipeline) Records() []model.ChannelRecord {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]model.ChannelRecord, len(p.records))
	copy(out, p.records)
	return out
}

// QuotaExceeded reports whether any record of the current batch hit the
// platform's quota limit. Sticky for the batch, reset when a new one starts.
func (p *Pipeline) QuotaExceeded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.quotaExceeded
}

// BatchID identifies the current (or last) batch.
func (p *Pipeline) BatchID() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.batchID
}

// ProcessSingle runs a one-record batch.
func (p *Pipeline) ProcessSingle(ctx context.Context, rec model.ChannelRecord, brand model.Brand) error {
	return p.Process(ctx, []model.ChannelRecord{rec}, brand)
}

// Process runs the batch to completion. Records are processed in input
// order; a single record's failure never aborts the batch. The brand
// taxonomy is fixed for the whole batch: preference changes made while a
// batch is in flight do not affect it.
func (p *Pipeline) Process(ctx context.Context, records []model.ChannelRecord, brand model.Brand) error {
	if len(records) == 0 {
		return fmt.Errorf("no channels to process")
	}

	if !p.slot.TryAcquire(1) {
		return fmt.Errorf("a batch is already being processed")
	}
	defer p.slot.Release(1)

	batchID := common.GenerateBatchID()

	p.mu.Lock()
	p.batchID = batchID
	p.quotaExceeded = false
	p.records = make([]model.ChannelRecord, len(records))
	copy(p.records, records)
	p.mu.Unlock()

	log.Info().
		Str("batch_id", batchID).
		Int("count", len(records)).
		Str("brand", brand.Name).
		Msg("Starting batch")

	completed := 0
	for i := range records {
		p.transition(i, func(r *model.ChannelRecord) {
			r.Status = model.StatusProcessing
		})

		rec, err := p.processRecord(ctx, records[i], brand)
		if err != nil {
			if errors.Is(err, model.ErrQuotaExceeded) {
				p.mu.Lock()
				p.quotaExceeded = true
				p.mu.Unlock()
			}

			log.Error().Err(err).Str("url", records[i].URL).Msg("Record processing failed")
			p.transition(i, func(r *model.ChannelRecord) {
				r.Status = model.StatusError
				r.Error = err.Error()
			})
			continue
		}

		completed++
		p.transition(i, func(r *model.ChannelRecord) {
			*r = rec
		})
	}

	if completed > 0 {
		log.Info().
			Str("batch_id", batchID).
			Int("completed", completed).
			Int("errors", len(records)-completed).
			Msg("Batch complete")
	}
	return nil
}

// transition mutates record i under the lock and publishes a snapshot to
// the observer.
func (p *Pipeline) transition(i int, mutate func(*model.ChannelRecord)) {
	p.mu.Lock()
	mutate(&p.records[i])
	snapshot := make([]model.ChannelRecord, len(p.records))
	copy(snapshot, p.records)
	p.mu.Unlock()

	if p.observer != nil {
		p.observer(snapshot)
	}
}

// processRecord takes one record from pending input to a completed record:
// URL resolution, channel detail fetch, classification. Any failure is
// returned for conversion into the record's error state.
func (p *Pipeline) processRecord(ctx context.Context, rec model.ChannelRecord, brand model.Brand) (model.ChannelRecord, error) {
	originalURL := rec.URL
	rec.Status = model.StatusProcessing

	ref := resolver.Resolve(rec.URL)

	var channelID string
	fromVideo := false

	switch ref.Kind {
	case resolver.KindVideo, resolver.KindShort:
		owner, err := p.yt.LookupVideo(ctx, ref.Value)
		if err != nil {
			return rec, err
		}
		channelID = owner.ChannelID
		rec.Name = owner.ChannelTitle
		fromVideo = true

	case resolver.KindChannelID:
		channelID = ref.Value

	case resolver.KindHandle, resolver.KindCustomSlug:
		id, err := client.SearchChannelFallback(ctx, p.yt, ref.Value)
		if err != nil {
			return rec, err
		}
		channelID = id

	default:
		return rec, model.ErrUnresolvable
	}

	details, err := p.yt.FetchChannelDetails(ctx, channelID)
	if err != nil {
		return rec, err
	}

	rec.Name = details.Title
	rec.Description = details.Description
	rec.ThumbnailURL = details.ThumbnailURL
	rec.SubscriberCount = details.SubscriberCount
	rec.VideoCount = details.VideoCount
	rec.ViewCount = details.ViewCount

	if fromVideo {
		// Rewrite to the canonical channel URL, keep the submitted one.
		rec.URL = resolver.ChannelURL(channelID)
		rec.OriginalURL = originalURL
		log.Info().
			Str("original_url", originalURL).
			Str("channel_id", channelID).
			Msg("Rewrote video URL to channel URL")
	}

	// Classification sees the original video/short URL so the video-ID
	// override table can match it.
	classifyRec := rec
	if fromVideo {
		classifyRec.URL = originalURL
	}
	result := p.classifier.Classify(ctx, classifyRec, brand)

	rec.Category = result.Category
	rec.BrandName = brand.Name
	rec.Warning = result.Warning
	rec.Status = model.StatusCompleted

	log.Info().
		Str("channel", rec.Name).
		Str("category", rec.Category).
		Str("source", string(result.Source)).
		Msg("Record completed")

	return rec, nil
}
