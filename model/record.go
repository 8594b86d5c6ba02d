// Package model defines the core data types shared across the categorizer.
package model

// Status tracks a record's position in the processing lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// PlaceholderName is shown for a record whose channel title has not been
// resolved yet.
const PlaceholderName = "Retrieving..."

// ChannelRecord is one row of work: a submitted URL plus everything the
// pipeline learns about the channel behind it.
//
// Invariants: Category is set iff Status is completed, Error is set iff
// Status is error, and URL denotes a channel-resolvable reference by the
// time Status leaves processing.
type ChannelRecord struct {
	URL             string `json:"url"`
	OriginalURL     string `json:"original_url,omitempty"` // preserved when URL is rewritten from a video/short URL
	Name            string `json:"name"`
	Category        string `json:"category,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	Description     string `json:"description,omitempty"`
	SubscriberCount string `json:"subscriber_count,omitempty"`
	VideoCount      string `json:"video_count,omitempty"`
	ViewCount       string `json:"view_count,omitempty"`
	Status          Status `json:"status"`
	Error           string `json:"error,omitempty"`
	BrandName       string `json:"brand_name,omitempty"` // taxonomy used at classification time

	// Warning carries an internal classification diagnostic. It is set when
	// the classifier degraded to "Other" because of an internal failure, so
	// callers can tell that apart from a genuine "Other" verdict.
	Warning string `json:"warning,omitempty"`
}

// Terminal reports whether the record has reached a final state.
func (r *ChannelRecord) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusError
}
