package core

import (
	"time"
)

// ListingBlock contains the data and metadata of a single scraped job listing,
// including everything needed to represent and operate on the listing as it
// flows through the pipeline
type ListingBlock struct {
	FlowID      string         `json:"flow_id" yaml:"flow_id"`
	ID          string         `json:"id" yaml:"id"`
	Source      string         `json:"source" yaml:"source"`
	Title       string         `json:"title" yaml:"title"`
	Company     string         `json:"company" yaml:"company"`
	URL         string         `json:"url" yaml:"url"`
	Location    string         `json:"location,omitempty" yaml:"location,omitempty"`
	Salary      string         `json:"salary,omitempty" yaml:"salary,omitempty"`
	PostedAt    *time.Time     `json:"posted_at,omitempty" yaml:"posted_at,omitempty"`
	PostedText  string         `json:"posted_text,omitempty" yaml:"posted_text,omitempty"`
	ProcessedAt time.Time      `json:"processed_at" yaml:"processed_at"`
	Errors      []ProcessError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// PostedDisplay is the posted time as it should appear in notifications.
// Absolute timestamps win over free-text relative strings.
func (b *ListingBlock) PostedDisplay(loc *time.Location) string {
	if b.PostedAt != nil && !b.PostedAt.IsZero() && hasClock(*b.PostedAt) {
		if loc == nil {
			loc = time.UTC
		}
		return b.PostedAt.In(loc).Format("Jan 02, 2006 03:04 PM MST")
	}
	if b.PostedText != "" {
		return b.PostedText
	}
	if b.PostedAt != nil && !b.PostedAt.IsZero() {
		return b.PostedAt.Format("January 2, 2006")
	}
	return "n/a"
}

// hasClock reports whether t carries a time-of-day component. Date-only
// postings (intern-list) land on midnight UTC.
func hasClock(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0
}

// ProcessError tracks errors that occur during processing
type ProcessError struct {
	ProcessorName string    `json:"processor_name" yaml:"processor_name"`
	Stage         string    `json:"stage" yaml:"stage"` // "trigger", "source", "filter", "digest", "output"
	Error         string    `json:"error" yaml:"error"`
	OccurredAt    time.Time `json:"occurred_at" yaml:"occurred_at"`
}

// RunDigest is the rendered notification body for a run
type RunDigest struct {
	ProcessorName string    `json:"processor_name" yaml:"processor_name"`
	Headline      string    `json:"headline,omitempty" yaml:"headline,omitempty"`
	Markdown      string    `json:"markdown" yaml:"markdown"`
	HTML          string    `json:"html,omitempty" yaml:"html,omitempty"`
	ListingCount  int       `json:"listing_count" yaml:"listing_count"`
	ProcessedAt   time.Time `json:"processed_at" yaml:"processed_at"`
}
