package core

import (
	"context"
	"time"
)

type ProcessorType string

var TriggerProcessorType ProcessorType = "trigger_processor"
var SourceProcessorType ProcessorType = "source_processor"
var FilterProcessorType ProcessorType = "filter_processor"
var DigestProcessorType ProcessorType = "digest_processor"
var OutputProcessorType ProcessorType = "output_processor"

// Processor is the base interface that all processors must implement
type Processor interface {
	// Name returns the processor name
	Name() string
	// Validate checks if the processor configuration is valid
	Validate() error
}

// TriggerEvent represents a trigger firing
type TriggerEvent struct {
	FlowID    string
	Timestamp time.Time
}

// TriggerProcessor defines when processing runs
type TriggerProcessor interface {
	Processor
	// Start begins the trigger and returns a channel of trigger events.
	// The processor manages its own lifecycle and sends events when triggered.
	Start(ctx context.Context, flowID string) (<-chan TriggerEvent, error)
	// Stop gracefully shuts down the trigger
	Stop() error
}

// SourceProcessor fetches and parses listing pages, creating blocks
type SourceProcessor interface {
	Processor
	// Fetch retrieves data from the source and creates blocks
	Fetch(ctx context.Context) ([]*ListingBlock, error)
}

// FilterProcessor reduces the listing set (recency window, guardrails,
// rules, seen-set dedupe)
type FilterProcessor interface {
	Processor
	// Filter returns the blocks that survive this stage
	Filter(ctx context.Context, blocks []*ListingBlock) ([]*ListingBlock, error)
}

// DigestProcessor renders the surviving listings into the notification body
type DigestProcessor interface {
	Processor
	// Digest builds or augments the run digest from the given blocks
	Digest(ctx context.Context, blocks []*ListingBlock, current *RunDigest) (*RunDigest, error)
}

// OutputProcessor delivers results
type OutputProcessor interface {
	Processor
	// Deliver sends the new listings and digest to the configured output
	Deliver(ctx context.Context, blocks []*ListingBlock, digest *RunDigest) error
}
