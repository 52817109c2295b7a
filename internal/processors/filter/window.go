// Package filter holds the FilterProcessor stages that reduce the fetched
// listing set before it reaches the digest.
package filter

import (
	"context"
	"fmt"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/timex"
)

type WindowProcessor struct {
	name   string
	window time.Duration
	now    func() time.Time
}

// NewWindowProcessor keeps only listings posted within the configured
// duration. An empty document duration falls back to the environment default.
func NewWindowProcessor(cfg *config.WindowFilter, fallback time.Duration) (*WindowProcessor, error) {
	window := fallback
	if cfg != nil && cfg.Duration != "" {
		parsed, err := config.ParseDuration(cfg.Duration)
		if err != nil {
			return nil, fmt.Errorf("parse window duration: %w", err)
		}
		window = parsed
	}
	return &WindowProcessor{
		name:   "window",
		window: window,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (p *WindowProcessor) Name() string {
	return p.name
}

func (p *WindowProcessor) Validate() error {
	if p.window <= 0 {
		return fmt.Errorf("window duration must be positive")
	}
	return nil
}

func (p *WindowProcessor) Filter(ctx context.Context, blocks []*core.ListingBlock) ([]*core.ListingBlock, error) {
	_ = ctx
	if err := p.Validate(); err != nil {
		return nil, err
	}
	now := p.now()
	kept := make([]*core.ListingBlock, 0, len(blocks))
	for _, block := range blocks {
		if timex.InWindow(block.PostedAt, block.PostedText, now, p.window) {
			kept = append(kept, block)
		}
	}
	return kept, nil
}
