package filter

import (
	"context"
	"fmt"

	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/dedupe"
)

// SeenProcessor drops listings that were notified on in an earlier run. It is
// the last filter stage, so only listings that survive the window and rule
// filters are ever marked seen.
//
// The surviving identifiers are persisted here, before delivery. A failed
// send is reported but the same listings are not re-sent on the next run.
type SeenProcessor struct {
	name  string
	store dedupe.SeenStore
}

func NewSeenProcessor(store dedupe.SeenStore) (*SeenProcessor, error) {
	if store == nil {
		return nil, fmt.Errorf("seen store is required")
	}
	return &SeenProcessor{
		name:  "seen",
		store: store,
	}, nil
}

func (p *SeenProcessor) Name() string {
	return p.name
}

func (p *SeenProcessor) Validate() error {
	if p.store == nil {
		return fmt.Errorf("seen store is required")
	}
	return nil
}

func (p *SeenProcessor) Filter(ctx context.Context, blocks []*core.ListingBlock) ([]*core.ListingBlock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	fresh := make([]*core.ListingBlock, 0, len(blocks))
	freshIDs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		seen, err := p.store.HasSeen(ctx, block.ID)
		if err != nil {
			return nil, fmt.Errorf("check seen %s: %w", block.ID, err)
		}
		if seen {
			continue
		}
		fresh = append(fresh, block)
		freshIDs = append(freshIDs, block.ID)
	}

	if len(freshIDs) > 0 {
		if err := p.store.MarkSeenBatch(ctx, freshIDs); err != nil {
			return nil, fmt.Errorf("mark seen: %w", err)
		}
	}

	return fresh, nil
}
