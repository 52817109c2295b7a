// Package source holds the SourceProcessor implementations that turn fetched
// pages and feeds into listing blocks.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/sources/internlist"
)

type InternListProcessor struct {
	name    string
	config  config.InternListSource
	fetcher internlist.Fetcher
}

func NewInternListProcessor(cfg *config.InternListSource, fetcher internlist.Fetcher) (*InternListProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("intern-list config is required")
	}
	return &InternListProcessor{
		name:    "intern_list",
		config:  *cfg,
		fetcher: fetcher,
	}, nil
}

func (p *InternListProcessor) Name() string {
	return p.name
}

func (p *InternListProcessor) Validate() error {
	if len(p.config.URLs) == 0 {
		return fmt.Errorf("at least one intern-list url is required")
	}
	if p.fetcher == nil {
		return fmt.Errorf("intern-list fetcher is required")
	}
	return nil
}

func (p *InternListProcessor) Fetch(ctx context.Context) ([]*core.ListingBlock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	blocks := []*core.ListingBlock{}
	seen := map[string]bool{}

	for _, pageURL := range p.config.URLs {
		items, err := p.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
		}
		for _, item := range items {
			if item.ID == "" || seen[item.ID] {
				continue
			}
			if p.config.Limit > 0 && len(blocks) >= p.config.Limit {
				return blocks, nil
			}
			seen[item.ID] = true
			blocks = append(blocks, &core.ListingBlock{
				ID:          item.ID,
				Source:      p.name,
				Title:       item.Title,
				Company:     item.Company,
				URL:         item.URL,
				PostedAt:    item.PostedAt,
				PostedText:  item.PostedText,
				ProcessedAt: time.Now().UTC(),
			})
		}
	}

	return blocks, nil
}
