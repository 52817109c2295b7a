package source

import (
	"context"
	"fmt"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/sources/rss"
)

type RSSProcessor struct {
	name    string
	config  config.RSSSource
	fetcher rss.Fetcher
}

func NewRSSProcessor(cfg *config.RSSSource, fetcher rss.Fetcher) (*RSSProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("rss config is required")
	}
	return &RSSProcessor{
		name:    "rss",
		config:  *cfg,
		fetcher: fetcher,
	}, nil
}

func (p *RSSProcessor) Name() string {
	return p.name
}

func (p *RSSProcessor) Validate() error {
	if len(p.config.Feeds) == 0 {
		return fmt.Errorf("at least one rss feed is required")
	}
	if p.fetcher == nil {
		return fmt.Errorf("rss fetcher is required")
	}
	return nil
}

func (p *RSSProcessor) Fetch(ctx context.Context) ([]*core.ListingBlock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	blocks := []*core.ListingBlock{}
	seen := map[string]bool{}

	options := rss.FetchOptions{
		Limit:     p.config.Limit,
		UserAgent: p.config.UserAgent,
	}

	for _, feedURL := range p.config.Feeds {
		items, err := p.fetcher.Fetch(ctx, feedURL, options)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", feedURL, err)
		}
		for _, item := range items {
			id := item.ID
			if id == "" {
				id = item.Link
			}
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true

			block := &core.ListingBlock{
				ID:          id,
				Source:      p.name,
				Title:       item.Title,
				Company:     item.Author,
				URL:         item.Link,
				ProcessedAt: time.Now().UTC(),
			}
			if !item.PublishedAt.IsZero() {
				published := item.PublishedAt.UTC()
				block.PostedAt = &published
			}
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}
