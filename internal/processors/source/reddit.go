package source

import (
	"context"
	"fmt"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/sources/reddit"
)

type RedditProcessor struct {
	name    string
	config  config.RedditSource
	fetcher reddit.Fetcher
}

func NewRedditProcessor(cfg *config.RedditSource, fetcher reddit.Fetcher) (*RedditProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("reddit config is required")
	}
	return &RedditProcessor{
		name:    "reddit",
		config:  *cfg,
		fetcher: fetcher,
	}, nil
}

func (p *RedditProcessor) Name() string {
	return p.name
}

func (p *RedditProcessor) Validate() error {
	if len(p.config.Subreddits) == 0 {
		return fmt.Errorf("at least one subreddit is required")
	}
	if p.fetcher == nil {
		return fmt.Errorf("reddit fetcher is required")
	}
	return nil
}

func (p *RedditProcessor) Fetch(ctx context.Context) ([]*core.ListingBlock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	items, err := p.fetcher.Fetch(ctx, reddit.Config{
		Subreddits: p.config.Subreddits,
		Limit:      p.config.Limit,
	})
	if err != nil {
		return nil, err
	}

	blocks := make([]*core.ListingBlock, 0, len(items))
	seen := map[string]bool{}
	for _, item := range items {
		if item.ID == "" || seen[item.ID] {
			continue
		}
		seen[item.ID] = true

		block := &core.ListingBlock{
			ID:          item.ID,
			Source:      p.name,
			Title:       item.Title,
			Company:     item.Author,
			URL:         item.URL,
			ProcessedAt: time.Now().UTC(),
		}
		if !item.CreatedAt.IsZero() {
			created := item.CreatedAt.UTC()
			block.PostedAt = &created
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}
