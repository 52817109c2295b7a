package source

import (
	"context"
	"fmt"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/filter"
	"github.com/bakkerme/internwatch/internal/sources/jobright"
)

// JobrightProcessor fetches the minisite payloads and applies the pay and
// location guardrails. The guardrails live here rather than in a filter stage
// because only this source carries salary and location data.
type JobrightProcessor struct {
	name    string
	config  config.JobrightSource
	fetcher jobright.Fetcher
}

func NewJobrightProcessor(cfg *config.JobrightSource, fetcher jobright.Fetcher) (*JobrightProcessor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("jobright config is required")
	}
	return &JobrightProcessor{
		name:    "jobright",
		config:  *cfg,
		fetcher: fetcher,
	}, nil
}

func (p *JobrightProcessor) Name() string {
	return p.name
}

func (p *JobrightProcessor) Validate() error {
	if len(p.config.URLs) == 0 {
		return fmt.Errorf("at least one jobright url is required")
	}
	if p.fetcher == nil {
		return fmt.Errorf("jobright fetcher is required")
	}
	return nil
}

func (p *JobrightProcessor) Fetch(ctx context.Context) ([]*core.ListingBlock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	minHourly := float64(filter.DefaultMinHourlyPay)
	if p.config.MinHourlyPay != nil {
		minHourly = *p.config.MinHourlyPay
	}
	usOnly := true
	if p.config.USOnly != nil {
		usOnly = *p.config.USOnly
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
			seen[item.ID] = true

			if minHourly > 0 && !filter.MeetsMinPay(item.Salary, minHourly) {
				continue
			}
			if usOnly && !filter.IsUSLocation(item.Location) {
				continue
			}

			block := &core.ListingBlock{
				ID:          item.ID,
				Source:      p.name,
				Title:       item.Title,
				Company:     item.Company,
				URL:         item.URL,
				Location:    item.Location,
				Salary:      item.Salary,
				ProcessedAt: time.Now().UTC(),
			}
			if item.PostedMillis > 0 {
				posted := time.UnixMilli(item.PostedMillis).UTC()
				block.PostedAt = &posted
			}
			blocks = append(blocks, block)
		}
	}

	return blocks, nil
}
