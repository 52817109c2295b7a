// Package rss ingests supplementary job-listing feeds.
package rss

import (
	"context"
	"time"
)

type Item struct {
	ID          string
	Title       string
	Link        string
	Description string
	Author      string
	PublishedAt time.Time
}

type FetchOptions struct {
	Limit     int
	UserAgent string
}

type Fetcher interface {
	Fetch(ctx context.Context, feedURL string, options FetchOptions) ([]Item, error)
}
