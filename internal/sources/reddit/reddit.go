// Package reddit ingests new posts from internship subreddits.
package reddit

import (
	"context"
	"time"
)

type Item struct {
	ID        string
	Title     string
	URL       string
	Author    string
	CreatedAt time.Time
}

type Config struct {
	Subreddits []string
	Limit      int
}

type Fetcher interface {
	Fetch(ctx context.Context, config Config) ([]Item, error)
}
