package source

import (
	"context"
	"testing"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/sources/rss"
	rssmock "github.com/bakkerme/internwatch/internal/sources/rss/mock"
)

func TestRSSFetchFallsBackToLinkID(t *testing.T) {
	published := time.Date(2026, 2, 13, 9, 30, 0, 0, time.UTC)
	fetcher := &rssmock.Fetcher{
		Items: []rss.Item{
			{ID: "guid-1", Title: "Intern role A", Link: "https://jobs.example.com/a", PublishedAt: published},
			{Title: "Intern role B", Link: "https://jobs.example.com/b"},
			{Title: "No identity at all"},
		},
	}

	p, err := NewRSSProcessor(&config.RSSSource{Feeds: []string{"https://jobs.example.com/feed"}}, fetcher)
	if err != nil {
		t.Fatalf("NewRSSProcessor: %v", err)
	}

	blocks, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].ID != "guid-1" {
		t.Fatalf("first id = %s", blocks[0].ID)
	}
	if blocks[1].ID != "https://jobs.example.com/b" {
		t.Fatalf("second id = %s", blocks[1].ID)
	}
	if blocks[0].PostedAt == nil || !blocks[0].PostedAt.Equal(published) {
		t.Fatalf("published time not carried: %+v", blocks[0].PostedAt)
	}
}
