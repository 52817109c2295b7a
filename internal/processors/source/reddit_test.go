package source

import (
	"context"
	"testing"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/sources/reddit"
	redditmock "github.com/bakkerme/internwatch/internal/sources/reddit/mock"
)

func TestRedditFetchMapsPosts(t *testing.T) {
	created := time.Date(2026, 2, 13, 9, 30, 0, 0, time.UTC)
	fetcher := &redditmock.Fetcher{
		Items: []reddit.Item{
			{ID: "abc123", Title: "[Hiring] Summer SWE Intern", URL: "https://www.reddit.com/r/internships/comments/abc123/", Author: "someuser", CreatedAt: created},
			{ID: "abc123", Title: "dup"},
			{Title: "no id"},
		},
	}

	p, err := NewRedditProcessor(&config.RedditSource{Subreddits: []string{"internships"}}, fetcher)
	if err != nil {
		t.Fatalf("NewRedditProcessor: %v", err)
	}

	blocks, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].ID != "abc123" || blocks[0].Source != "reddit" {
		t.Fatalf("unexpected block: %+v", blocks[0])
	}
	if blocks[0].PostedAt == nil || !blocks[0].PostedAt.Equal(created) {
		t.Fatalf("created time not carried: %+v", blocks[0].PostedAt)
	}
}
