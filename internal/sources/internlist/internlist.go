// Package internlist scrapes the intern-list Webflow CMS listing pages.
package internlist

import (
	"context"
	"time"
)

// Item is one listing card parsed from the CMS page.
type Item struct {
	ID       string
	Title    string
	Company  string
	URL      string
	PostedAt *time.Time
	// PostedText preserves the page's date string for display.
	PostedText string
}

type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]Item, error)
}
