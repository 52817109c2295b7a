// Package jobright scrapes the Jobright Next.js minisites. Listings ride in
// the page's __NEXT_DATA__ payload rather than the rendered DOM.
package jobright

import "context"

// Item is one job from a minisite's initialJobs payload.
type Item struct {
	ID           string
	Title        string
	Company      string
	URL          string
	Salary       string
	Location     string
	PostedMillis int64
}

type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) ([]Item, error)
}
