package mock

import (
	"context"

	"github.com/bakkerme/internwatch/internal/sources/rss"
)

type Fetcher struct {
	Items []rss.Item
	Err   error
	Calls []string
}

func (f *Fetcher) Fetch(ctx context.Context, feedURL string, options rss.FetchOptions) ([]rss.Item, error) {
	_ = ctx
	_ = options
	f.Calls = append(f.Calls, feedURL)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Items, nil
}
