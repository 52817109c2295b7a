package mock

import (
	"context"

	"github.com/bakkerme/internwatch/internal/sources/jobright"
)

type Fetcher struct {
	Items []jobright.Item
	Err   error
	Calls []string
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]jobright.Item, error) {
	_ = ctx
	f.Calls = append(f.Calls, pageURL)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Items, nil
}
