package mock

import (
	"context"

	"github.com/bakkerme/internwatch/internal/sources/internlist"
)

type Fetcher struct {
	Items []internlist.Item
	Err   error
	Calls []string
}

func (f *Fetcher) Fetch(ctx context.Context, pageURL string) ([]internlist.Item, error) {
	_ = ctx
	f.Calls = append(f.Calls, pageURL)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Items, nil
}
