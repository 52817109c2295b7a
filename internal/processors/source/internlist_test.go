package source

import (
	"context"
	"testing"
	"time"

	"github.com/bakkerme/internwatch/internal/config"
	"github.com/bakkerme/internwatch/internal/sources/internlist"
	internlistmock "github.com/bakkerme/internwatch/internal/sources/internlist/mock"
)

func TestInternListFetchMapsItems(t *testing.T) {
	posted := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	fetcher := &internlistmock.Fetcher{
		Items: []internlist.Item{
			{ID: "il_data-intern", Title: "Data Intern", Company: "Acme", URL: "https://www.intern-list.com/da-intern-list/data-intern", PostedAt: &posted, PostedText: "February 13, 2026"},
			{ID: "il_data-intern", Title: "Data Intern", Company: "Acme", URL: "https://www.intern-list.com/da-intern-list/data-intern"},
			{ID: "il_ml-intern", Title: "ML Intern", Company: "Initech", URL: "https://www.intern-list.com/da-intern-list/ml-intern"},
		},
	}

	p, err := NewInternListProcessor(&config.InternListSource{URLs: []string{"https://www.intern-list.com/"}}, fetcher)
	if err != nil {
		t.Fatalf("NewInternListProcessor: %v", err)
	}

	blocks, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].ID != "il_data-intern" || blocks[0].Source != "intern_list" {
		t.Fatalf("unexpected first block: %+v", blocks[0])
	}
	if blocks[0].PostedAt == nil || !blocks[0].PostedAt.Equal(posted) {
		t.Fatalf("posted time not carried: %+v", blocks[0].PostedAt)
	}
}

func TestInternListFetchHonorsLimit(t *testing.T) {
	fetcher := &internlistmock.Fetcher{
		Items: []internlist.Item{
			{ID: "il_a", Title: "A"},
			{ID: "il_b", Title: "B"},
			{ID: "il_c", Title: "C"},
		},
	}
	p, err := NewInternListProcessor(&config.InternListSource{URLs: []string{"https://www.intern-list.com/"}, Limit: 2}, fetcher)
	if err != nil {
		t.Fatalf("NewInternListProcessor: %v", err)
	}
	blocks, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
}

func TestInternListFetchRequiresURLs(t *testing.T) {
	p, err := NewInternListProcessor(&config.InternListSource{}, &internlistmock.Fetcher{})
	if err != nil {
		t.Fatalf("NewInternListProcessor: %v", err)
	}
	if _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
}
