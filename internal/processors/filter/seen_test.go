package filter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bakkerme/internwatch/internal/core"
	"github.com/bakkerme/internwatch/internal/dedupe"
)

func TestSeenFilterDropsKnownAndPersistsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.txt")
	ctx := context.Background()

	store, err := dedupe.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := store.MarkSeen(ctx, "il_old"); err != nil {
		t.Fatalf("MarkSeen: %v", err)
	}

	p, err := NewSeenProcessor(store)
	if err != nil {
		t.Fatalf("NewSeenProcessor: %v", err)
	}

	blocks := []*core.ListingBlock{
		{ID: "il_old"},
		{ID: "jr_new"},
	}
	fresh, err := p.Filter(ctx, blocks)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(fresh) != 1 || fresh[0].ID != "jr_new" {
		t.Fatalf("unexpected fresh set: %+v", fresh)
	}

	// The fresh id must be on disk before any delivery happens.
	reopened, err := dedupe.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore reopen: %v", err)
	}
	seen, err := reopened.HasSeen(ctx, "jr_new")
	if err != nil {
		t.Fatalf("HasSeen: %v", err)
	}
	if !seen {
		t.Fatal("fresh id was not persisted")
	}
}

func TestSeenFilterSecondRunIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen_ids.txt")
	ctx := context.Background()

	store, err := dedupe.NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	p, err := NewSeenProcessor(store)
	if err != nil {
		t.Fatalf("NewSeenProcessor: %v", err)
	}

	blocks := []*core.ListingBlock{{ID: "a"}, {ID: "b"}}
	first, err := p.Filter(ctx, blocks)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("first run kept %d, want 2", len(first))
	}
	second, err := p.Filter(ctx, blocks)
	if err != nil {
		t.Fatalf("Filter: %v", err)
	}
	if len(second) != 0 {
		t.Fatalf("second run kept %d, want 0", len(second))
	}
}
