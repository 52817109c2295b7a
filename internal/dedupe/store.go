package dedupe

import "context"

// SeenStore tracks previously notified listing identifiers. It is the only
// state carried across runs, loaded when the store opens and persisted by the
// Mark calls, so persistence-versus-notification ordering is an explicit
// choice made by the pipeline rather than ambient file access.
type SeenStore interface {
	HasSeen(ctx context.Context, id string) (bool, error)
	MarkSeen(ctx context.Context, id string) error
	MarkSeenBatch(ctx context.Context, ids []string) error
	Close() error
}
