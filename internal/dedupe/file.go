package dedupe

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore persists seen identifiers as a flat text file, one per line,
// sorted on save. The set grows monotonically and is never pruned. The file
// is read once when the store opens; writes go through a temp file + rename
// so a crash mid-save cannot truncate the set.
type FileStore struct {
	path string
	seen map[string]struct{}
}

func NewFileStore(path string) (*FileStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("seen file path is required")
	}
	store := &FileStore{
		path: path,
		seen: map[string]struct{}{},
	}
	if err := store.load(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *FileStore) HasSeen(ctx context.Context, id string) (bool, error) {
	_ = ctx
	if id == "" {
		return false, nil
	}
	_, ok := s.seen[id]
	return ok, nil
}

func (s *FileStore) MarkSeen(ctx context.Context, id string) error {
	return s.MarkSeenBatch(ctx, []string{id})
}

func (s *FileStore) MarkSeenBatch(ctx context.Context, ids []string) error {
	_ = ctx
	added := false
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := s.seen[id]; !ok {
			s.seen[id] = struct{}{}
			added = true
		}
	}
	if !added {
		return nil
	}
	return s.save()
}

func (s *FileStore) Close() error {
	return nil
}

// Len reports the size of the seen set.
func (s *FileStore) Len() int {
	return len(s.seen)
}

func (s *FileStore) load() error {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("open seen file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		s.seen[id] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read seen file: %w", err)
	}
	return nil
}

func (s *FileStore) save() error {
	ids := make([]string, 0, len(s.seen))
	for id := range s.seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create seen dir: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, ".seen-*")
	if err != nil {
		return fmt.Errorf("create temp seen file: %w", err)
	}
	tmpPath := tmp.Name()

	writer := bufio.NewWriter(tmp)
	for _, id := range ids {
		if _, err := writer.WriteString(id + "\n"); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
			return fmt.Errorf("write seen file: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("flush seen file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close seen file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace seen file: %w", err)
	}
	return nil
}
