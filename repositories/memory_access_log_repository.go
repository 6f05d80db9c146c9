package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/blogem/ipgate/models"
)

// FilenameResolver resolves a file ID to its original filename.
// A nil result means the file no longer exists.
type FilenameResolver interface {
	ResolveFilename(ctx context.Context, id int64) (*string, error)
}

// memoryAccessLogRepository is an append-only in-memory access log
type memoryAccessLogRepository struct {
	mu      sync.RWMutex
	entries []models.AccessLogEntry
	files   FilenameResolver
}

// NewMemoryAccessLogRepository creates an in-memory access log. files may be
// nil, in which case listed entries are never enriched.
func NewMemoryAccessLogRepository(files FilenameResolver) AccessLogRepository {
	return &memoryAccessLogRepository{files: files}
}

func (r *memoryAccessLogRepository) Create(ctx context.Context, entry *models.AccessLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = int64(len(r.entries) + 1)
	entry.Timestamp = time.Now().UTC()

	stored := *entry
	stored.Filename = nil
	r.entries = append(r.entries, stored)
	return nil
}

func (r *memoryAccessLogRepository) List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLogEntry, error) {
	r.mu.RLock()
	matched := []models.AccessLogEntry{}
	for i := len(r.entries) - 1; i >= 0; i-- {
		if filter.Matches(&r.entries[i]) {
			matched = append(matched, r.entries[i])
		}
	}
	r.mu.RUnlock()

	if r.files == nil {
		return matched, nil
	}

	for i := range matched {
		if matched[i].FileID == nil {
			continue
		}
		name, err := r.files.ResolveFilename(ctx, *matched[i].FileID)
		if err != nil {
			return nil, err
		}
		matched[i].Filename = name
	}

	return matched, nil
}

func (r *memoryAccessLogRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}

func (r *memoryAccessLogRepository) CountByStatusSince(ctx context.Context, status models.AccessStatus, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, entry := range r.entries {
		if entry.Status == status && entry.Timestamp.After(since) {
			count++
		}
	}
	return count, nil
}
