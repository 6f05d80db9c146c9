package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/blogem/ipgate/models"
)

// memoryWhitelistRepository keeps whitelist entries in process memory.
// All maps are guarded by mu; returned entries are copies.
type memoryWhitelistRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*models.WhitelistEntry
	byIP   map[string]int64
}

// NewMemoryWhitelistRepository creates an empty in-memory whitelist store
func NewMemoryWhitelistRepository() WhitelistRepository {
	return &memoryWhitelistRepository{
		byID: make(map[int64]*models.WhitelistEntry),
		byIP: make(map[string]int64),
	}
}

func (r *memoryWhitelistRepository) GetAll(ctx context.Context) ([]models.WhitelistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]models.WhitelistEntry, 0, len(r.byID))
	for _, entry := range r.byID {
		entries = append(entries, cloneWhitelistEntry(entry))
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].ID > entries[j].ID
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}

func (r *memoryWhitelistRepository) GetByID(ctx context.Context, id int64) (*models.WhitelistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("whitelist entry with ID %d: %w", id, ErrNotFound)
	}
	clone := cloneWhitelistEntry(entry)
	return &clone, nil
}

func (r *memoryWhitelistRepository) GetByIP(ctx context.Context, ip string) (*models.WhitelistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byIP[ip]
	if !ok {
		return nil, fmt.Errorf("whitelist entry for %s: %w", ip, ErrNotFound)
	}
	clone := cloneWhitelistEntry(r.byID[id])
	return &clone, nil
}

func (r *memoryWhitelistRepository) Create(ctx context.Context, entry *models.WhitelistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byIP[entry.IPAddress]; exists {
		return fmt.Errorf("ip address %s already whitelisted: %w", entry.IPAddress, ErrDuplicateKey)
	}

	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now().UTC()

	stored := cloneWhitelistEntry(entry)
	r.byID[entry.ID] = &stored
	r.byIP[entry.IPAddress] = entry.ID
	return nil
}

func (r *memoryWhitelistRepository) Update(ctx context.Context, id int64, update *models.WhitelistUpdate) (*models.WhitelistEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("whitelist entry with ID %d: %w", id, ErrNotFound)
	}

	updated := cloneWhitelistEntry(entry)
	update.Apply(&updated)

	stored := cloneWhitelistEntry(&updated)
	r.byID[id] = &stored
	return &updated, nil
}

func (r *memoryWhitelistRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("whitelist entry with ID %d: %w", id, ErrNotFound)
	}

	delete(r.byIP, entry.IPAddress)
	delete(r.byID, id)
	return nil
}

func (r *memoryWhitelistRepository) IsWhitelisted(ctx context.Context, ip string) (bool, error) {
	return isWhitelisted(ctx, r, ip)
}

func (r *memoryWhitelistRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *memoryWhitelistRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, entry := range r.byID {
		if entry.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func cloneWhitelistEntry(e *models.WhitelistEntry) models.WhitelistEntry {
	clone := *e
	if e.ExpiresAt != nil {
		t := *e.ExpiresAt
		clone.ExpiresAt = &t
	}
	if e.CreatedBy != nil {
		id := *e.CreatedBy
		clone.CreatedBy = &id
	}
	return clone
}
