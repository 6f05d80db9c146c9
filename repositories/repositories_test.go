package repositories

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/blogem/ipgate/database"
	"github.com/blogem/ipgate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(dbPath, logger)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// whitelistStores returns both whitelist implementations so every
// behavioural test runs against each of them
func whitelistStores(t *testing.T) map[string]WhitelistRepository {
	return map[string]WhitelistRepository{
		"sqlite": NewWhitelistRepository(setupTestDB(t)),
		"memory": NewMemoryWhitelistRepository(),
	}
}

func TestWhitelistRepository_RoundTrip(t *testing.T) {
	for name, repo := range whitelistStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			entry, err := models.NewWhitelistEntry(&models.WhitelistForm{IPAddress: "1.2.3.4", Description: "x"})
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, entry))
			assert.NotZero(t, entry.ID)

			got, err := repo.GetByIP(ctx, "1.2.3.4")
			require.NoError(t, err)
			assert.Equal(t, "1.2.3.4", got.IPAddress)
			assert.Equal(t, "x", got.Description)
			assert.True(t, got.IsActive)
			assert.False(t, got.CreatedAt.IsZero())
			assert.WithinDuration(t, time.Now(), got.CreatedAt, time.Minute)
			assert.Nil(t, got.ExpiresAt)

			byID, err := repo.GetByID(ctx, entry.ID)
			require.NoError(t, err)
			assert.Equal(t, got.IPAddress, byID.IPAddress)
		})
	}
}

func TestWhitelistRepository_DuplicateKey(t *testing.T) {
	for name, repo := range whitelistStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			first := &models.WhitelistEntry{IPAddress: "10.1.1.1", Description: "first", IsActive: true}
			require.NoError(t, repo.Create(ctx, first))

			second := &models.WhitelistEntry{IPAddress: "10.1.1.1", Description: "second", IsActive: false}
			err := repo.Create(ctx, second)
			assert.ErrorIs(t, err, ErrDuplicateKey)

			entries, err := repo.GetAll(ctx)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, "first", entries[0].Description)
			assert.True(t, entries[0].IsActive)
		})
	}
}

func TestWhitelistRepository_ConcurrentCreate(t *testing.T) {
	for name, repo := range whitelistStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			const writers = 8

			var wg sync.WaitGroup
			errs := make(chan error, writers)
			for i := 0; i < writers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					errs <- repo.Create(ctx, &models.WhitelistEntry{IPAddress: "192.0.2.7", Description: "race", IsActive: true})
				}()
			}
			wg.Wait()
			close(errs)

			succeeded, duplicates := 0, 0
			for err := range errs {
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, ErrDuplicateKey):
					duplicates++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}
			assert.Equal(t, 1, succeeded)
			assert.Equal(t, writers-1, duplicates)

			count, err := repo.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)
		})
	}
}

func TestWhitelistRepository_UpdateAndDelete(t *testing.T) {
	for name, repo := range whitelistStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			entry := &models.WhitelistEntry{IPAddress: "10.0.0.9", Description: "before", IsActive: true}
			require.NoError(t, repo.Create(ctx, entry))

			desc := "after"
			inactive := false
			expiry := time.Now().Add(48 * time.Hour).UTC()
			updated, err := repo.Update(ctx, entry.ID, &models.WhitelistUpdate{
				Description: &desc,
				IsActive:    &inactive,
				ExpiresAt:   models.OptionalTime{Set: true, Value: &expiry},
			})
			require.NoError(t, err)
			assert.Equal(t, "after", updated.Description)
			assert.False(t, updated.IsActive)
			require.NotNil(t, updated.ExpiresAt)

			stored, err := repo.GetByID(ctx, entry.ID)
			require.NoError(t, err)
			assert.Equal(t, "after", stored.Description)
			require.NotNil(t, stored.ExpiresAt)
			assert.WithinDuration(t, expiry, *stored.ExpiresAt, time.Second)

			_, err = repo.Update(ctx, 9999, &models.WhitelistUpdate{Description: &desc})
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, repo.Delete(ctx, entry.ID))
			assert.ErrorIs(t, repo.Delete(ctx, entry.ID), ErrNotFound)

			_, err = repo.GetByIP(ctx, "10.0.0.9")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestWhitelistRepository_IsWhitelisted(t *testing.T) {
	for name, repo := range whitelistStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			yesterday := time.Now().AddDate(0, 0, -1)
			tomorrow := time.Now().AddDate(0, 0, 1)

			require.NoError(t, repo.Create(ctx, &models.WhitelistEntry{IPAddress: "10.0.0.1", Description: "expired", IsActive: true, ExpiresAt: &yesterday}))
			require.NoError(t, repo.Create(ctx, &models.WhitelistEntry{IPAddress: "10.0.0.2", Description: "permanent", IsActive: true}))
			require.NoError(t, repo.Create(ctx, &models.WhitelistEntry{IPAddress: "10.0.0.3", Description: "inactive", IsActive: false, ExpiresAt: &tomorrow}))
			require.NoError(t, repo.Create(ctx, &models.WhitelistEntry{IPAddress: "10.0.0.4", Description: "future expiry", IsActive: true, ExpiresAt: &tomorrow}))

			cases := map[string]bool{
				"10.0.0.1":    false,
				"10.0.0.2":    true,
				"10.0.0.3":    false,
				"10.0.0.4":    true,
				"203.0.113.5": false,
			}
			for ip, want := range cases {
				got, err := repo.IsWhitelisted(ctx, ip)
				require.NoError(t, err)
				assert.Equal(t, want, got, "ip %s", ip)
			}

			for i := 0; i < 1000; i++ {
				ok, err := repo.IsWhitelisted(ctx, "10.0.0.2")
				require.NoError(t, err)
				if !ok {
					t.Fatalf("lookup %d returned false", i)
				}
			}
		})
	}
}

func TestAccessLogRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	files := NewFileRepository(db)
	stores := map[string]AccessLogRepository{
		"sqlite": NewAccessLogRepository(db),
		"memory": NewMemoryAccessLogRepository(files),
	}

	file := &models.File{Filename: "a-1.js", OriginalFilename: "a.vip.js", FileSize: 3, MimeType: "application/javascript"}
	require.NoError(t, files.Create(ctx, file))
	missing := int64(4242)

	for name, repo := range stores {
		t.Run(name, func(t *testing.T) {
			entries := []*models.AccessLogEntry{
				{IPAddress: "1.1.1.1", EventType: models.EventFileAccess, Status: models.StatusDenied, Details: "IP not whitelisted"},
				{IPAddress: "1.1.1.2", FileID: &file.ID, EventType: models.EventFileAccess, Status: models.StatusSuccessful},
				{IPAddress: "1.1.1.3", FileID: &missing, EventType: models.EventFileUpload, Status: models.StatusUpload},
				{IPAddress: "1.1.1.4", EventType: models.EventFileAccess, Status: models.StatusDenied},
			}
			for _, e := range entries {
				require.NoError(t, repo.Create(ctx, e))
				assert.False(t, e.Timestamp.IsZero())
			}

			all, err := repo.List(ctx, models.AccessLogFilter{})
			require.NoError(t, err)
			require.Len(t, all, 4)
			assert.Equal(t, "1.1.1.4", all[0].IPAddress, "newest first")
			assert.Equal(t, "1.1.1.1", all[3].IPAddress)

			assert.Nil(t, all[0].Filename)
			require.NotNil(t, all[2].Filename)
			assert.Equal(t, "a.vip.js", *all[2].Filename)
			assert.Nil(t, all[1].Filename, "unresolvable file id yields null")

			denied, err := repo.List(ctx, models.AccessLogFilter{Status: models.StatusDenied})
			require.NoError(t, err)
			assert.Len(t, denied, 2)

			both, err := repo.List(ctx, models.AccessLogFilter{EventType: models.EventFileAccess, Status: models.StatusSuccessful})
			require.NoError(t, err)
			require.Len(t, both, 1)
			assert.Equal(t, "1.1.1.2", both[0].IPAddress)

			none, err := repo.List(ctx, models.AccessLogFilter{EventType: models.EventFileUpload, Status: models.StatusDenied})
			require.NoError(t, err)
			assert.Empty(t, none)

			count, err := repo.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 4, count)

			recentDenied, err := repo.CountByStatusSince(ctx, models.StatusDenied, time.Now().Add(-time.Hour))
			require.NoError(t, err)
			assert.Equal(t, 2, recentDenied)
		})
	}
}

func TestFileRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewFileRepository(db)

	file := &models.File{Filename: "s-abc.js", OriginalFilename: "s.vip.js", FileSize: 10, MimeType: "application/javascript"}
	require.NoError(t, repo.Create(ctx, file))
	assert.NotZero(t, file.ID)

	got, err := repo.GetByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, "s.vip.js", got.OriginalFilename)
	assert.Nil(t, got.UploadedBy)

	assert.ErrorIs(t, repo.Create(ctx, &models.File{Filename: "s-abc.js", OriginalFilename: "dup", MimeType: "text/plain"}), ErrDuplicateKey)

	recent, err := repo.CountUploadedSince(ctx, time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 1, recent)

	name, err := repo.ResolveFilename(ctx, file.ID)
	require.NoError(t, err)
	require.NotNil(t, name)
	assert.Equal(t, "s.vip.js", *name)

	require.NoError(t, repo.Delete(ctx, file.ID))
	name, err = repo.ResolveFilename(ctx, file.ID)
	require.NoError(t, err)
	assert.Nil(t, name)

	_, err = repo.GetByID(ctx, file.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &models.User{Username: "alice", PasswordHash: "hash", Role: models.RoleAdmin}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID)

	assert.ErrorIs(t, repo.Create(ctx, &models.User{Username: "alice", PasswordHash: "x", Role: models.RoleUser}), ErrDuplicateKey)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	got.Username = "alicia"
	require.NoError(t, repo.Update(ctx, got))
	_, err = repo.GetByUsername(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	admins, err := repo.CountByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 1, admins)

	// Whitelist ownership survives user deletion
	wl := NewWhitelistRepository(db)
	entry := &models.WhitelistEntry{IPAddress: "9.9.9.9", Description: "owned", IsActive: true, CreatedBy: &user.ID}
	require.NoError(t, wl.Create(ctx, entry))

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), ErrNotFound)

	stored, err := wl.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.CreatedBy)
}

func TestMissingCreatorIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	ghost := int64(999)

	err := NewWhitelistRepository(db).Create(ctx, &models.WhitelistEntry{
		IPAddress: "10.9.9.9", Description: "stale session", IsActive: true, CreatedBy: &ghost,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)

	err = NewFileRepository(db).Create(ctx, &models.File{
		Filename: "x-1.js", OriginalFilename: "x.vip.js", MimeType: "application/javascript", UploadedBy: &ghost,
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrStoreUnavailable)
}
