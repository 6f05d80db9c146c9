package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/ipgate/models"
)

// WhitelistRepository interface defines IP whitelist storage operations
type WhitelistRepository interface {
	GetAll(ctx context.Context) ([]models.WhitelistEntry, error)
	GetByID(ctx context.Context, id int64) (*models.WhitelistEntry, error)
	GetByIP(ctx context.Context, ip string) (*models.WhitelistEntry, error)
	Create(ctx context.Context, entry *models.WhitelistEntry) error
	Update(ctx context.Context, id int64, update *models.WhitelistUpdate) (*models.WhitelistEntry, error)
	Delete(ctx context.Context, id int64) error
	IsWhitelisted(ctx context.Context, ip string) (bool, error)
	Count(ctx context.Context) (int, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
}

// whitelistRepository implements WhitelistRepository on SQLite
type whitelistRepository struct {
	db *sql.DB
}

// NewWhitelistRepository creates a new whitelist repository
func NewWhitelistRepository(db *sql.DB) WhitelistRepository {
	return &whitelistRepository{db: db}
}

const whitelistColumns = `id, ip_address, description, is_active, created_at, expires_at, created_by`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWhitelistEntry(row rowScanner) (*models.WhitelistEntry, error) {
	var entry models.WhitelistEntry
	var expiresAt sql.NullTime
	var createdBy sql.NullInt64

	if err := row.Scan(
		&entry.ID,
		&entry.IPAddress,
		&entry.Description,
		&entry.IsActive,
		&entry.CreatedAt,
		&expiresAt,
		&createdBy,
	); err != nil {
		return nil, err
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		entry.ExpiresAt = &t
	}
	if createdBy.Valid {
		id := createdBy.Int64
		entry.CreatedBy = &id
	}

	return &entry, nil
}

// GetAll retrieves all whitelist entries, newest first
func (r *whitelistRepository) GetAll(ctx context.Context) ([]models.WhitelistEntry, error) {
	query := `SELECT ` + whitelistColumns + ` FROM ip_whitelist ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("query ip whitelist", err)
	}
	defer rows.Close()

	entries := []models.WhitelistEntry{}
	for rows.Next() {
		entry, err := scanWhitelistEntry(rows)
		if err != nil {
			return nil, storeError("scan whitelist entry", err)
		}
		entries = append(entries, *entry)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("iterate ip whitelist", err)
	}

	return entries, nil
}

// GetByID retrieves a whitelist entry by ID
func (r *whitelistRepository) GetByID(ctx context.Context, id int64) (*models.WhitelistEntry, error) {
	query := `SELECT ` + whitelistColumns + ` FROM ip_whitelist WHERE id = ?`

	entry, err := scanWhitelistEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("whitelist entry with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, storeError("get whitelist entry", err)
	}

	return entry, nil
}

// GetByIP retrieves a whitelist entry by its IP address
func (r *whitelistRepository) GetByIP(ctx context.Context, ip string) (*models.WhitelistEntry, error) {
	query := `SELECT ` + whitelistColumns + ` FROM ip_whitelist WHERE ip_address = ?`

	entry, err := scanWhitelistEntry(r.db.QueryRowContext(ctx, query, ip))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("whitelist entry for %s: %w", ip, ErrNotFound)
	}
	if err != nil {
		return nil, storeError("get whitelist entry by ip", err)
	}

	return entry, nil
}

// Create inserts a new whitelist entry. The unique index on ip_address
// rejects concurrent duplicates.
func (r *whitelistRepository) Create(ctx context.Context, entry *models.WhitelistEntry) error {
	query := `
		INSERT INTO ip_whitelist (ip_address, description, is_active, created_at, expires_at, created_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	createdAt := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		entry.IPAddress,
		entry.Description,
		entry.IsActive,
		createdAt,
		nullTime(entry.ExpiresAt),
		nullInt64(entry.CreatedBy),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("ip address %s already whitelisted: %w", entry.IPAddress, ErrDuplicateKey)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("creating user %d: %w", *entry.CreatedBy, ErrNotFound)
	}
	if err != nil {
		return storeError("create whitelist entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError("get inserted ID", err)
	}

	entry.ID = id
	entry.CreatedAt = createdAt
	return nil
}

// Update applies a partial update and returns the stored entry
func (r *whitelistRepository) Update(ctx context.Context, id int64, update *models.WhitelistUpdate) (*models.WhitelistEntry, error) {
	entry, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	update.Apply(entry)

	query := `
		UPDATE ip_whitelist
		SET description = ?, is_active = ?, expires_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		entry.Description,
		entry.IsActive,
		nullTime(entry.ExpiresAt),
		id,
	)
	if err != nil {
		return nil, storeError("update whitelist entry", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, storeError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return nil, fmt.Errorf("whitelist entry with ID %d: %w", id, ErrNotFound)
	}

	return entry, nil
}

// Delete removes a whitelist entry by ID
func (r *whitelistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM ip_whitelist WHERE id = ?`, id)
	if err != nil {
		return storeError("delete whitelist entry", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("whitelist entry with ID %d: %w", id, ErrNotFound)
	}

	return nil
}

// IsWhitelisted reports whether ip currently has access
func (r *whitelistRepository) IsWhitelisted(ctx context.Context, ip string) (bool, error) {
	return isWhitelisted(ctx, r, ip)
}

// Count returns the number of whitelist entries
func (r *whitelistRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ip_whitelist`).Scan(&count); err != nil {
		return 0, storeError("count whitelist entries", err)
	}
	return count, nil
}

// CountCreatedSince returns the number of entries created after since
func (r *whitelistRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ip_whitelist WHERE created_at > ?`, since.UTC()).Scan(&count)
	if err != nil {
		return 0, storeError("count recent whitelist entries", err)
	}
	return count, nil
}

// isWhitelisted is shared by every WhitelistRepository implementation so
// the lookup always goes through WhitelistEntry.Permits
func isWhitelisted(ctx context.Context, repo WhitelistRepository, ip string) (bool, error) {
	entry, err := repo.GetByIP(ctx, ip)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return entry.Permits(time.Now()), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
