package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/blogem/ipgate/models"
)

// AccessLogRepository handles append-only access log persistence
type AccessLogRepository interface {
	Create(ctx context.Context, entry *models.AccessLogEntry) error
	List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLogEntry, error)
	Count(ctx context.Context) (int, error)
	CountByStatusSince(ctx context.Context, status models.AccessStatus, since time.Time) (int, error)
}

type sqliteAccessLogRepository struct {
	db *sql.DB
}

// NewAccessLogRepository creates a new access log repository
func NewAccessLogRepository(db *sql.DB) AccessLogRepository {
	return &sqliteAccessLogRepository{db: db}
}

// Create inserts a new access log entry
func (r *sqliteAccessLogRepository) Create(ctx context.Context, entry *models.AccessLogEntry) error {
	query := `
		INSERT INTO access_logs (ip_address, file_id, timestamp, event_type, status, details)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	timestamp := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		entry.IPAddress,
		nullInt64(entry.FileID),
		timestamp,
		string(entry.EventType),
		string(entry.Status),
		nullString(entry.Details),
	)
	if err != nil {
		return storeError("create access log entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError("get inserted ID", err)
	}

	entry.ID = id
	entry.Timestamp = timestamp
	return nil
}

// List returns entries matching every set filter field, newest first, with
// the original filename of the referenced file when it still exists
func (r *sqliteAccessLogRepository) List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLogEntry, error) {
	var conditions []string
	var args []any

	if filter.EventType != "" {
		conditions = append(conditions, "l.event_type = ?")
		args = append(args, string(filter.EventType))
	}
	if filter.Status != "" {
		conditions = append(conditions, "l.status = ?")
		args = append(args, string(filter.Status))
	}

	query := `
		SELECT l.id, l.ip_address, l.file_id, l.timestamp, l.event_type, l.status, l.details,
		       f.original_filename
		FROM access_logs l
		LEFT JOIN files f ON f.id = l.file_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.timestamp DESC, l.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeError("query access logs", err)
	}
	defer rows.Close()

	entries := []models.AccessLogEntry{}
	for rows.Next() {
		var entry models.AccessLogEntry
		var fileID sql.NullInt64
		var details, filename sql.NullString
		var eventType, status string

		if err := rows.Scan(
			&entry.ID,
			&entry.IPAddress,
			&fileID,
			&entry.Timestamp,
			&eventType,
			&status,
			&details,
			&filename,
		); err != nil {
			return nil, storeError("scan access log entry", err)
		}

		entry.EventType = models.EventType(eventType)
		entry.Status = models.AccessStatus(status)
		if fileID.Valid {
			id := fileID.Int64
			entry.FileID = &id
		}
		if details.Valid {
			entry.Details = details.String
		}
		if filename.Valid {
			name := filename.String
			entry.Filename = &name
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("iterate access logs", err)
	}

	return entries, nil
}

// Count returns the total number of access log entries
func (r *sqliteAccessLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM access_logs`).Scan(&count); err != nil {
		return 0, storeError("count access logs", err)
	}
	return count, nil
}

// CountByStatusSince counts entries with status recorded after since
func (r *sqliteAccessLogRepository) CountByStatusSince(ctx context.Context, status models.AccessStatus, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM access_logs WHERE status = ? AND timestamp > ?`

	var count int
	if err := r.db.QueryRowContext(ctx, query, string(status), since.UTC()).Scan(&count); err != nil {
		return 0, storeError("count access logs by status", err)
	}
	return count, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
