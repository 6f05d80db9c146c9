package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/ipgate/models"
)

// FileRepository interface defines uploaded file metadata operations
type FileRepository interface {
	GetAll(ctx context.Context) ([]models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	Create(ctx context.Context, file *models.File) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
	CountUploadedSince(ctx context.Context, since time.Time) (int, error)
	ResolveFilename(ctx context.Context, id int64) (*string, error)
}

// fileRepository implements FileRepository on SQLite
type fileRepository struct {
	db *sql.DB
}

// NewFileRepository creates a new file repository
func NewFileRepository(db *sql.DB) FileRepository {
	return &fileRepository{db: db}
}

const fileColumns = `id, filename, original_filename, file_size, mime_type, uploaded_at, uploaded_by`

func scanFile(row rowScanner) (*models.File, error) {
	var file models.File
	var uploadedBy sql.NullInt64

	if err := row.Scan(
		&file.ID,
		&file.Filename,
		&file.OriginalFilename,
		&file.FileSize,
		&file.MimeType,
		&file.UploadedAt,
		&uploadedBy,
	); err != nil {
		return nil, err
	}

	if uploadedBy.Valid {
		id := uploadedBy.Int64
		file.UploadedBy = &id
	}
	return &file, nil
}

// GetAll retrieves all files, newest first
func (r *fileRepository) GetAll(ctx context.Context) ([]models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files ORDER BY uploaded_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("query files", err)
	}
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, storeError("scan file", err)
		}
		files = append(files, *file)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("iterate files", err)
	}

	return files, nil
}

// GetByID retrieves a file by ID
func (r *fileRepository) GetByID(ctx context.Context, id int64) (*models.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = ?`

	file, err := scanFile(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("file with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, storeError("get file", err)
	}

	return file, nil
}

// Create inserts a new file record
func (r *fileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (filename, original_filename, file_size, mime_type, uploaded_at, uploaded_by)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	uploadedAt := time.Now().UTC()

	result, err := r.db.ExecContext(ctx, query,
		file.Filename,
		file.OriginalFilename,
		file.FileSize,
		file.MimeType,
		uploadedAt,
		nullInt64(file.UploadedBy),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("file %s already stored: %w", file.Filename, ErrDuplicateKey)
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("uploading user %d: %w", *file.UploadedBy, ErrNotFound)
	}
	if err != nil {
		return storeError("create file", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError("get inserted ID", err)
	}

	file.ID = id
	file.UploadedAt = uploadedAt
	return nil
}

// Delete removes a file record by ID
func (r *fileRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM files WHERE id = ?`, id)
	if err != nil {
		return storeError("delete file", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("file with ID %d: %w", id, ErrNotFound)
	}

	return nil
}

// Count returns the total number of files
func (r *fileRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files`).Scan(&count); err != nil {
		return 0, storeError("count files", err)
	}
	return count, nil
}

// CountUploadedSince returns the number of files uploaded after since
func (r *fileRepository) CountUploadedSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM files WHERE uploaded_at > ?`, since.UTC()).Scan(&count)
	if err != nil {
		return 0, storeError("count recent files", err)
	}
	return count, nil
}

// ResolveFilename returns the original filename for id, or nil when the
// file does not exist
func (r *fileRepository) ResolveFilename(ctx context.Context, id int64) (*string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT original_filename FROM files WHERE id = ?`, id).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError("resolve filename", err)
	}
	return &name, nil
}
