package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blogem/ipgate/models"
)

// UserRepository interface defines user account operations
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role models.Role) (int, error)
}

// userRepository implements UserRepository on SQLite
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var role string
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &role); err != nil {
		return nil, err
	}
	user.Role = models.Role(role)
	return &user, nil
}

// GetAll retrieves all users ordered by ID
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, username, password_hash, role FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, storeError("query users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storeError("scan user", err)
		}
		users = append(users, *user)
	}

	if err = rows.Err(); err != nil {
		return nil, storeError("iterate users", err)
	}

	return users, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, username, password_hash, role FROM users WHERE id = ?`, id)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, storeError("get user", err)
	}
	return user, nil
}

// GetByUsername retrieves a user by username
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, username, password_hash, role FROM users WHERE username = ?`, username)

	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, storeError("get user by username", err)
	}
	return user, nil
}

// Create inserts a new user
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`,
		user.Username, user.PasswordHash, string(user.Role),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("username %s already exists: %w", user.Username, ErrDuplicateKey)
	}
	if err != nil {
		return storeError("create user", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError("get inserted ID", err)
	}

	user.ID = id
	return nil
}

// Update updates username and password hash of an existing user
func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, password_hash = ? WHERE id = ?`,
		user.Username, user.PasswordHash, user.ID,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("username %s already exists: %w", user.Username, ErrDuplicateKey)
	}
	if err != nil {
		return storeError("update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user with ID %d: %w", user.ID, ErrNotFound)
	}

	return nil
}

// Delete deletes a user by ID
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return storeError("delete user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return storeError("get rows affected", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}

	return nil
}

// CountByRole returns the number of users holding role
func (r *userRepository) CountByRole(ctx context.Context, role models.Role) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = ?`, string(role)).Scan(&count); err != nil {
		return 0, storeError("count users by role", err)
	}
	return count, nil
}
