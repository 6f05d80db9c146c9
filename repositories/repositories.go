package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Users     UserRepository
	Files     FileRepository
	Whitelist WhitelistRepository
	AccessLog AccessLogRepository
}

// NewRepositories creates and initializes all SQLite repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db),
		Files:     NewFileRepository(db),
		Whitelist: NewWhitelistRepository(db),
		AccessLog: NewAccessLogRepository(db),
	}
}
