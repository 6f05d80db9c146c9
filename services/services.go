package services

import (
	"log/slog"

	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/storage"
)

// Options carries the settings services need from the configuration
type Options struct {
	MainAdmin string
	MaxAdmins int
}

// Services holds all service instances
type Services struct {
	Gate      AccessGate
	Whitelist WhitelistService
	AccessLog AccessLogService
	Users     UserService
	Files     FileService
	Stats     StatsService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, store *storage.FileStore, opts Options, logger *slog.Logger) *Services {
	accessLog := NewAccessLogService(repos.AccessLog, logger)

	return &Services{
		Gate:      NewAccessGate(repos.Whitelist, repos.AccessLog, logger),
		Whitelist: NewWhitelistService(repos.Whitelist),
		AccessLog: accessLog,
		Users:     NewUserService(repos.Users, opts.MainAdmin, opts.MaxAdmins),
		Files:     NewFileService(repos.Files, store, accessLog, logger),
		Stats:     NewStatsService(repos.Files, repos.Whitelist, repos.AccessLog),
	}
}
