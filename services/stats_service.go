package services

import (
	"context"
	"time"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
)

// StatsService interface defines dashboard aggregation
type StatsService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type statsService struct {
	files     repositories.FileRepository
	whitelist repositories.WhitelistRepository
	accessLog repositories.AccessLogRepository
	now       func() time.Time
}

// NewStatsService creates a new stats service
func NewStatsService(files repositories.FileRepository, whitelist repositories.WhitelistRepository, accessLog repositories.AccessLogRepository) StatsService {
	return &statsService{
		files:     files,
		whitelist: whitelist,
		accessLog: accessLog,
		now:       time.Now,
	}
}

// GetDashboardStats counts files, log entries and whitelist entries, plus
// the activity of the last week (files, new IPs) and day (denials)
func (s *statsService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)
	dayAgo := now.Add(-24 * time.Hour)

	var stats models.DashboardStats
	var err error

	if stats.TotalFiles, err = s.files.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalAccessRequests, err = s.accessLog.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalWhitelistedIPs, err = s.whitelist.Count(ctx); err != nil {
		return nil, err
	}
	if stats.NewFilesThisWeek, err = s.files.CountUploadedSince(ctx, weekAgo); err != nil {
		return nil, err
	}
	if stats.DeniedRequestsLast24h, err = s.accessLog.CountByStatusSince(ctx, models.StatusDenied, dayAgo); err != nil {
		return nil, err
	}
	if stats.RecentlyAddedIPs, err = s.whitelist.CountCreatedSince(ctx, weekAgo); err != nil {
		return nil, err
	}

	return &stats, nil
}
