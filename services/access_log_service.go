package services

import (
	"context"
	"log/slog"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
)

// AccessLogService interface defines audit log operations outside the gate
type AccessLogService interface {
	List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLogEntry, error)
	Record(ctx context.Context, ip string, fileID *int64, eventType models.EventType, status models.AccessStatus, details string) error
}

type accessLogService struct {
	repo   repositories.AccessLogRepository
	logger *slog.Logger
}

// NewAccessLogService creates a new access log service
func NewAccessLogService(repo repositories.AccessLogRepository, logger *slog.Logger) AccessLogService {
	return &accessLogService{repo: repo, logger: logger}
}

func (s *accessLogService) List(ctx context.Context, filter models.AccessLogFilter) ([]models.AccessLogEntry, error) {
	return s.repo.List(ctx, filter)
}

func (s *accessLogService) Record(ctx context.Context, ip string, fileID *int64, eventType models.EventType, status models.AccessStatus, details string) error {
	entry, err := models.NewAccessLogEntry(NormalizeIP(ip), fileID, eventType, status, details)
	if err != nil {
		return err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to append access log", slog.String("event", string(eventType)), slog.Any("error", err))
		return err
	}
	return nil
}
