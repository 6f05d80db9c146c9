package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/storage"
)

// ErrFileMissing is returned when a file record exists but its content is gone
var ErrFileMissing = errors.New("file not found on disk")

// UploadInput describes a script received from an administrator
type UploadInput struct {
	OriginalFilename string
	MimeType         string
	Content          io.Reader
	UploadedBy       *int64
	ClientIP         string
}

// FileService interface defines uploaded script operations
type FileService interface {
	GetAll(ctx context.Context) ([]models.File, error)
	GetByID(ctx context.Context, id int64) (*models.File, error)
	Upload(ctx context.Context, in UploadInput) (*models.File, error)
	Delete(ctx context.Context, id int64) error
	// Open returns the stored content of file; ErrFileMissing when the
	// record outlived its content
	Open(file *models.File) (*os.File, error)
	// LatestVIP returns the newest uploaded VIP script
	LatestVIP(ctx context.Context) (*models.File, error)
	MaxUploadBytes() int64
}

type fileService struct {
	repo      repositories.FileRepository
	store     *storage.FileStore
	accessLog AccessLogService
	logger    *slog.Logger
}

// NewFileService creates a new file service
func NewFileService(repo repositories.FileRepository, store *storage.FileStore, accessLog AccessLogService, logger *slog.Logger) FileService {
	return &fileService{
		repo:      repo,
		store:     store,
		accessLog: accessLog,
		logger:    logger,
	}
}

func (s *fileService) GetAll(ctx context.Context) ([]models.File, error) {
	return s.repo.GetAll(ctx)
}

func (s *fileService) GetByID(ctx context.Context, id int64) (*models.File, error) {
	return s.repo.GetByID(ctx, id)
}

// Upload stores the content on disk, records it and appends the
// file_upload audit entry
func (s *fileService) Upload(ctx context.Context, in UploadInput) (*models.File, error) {
	name := filepath.Base(in.OriginalFilename)
	if !models.IsVIPScript(name) {
		return nil, ErrInvalidFile
	}

	stored, size, err := s.store.Save(name, in.Content)
	if err != nil {
		return nil, err
	}

	mimeType := in.MimeType
	if mimeType == "" || mimeType == "application/octet-stream" {
		detected, err := mimetype.DetectFile(s.store.Path(stored))
		if err != nil {
			s.store.Remove(stored)
			return nil, fmt.Errorf("failed to detect content type: %w", err)
		}
		mimeType = detected.String()
	}

	file := &models.File{
		Filename:         stored,
		OriginalFilename: name,
		FileSize:         size,
		MimeType:         mimeType,
		UploadedBy:       in.UploadedBy,
	}
	if err := s.repo.Create(ctx, file); err != nil {
		if rmErr := s.store.Remove(stored); rmErr != nil {
			s.logger.Error("failed to remove orphaned upload", slog.String("file", stored), slog.Any("error", rmErr))
		}
		return nil, err
	}

	// The file is stored and listed at this point; a lost audit row is logged
	// rather than reported as a failed upload
	if err := s.accessLog.Record(ctx, in.ClientIP, &file.ID, models.EventFileUpload, models.StatusUpload,
		"File uploaded by admin: "+file.OriginalFilename); err != nil {
		s.logger.Error("failed to record upload", slog.Int64("file_id", file.ID), slog.Any("error", err))
	}

	s.logger.Info("file uploaded", slog.Int64("file_id", file.ID), slog.String("name", file.OriginalFilename), slog.Int64("size", size))
	return file, nil
}

// Delete removes the record first so a failed disk removal never leaves a
// listed file without content
func (s *fileService) Delete(ctx context.Context, id int64) error {
	file, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.store.Remove(file.Filename); err != nil {
		s.logger.Error("failed to remove stored file", slog.String("file", file.Filename), slog.Any("error", err))
	}
	return nil
}

func (s *fileService) Open(file *models.File) (*os.File, error) {
	f, err := s.store.Open(file.Filename)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", file.OriginalFilename, ErrFileMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return f, nil
}

func (s *fileService) MaxUploadBytes() int64 {
	return s.store.MaxBytes()
}

func (s *fileService) LatestVIP(ctx context.Context) (*models.File, error) {
	files, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range files {
		if strings.Contains(files[i].OriginalFilename, models.VIPSuffix) {
			return &files[i], nil
		}
	}
	return nil, fmt.Errorf("vip script: %w", repositories.ErrNotFound)
}
