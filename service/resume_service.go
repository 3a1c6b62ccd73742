package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/models"
	"portfolio-backend/storage"
)

// ProfileStore is the read surface the resume service needs.
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DownloadLog records resume download events.
type DownloadLog interface {
	Create(ctx context.Context, d *models.ResumeDownload) error
}

// ResumeService produces resume files and logs each download event.
// Generation is a stub: it renders a plain-text placeholder rather than a
// typeset document.
type ResumeService struct {
	users     ProfileStore
	downloads DownloadLog
	files     storage.Storage
}

// ResumeServiceOption is a functional option for ResumeService
type ResumeServiceOption func(*ResumeService)

// ResumeWithProfileStore sets the user store
func ResumeWithProfileStore(store ProfileStore) ResumeServiceOption {
	return func(s *ResumeService) {
		s.users = store
	}
}

// ResumeWithDownloadLog sets the download log store
func ResumeWithDownloadLog(log DownloadLog) ResumeServiceOption {
	return func(s *ResumeService) {
		s.downloads = log
	}
}

// ResumeWithStorage sets the file storage backend
func ResumeWithStorage(files storage.Storage) ResumeServiceOption {
	return func(s *ResumeService) {
		s.files = files
	}
}

// NewResumeService creates a new resume service
func NewResumeService(opts ...ResumeServiceOption) *ResumeService {
	s := &ResumeService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateResumeRequest represents a request to generate a resume
type GenerateResumeRequest struct {
	UserID string
	Format models.ResumeFormat
}

// Generate renders a resume file, stores it, and records the download.
func (s *ResumeService) Generate(ctx context.Context, req GenerateResumeRequest) (*models.ResumeDownload, error) {
	if s.users == nil || s.downloads == nil || s.files == nil {
		return nil, errors.New("resume service not configured")
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	format := req.Format
	if format == "" {
		format = models.ResumeFormatPDF
	}

	content := renderResume(user)
	download := &models.ResumeDownload{
		ID:         models.NewID(models.PrefixResumeDownload),
		UserID:     user.ID,
		FileFormat: format,
		FileSize:   int64(len(content)),
	}

	name := strings.ReplaceAll(strings.ToLower(user.Name), " ", "_")
	filename := fmt.Sprintf("resume_%s.%s", name, format)
	path, err := s.files.Upload(ctx, download.ID, filename, strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}
	download.DownloadURL = "/downloads/" + path

	if err := s.downloads.Create(ctx, download); err != nil {
		// Keep storage and the log consistent.
		s.files.Delete(ctx, path)
		return nil, err
	}

	return download, nil
}

func renderResume(u *models.User) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", u.Name, u.Email)
	if u.Tagline != nil {
		fmt.Fprintf(&b, "%s\n\n", *u.Tagline)
	}
	if u.Bio != nil {
		fmt.Fprintf(&b, "%s\n\n", *u.Bio)
	}
	fmt.Fprintf(&b, "Generated %s\n", time.Now().UTC().Format("2006-01-02"))
	return b.String()
}
