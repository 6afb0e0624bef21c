package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// CorpusService manages the S3 reference corpus the duplicate checker runs
// against: reviewers add, list and remove reference documents.
type CorpusService interface {
	Add(ctx context.Context, fileName string, body io.Reader, size int64) error
	List(ctx context.Context) ([]port.ObjectInfo, error)
	Remove(ctx context.Context, fileName string) error
}

type corpusService struct {
	storage port.ObjectStorage
	cfg     *config.Config
}

// NewCorpusService creates a CorpusService. storage may be nil when no S3
// corpus is configured; every call then fails with ErrCorpusUnavailable.
func NewCorpusService(storage port.ObjectStorage, cfg *config.Config) CorpusService {
	return &corpusService{storage: storage, cfg: cfg}
}

func (s *corpusService) enabled() bool {
	return s.storage != nil && s.cfg.S3.Enabled()
}

// key resolves a file name under the corpus prefix. Base strips any path
// segments, so callers can never reach objects outside the prefix.
func (s *corpusService) key(fileName string) string {
	return s.cfg.S3.Prefix + filepath.Base(fileName)
}

// Add stores one reference document under the configured corpus prefix.
func (s *corpusService) Add(ctx context.Context, fileName string, body io.Reader, size int64) error {
	if !s.enabled() {
		return domain.ErrCorpusUnavailable
	}
	if !analyzable(fileName) {
		return domain.ErrUnsupportedFileType
	}
	return s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.S3.Bucket,
		Key:         s.key(fileName),
		Body:        body,
		ContentType: corpusContentType(fileName),
		Size:        size,
	})
}

// List returns the objects currently under the corpus prefix.
func (s *corpusService) List(ctx context.Context) ([]port.ObjectInfo, error) {
	if !s.enabled() {
		return nil, domain.ErrCorpusUnavailable
	}
	objects, err := s.storage.List(ctx, s.cfg.S3.Bucket, s.cfg.S3.Prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	return objects, nil
}

// Remove deletes one reference document by file name.
func (s *corpusService) Remove(ctx context.Context, fileName string) error {
	if !s.enabled() {
		return domain.ErrCorpusUnavailable
	}
	return s.storage.Delete(ctx, s.cfg.S3.Bucket, s.key(fileName))
}

func corpusContentType(name string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "pdf":
		return "application/pdf"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
