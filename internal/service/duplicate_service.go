package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/dupdetect"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// DuplicateService checks a target document for duplicates against a
// reference corpus: a local directory when sourceDir is given, otherwise the
// configured S3 prefix.
type DuplicateService interface {
	Check(ctx context.Context, targetPath, targetName, sourceDir string) (*domain.DuplicateReport, error)
}

type duplicateService struct {
	detector *dupdetect.Detector
	storage  port.ObjectStorage
	scans    port.ScanRunRepository
	cfg      *config.Config
}

// NewDuplicateService creates a DuplicateService. storage may be nil when no
// S3 corpus is configured.
func NewDuplicateService(
	detector *dupdetect.Detector,
	storage port.ObjectStorage,
	scans port.ScanRunRepository,
	cfg *config.Config,
) DuplicateService {
	return &duplicateService{detector: detector, storage: storage, scans: scans, cfg: cfg}
}

func (s *duplicateService) Check(ctx context.Context, targetPath, targetName, sourceDir string) (*domain.DuplicateReport, error) {
	var (
		sources []dupdetect.SourceFile
		cleanup func()
		err     error
	)
	if sourceDir != "" {
		sources, err = localSources(sourceDir)
	} else if s.storage != nil && s.cfg.S3.Enabled() {
		sources, cleanup, err = s.s3Sources(ctx)
	} else {
		return nil, domain.ErrCorpusUnavailable
	}
	if err != nil {
		return nil, err
	}
	if cleanup != nil {
		defer cleanup()
	}

	report, err := s.detector.Check(ctx, targetPath, targetName, sources)
	if err != nil {
		return nil, err
	}
	s.recordRun(ctx, report)
	return report, nil
}

// localSources lists the analyzable files directly under dir.
func localSources(dir string) ([]dupdetect.SourceFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}
	var sources []dupdetect.SourceFile
	for _, entry := range entries {
		if entry.IsDir() || !analyzable(entry.Name()) {
			continue
		}
		sources = append(sources, dupdetect.SourceFile{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}
	return sources, nil
}

// s3Sources downloads the configured corpus prefix into a temp directory.
// The returned cleanup removes it.
func (s *duplicateService) s3Sources(ctx context.Context) ([]dupdetect.SourceFile, func(), error) {
	objects, err := s.storage.List(ctx, s.cfg.S3.Bucket, s.cfg.S3.Prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", domain.ErrCorpusUnavailable, err)
	}

	tmpDir, err := os.MkdirTemp("", "fraudcheck-corpus-*")
	if err != nil {
		return nil, nil, fmt.Errorf("creating corpus dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	var sources []dupdetect.SourceFile
	for _, obj := range objects {
		name := filepath.Base(obj.Key)
		if !analyzable(name) {
			continue
		}
		data, err := s.storage.Download(ctx, s.cfg.S3.Bucket, obj.Key)
		if err != nil {
			log.Printf("duplicates: skipping corpus object %s: %v", obj.Key, err)
			continue
		}
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, data, 0o600); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("staging corpus object %s: %w", obj.Key, err)
		}
		sources = append(sources, dupdetect.SourceFile{Name: name, Path: path})
	}
	return sources, cleanup, nil
}

func analyzable(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	_, ok := domain.AllowedExtensions[ext]
	return ok
}

func (s *duplicateService) recordRun(ctx context.Context, report *domain.DuplicateReport) {
	if s.scans == nil {
		return
	}
	detail, err := json.Marshal(report)
	if err != nil {
		detail = nil
	}
	score := 0.0
	if report.BestMatch != nil {
		score = report.BestMatch.MatchScore
	}
	run := &domain.ScanRun{
		ID:       uuid.New(),
		ScanType: domain.ScanTypeDuplicate,
		FileName: report.TargetFile,
		Score:    score,
		Verdict:  string(report.Verdict),
		Detail:   detail,
	}
	if err := s.scans.Create(ctx, run); err != nil {
		log.Printf("duplicates: recording scan run for %s failed: %v", report.TargetFile, err)
	}
}
