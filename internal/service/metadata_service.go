package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/metadata"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// NamedFile pairs an uploaded file's display name with its temporary path.
type NamedFile struct {
	Name string
	Path string
}

// MetadataService runs metadata consistency checks over uploaded files.
type MetadataService interface {
	AnalyzeFiles(ctx context.Context, files []NamedFile) []domain.MetadataReport
}

type metadataService struct {
	analyzer *metadata.Analyzer
	scans    port.ScanRunRepository
}

// NewMetadataService creates a MetadataService.
func NewMetadataService(analyzer *metadata.Analyzer, scans port.ScanRunRepository) MetadataService {
	return &metadataService{analyzer: analyzer, scans: scans}
}

// AnalyzeFiles analyzes each file independently; unreadable files produce an
// unreadable verdict in their report, never an aborted batch.
func (s *metadataService) AnalyzeFiles(ctx context.Context, files []NamedFile) []domain.MetadataReport {
	reports := make([]domain.MetadataReport, 0, len(files))
	for _, f := range files {
		report := s.analyzer.Analyze(ctx, f.Path, f.Name)
		reports = append(reports, *report)
		s.recordRun(ctx, report)
	}
	return reports
}

func (s *metadataService) recordRun(ctx context.Context, report *domain.MetadataReport) {
	if s.scans == nil {
		return
	}
	detail, err := json.Marshal(report)
	if err != nil {
		detail = nil
	}
	run := &domain.ScanRun{
		ID:       uuid.New(),
		ScanType: domain.ScanTypeMetadata,
		FileName: report.FileName,
		Verdict:  string(report.Verdict),
		Detail:   detail,
	}
	if err := s.scans.Create(ctx, run); err != nil {
		log.Printf("metadata: recording scan run for %s failed: %v", report.FileName, err)
	}
}
