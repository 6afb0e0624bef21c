package service

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/fingerprint"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// BaselineSummary describes the session's trained baseline without exposing
// the frequency table itself.
type BaselineSummary struct {
	TrainedDocs        int       `json:"trained_docs"`
	DistinctSignatures int       `json:"distinct_signatures"`
	TotalOccurrences   int       `json:"total_occurrences"`
	TrainedAt          time.Time `json:"trained_at"`
}

// ReviewService is the format-fingerprint review session: it owns the
// in-memory baseline and exposes train, score and annotate. The baseline is
// ephemeral and lives exactly as long as the process.
type ReviewService interface {
	Train(ctx context.Context, paths []string) (*BaselineSummary, error)
	Score(ctx context.Context, path, fileName string) (*domain.ScoreResult, error)
	Annotate(ctx context.Context, path, fileName string, w io.Writer) (*domain.ScoreResult, error)
	Baseline() (*BaselineSummary, error)
	Reset()
}

type reviewService struct {
	trainer   *fingerprint.Trainer
	scorer    *fingerprint.Scorer
	annotator port.Annotator
	scans     port.ScanRunRepository
	alerts    port.AlertSender
	cfg       *config.Config

	mu       sync.RWMutex
	baseline *domain.Baseline
}

// NewReviewService creates a ReviewService. The scan repository and alert
// sender are best-effort collaborators; scoring succeeds even if recording
// or alerting fails.
func NewReviewService(
	trainer *fingerprint.Trainer,
	scorer *fingerprint.Scorer,
	annotator port.Annotator,
	scans port.ScanRunRepository,
	alerts port.AlertSender,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		trainer:   trainer,
		scorer:    scorer,
		annotator: annotator,
		scans:     scans,
		alerts:    alerts,
		cfg:       cfg,
	}
}

// Train builds a fresh baseline from the given trusted documents and
// publishes it atomically: the new table is fully built before the pointer
// swap, so concurrent scorers see either the old baseline or the new one,
// never a partial.
func (s *reviewService) Train(ctx context.Context, paths []string) (*BaselineSummary, error) {
	baseline, err := s.trainer.Train(ctx, paths)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.baseline = baseline
	s.mu.Unlock()

	return summarize(baseline), nil
}

// Score scores one candidate against the current baseline snapshot, records
// the run and raises an alert when the score crosses the configured
// threshold.
func (s *reviewService) Score(ctx context.Context, path, fileName string) (*domain.ScoreResult, error) {
	s.mu.RLock()
	baseline := s.baseline
	s.mu.RUnlock()

	result, err := s.scorer.Score(ctx, path, baseline)
	if err != nil {
		return nil, err
	}
	result.Document = fileName

	s.recordRun(ctx, result, fileName)

	threshold := s.cfg.Review.AlertThreshold
	to := s.cfg.Alert.ToAddress
	if s.alerts != nil && to != "" && result.AnomalyPercent >= threshold {
		if err := s.alerts.SendScoreAlert(ctx, to, fileName, result.AnomalyPercent); err != nil {
			log.Printf("review: score alert for %s failed: %v", fileName, err)
		}
	}

	return result, nil
}

// Annotate scores the candidate and streams an annotated copy to w. A clean
// candidate yields domain.ErrNoSuspiciousSpans alongside its result so the
// caller can answer with the score instead of an untouched PDF.
func (s *reviewService) Annotate(ctx context.Context, path, fileName string, w io.Writer) (*domain.ScoreResult, error) {
	result, err := s.Score(ctx, path, fileName)
	if err != nil {
		return nil, err
	}
	if len(result.SuspiciousSpans) == 0 {
		return result, domain.ErrNoSuspiciousSpans
	}
	if err := s.annotator.Annotate(ctx, path, result.SuspiciousSpans, w); err != nil {
		return nil, err
	}
	return result, nil
}

// Baseline returns the current baseline summary, or ErrBaselineNotReady if
// no usable baseline exists.
func (s *reviewService) Baseline() (*BaselineSummary, error) {
	s.mu.RLock()
	baseline := s.baseline
	s.mu.RUnlock()

	if baseline.Empty() {
		return nil, domain.ErrBaselineNotReady
	}
	return summarize(baseline), nil
}

// Reset discards the session baseline.
func (s *reviewService) Reset() {
	s.mu.Lock()
	s.baseline = nil
	s.mu.Unlock()
}

func (s *reviewService) recordRun(ctx context.Context, result *domain.ScoreResult, fileName string) {
	if s.scans == nil {
		return
	}
	detail, err := json.Marshal(result)
	if err != nil {
		detail = nil
	}
	run := &domain.ScanRun{
		ID:       uuid.New(),
		ScanType: domain.ScanTypeScore,
		FileName: fileName,
		Score:    result.AnomalyPercent,
		Verdict:  scoreVerdict(result.AnomalyPercent),
		Detail:   detail,
	}
	if err := s.scans.Create(ctx, run); err != nil {
		log.Printf("review: recording scan run for %s failed: %v", fileName, err)
	}
}

func scoreVerdict(percent float64) string {
	if percent > 0 {
		return "unexpected_formatting"
	}
	return "clean"
}

func summarize(b *domain.Baseline) *BaselineSummary {
	total := 0
	for _, n := range b.Counts {
		total += n
	}
	return &BaselineSummary{
		TrainedDocs:        b.TrainedDocs,
		DistinctSignatures: b.Size(),
		TotalOccurrences:   total,
		TrainedAt:          b.TrainedAt,
	}
}
