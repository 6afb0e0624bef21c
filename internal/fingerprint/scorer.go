package fingerprint

import (
	"context"
	"math"
	"path/filepath"
	"sort"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// Scorer diffs a candidate document's signature multiset against a baseline.
type Scorer struct {
	extractor *Extractor
}

// NewScorer creates a Scorer using the given extractor.
func NewScorer(extractor *Extractor) *Scorer {
	return &Scorer{extractor: extractor}
}

// Score extracts the candidate and computes its anomaly result against the
// baseline. The score is occurrence-weighted: a signature appearing 500 times
// contributes 500x to the numerator, so pervasive structural anomalies score
// high while one-off formatting noise scores low. Signatures differing only
// by rounding jitter stay distinct; there is no fuzzy matching.
//
// Scoring never mutates the baseline. An empty or absent baseline is rejected
// with domain.ErrBaselineNotReady rather than answered with a misleading 0%
// or 100%.
func (s *Scorer) Score(ctx context.Context, path string, baseline *domain.Baseline) (*domain.ScoreResult, error) {
	if baseline.Empty() {
		return nil, domain.ErrBaselineNotReady
	}

	candidate, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	unexpected := make([]domain.SignatureKey, 0)
	unexpectedSet := make(map[domain.SignatureKey]bool)
	for key := range candidate.Counts {
		if baseline.Counts[key] == 0 {
			unexpected = append(unexpected, key)
			unexpectedSet[key] = true
		}
	}
	missing := make([]domain.SignatureKey, 0)
	for key := range baseline.Counts {
		if candidate.Counts[key] == 0 {
			missing = append(missing, key)
		}
	}
	sort.Slice(unexpected, func(i, j int) bool { return unexpected[i] < unexpected[j] })
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	total := candidate.TotalOccurrences()
	unexpectedOcc := 0
	for key := range unexpectedSet {
		unexpectedOcc += candidate.Counts[key]
	}

	percent := 0.0
	if total > 0 {
		percent = round2(100 * float64(unexpectedOcc) / float64(total))
	}

	suspicious := make([]domain.ContentSpan, 0)
	for _, span := range candidate.Spans {
		if unexpectedSet[span.Key] {
			suspicious = append(suspicious, span)
		}
	}

	return &domain.ScoreResult{
		Document:              filepath.Base(path),
		Unexpected:            unexpected,
		Missing:               missing,
		SuspiciousSpans:       suspicious,
		TotalOccurrences:      total,
		UnexpectedOccurrences: unexpectedOcc,
		AnomalyPercent:        percent,
	}, nil
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
