package fingerprint

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// Trainer builds baselines from trusted documents.
type Trainer struct {
	extractor *Extractor
}

// NewTrainer creates a Trainer using the given extractor.
func NewTrainer(extractor *Extractor) *Trainer {
	return &Trainer{extractor: extractor}
}

// Train extracts every trusted document in order and sums the per-document
// frequency tables into one fresh Baseline. Per-document span lists are
// discarded; spans only matter for the candidate at scoring time. Each call
// starts from an empty table, so retraining replaces rather than accumulates.
// One unreadable document aborts the whole call: a silently partial baseline
// would be indistinguishable from a complete one.
func (t *Trainer) Train(ctx context.Context, paths []string) (*domain.Baseline, error) {
	baseline := &domain.Baseline{
		Counts:    make(map[domain.SignatureKey]int),
		TrainedAt: time.Now().UTC(),
	}
	for _, path := range paths {
		res, err := t.extractor.Extract(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("training on %s: %w", filepath.Base(path), err)
		}
		for key, count := range res.Counts {
			baseline.Counts[key] += count
		}
		baseline.TrainedDocs++
	}
	return baseline, nil
}
