package port

import (
	"context"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// ScanRunRepository persists the scan audit trail. Trained baselines are
// never stored; only per-operation results are.
type ScanRunRepository interface {
	Create(ctx context.Context, run *domain.ScanRun) error
	List(ctx context.Context, offset, limit int) ([]domain.ScanRun, int, error)
	ListAll(ctx context.Context) ([]domain.ScanRun, error)
}
