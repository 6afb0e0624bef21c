package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

type scanRunRepo struct {
	db *sqlx.DB
}

// NewScanRunRepo creates a new PostgreSQL-backed ScanRunRepository.
func NewScanRunRepo(db *sqlx.DB) port.ScanRunRepository {
	return &scanRunRepo{db: db}
}

func (r *scanRunRepo) Create(ctx context.Context, run *domain.ScanRun) error {
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO scan_runs
		(id, scan_type, file_name, score, verdict, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.ScanType, run.FileName, run.Score, run.Verdict, run.Detail, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("scanRunRepo.Create: %w", err)
	}
	return nil
}

func (r *scanRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ScanRun, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM scan_runs"); err != nil {
		return nil, 0, fmt.Errorf("scanRunRepo.List count: %w", err)
	}

	runs := []domain.ScanRun{}
	err := r.db.SelectContext(ctx, &runs,
		"SELECT * FROM scan_runs ORDER BY created_at DESC OFFSET $1 LIMIT $2", offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("scanRunRepo.List: %w", err)
	}
	return runs, total, nil
}

func (r *scanRunRepo) ListAll(ctx context.Context) ([]domain.ScanRun, error) {
	runs := []domain.ScanRun{}
	err := r.db.SelectContext(ctx, &runs, "SELECT * FROM scan_runs ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("scanRunRepo.ListAll: %w", err)
	}
	return runs, nil
}
