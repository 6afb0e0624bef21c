package csvexport_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tej343/Document-Fraud-Detection/internal/csvexport"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(csvexport.BOM)

	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteRun(&domain.ScanRun{
		ID:        uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		ScanType:  domain.ScanTypeScore,
		FileName:  "invoice.pdf",
		Score:     9.09,
		Verdict:   "unexpected_formatting",
		CreatedAt: time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC),
	}))
	require.NoError(t, w.Flush())

	out := buf.String()
	assert.Equal(t, string(csvexport.BOM), out[:3])
	assert.Contains(t, out, "Scan ID,Scan Type,File Name,Score,Verdict,Scanned At")
	assert.Contains(t, out, "11111111-2222-3333-4444-555555555555,format_score,invoice.pdf,9.09,unexpected_formatting,2026-08-15 14:30:00")
}
