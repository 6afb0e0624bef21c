package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility on
// Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Scan ID",
	"Scan Type",
	"File Name",
	"Score",
	"Verdict",
	"Scanned At",
}

// Writer exports scan runs as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteRun writes one scan run row.
func (w *Writer) WriteRun(run *domain.ScanRun) error {
	return w.csv.Write([]string{
		run.ID.String(),
		string(run.ScanType),
		run.FileName,
		fmt.Sprintf("%.2f", run.Score),
		run.Verdict,
		run.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	})
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
