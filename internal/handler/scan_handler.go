package handler

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Tej343/Document-Fraud-Detection/internal/csvexport"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

const (
	defaultScanPageLimit = 50
	maxScanPageLimit     = 500
)

// ScanHandler serves the scan audit trail.
type ScanHandler struct {
	scans port.ScanRunRepository
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scans port.ScanRunRepository) *ScanHandler {
	return &ScanHandler{scans: scans}
}

// List handles GET /api/v1/scans
// @Summary List recorded scan runs
// @Tags scans
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 500)"
// @Success 200 {object} APIResponse
// @Router /scans [get]
func (h *ScanHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultScanPageLimit)))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxScanPageLimit {
		limit = defaultScanPageLimit
	}

	runs, total, err := h.scans.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, runs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ExportCSV handles GET /api/v1/scans/export
// @Summary Export all scan runs as CSV
// @Tags scans
// @Produce text/csv
// @Success 200 {file} file
// @Router /scans/export [get]
func (h *ScanHandler) ExportCSV(c *gin.Context) {
	runs, err := h.scans.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("scan_runs_%s.csv", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	for i := range runs {
		if err := w.WriteRun(&runs[i]); err != nil {
			return
		}
	}
	_ = w.Flush()
}

// ExportXLSX handles GET /api/v1/scans/export.xlsx
// @Summary Export all scan runs as an Excel workbook
// @Tags scans
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /scans/export.xlsx [get]
func (h *ScanHandler) ExportXLSX(c *gin.Context) {
	runs, err := h.scans.ListAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scan Runs"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		HandleError(c, err)
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	header := []interface{}{"Scan ID", "Scan Type", "File Name", "Score", "Verdict", "Scanned At"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		HandleError(c, err)
		return
	}
	for i := range runs {
		run := &runs[i]
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{
			run.ID.String(),
			string(run.ScanType),
			run.FileName,
			run.Score,
			run.Verdict,
			run.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			HandleError(c, err)
			return
		}
	}

	fileName := fmt.Sprintf("scan_runs_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("writing xlsx export: %v", err)
	}
}
