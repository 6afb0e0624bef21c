package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// ReviewHandler handles the format-fingerprint endpoints: train, score,
// annotate, and baseline management.
type ReviewHandler struct {
	reviewService service.ReviewService
	maxBytes      int64
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService service.ReviewService, cfg *config.Config) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		maxBytes:      cfg.Review.MaxFileSizeMB * 1024 * 1024,
	}
}

// Train handles POST /api/v1/review/train
// @Summary Train the baseline on genuine PDFs
// @Description Replaces the session baseline with one trained on the uploaded documents
// @Tags review
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Genuine PDF documents"
// @Success 200 {object} APIResponse
// @Router /review/train [post]
func (h *ReviewHandler) Train(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "upload at least one PDF to train")
		return
	}

	tmpDir, err := os.MkdirTemp("", "fraudcheck-train-*")
	if err != nil {
		HandleError(c, err)
		return
	}
	defer os.RemoveAll(tmpDir)

	paths := make([]string, 0, len(headers))
	for _, header := range headers {
		if err := validateUpload(header, h.maxBytes, true); err != nil {
			HandleError(c, err)
			return
		}
		path, err := stageUpload(header, tmpDir)
		if err != nil {
			HandleError(c, err)
			return
		}
		paths = append(paths, path)
	}

	summary, err := h.reviewService.Train(c.Request.Context(), paths)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Score handles POST /api/v1/review/score
// @Summary Score a candidate PDF against the trained baseline
// @Tags review
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Candidate PDF"
// @Success 200 {object} APIResponse
// @Router /review/score [post]
func (h *ReviewHandler) Score(c *gin.Context) {
	path, name, cleanup, ok := h.stageSingle(c)
	if !ok {
		return
	}
	defer cleanup()

	result, err := h.reviewService.Score(c.Request.Context(), path, name)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Annotate handles POST /api/v1/review/annotate
// @Summary Score a candidate and download it with suspicious spans boxed in red
// @Tags review
// @Accept multipart/form-data
// @Produce application/pdf
// @Param file formData file true "Candidate PDF"
// @Success 200 {file} binary
// @Router /review/annotate [post]
func (h *ReviewHandler) Annotate(c *gin.Context) {
	path, name, cleanup, ok := h.stageSingle(c)
	if !ok {
		return
	}
	defer cleanup()

	var buf bytes.Buffer
	result, err := h.reviewService.Annotate(c.Request.Context(), path, name, &buf)
	if errors.Is(err, domain.ErrNoSuspiciousSpans) {
		// nothing to box; answer with the score instead of an untouched copy
		RespondOK(c, result)
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "annotated_"+name))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// Baseline handles GET /api/v1/review/baseline
func (h *ReviewHandler) Baseline(c *gin.Context) {
	summary, err := h.reviewService.Baseline()
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// Reset handles DELETE /api/v1/review/baseline
func (h *ReviewHandler) Reset(c *gin.Context) {
	h.reviewService.Reset()
	RespondOK(c, gin.H{"reset": true})
}

// stageSingle stages the required "file" form field into a temp dir. The
// error response is already written when ok is false.
func (h *ReviewHandler) stageSingle(c *gin.Context) (path, name string, cleanup func(), ok bool) {
	_, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return "", "", nil, false
	}
	if err := validateUpload(header, h.maxBytes, true); err != nil {
		HandleError(c, err)
		return "", "", nil, false
	}

	tmpDir, err := os.MkdirTemp("", "fraudcheck-score-*")
	if err != nil {
		HandleError(c, err)
		return "", "", nil, false
	}
	path, err = stageUpload(header, tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		HandleError(c, err)
		return "", "", nil, false
	}
	return path, header.Filename, func() { _ = os.RemoveAll(tmpDir) }, true
}
