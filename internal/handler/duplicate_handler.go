package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// DuplicateHandler handles duplicate-check endpoints.
type DuplicateHandler struct {
	duplicateService service.DuplicateService
	maxBytes         int64
}

// NewDuplicateHandler creates a new DuplicateHandler.
func NewDuplicateHandler(duplicateService service.DuplicateService, cfg *config.Config) *DuplicateHandler {
	return &DuplicateHandler{
		duplicateService: duplicateService,
		maxBytes:         cfg.Review.MaxFileSizeMB * 1024 * 1024,
	}
}

// Check handles POST /api/v1/duplicates/check
// @Summary Check a document for duplicates in the reference corpus
// @Description Combines SHA-256 exact matching with lexical cosine similarity; the corpus is a server-local directory (source_dir) or the configured S3 prefix
// @Tags duplicates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Target document (PDF, JPG or PNG)"
// @Param source_dir formData string false "Server-local directory holding the reference corpus"
// @Success 200 {object} APIResponse
// @Router /duplicates/check [post]
func (h *DuplicateHandler) Check(c *gin.Context) {
	_, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	if err := validateUpload(header, h.maxBytes, false); err != nil {
		HandleError(c, err)
		return
	}

	tmpDir, err := os.MkdirTemp("", "fraudcheck-dup-*")
	if err != nil {
		HandleError(c, err)
		return
	}
	defer os.RemoveAll(tmpDir)

	path, err := stageUpload(header, tmpDir)
	if err != nil {
		HandleError(c, err)
		return
	}

	sourceDir := c.PostForm("source_dir")
	report, err := h.duplicateService.Check(c.Request.Context(), path, header.Filename, sourceDir)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}
