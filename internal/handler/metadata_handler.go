package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// MetadataHandler handles metadata consistency-check endpoints.
type MetadataHandler struct {
	metadataService service.MetadataService
	maxBytes        int64
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(metadataService service.MetadataService, cfg *config.Config) *MetadataHandler {
	return &MetadataHandler{
		metadataService: metadataService,
		maxBytes:        cfg.Review.MaxFileSizeMB * 1024 * 1024,
	}
}

// Analyze handles POST /api/v1/metadata/analyze
// @Summary Check PDF metadata for editing traces
// @Description Flags modification dates preceding creation dates and known editing-tool signatures
// @Tags metadata
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "PDF documents to analyze"
// @Success 200 {object} APIResponse
// @Router /metadata/analyze [post]
func (h *MetadataHandler) Analyze(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FORM", "multipart form is required")
		return
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILES", "upload at least one PDF to analyze")
		return
	}

	tmpDir, err := os.MkdirTemp("", "fraudcheck-meta-*")
	if err != nil {
		HandleError(c, err)
		return
	}
	defer os.RemoveAll(tmpDir)

	files := make([]service.NamedFile, 0, len(headers))
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
		files = append(files, service.NamedFile{Name: header.Filename, Path: path})
	}

	reports := h.metadataService.AnalyzeFiles(c.Request.Context(), files)
	RespondOK(c, reports)
}
