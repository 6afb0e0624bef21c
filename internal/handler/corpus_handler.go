package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// CorpusHandler manages the reference corpus behind the duplicate checker.
type CorpusHandler struct {
	corpusService service.CorpusService
	maxBytes      int64
}

// NewCorpusHandler creates a new CorpusHandler.
func NewCorpusHandler(corpusService service.CorpusService, cfg *config.Config) *CorpusHandler {
	return &CorpusHandler{
		corpusService: corpusService,
		maxBytes:      cfg.Review.MaxFileSizeMB * 1024 * 1024,
	}
}

// Add handles POST /api/v1/corpus
// @Summary Add a reference document to the corpus
// @Tags corpus
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Reference document (PDF, JPG or PNG)"
// @Success 201 {object} APIResponse
// @Router /corpus [post]
func (h *CorpusHandler) Add(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer file.Close()

	if err := validateUpload(header, h.maxBytes, false); err != nil {
		HandleError(c, err)
		return
	}
	if err := h.corpusService.Add(c.Request.Context(), header.Filename, file, header.Size); err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, gin.H{"file_name": header.Filename})
}

// List handles GET /api/v1/corpus
// @Summary List the reference corpus
// @Tags corpus
// @Produce json
// @Success 200 {object} APIResponse
// @Router /corpus [get]
func (h *CorpusHandler) List(c *gin.Context) {
	objects, err := h.corpusService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, objects)
}

// Remove handles DELETE /api/v1/corpus/:name
// @Summary Remove a reference document from the corpus
// @Tags corpus
// @Produce json
// @Success 200 {object} APIResponse
// @Router /corpus/{name} [delete]
func (h *CorpusHandler) Remove(c *gin.Context) {
	name := c.Param("name")
	if err := h.corpusService.Remove(c.Request.Context(), name); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": name})
}
