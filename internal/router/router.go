package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/handler"
	"github.com/Tej343/Document-Fraud-Detection/internal/middleware"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	reviewH *handler.ReviewHandler,
	metadataH *handler.MetadataHandler,
	duplicateH *handler.DuplicateHandler,
	corpusH *handler.CorpusHandler,
	scanH *handler.ScanHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/token", authH.Token)

	// Protected routes. When no review key is configured the API runs open,
	// which is the expected mode for local single-reviewer use.
	protected := v1.Group("")
	if cfg.Auth.ReviewKey != "" {
		protected.Use(middleware.AuthMiddleware(authSvc))
	}

	// Format-fingerprint review routes
	review := protected.Group("/review")
	review.POST("/train", reviewH.Train)
	review.POST("/score", reviewH.Score)
	review.POST("/annotate", reviewH.Annotate)
	review.GET("/baseline", reviewH.Baseline)
	review.DELETE("/baseline", reviewH.Reset)

	// Metadata analysis
	metadata := protected.Group("/metadata")
	metadata.POST("/analyze", metadataH.Analyze)

	// Duplicate detection
	duplicates := protected.Group("/duplicates")
	duplicates.POST("/check", duplicateH.Check)

	// Reference corpus management
	corpus := protected.Group("/corpus")
	corpus.POST("", corpusH.Add)
	corpus.GET("", corpusH.List)
	corpus.DELETE("/:name", corpusH.Remove)

	// Scan audit trail
	scans := protected.Group("/scans")
	scans.GET("", scanH.List)
	scans.GET("/export", scanH.ExportCSV)
	scans.GET("/export.xlsx", scanH.ExportXLSX)

	return r
}
