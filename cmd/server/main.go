package main

import (
	"fmt"
	"log"

	"github.com/Tej343/Document-Fraud-Detection/internal/annotate"
	"github.com/Tej343/Document-Fraud-Detection/internal/config"
	"github.com/Tej343/Document-Fraud-Detection/internal/dupdetect"
	"github.com/Tej343/Document-Fraud-Detection/internal/email/noop"
	"github.com/Tej343/Document-Fraud-Detection/internal/email/ses"
	"github.com/Tej343/Document-Fraud-Detection/internal/fingerprint"
	"github.com/Tej343/Document-Fraud-Detection/internal/handler"
	"github.com/Tej343/Document-Fraud-Detection/internal/metadata"
	"github.com/Tej343/Document-Fraud-Detection/internal/ocr"
	"github.com/Tej343/Document-Fraud-Detection/internal/pdfreader"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
	"github.com/Tej343/Document-Fraud-Detection/internal/repository/postgres"
	"github.com/Tej343/Document-Fraud-Detection/internal/router"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
	s3storage "github.com/Tej343/Document-Fraud-Detection/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	scanRepo := postgres.NewScanRunRepo(db)

	// Initialize document pipeline
	reader := pdfreader.New()
	extractor := fingerprint.NewExtractor(reader)
	trainer := fingerprint.NewTrainer(extractor)
	scorer := fingerprint.NewScorer(extractor)
	annotator := annotate.New(reader)
	recognizer := ocr.New(cfg.Review.OCRLanguages...)
	detector := dupdetect.NewDetector(reader, recognizer)
	analyzer := metadata.NewAnalyzer(reader, cfg.Review.SuspiciousKeywords)

	// Initialize storage for the reference corpus
	var storage port.ObjectStorage
	if cfg.S3.Enabled() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize score alerting
	var alerts port.AlertSender
	switch cfg.Alert.Provider {
	case "ses":
		alerts, err = ses.NewSESSender(cfg.Alert.Region, cfg.Alert.FromAddress, cfg.Alert.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		alerts = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.Auth)
	reviewSvc := service.NewReviewService(trainer, scorer, annotator, scanRepo, alerts, cfg)
	metadataSvc := service.NewMetadataService(analyzer, scanRepo)
	duplicateSvc := service.NewDuplicateService(detector, storage, scanRepo, cfg)
	corpusSvc := service.NewCorpusService(storage, cfg)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	reviewH := handler.NewReviewHandler(reviewSvc, cfg)
	metadataH := handler.NewMetadataHandler(metadataSvc, cfg)
	duplicateH := handler.NewDuplicateHandler(duplicateSvc, cfg)
	corpusH := handler.NewCorpusHandler(corpusSvc, cfg)
	scanH := handler.NewScanHandler(scanRepo)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, authSvc, authH, reviewH, metadataH, duplicateH, corpusH, scanH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
