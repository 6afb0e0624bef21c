package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/metadata"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
	"github.com/Tej343/Document-Fraud-Detection/internal/service"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func TestMetadataService_MixedBatch(t *testing.T) {
	reader := new(mocks.MockDocumentReader)
	reader.On("Metadata", mock.Anything, "/tmp/clean.pdf").Return(&port.DocumentInfo{
		Producer: "Acme Billing System",
	}, nil)
	reader.On("Metadata", mock.Anything, "/tmp/broken.pdf").Return(nil, domain.ErrDocumentUnreadable)

	scans := new(mocks.MockScanRunRepo)
	scans.On("Create", mock.Anything, mock.MatchedBy(func(run *domain.ScanRun) bool {
		return run.ScanType == domain.ScanTypeMetadata
	})).Return(nil)

	svc := service.NewMetadataService(metadata.NewAnalyzer(reader, nil), scans)
	reports := svc.AnalyzeFiles(context.Background(), []service.NamedFile{
		{Name: "clean.pdf", Path: "/tmp/clean.pdf"},
		{Name: "broken.pdf", Path: "/tmp/broken.pdf"},
	})

	require.Len(t, reports, 2)
	assert.Equal(t, domain.VerdictClean, reports[0].Verdict)
	assert.Equal(t, domain.VerdictUnreadable, reports[1].Verdict)
	scans.AssertNumberOfCalls(t, "Create", 2)
}
