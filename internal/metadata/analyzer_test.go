package metadata_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/metadata"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func analyze(t *testing.T, info *port.DocumentInfo) *domain.MetadataReport {
	t.Helper()
	reader := new(mocks.MockDocumentReader)
	reader.On("Metadata", mock.Anything, "doc.pdf").Return(info, nil)
	a := metadata.NewAnalyzer(reader, nil)
	return a.Analyze(context.Background(), "doc.pdf", "doc.pdf")
}

func TestAnalyzer_CleanDocument(t *testing.T) {
	report := analyze(t, &port.DocumentInfo{
		Producer:     "Acme Billing System 4.2",
		Creator:      "Acme Billing System",
		CreationDate: "D:20240115093000Z",
		ModDate:      "D:20240115093000Z",
	})

	assert.Equal(t, domain.VerdictClean, report.Verdict)
	assert.Empty(t, report.Reasons)
	assert.Equal(t, "2024-01-15 09:30:00", report.CreationDate)
}

func TestAnalyzer_ModificationAfterCreation(t *testing.T) {
	report := analyze(t, &port.DocumentInfo{
		CreationDate: "D:20240115093000Z",
		ModDate:      "D:20240220110000Z",
	})

	assert.Equal(t, domain.VerdictEdited, report.Verdict)
	assert.Contains(t, report.Reasons[0], "Modification date is later")
}

func TestAnalyzer_SuspiciousKeywordInProducer(t *testing.T) {
	report := analyze(t, &port.DocumentInfo{Producer: "iLovePDF"})

	assert.Equal(t, domain.VerdictEdited, report.Verdict)
	assert.Contains(t, report.Reasons[0], "ilovepdf")
	assert.Contains(t, report.Reasons[0], "Producer")
}

func TestAnalyzer_KeywordMatchIsCaseInsensitive(t *testing.T) {
	report := analyze(t, &port.DocumentInfo{Creator: "MICROSOFT WORD 2016"})

	assert.Equal(t, domain.VerdictEdited, report.Verdict)
}

func TestAnalyzer_KeywordBehindEncodingArtifacts(t *testing.T) {
	// UTF-16 style interleaved NULs render as non-ASCII noise around the
	// tool name; stripping recovers the match.
	report := analyze(t, &port.DocumentInfo{Producer: "Microsoft® Word™"})

	assert.Equal(t, domain.VerdictEdited, report.Verdict)
}

func TestAnalyzer_UnreadableFile(t *testing.T) {
	reader := new(mocks.MockDocumentReader)
	reader.On("Metadata", mock.Anything, "broken.pdf").Return(nil, domain.ErrDocumentUnreadable)

	a := metadata.NewAnalyzer(reader, nil)
	report := a.Analyze(context.Background(), "broken.pdf", "broken.pdf")

	assert.Equal(t, domain.VerdictUnreadable, report.Verdict)
	assert.Len(t, report.Reasons, 1)
}

func TestAnalyzer_CustomKeywords(t *testing.T) {
	reader := new(mocks.MockDocumentReader)
	reader.On("Metadata", mock.Anything, "doc.pdf").Return(&port.DocumentInfo{Producer: "ghostscript"}, nil)

	a := metadata.NewAnalyzer(reader, []string{"ghostscript"})
	report := a.Analyze(context.Background(), "doc.pdf", "doc.pdf")

	assert.Equal(t, domain.VerdictEdited, report.Verdict)
}

func TestParsePDFDate(t *testing.T) {
	got := metadata.ParsePDFDate("D:20240115093000+05'30'")
	assert.Equal(t, time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC), got)

	assert.True(t, metadata.ParsePDFDate("").IsZero())
	assert.True(t, metadata.ParsePDFDate("D:2024").IsZero())
	assert.True(t, metadata.ParsePDFDate("not a date at all").IsZero())
}

func TestRemoveNonASCII(t *testing.T) {
	assert.Equal(t, "Wrd", metadata.RemoveNonASCII("Wörd®"))
	assert.Equal(t, "plain", metadata.RemoveNonASCII("plain"))
}
