package dupdetect_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/dupdetect"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileHash(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.pdf", "identical bytes")
	b := writeFile(t, dir, "b.pdf", "identical bytes")
	c := writeFile(t, dir, "c.pdf", "different bytes")

	ha, err := dupdetect.FileHash(a)
	require.NoError(t, err)
	hb, err := dupdetect.FileHash(b)
	require.NoError(t, err)
	hc, err := dupdetect.FileHash(c)
	require.NoError(t, err)

	assert.Len(t, ha, 64)
	assert.Equal(t, ha, hb)
	assert.NotEqual(t, ha, hc)

	_, err = dupdetect.FileHash(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

func TestCosineSimilarity(t *testing.T) {
	text := "invoice number one thousand and one payable on receipt"

	assert.InDelta(t, 1.0, dupdetect.CosineSimilarity(text, text), 0.0001)
	assert.Equal(t, 0.0, dupdetect.CosineSimilarity("", text))
	assert.Equal(t, 0.0, dupdetect.CosineSimilarity(text, "   "))

	unrelated := dupdetect.CosineSimilarity(text, "zebra quartz kaleidoscope umbrella")
	assert.Less(t, unrelated, 0.2)

	partial := dupdetect.CosineSimilarity(text, "invoice number one thousand and one overdue notice")
	assert.Greater(t, partial, 0.0)
	assert.Greater(t, partial, unrelated)
	assert.LessOrEqual(t, partial, 1.0)
}

func TestCosineSimilarity_SharedAndDistinctTerms(t *testing.T) {
	// One shared term and one distinct term per side: vectors (1,1,0) and
	// (1,0,1), cosine exactly 0.5.
	assert.InDelta(t, 0.5, dupdetect.CosineSimilarity("invoice payment", "invoice refund"), 0.0001)
}

func TestDetector_ExactDuplicate(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "same content")
	source := writeFile(t, dir, "source.pdf", "same content")

	reader := new(mocks.MockDocumentReader)
	reader.On("PlainText", mock.Anything, mock.Anything).Return("invoice text body", nil)

	detector := dupdetect.NewDetector(reader, nil)
	report, err := detector.Check(context.Background(), target, "target.pdf", []dupdetect.SourceFile{
		{Name: "source.pdf", Path: source},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DuplicateVerdictExact, report.Verdict)
	require.NotNil(t, report.BestMatch)
	assert.True(t, report.BestMatch.ExactMatch)
	assert.Equal(t, report.TargetHash, report.BestMatch.SourceHash)
}

func TestDetector_RanksMatchesBestFirst(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "target bytes")
	near := writeFile(t, dir, "near.pdf", "near bytes")
	far := writeFile(t, dir, "far.pdf", "far bytes")

	reader := new(mocks.MockDocumentReader)
	reader.On("PlainText", mock.Anything, target).Return("quarterly invoice for consulting services rendered in march", nil)
	reader.On("PlainText", mock.Anything, near).Return("quarterly invoice for consulting services rendered in april", nil)
	reader.On("PlainText", mock.Anything, far).Return("employee onboarding handbook welcome chapter", nil)

	detector := dupdetect.NewDetector(reader, nil)
	report, err := detector.Check(context.Background(), target, "target.pdf", []dupdetect.SourceFile{
		{Name: "far.pdf", Path: far},
		{Name: "near.pdf", Path: near},
	})
	require.NoError(t, err)

	require.Len(t, report.Matches, 2)
	assert.Equal(t, "near.pdf", report.Matches[0].SourceFile)
	assert.Equal(t, "far.pdf", report.Matches[1].SourceFile)
	assert.GreaterOrEqual(t, report.Matches[0].MatchScore, report.Matches[1].MatchScore)
	assert.Equal(t, report.Matches[0].SourceFile, report.BestMatch.SourceFile)
}

func TestDetector_PartialOverlapBandsPossiblyRelated(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "target bytes")
	source := writeFile(t, dir, "source.pdf", "source bytes")

	reader := new(mocks.MockDocumentReader)
	reader.On("PlainText", mock.Anything, target).Return("invoice payment", nil)
	reader.On("PlainText", mock.Anything, source).Return("invoice refund", nil)

	detector := dupdetect.NewDetector(reader, nil)
	report, err := detector.Check(context.Background(), target, "target.pdf", []dupdetect.SourceFile{
		{Name: "source.pdf", Path: source},
	})
	require.NoError(t, err)

	assert.Equal(t, 50.0, report.BestMatch.MatchScore)
	assert.Equal(t, domain.DuplicateVerdictPossible, report.Verdict)
}

func TestDetector_EmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "bytes")

	detector := dupdetect.NewDetector(new(mocks.MockDocumentReader), nil)
	report, err := detector.Check(context.Background(), target, "target.pdf", nil)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
}

func TestDetector_SkipsUnreadableSources(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "target bytes")
	good := writeFile(t, dir, "good.pdf", "good bytes")

	reader := new(mocks.MockDocumentReader)
	reader.On("PlainText", mock.Anything, mock.Anything).Return("shared text", nil)

	detector := dupdetect.NewDetector(reader, nil)
	report, err := detector.Check(context.Background(), target, "target.pdf", []dupdetect.SourceFile{
		{Name: "gone.pdf", Path: filepath.Join(dir, "gone.pdf")},
		{Name: "good.pdf", Path: good},
	})
	require.NoError(t, err)

	require.Len(t, report.Matches, 1)
	assert.Equal(t, "good.pdf", report.Matches[0].SourceFile)
}

func TestDetector_AllSourcesUnreadable(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "bytes")

	// The target's text is extracted before the source loop runs.
	reader := new(mocks.MockDocumentReader)
	reader.On("PlainText", mock.Anything, target).Return("", nil)

	detector := dupdetect.NewDetector(reader, nil)
	report, err := detector.Check(context.Background(), target, "target.pdf", []dupdetect.SourceFile{
		{Name: "gone.pdf", Path: filepath.Join(dir, "gone.pdf")},
	})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrCorpusUnavailable)
}

func TestDetector_ImageSourcesUseOCR(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "target.pdf", "target bytes")
	scan := writeFile(t, dir, "scan.jpg", "jpeg bytes")

	reader := new(mocks.MockDocumentReader)
	reader.On("PlainText", mock.Anything, target).Return("receipt total forty dollars", nil)

	ocr := new(mocks.MockTextRecognizer)
	ocr.On("RecognizeFile", mock.Anything, scan).Return("receipt total forty dollars", nil)

	detector := dupdetect.NewDetector(reader, ocr)
	report, err := detector.Check(context.Background(), target, "target.pdf", []dupdetect.SourceFile{
		{Name: "scan.jpg", Path: scan},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DuplicateVerdictLikely, report.Verdict)
	assert.Greater(t, report.BestMatch.MatchScore, 70.0)
	ocr.AssertExpectations(t)
}
