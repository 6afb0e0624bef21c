package fingerprint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/fingerprint"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func newScorer(reader *mocks.MockDocumentReader) *fingerprint.Scorer {
	return fingerprint.NewScorer(fingerprint.NewExtractor(reader))
}

func trainOn(t *testing.T, pages []port.PageContent) *domain.Baseline {
	t.Helper()
	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "trusted.pdf").Return(pages, nil)
	baseline, err := newTrainer(reader).Train(context.Background(), []string{"trusted.pdf"})
	require.NoError(t, err)
	return baseline
}

func TestScorer_UntrainedBaselineRejected(t *testing.T) {
	scorer := newScorer(new(mocks.MockDocumentReader))

	res, err := scorer.Score(context.Background(), "doc.pdf", nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrBaselineNotReady)

	empty := &domain.Baseline{Counts: map[domain.SignatureKey]int{}}
	res, err = scorer.Score(context.Background(), "doc.pdf", empty)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrBaselineNotReady)
}

func TestScorer_CleanDocumentScoresZero(t *testing.T) {
	pages := []port.PageContent{{Spans: []port.TextSpan{bodySpan("hello"), bodySpan("world")}}}
	baseline := trainOn(t, pages)

	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "candidate.pdf").Return(pages, nil)

	res, err := newScorer(reader).Score(context.Background(), "candidate.pdf", baseline)
	require.NoError(t, err)

	assert.Equal(t, 0.0, res.AnomalyPercent)
	assert.Empty(t, res.Unexpected)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.SuspiciousSpans)
	assert.Equal(t, 2, res.TotalOccurrences)
	assert.Equal(t, 0, res.UnexpectedOccurrences)
	assert.Equal(t, "candidate.pdf", res.Document)
}

// A candidate with ten spans matching the baseline and one altered span
// (larger red type) should score one unexpected occurrence out of eleven.
func TestScorer_TamperedSpanScored(t *testing.T) {
	trusted := make([]port.TextSpan, 0, 10)
	for i := 0; i < 10; i++ {
		trusted = append(trusted, bodySpan("line"))
	}
	baseline := trainOn(t, []port.PageContent{{Spans: trusted}})

	tampered := port.TextSpan{
		Text: "EDITED AMOUNT", Font: "Helvetica", Size: 14.0, Color: 0xFF0000,
		Ascender: 0.905, Descender: -0.212,
		BBox: [4]float64{100, 300, 220, 286},
	}
	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "candidate.pdf").Return([]port.PageContent{
		{Spans: append(trusted, tampered)},
	}, nil)

	res, err := newScorer(reader).Score(context.Background(), "candidate.pdf", baseline)
	require.NoError(t, err)

	assert.Equal(t, 11, res.TotalOccurrences)
	assert.Equal(t, 1, res.UnexpectedOccurrences)
	assert.Equal(t, 9.09, res.AnomalyPercent)
	require.Len(t, res.Unexpected, 1)
	assert.Empty(t, res.Missing)
	require.Len(t, res.SuspiciousSpans, 1)
	assert.Equal(t, "EDITED AMOUNT", res.SuspiciousSpans[0].Text)
	assert.Equal(t, "#FF0000", res.SuspiciousSpans[0].Color)
}

func TestScorer_MissingSignaturesReportedWithoutScoring(t *testing.T) {
	baseline := trainOn(t, []port.PageContent{{Spans: []port.TextSpan{
		bodySpan("body"),
		{Text: "footer", Font: "Courier", Size: 8},
	}}})

	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "candidate.pdf").Return([]port.PageContent{
		{Spans: []port.TextSpan{bodySpan("body only")}},
	}, nil)

	res, err := newScorer(reader).Score(context.Background(), "candidate.pdf", baseline)
	require.NoError(t, err)

	// Missing signatures are informational and never raise the percent.
	assert.Equal(t, 0.0, res.AnomalyPercent)
	require.Len(t, res.Missing, 1)
	assert.Empty(t, res.Unexpected)
}

func TestScorer_AllUnexpectedScoresHundred(t *testing.T) {
	baseline := trainOn(t, []port.PageContent{{Spans: []port.TextSpan{bodySpan("trusted")}}})

	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "candidate.pdf").Return([]port.PageContent{
		{Spans: []port.TextSpan{{Text: "alien", Font: "Comic Sans", Size: 20}}},
	}, nil)

	res, err := newScorer(reader).Score(context.Background(), "candidate.pdf", baseline)
	require.NoError(t, err)

	assert.Equal(t, 100.0, res.AnomalyPercent)
}

func TestScorer_EmptyCandidateScoresZero(t *testing.T) {
	baseline := trainOn(t, []port.PageContent{{Spans: []port.TextSpan{bodySpan("trusted")}}})

	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "blank.pdf").Return([]port.PageContent{{}}, nil)

	res, err := newScorer(reader).Score(context.Background(), "blank.pdf", baseline)
	require.NoError(t, err)

	assert.Equal(t, 0, res.TotalOccurrences)
	assert.Equal(t, 0.0, res.AnomalyPercent)
	require.Len(t, res.Missing, 1)
}

func TestScorer_DoesNotMutateBaseline(t *testing.T) {
	baseline := trainOn(t, []port.PageContent{{Spans: []port.TextSpan{bodySpan("trusted")}}})
	before := make(map[domain.SignatureKey]int, len(baseline.Counts))
	for k, v := range baseline.Counts {
		before[k] = v
	}

	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "candidate.pdf").Return([]port.PageContent{
		{Spans: []port.TextSpan{{Text: "alien", Font: "Courier", Size: 9}}},
	}, nil)

	_, err := newScorer(reader).Score(context.Background(), "candidate.pdf", baseline)
	require.NoError(t, err)
	assert.Equal(t, before, baseline.Counts)
}
