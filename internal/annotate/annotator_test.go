package annotate_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Tej343/Document-Fraud-Detection/internal/annotate"
	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/mocks"
)

func TestAnnotator_NoSuspiciousSpans(t *testing.T) {
	a := annotate.New(new(mocks.MockDocumentReader))

	var buf bytes.Buffer
	err := a.Annotate(context.Background(), "doc.pdf", nil, &buf)

	assert.ErrorIs(t, err, domain.ErrNoSuspiciousSpans)
	assert.Zero(t, buf.Len())
}

func TestAnnotator_UnreadableSource(t *testing.T) {
	reader := new(mocks.MockDocumentReader)
	reader.On("Read", mock.Anything, "broken.pdf").Return(nil, domain.ErrDocumentUnreadable)
	a := annotate.New(reader)

	var buf bytes.Buffer
	err := a.Annotate(context.Background(), "broken.pdf", []domain.ContentSpan{
		{Text: "x", Page: 0, BBox: domain.BBox{Left: 10, Top: 30, Right: 60, Bottom: 20}},
	}, &buf)

	assert.ErrorIs(t, err, domain.ErrDocumentUnreadable)
}
