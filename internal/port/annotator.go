package port

import (
	"context"
	"io"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// Annotator draws a marker rectangle per span's bounding box on its page and
// re-serializes the document to w. The re-serialization is entirely outside
// the scoring core.
type Annotator interface {
	Annotate(ctx context.Context, srcPath string, spans []domain.ContentSpan, w io.Writer) error
}
