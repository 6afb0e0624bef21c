// Package annotate re-serializes a scored document with a red rectangle
// drawn over every suspicious span, so a reviewer can see exactly which runs
// carried a rendering signature never seen in training.
package annotate

import (
	"context"
	"fmt"
	"io"

	"github.com/signintech/gopdf"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

const markerLineWidth = 1.5

// PDFAnnotator imports the source pages with gopdf and strokes marker boxes
// on top. Page geometry comes from the document reader.
type PDFAnnotator struct {
	reader port.DocumentReader
}

// New creates a PDFAnnotator.
func New(reader port.DocumentReader) port.Annotator {
	return &PDFAnnotator{reader: reader}
}

// Annotate writes a copy of srcPath to w with each span's bounding box
// outlined in red on its page.
func (a *PDFAnnotator) Annotate(ctx context.Context, srcPath string, spans []domain.ContentSpan, w io.Writer) error {
	if len(spans) == 0 {
		return domain.ErrNoSuspiciousSpans
	}

	pages, err := a.reader.Read(ctx, srcPath)
	if err != nil {
		return err
	}

	byPage := make(map[int][]domain.ContentSpan, len(spans))
	for _, span := range spans {
		byPage[span.Page] = append(byPage[span.Page], span)
	}

	doc := gopdf.GoPdf{}
	doc.Start(gopdf.Config{Unit: gopdf.UnitPT, PageSize: *gopdf.PageSizeA4})

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		tpl := doc.ImportPage(srcPath, i+1, "/MediaBox")
		doc.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{W: page.Width, H: page.Height}})
		doc.UseImportedTemplate(tpl, 0, 0, page.Width, page.Height)

		doc.SetStrokeColor(255, 0, 0)
		doc.SetLineWidth(markerLineWidth)
		for _, span := range byPage[i] {
			// span boxes are in PDF coordinates (origin bottom-left, y up);
			// gopdf draws from the top-left with y down.
			width := span.BBox.Right - span.BBox.Left
			height := span.BBox.Top - span.BBox.Bottom
			if width <= 0 || height <= 0 {
				continue
			}
			doc.RectFromUpperLeftWithStyle(span.BBox.Left, page.Height-span.BBox.Top, width, height, "D")
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing annotated pdf: %w", err)
	}
	return nil
}
