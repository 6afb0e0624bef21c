package port

import "context"

// TextRecognizer abstracts the OCR engine used to pull text out of raster
// image files for content-based duplicate comparison.
type TextRecognizer interface {
	RecognizeFile(ctx context.Context, path string) (string, error)
}
