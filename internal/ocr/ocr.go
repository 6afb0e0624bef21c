// Package ocr wraps the Tesseract OCR engine via gosseract. Tesseract must
// be installed on the system (apt-get install tesseract-ocr libtesseract-dev
// on Debian/Ubuntu).
package ocr

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// Engine is the gosseract-backed TextRecognizer. A gosseract client is not
// safe for concurrent use, so Engine opens one per recognition.
type Engine struct {
	languages []string
}

// New creates an Engine. With no languages, Tesseract defaults to English.
func New(languages ...string) port.TextRecognizer {
	return &Engine{languages: languages}
}

// RecognizeFile runs OCR over one image file and returns the recognized text.
func (e *Engine) RecognizeFile(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return "", fmt.Errorf("setting ocr language: %w", err)
		}
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("loading image %q: %w", path, err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing %q: %w", path, err)
	}
	return text, nil
}
