package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
)

// validateUpload checks the extension and declared size of an uploaded file
// against the accepted set.
func validateUpload(header *multipart.FileHeader, maxBytes int64, pdfOnly bool) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok || (pdfOnly && fileType != domain.FileTypePDF) {
		return domain.ErrUnsupportedFileType
	}
	if header.Size > maxBytes {
		return domain.ErrFileTooLarge
	}
	return nil
}

// stageUpload copies an uploaded file into dir, keeping its extension so
// downstream type dispatch works, and returns the staged path.
func stageUpload(header *multipart.FileHeader, dir string) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload %q: %w", header.Filename, err)
	}
	defer src.Close()

	path := filepath.Join(dir, filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("staging upload %q: %w", header.Filename, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("staging upload %q: %w", header.Filename, err)
	}
	return path, nil
}
