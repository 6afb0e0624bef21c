package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrDocumentUnreadable  = errors.New("document cannot be opened or parsed")
	ErrBaselineNotReady    = errors.New("baseline is empty; train on genuine documents first")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrCorpusUnavailable   = errors.New("reference corpus is empty or unavailable")
	ErrNoSuspiciousSpans   = errors.New("no suspicious spans to annotate")
)
