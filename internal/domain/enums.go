package domain

// FileType represents the file types accepted for analysis.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedExtensions maps file extensions (without dot) to FileType. The
// fingerprint engine only accepts PDFs; the duplicate checker also takes
// raster images via OCR.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// TamperVerdict is the outcome of a metadata consistency check.
type TamperVerdict string

const (
	VerdictClean      TamperVerdict = "clean"
	VerdictEdited     TamperVerdict = "edited"
	VerdictUnreadable TamperVerdict = "unreadable"
)

// DuplicateVerdict bands the best similarity score of a duplicate check.
type DuplicateVerdict string

const (
	DuplicateVerdictExact    DuplicateVerdict = "exact_duplicate"
	DuplicateVerdictLikely   DuplicateVerdict = "potential_duplicate"
	DuplicateVerdictPossible DuplicateVerdict = "possibly_related"
	DuplicateVerdictNone     DuplicateVerdict = "no_match"
)

// ScanType identifies which analysis produced a scan run.
type ScanType string

const (
	ScanTypeScore     ScanType = "format_score"
	ScanTypeMetadata  ScanType = "metadata"
	ScanTypeDuplicate ScanType = "duplicate"
)
