package domain

import (
	"time"

	"github.com/google/uuid"
)

// SignatureKey is the hashable identity of one rendering signature. Text keys
// concatenate (size, flags, font, color, ascender, descender); image keys are
// namespaced with an "IMG_" prefix so the two spaces never collide.
type SignatureKey string

// IsImage reports whether the key lives in the image namespace.
func (k SignatureKey) IsImage() bool {
	return len(k) >= 4 && k[:4] == "IMG_"
}

// BBox is a bounding rectangle in the document's native coordinate space.
type BBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// ContentSpan is one observed occurrence of a text signature: the literal
// text, where it sits, and the key that identifies how it is rendered.
// Image occurrences carry counts only and never produce spans.
type ContentSpan struct {
	Text  string       `json:"text"`
	Page  int          `json:"page"`
	Key   SignatureKey `json:"key"`
	Color string       `json:"color"`
	BBox  BBox         `json:"bbox"`
}

// Baseline is the aggregate frequency table of rendering signatures learned
// from trusted documents. A nil *Baseline means "never trained"; a non-nil
// value with TrainedDocs == 0 means "trained on zero documents". Both are
// rejected at scoring time.
type Baseline struct {
	Counts      map[SignatureKey]int `json:"counts"`
	TrainedDocs int                  `json:"trained_docs"`
	TrainedAt   time.Time            `json:"trained_at"`
}

// Empty reports whether the baseline holds no signatures.
func (b *Baseline) Empty() bool {
	return b == nil || len(b.Counts) == 0
}

// Size returns the number of distinct signatures in the baseline.
func (b *Baseline) Size() int {
	if b == nil {
		return 0
	}
	return len(b.Counts)
}

// ScoreResult is the output of one scoring pass. It never references the
// baseline it was computed against.
type ScoreResult struct {
	Document              string         `json:"document"`
	Unexpected            []SignatureKey `json:"unexpected"`
	Missing               []SignatureKey `json:"missing"`
	SuspiciousSpans       []ContentSpan  `json:"suspicious_spans"`
	TotalOccurrences      int            `json:"total_occurrences"`
	UnexpectedOccurrences int            `json:"unexpected_occurrences"`
	AnomalyPercent        float64        `json:"anomaly_percent"`
}

// MetadataReport is the result of the metadata consistency check on one file.
type MetadataReport struct {
	FileName         string        `json:"file_name"`
	Verdict          TamperVerdict `json:"verdict"`
	Reasons          []string      `json:"reasons"`
	CreationDate     string        `json:"creation_date,omitempty"`
	ModificationDate string        `json:"modification_date,omitempty"`
	Producer         string        `json:"producer,omitempty"`
	Creator          string        `json:"creator,omitempty"`
	Title            string        `json:"title,omitempty"`
	FullMetadata     string        `json:"full_metadata"`
}

// DuplicateMatch is one source-file comparison in a duplicate check.
type DuplicateMatch struct {
	SourceFile string  `json:"source_file"`
	ExactMatch bool    `json:"exact_match"`
	MatchScore float64 `json:"match_score"`
	SourceHash string  `json:"source_hash"`
	TargetHash string  `json:"target_hash"`
}

// DuplicateReport ranks all matches for one target file.
type DuplicateReport struct {
	TargetFile string           `json:"target_file"`
	TargetHash string           `json:"target_hash"`
	Verdict    DuplicateVerdict `json:"verdict"`
	BestMatch  *DuplicateMatch  `json:"best_match,omitempty"`
	Matches    []DuplicateMatch `json:"matches"`
}

// ScanRun is one recorded analysis operation, persisted for the review audit
// trail. Detail holds the operation-specific result as JSON.
type ScanRun struct {
	ID        uuid.UUID `db:"id" json:"id"`
	ScanType  ScanType  `db:"scan_type" json:"scan_type"`
	FileName  string    `db:"file_name" json:"file_name"`
	Score     float64   `db:"score" json:"score"`
	Verdict   string    `db:"verdict" json:"verdict"`
	Detail    []byte    `db:"detail" json:"detail,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
