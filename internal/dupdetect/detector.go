// Package dupdetect finds exact and near duplicates of a target document in
// a reference corpus, combining file hashing with lexical term overlap.
package dupdetect

import (
	"context"
	"log"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// Similarity bands, in percent of cosine similarity.
const (
	likelyThreshold   = 70.0
	possibleThreshold = 50.0
)

// SourceFile is one reference document available as a local file.
type SourceFile struct {
	Name string
	Path string
}

// Detector compares a target document against reference documents.
type Detector struct {
	reader port.DocumentReader
	ocr    port.TextRecognizer
}

// NewDetector creates a Detector. The OCR engine may be nil, in which case
// raster images contribute no text.
func NewDetector(reader port.DocumentReader, ocr port.TextRecognizer) *Detector {
	return &Detector{reader: reader, ocr: ocr}
}

// Check hashes and text-compares the target against every source, ranks the
// matches by similarity, and bands the best score into a verdict. A source
// file that cannot be read is skipped with a log line; one broken corpus
// entry must not sink the whole check.
func (d *Detector) Check(ctx context.Context, targetPath, targetName string, sources []SourceFile) (*domain.DuplicateReport, error) {
	if len(sources) == 0 {
		return nil, domain.ErrCorpusUnavailable
	}

	targetHash, err := FileHash(targetPath)
	if err != nil {
		return nil, err
	}
	targetText := d.extractText(ctx, targetPath)

	matches := make([]domain.DuplicateMatch, 0, len(sources))
	exact := false
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		srcHash, err := FileHash(src.Path)
		if err != nil {
			log.Printf("dupdetect: skipping unreadable source %s: %v", src.Name, err)
			continue
		}
		srcText := d.extractText(ctx, src.Path)
		score := math.Round(CosineSimilarity(srcText, targetText)*100*100) / 100

		match := domain.DuplicateMatch{
			SourceFile: src.Name,
			ExactMatch: srcHash == targetHash,
			MatchScore: score,
			SourceHash: srcHash,
			TargetHash: targetHash,
		}
		if match.ExactMatch {
			exact = true
		}
		matches = append(matches, match)
	}
	if len(matches) == 0 {
		return nil, domain.ErrCorpusUnavailable
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	report := &domain.DuplicateReport{
		TargetFile: targetName,
		TargetHash: targetHash,
		Matches:    matches,
		BestMatch:  &matches[0],
	}
	switch {
	case exact:
		report.Verdict = domain.DuplicateVerdictExact
	case matches[0].MatchScore >= likelyThreshold:
		report.Verdict = domain.DuplicateVerdictLikely
	case matches[0].MatchScore >= possibleThreshold:
		report.Verdict = domain.DuplicateVerdictPossible
	default:
		report.Verdict = domain.DuplicateVerdictNone
	}
	return report, nil
}

// extractText pulls comparable text out of a file: PDFs through the document
// reader, raster images through OCR. Failures degrade to empty text, exactly
// like an image with no recognizable content.
func (d *Detector) extractText(ctx context.Context, path string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pdf":
		text, err := d.reader.PlainText(ctx, path)
		if err != nil {
			log.Printf("dupdetect: no text from %s: %v", filepath.Base(path), err)
			return ""
		}
		return text
	case "jpg", "jpeg", "png":
		if d.ocr == nil {
			return ""
		}
		text, err := d.ocr.RecognizeFile(ctx, path)
		if err != nil {
			log.Printf("dupdetect: ocr failed for %s: %v", filepath.Base(path), err)
			return ""
		}
		return text
	default:
		return ""
	}
}
