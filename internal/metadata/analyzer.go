// Package metadata checks PDF Info-dictionary consistency: modification
// dates that precede creation dates and traces of known editing tools. It is
// a first-pass triage signal, not proof of tampering.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// DefaultSuspiciousKeywords are editing-tool signatures looked for in the
// Producer, Creator and Title fields.
var DefaultSuspiciousKeywords = []string{
	"microsoft word", "libreoffice", "cutepdf",
	"openoffice", "pdf creator", "ilovepdf", "smallpdf", "pdfescape",
	"wondershare", "foxit", "nitro", "sejda", "online2pdf",
	"microsoft: print to pdf", "adobe",
}

// Analyzer runs metadata consistency checks against a document reader.
type Analyzer struct {
	reader   port.DocumentReader
	keywords []string
}

// NewAnalyzer creates an Analyzer. An empty keyword list falls back to the
// defaults.
func NewAnalyzer(reader port.DocumentReader, keywords []string) *Analyzer {
	if len(keywords) == 0 {
		keywords = DefaultSuspiciousKeywords
	}
	return &Analyzer{reader: reader, keywords: keywords}
}

// Analyze inspects one file's metadata. A file that cannot be opened yields
// an unreadable verdict rather than an error, so batch analysis of a mixed
// folder never aborts.
func (a *Analyzer) Analyze(ctx context.Context, path, fileName string) *domain.MetadataReport {
	report := &domain.MetadataReport{
		FileName:     fileName,
		Verdict:      domain.VerdictClean,
		Reasons:      []string{},
		FullMetadata: "{}",
	}

	info, err := a.reader.Metadata(ctx, path)
	if err != nil {
		report.Verdict = domain.VerdictUnreadable
		report.Reasons = append(report.Reasons, fmt.Sprintf("error: %v", err))
		return report
	}

	report.Producer = info.Producer
	report.Creator = info.Creator
	report.Title = info.Title
	if raw, err := json.MarshalIndent(info.Raw, "", "  "); err == nil {
		report.FullMetadata = string(raw)
	}

	creation := ParsePDFDate(info.CreationDate)
	mod := ParsePDFDate(info.ModDate)
	if !creation.IsZero() {
		report.CreationDate = creation.Format("2006-01-02 15:04:05")
	}
	if !mod.IsZero() {
		report.ModificationDate = mod.Format("2006-01-02 15:04:05")
	}

	if !creation.IsZero() && !mod.IsZero() && mod.After(creation) {
		report.Verdict = domain.VerdictEdited
		report.Reasons = append(report.Reasons, "Modification date is later than creation date.")
	}

	fields := map[string]string{
		"Producer": info.Producer,
		"Creator":  info.Creator,
		"Title":    info.Title,
	}
	for _, field := range []string{"Producer", "Creator", "Title"} {
		val := RemoveNonASCII(fields[field])
		lower := strings.ToLower(val)
		for _, word := range a.keywords {
			if strings.Contains(lower, strings.ToLower(word)) {
				report.Verdict = domain.VerdictEdited
				report.Reasons = append(report.Reasons,
					fmt.Sprintf("Suspicious keyword %q found in %s: %s", word, field, val))
			}
		}
	}

	return report
}

// ParsePDFDate converts a PDF date string ("D:YYYYMMDDHHMMSS...") to a time.
// Anything unparseable yields the zero time.
func ParsePDFDate(s string) time.Time {
	s = strings.TrimPrefix(s, "D:")
	if len(s) < 14 {
		return time.Time{}
	}
	t, err := time.Parse("20060102150405", s[:14])
	if err != nil {
		return time.Time{}
	}
	return t
}

// RemoveNonASCII strips non-ASCII characters; tool names in metadata are
// sometimes wrapped in stray encoding artifacts.
func RemoveNonASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
