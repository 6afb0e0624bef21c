package fingerprint

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// sentinelFont substitutes for spans whose font name the document library
// could not supply. Other missing fields default to 0, so a malformed span
// still yields a valid, comparable key instead of failing extraction.
const sentinelFont = "Unknown"

// ExtractResult is the signature multiset of one document: a frequency table
// over every distinct rendering signature, plus the ordered list of content
// spans for the text signatures. Image occurrences contribute counts only.
type ExtractResult struct {
	Counts map[domain.SignatureKey]int
	Spans  []domain.ContentSpan
}

// TotalOccurrences sums all signature counts (text + image instances).
func (r *ExtractResult) TotalOccurrences() int {
	total := 0
	for _, n := range r.Counts {
		total += n
	}
	return total
}

// Extractor turns documents into rendering-signature multisets.
type Extractor struct {
	reader port.DocumentReader
}

// NewExtractor creates an Extractor backed by the given document reader.
func NewExtractor(reader port.DocumentReader) *Extractor {
	return &Extractor{reader: reader}
}

// Extract walks the document page by page and builds its signature multiset.
// Whitespace-only runs are rendering noise and are skipped entirely. The call
// fails only when the document itself cannot be opened.
func (e *Extractor) Extract(ctx context.Context, path string) (*ExtractResult, error) {
	pages, err := e.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extracting %q: %w", path, err)
	}

	res := &ExtractResult{Counts: make(map[domain.SignatureKey]int)}
	for pageIdx, page := range pages {
		for _, span := range page.Spans {
			text := strings.TrimSpace(span.Text)
			if text == "" {
				continue
			}
			hex := HexColor(span.Color)
			key := TextKey(span, hex)
			res.Counts[key]++
			res.Spans = append(res.Spans, domain.ContentSpan{
				Text:  text,
				Page:  pageIdx,
				Key:   key,
				Color: hex,
				BBox: domain.BBox{
					Left:   span.BBox[0],
					Top:    span.BBox[1],
					Right:  span.BBox[2],
					Bottom: span.BBox[3],
				},
			})
		}
		for _, img := range page.Images {
			res.Counts[ImageKey(img)]++
		}
	}
	return res, nil
}

// TextKey builds the signature key for a text span: quantized size, style
// flags, font name, hex color, ascender and descender joined with a fixed
// delimiter. Size is rounded (not truncated) to one decimal to absorb
// sub-pixel jitter while keeping genuinely different sizes apart.
func TextKey(span port.TextSpan, hexColor string) domain.SignatureKey {
	font := span.Font
	if font == "" {
		font = sentinelFont
	}
	size := math.Round(span.Size*10) / 10
	return domain.SignatureKey(fmt.Sprintf("%s_%d_%s_%s_%s_%s",
		strconv.FormatFloat(size, 'f', 1, 64),
		span.Flags,
		font,
		hexColor,
		strconv.FormatFloat(span.Ascender, 'g', -1, 64),
		strconv.FormatFloat(span.Descender, 'g', -1, 64),
	))
}

// ImageKey builds the signature key for one image occurrence. The key is
// namespaced with "IMG_" so it can never collide with a text key; the two
// constant zero fields are part of the historical key format and keep keys
// comparable across tool versions.
func ImageKey(img port.ImageInfo) domain.SignatureKey {
	format := img.Format
	if format == "" {
		format = "unk"
	}
	cs := img.Colorspace
	if cs == "" {
		cs = "unk"
	}
	return domain.SignatureKey(fmt.Sprintf("IMG_%d_%d_%s_%s_0_0_%d_%d",
		img.Width, img.Height, format, cs, img.BitDepth, img.ByteLength))
}

// HexColor unpacks a packed integer color into a 6-hex-digit uppercase RGB
// string. Bits above 23 (alpha or extra channels) are ignored.
func HexColor(c int) string {
	return fmt.Sprintf("#%02X%02X%02X", (c>>16)&0xFF, (c>>8)&0xFF, c&0xFF)
}
