package pdfreader

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Tej343/Document-Fraud-Detection/internal/domain"
	"github.com/Tej343/Document-Fraud-Detection/internal/port"
)

// US Letter, used when a page carries no resolvable MediaBox.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Reader is the ledongthuc/pdf-backed DocumentReader. The library reports
// font name, size and glyph geometry but not fill color, style flags or
// vertical metrics; those fields stay at their zero values and the extractor
// substitutes its sentinels.
type Reader struct{}

// New creates a Reader.
func New() port.DocumentReader {
	return &Reader{}
}

// Read opens the document and decomposes every page into uniform text spans
// and image occurrences. Only an unopenable document fails; malformed pages
// degrade to whatever content was recovered from them.
func (r *Reader) Read(ctx context.Context, path string) ([]port.PageContent, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	defer f.Close()

	total := doc.NumPage()
	pages := make([]port.PageContent, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages = append(pages, readPage(doc.Page(i)))
	}
	return pages, nil
}

// readPage recovers from parser panics: ledongthuc/pdf panics on some
// malformed content streams, and a broken page must not abort the document.
func readPage(p pdf.Page) (pc port.PageContent) {
	defer func() {
		_ = recover()
	}()

	pc.Width, pc.Height = pageSize(p)
	if p.V.IsNull() {
		return pc
	}
	pc.Spans = textSpans(p.Content().Text)
	pc.Images = pageImages(p)
	return pc
}

// textSpans merges the library's per-glyph stream into maximal runs sharing
// one font, size and baseline.
func textSpans(glyphs []pdf.Text) []port.TextSpan {
	var spans []port.TextSpan
	var cur *port.TextSpan
	var buf strings.Builder

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = buf.String()
		spans = append(spans, *cur)
		cur = nil
		buf.Reset()
	}

	for _, g := range glyphs {
		if cur == nil || g.Font != cur.Font || g.FontSize != cur.Size || g.Y != cur.BBox[3] {
			flush()
			cur = &port.TextSpan{
				Font: g.Font,
				Size: g.FontSize,
				// left, top, right, bottom; top = baseline + size, bottom = baseline
				BBox: [4]float64{g.X, g.Y + g.FontSize, g.X + g.W, g.Y},
			}
		}
		buf.WriteString(g.S)
		if right := g.X + g.W; right > cur.BBox[2] {
			cur.BBox[2] = right
		}
		if g.X < cur.BBox[0] {
			cur.BBox[0] = g.X
		}
	}
	flush()
	return spans
}

// pageImages enumerates the page's XObject images, once per occurrence.
func pageImages(p pdf.Page) []port.ImageInfo {
	xobj := p.V.Key("Resources").Key("XObject")
	if xobj.Kind() != pdf.Dict && xobj.Kind() != pdf.Stream {
		return nil
	}

	var images []port.ImageInfo
	for _, name := range xobj.Keys() {
		obj := xobj.Key(name)
		if obj.IsNull() || obj.Key("Subtype").Name() != "Image" {
			continue
		}
		images = append(images, port.ImageInfo{
			Width:      int(obj.Key("Width").Int64()),
			Height:     int(obj.Key("Height").Int64()),
			Format:     formatTag(obj.Key("Filter")),
			Colorspace: colorspaceTag(obj.Key("ColorSpace")),
			BitDepth:   int(obj.Key("BitsPerComponent").Int64()),
			ByteLength: obj.Key("Length").Int64(),
		})
	}
	return images
}

// formatTag maps the image stream's (last) filter to an encoding tag.
func formatTag(filter pdf.Value) string {
	name := ""
	switch filter.Kind() {
	case pdf.Name:
		name = filter.Name()
	case pdf.Array:
		if n := filter.Len(); n > 0 {
			name = filter.Index(n - 1).Name()
		}
	}
	switch name {
	case "DCTDecode":
		return "jpeg"
	case "JPXDecode":
		return "jp2"
	case "CCITTFaxDecode":
		return "tiff"
	case "JBIG2Decode":
		return "jb2"
	case "FlateDecode", "LZWDecode", "RunLengthDecode":
		return "png"
	case "":
		return ""
	default:
		return strings.ToLower(name)
	}
}

// colorspaceTag reduces the ColorSpace entry to a short tag. Array-valued
// colorspaces (ICCBased, Indexed, ...) report their family name.
func colorspaceTag(cs pdf.Value) string {
	switch cs.Kind() {
	case pdf.Name:
		return cs.Name()
	case pdf.Array:
		if cs.Len() > 0 {
			return cs.Index(0).Name()
		}
	}
	return ""
}

// pageSize resolves the page MediaBox, falling back to US Letter.
func pageSize(p pdf.Page) (w, h float64) {
	box := p.V.Key("MediaBox")
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}
	x0 := numeric(box.Index(0))
	y0 := numeric(box.Index(1))
	x1 := numeric(box.Index(2))
	y1 := numeric(box.Index(3))
	w = x1 - x0
	h = y1 - y0
	if w <= 0 || h <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return w, h
}

func numeric(v pdf.Value) float64 {
	switch v.Kind() {
	case pdf.Integer:
		return float64(v.Int64())
	case pdf.Real:
		return v.Float64()
	}
	return 0
}

// PlainText returns the document's full text content, concatenated across
// pages, for content-based duplicate comparison.
func (r *Reader) PlainText(ctx context.Context, path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	defer f.Close()

	reader, err := doc.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	text, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("reading text of %q: %w", path, err)
	}
	return string(text), nil
}

// Metadata reads the trailer Info dictionary. Missing entries come back
// empty; only an unopenable file fails.
func (r *Reader) Metadata(ctx context.Context, path string) (*port.DocumentInfo, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDocumentUnreadable, err)
	}
	defer f.Close()

	info := doc.Trailer().Key("Info")
	di := &port.DocumentInfo{Raw: map[string]string{}}
	if info.Kind() != pdf.Dict {
		return di, nil
	}
	for _, k := range info.Keys() {
		di.Raw[k] = stringValue(info.Key(k))
	}
	di.Producer = di.Raw["Producer"]
	di.Creator = di.Raw["Creator"]
	di.Title = di.Raw["Title"]
	di.Author = di.Raw["Author"]
	di.Subject = di.Raw["Subject"]
	di.CreationDate = di.Raw["CreationDate"]
	di.ModDate = di.Raw["ModDate"]
	return di, nil
}

func stringValue(v pdf.Value) string {
	switch v.Kind() {
	case pdf.String:
		return v.Text()
	case pdf.Name:
		return v.Name()
	case pdf.Integer:
		return fmt.Sprintf("%d", v.Int64())
	case pdf.Real:
		return fmt.Sprintf("%g", v.Float64())
	case pdf.Bool:
		return fmt.Sprintf("%t", v.Bool())
	}
	return ""
}
