package port

import "context"

// TextSpan is one maximal run of text sharing a single font, size, color and
// style, as reported by the document library. Fields the library cannot
// supply arrive as their zero values; the extractor substitutes sentinels.
type TextSpan struct {
	Text      string
	Font      string
	Size      float64
	Color     int
	Flags     int
	Ascender  float64
	Descender float64
	// BBox is [left, top, right, bottom] in the page's native coordinates.
	BBox [4]float64
}

// ImageInfo describes one embedded raster image occurrence on a page. The
// document library does not report per-image positions, so images are
// counted but never localized.
type ImageInfo struct {
	Width      int
	Height     int
	Format     string
	Colorspace string
	BitDepth   int
	ByteLength int64
}

// PageContent is the structural decomposition of one page.
type PageContent struct {
	Width  float64
	Height float64
	Spans  []TextSpan
	Images []ImageInfo
}

// DocumentInfo carries the PDF Info dictionary fields used by the metadata
// analyzer. Dates are raw PDF date strings ("D:YYYYMMDDHHMMSS...").
type DocumentInfo struct {
	Producer     string
	Creator      string
	Title        string
	Author       string
	Subject      string
	CreationDate string
	ModDate      string
	Raw          map[string]string
}

// DocumentReader abstracts the PDF document library. Read fails with
// domain.ErrDocumentUnreadable when the file cannot be opened or parsed;
// malformed individual spans or images degrade to zero-valued fields instead
// of failing the document.
type DocumentReader interface {
	Read(ctx context.Context, path string) ([]PageContent, error)
	PlainText(ctx context.Context, path string) (string, error)
	Metadata(ctx context.Context, path string) (*DocumentInfo, error)
}
