package builder

import (
	"errors"
	"time"

	"github.com/wudi/invoicekit/observability"
)

// Document is the drawing surface an invoice is rendered onto. Coordinates
// are in points with the origin at the top-left corner of the page and y
// growing downwards. A Document produces exactly one single-page file.
type Document interface {
	PageWidth() float64
	FillRect(x, y, width, height float64, c Color)
	StrokeLine(x1, y1, x2, y2 float64, opts LineOptions)
	DrawImage(path string, x, y float64, opts ImageOptions) error
	// RegisterFont makes a font file known under name. Registering a name
	// twice is a no-op.
	RegisterFont(name string, src FontSource) error
	SetFont(name string)
	SetFontSize(size float64)
	// SetFillColor sets the color of text drawn by DrawText.
	SetFillColor(c Color)
	// DrawText lays out text at (x, y), wrapping inside opts.MaxWidth, and
	// returns the y position below the last line.
	DrawText(text string, x, y float64, opts TextOptions) float64
	// Close finishes the document and returns its bytes. No partial output
	// is returned on error.
	Close() ([]byte, error)
}

// Align is the horizontal alignment of text inside its box.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

// TextOptions configures text drawing. A zero MaxWidth extends the text box
// to the right page margin.
type TextOptions struct {
	Align    Align
	MaxWidth float64
}

// LineOptions configures line drawing.
type LineOptions struct {
	StrokeColor Color
	LineWidth   float64
}

// ImageOptions configures image drawing. With a zero Width or Height the
// image keeps its aspect ratio; with both zero it is drawn at its natural size.
type ImageOptions struct {
	Width  float64
	Height float64
}

// FontSource locates the data of a font. Data wins over Path.
type FontSource struct {
	Path string
	Data []byte
}

// Color represents an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// RGB8 builds a Color from 8-bit components.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Config configures the PDF backend.
type Config struct {
	// Deterministic pins the creation date and sorts the object catalog so
	// that equal input produces byte-identical output.
	Deterministic bool
	// CreationDate is used when Deterministic is false; zero means now.
	CreationDate       time.Time
	Title              string
	Author             string
	RightMargin        float64
	DisableCompression bool
	Logger             observability.Logger
}

// DeterministicDate is the creation date written in deterministic mode.
var DeterministicDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	// ErrClosed is returned when Close is called more than once.
	ErrClosed = errors.New("document already closed")
	// ErrNoFontSource is returned for a FontSource without path and data.
	ErrNoFontSource = errors.New("font source has neither path nor data")
)
