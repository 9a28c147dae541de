package layout

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/wudi/invoicekit/builder"
)

// drawnText is a DrawText call seen by recordingDocument.
type drawnText struct {
	Text   string
	X, Y   float64
	Bottom float64
	Font   string
	Size   float64
	Color  builder.Color
	Opts   builder.TextOptions
}

type strokedLine struct {
	X1, Y1, X2, Y2 float64
	Opts           builder.LineOptions
}

// recordingDocument is a builder.Document that records every call. Text is
// measured with a fixed advance of half the font size per character.
type recordingDocument struct {
	width     float64
	zeroDelta bool
	fontErr   error
	imageErr  error

	font  string
	size  float64
	color builder.Color

	registered []string
	texts      []drawnText
	lines      []strokedLine
	rects      int
	images     []string
	closed     bool
}

func newRecordingDocument() *recordingDocument {
	return &recordingDocument{width: 595.28, size: 12}
}

func (d *recordingDocument) PageWidth() float64 { return d.width }

func (d *recordingDocument) FillRect(x, y, w, h float64, c builder.Color) { d.rects++ }

func (d *recordingDocument) StrokeLine(x1, y1, x2, y2 float64, opts builder.LineOptions) {
	d.lines = append(d.lines, strokedLine{x1, y1, x2, y2, opts})
}

func (d *recordingDocument) DrawImage(path string, x, y float64, opts builder.ImageOptions) error {
	if d.imageErr != nil {
		return d.imageErr
	}
	d.images = append(d.images, path)
	return nil
}

func (d *recordingDocument) RegisterFont(name string, src builder.FontSource) error {
	if d.fontErr != nil {
		return d.fontErr
	}
	for _, r := range d.registered {
		if r == name {
			return nil
		}
	}
	d.registered = append(d.registered, name)
	return nil
}

func (d *recordingDocument) SetFont(name string)          { d.font = name }
func (d *recordingDocument) SetFontSize(size float64)     { d.size = size }
func (d *recordingDocument) SetFillColor(c builder.Color) { d.color = c }

func (d *recordingDocument) DrawText(text string, x, y float64, opts builder.TextOptions) float64 {
	bottom := y
	if !d.zeroDelta {
		bottom = y + float64(d.lineCount(text, x, opts.MaxWidth))*d.size*builder.LineHeightFactor
	}
	d.texts = append(d.texts, drawnText{
		Text: text, X: x, Y: y, Bottom: bottom,
		Font: d.font, Size: d.size, Color: d.color, Opts: opts,
	})
	return bottom
}

func (d *recordingDocument) lineCount(text string, x, maxWidth float64) int {
	if maxWidth <= 0 {
		maxWidth = d.width - x
	}
	advance := d.size / 2
	n := 0
	for _, line := range strings.Split(text, "\n") {
		w := float64(utf8.RuneCountInString(line)) * advance
		n += int(math.Max(1, math.Ceil(w/maxWidth)))
	}
	return n
}

func (d *recordingDocument) Close() ([]byte, error) {
	if d.closed {
		return nil, errors.New("closed twice")
	}
	d.closed = true
	return []byte("%PDF-mock"), nil
}

func (d *recordingDocument) find(text string) (drawnText, bool) {
	for _, t := range d.texts {
		if t.Text == text {
			return t, true
		}
	}
	return drawnText{}, false
}

func (d *recordingDocument) drawn() []string {
	out := make([]string, len(d.texts))
	for i, t := range d.texts {
		out[i] = t.Text
	}
	return out
}
