// Package layout places the parts of an invoice on a single page.
//
// An Engine owns the cursor, the recorded section heights and the font
// resolver of one render. Engines are cheap and must not be shared between
// renders.
package layout

import (
	"fmt"

	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/fonts"
	"github.com/wudi/invoicekit/observability"
)

// DefaultSingleLineHeight is the cursor step taken back by a held draw when
// the backend reported no vertical movement at all.
const DefaultSingleLineHeight = 11.5

// Cursor is the current drawing position.
type Cursor struct {
	X, Y float64
}

// SectionHeights are the cursor positions reached by the customer and seller
// blocks. The table starts below the lower of the two.
type SectionHeights struct {
	Customer float64
	Seller   float64
}

// Engine handles the layout of one invoice onto a Document.
type Engine struct {
	doc   builder.Document
	style config.Style
	fonts *fonts.Resolver
	log   observability.Logger

	singleLineHeight float64

	// State
	cursor  Cursor
	heights SectionHeights
}

// Option defines a configuration option for the Engine.
type Option func(*Engine)

// WithLogger sets the logger for section and font events.
func WithLogger(l observability.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithSingleLineHeight overrides DefaultSingleLineHeight.
func WithSingleLineHeight(h float64) Option {
	return func(e *Engine) {
		if h > 0 {
			e.singleLineHeight = h
		}
	}
}

// NewEngine creates a layout engine drawing onto doc with the given style.
func NewEngine(doc builder.Document, style config.Style, opts ...Option) (*Engine, error) {
	e := &Engine{
		doc:              doc,
		style:            style,
		log:              observability.NopLogger{},
		singleLineHeight: DefaultSingleLineHeight,
	}
	for _, opt := range opts {
		opt(e)
	}
	set, err := fontSet(style.Fonts, e.log)
	if err != nil {
		return nil, err
	}
	e.fonts = fonts.NewResolver(set, registrar{doc}, fonts.WithLogger(e.log))
	e.cursor = Cursor{X: style.Document.MarginLeft, Y: style.Document.MarginTop}
	return e, nil
}

// Cursor returns the current drawing position.
func (e *Engine) Cursor() Cursor { return e.cursor }

// SetCursor moves the drawing position.
func (e *Engine) SetCursor(c Cursor) { e.cursor = c }

// Heights returns the recorded section heights.
func (e *Engine) Heights() SectionHeights { return e.heights }

// FallbackLoaded reports whether the fallback font has been registered.
func (e *Engine) FallbackLoaded() bool { return e.fonts.FallbackLoaded() }

type registrar struct {
	doc builder.Document
}

func (r registrar) Register(spec fonts.Spec) error {
	return r.doc.RegisterFont(spec.Name, builder.FontSource{Path: spec.Path, Data: spec.Data})
}

func fontSet(fs config.FontsStyle, log observability.Logger) (fonts.Set, error) {
	normal, err := fontSpec("normal", fs.Normal)
	if err != nil {
		return fonts.Set{}, err
	}
	bold, err := fontSpec("bold", fs.Bold)
	if err != nil {
		return fonts.Set{}, err
	}
	fallback, err := fontSpec("fallback", fs.Fallback.FontSpec)
	if err != nil {
		return fonts.Set{}, err
	}
	if fs.Fallback.Enabled && len(fs.Fallback.Range) == 0 {
		fallback.Range = fontCoverage(fallback, log)
	}
	return fonts.Set{
		Normal: normal,
		Bold:   bold,
		Fallback: fonts.Fallback{
			Spec:          fallback,
			Enabled:       fs.Fallback.Enabled,
			Transliterate: fs.Fallback.Transliterate,
		},
	}, nil
}

func fontSpec(slot string, f config.FontSpec) (fonts.Spec, error) {
	r, err := fonts.ParseRange(f.Range...)
	if err != nil {
		return fonts.Spec{}, fmt.Errorf("%s font range: %w", slot, err)
	}
	return fonts.Spec{Name: f.Name, Path: f.Path, Data: f.Data, Range: r}, nil
}

// fontCoverage reads the cmap of a font file. A font that cannot be read
// yet is treated as covering everything; registering it reports the error.
func fontCoverage(spec fonts.Spec, log observability.Logger) fonts.Range {
	if spec.Path == "" && len(spec.Data) == 0 {
		return fonts.Range{}
	}
	data, err := builder.LoadFont(builder.FontSource{Path: spec.Path, Data: spec.Data})
	if err == nil {
		var r fonts.Range
		if r, err = fonts.CoverageFromFont(data); err == nil {
			return r
		}
	}
	log.Debug("fallback coverage unavailable",
		observability.String("font", spec.Name),
		observability.Error("error", err))
	return fonts.Range{}
}

func toColor(c config.Color) builder.Color {
	return builder.RGB8(c.R, c.G, c.B)
}
