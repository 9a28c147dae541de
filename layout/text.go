package layout

import (
	"fmt"

	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/fonts"
)

// ColorRole picks a palette color.
type ColorRole int

const (
	Primary ColorRole = iota
	Secondary
)

// Size picks a text size.
type Size int

const (
	Regular Size = iota
	Heading
)

// TextOptions configures one text block.
type TextOptions struct {
	Weight fonts.Weight
	Color  ColorRole
	Size   Size
	Align  builder.Align
	// ExplicitColor overrides the palette color.
	ExplicitColor *config.Color
	// MarginTop moves the cursor down before drawing.
	MarginTop float64
	// MaxWidth wraps the text; zero extends it to the right margin.
	MaxWidth float64
	// HoldPosition leaves the cursor on the line the text started on.
	HoldPosition bool
}

// DrawText draws value at the cursor and advances the cursor below it. The
// returned bottom is the y position the backend reached, whether or not the
// cursor is held.
func (e *Engine) DrawText(value string, o TextOptions) (float64, error) {
	e.cursor.Y += o.MarginTop

	color := e.paletteColor(o.Color)
	if o.ExplicitColor != nil {
		color = *o.ExplicitColor
	}
	font, err := e.fonts.Resolve(o.Weight, value)
	if err != nil {
		return 0, fmt.Errorf("draw %q: %w", value, err)
	}
	e.doc.SetFont(font)
	e.doc.SetFontSize(e.fontSize(o.Size))
	e.doc.SetFillColor(toColor(color))

	oldY := e.cursor.Y
	newY := e.doc.DrawText(e.fonts.Normalize(value), e.cursor.X, oldY, builder.TextOptions{
		Align:    o.Align,
		MaxWidth: o.MaxWidth,
	})
	delta := newY - oldY
	e.cursor.Y = newY

	if o.HoldPosition {
		if delta != 0 {
			e.cursor.Y -= delta
		} else {
			e.cursor.Y -= e.singleLineHeight
		}
	}
	return newY, nil
}

func (e *Engine) paletteColor(role ColorRole) config.Color {
	if role == Secondary {
		return e.style.Text.SecondaryColor
	}
	return e.style.Text.PrimaryColor
}

func (e *Engine) fontSize(s Size) float64 {
	if s == Heading {
		return e.style.Text.HeadingSize
	}
	return e.style.Text.RegularSize
}
