package layout

import (
	"math"

	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/fonts"
)

const (
	// ColumnGutter separates the shared columns of a row.
	ColumnGutter = 10
	// RowSpacing is added above every table row.
	RowSpacing = 17
	// SeparatorOffset is the distance from the header row to its rule.
	SeparatorOffset = 6
	// TotalsGap is added between the last row and the totals block.
	TotalsGap = 10
	// TotalsLabelMargin is added above every totals line.
	TotalsLabelMargin = 12
)

// RowKind tells header rows from item rows.
type RowKind int

const (
	HeaderRow RowKind = iota
	ItemRow
)

func (k RowKind) String() string {
	if k == HeaderRow {
		return "header"
	}
	return "item"
}

// Frame is the horizontal extent of one column.
type Frame struct {
	X     float64
	Width float64
}

// ColumnFrames computes the columns of an n-column row. The last two
// columns use the fixed quantity and total columns; the others share the
// space between the left margin and the header text position.
func (e *Engine) ColumnFrames(n int) ([]Frame, error) {
	if n < config.MinColumns {
		return nil, &ColumnCountError{Columns: n}
	}
	doc := e.style.Document
	width := (e.style.Header.TextPosition - doc.MarginLeft - doc.MarginRight) / float64(n-2)

	frames := make([]Frame, n)
	x := doc.MarginLeft
	for i := 0; i < n-2; i++ {
		frames[i] = Frame{X: x, Width: width}
		x += width + ColumnGutter
	}
	q, t := e.style.Table.Quantity, e.style.Table.Total
	frames[n-2] = Frame{X: q.Position, Width: q.MaxWidth}
	frames[n-1] = Frame{X: t.Position, Width: t.MaxWidth}
	return frames, nil
}

// LayoutRow draws one table row at the cursor. Every cell starts on the same
// line; afterwards the cursor sits below the tallest cell. Header rows are
// underlined with the separator rule.
func (e *Engine) LayoutRow(kind RowKind, cells []config.Cell, currency string) error {
	frames, err := e.ColumnFrames(len(cells))
	if err != nil {
		return err
	}
	opts := TextOptions{Color: Secondary, HoldPosition: true}
	if kind == HeaderRow {
		opts.Weight, opts.Color = fonts.Bold, Primary
	}

	top := e.cursor.Y
	bottom := top
	for i, cell := range cells {
		value := cell.Value.String()
		if cell.Price {
			value = FormatPrice(cell.Value, currency)
		}
		e.cursor = Cursor{X: frames[i].X, Y: top}
		opts.MaxWidth = frames[i].Width
		y, err := e.DrawText(value, opts)
		if err != nil {
			return err
		}
		bottom = math.Max(bottom, y)
	}
	e.cursor.Y = bottom

	if kind == HeaderRow {
		sep := e.style.Table.Separator
		y := bottom + SeparatorOffset
		e.doc.StrokeLine(e.style.Document.MarginLeft, y, e.doc.PageWidth()-e.style.Document.MarginRight, y,
			builder.LineOptions{StrokeColor: toColor(sep.Color), LineWidth: sep.Width})
	}
	return nil
}

// LayoutTotals draws the totals block: labels in the quantity column, values
// in the total column on the same line.
func (e *Engine) LayoutTotals(totals []config.Total, currency string) error {
	q, t := e.style.Table.Quantity, e.style.Table.Total
	for _, total := range totals {
		e.cursor.X = q.Position
		labelBottom, err := e.DrawText(total.Label, TextOptions{
			Weight:       fonts.Bold,
			Color:        Primary,
			MarginTop:    TotalsLabelMargin,
			MaxWidth:     q.MaxWidth,
			HoldPosition: true,
		})
		if err != nil {
			return err
		}
		value := total.Value.String()
		if total.Price {
			value = FormatPrice(total.Value, currency)
		}
		e.cursor.X = t.Position
		valueBottom, err := e.DrawText(value, TextOptions{Color: Secondary, MaxWidth: t.MaxWidth})
		if err != nil {
			return err
		}
		e.cursor.Y = math.Max(labelBottom, valueBottom)
	}
	return nil
}
