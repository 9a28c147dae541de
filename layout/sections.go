package layout

import (
	"fmt"
	"math"

	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/fonts"
	"github.com/wudi/invoicekit/observability"
)

const (
	titleOffset     = 4
	labelMargin     = 8
	valueMargin     = 4
	detailsOffset   = 18
	detailsWidth    = 250
	legalOffset     = 60
	legalLineMargin = 10
)

// Render draws the whole invoice: header, customer and seller details, the
// line-item table and the legal notes, in that order.
func (e *Engine) Render(inv config.Invoice) error {
	if err := e.registerFonts(); err != nil {
		return err
	}
	sections := []struct {
		name   string
		render func(config.Invoice) error
	}{
		{"header", e.renderHeader},
		{"customer", e.renderCustomer},
		{"seller", e.renderSeller},
		{"table", e.renderTable},
		{"legal", e.renderLegal},
	}
	for _, s := range sections {
		if err := s.render(inv); err != nil {
			e.log.Error("section failed", observability.String("section", s.name), observability.Error("error", err))
			return fmt.Errorf("render %s: %w", s.name, err)
		}
		e.log.Debug("section drawn",
			observability.String("section", s.name),
			observability.Float("y", e.cursor.Y))
	}
	return nil
}

// registerFonts registers the normal and bold fonts that come from files.
// The fallback font is registered on first use.
func (e *Engine) registerFonts() error {
	for _, f := range []config.FontSpec{e.style.Fonts.Normal, e.style.Fonts.Bold} {
		if f.Path == "" && len(f.Data) == 0 {
			continue
		}
		if err := e.doc.RegisterFont(f.Name, builder.FontSource{Path: f.Path, Data: f.Data}); err != nil {
			return fmt.Errorf("render fonts: %w", err)
		}
	}
	return nil
}

func (e *Engine) renderHeader(inv config.Invoice) error {
	h := e.style.Header
	e.doc.FillRect(0, 0, e.doc.PageWidth(), h.Height, toColor(h.BackgroundColor))
	if h.Image != nil && h.Image.Path != "" {
		err := e.doc.DrawImage(h.Image.Path, e.style.Document.MarginLeft, e.style.Document.MarginTop,
			builder.ImageOptions{Width: h.Image.Width, Height: h.Image.Height})
		if err != nil {
			return err
		}
	}

	e.cursor = Cursor{X: h.TextPosition, Y: e.style.Document.MarginTop}
	if _, err := e.DrawText(inv.Name, TextOptions{
		Weight:    fonts.Bold,
		Size:      Heading,
		MarginTop: titleOffset,
	}); err != nil {
		return err
	}
	return e.renderLines(inv.Header, 0)
}

func (e *Engine) renderCustomer(inv config.Invoice) error {
	y, err := e.renderDetails(inv.Customer, e.style.Document.MarginLeft)
	e.heights.Customer = y
	return err
}

func (e *Engine) renderSeller(inv config.Invoice) error {
	y, err := e.renderDetails(inv.Seller, e.style.Header.TextPosition)
	e.heights.Seller = y
	return err
}

// renderDetails draws one details block starting below the header and
// returns the cursor position it ends at.
func (e *Engine) renderDetails(lines []config.Line, x float64) (float64, error) {
	e.cursor = Cursor{X: x, Y: e.style.Header.Height + detailsOffset}
	err := e.renderLines(lines, detailsWidth)
	return e.cursor.Y, err
}

// renderLines draws "label:" in bold followed by every value of each line.
func (e *Engine) renderLines(lines []config.Line, maxWidth float64) error {
	for _, l := range lines {
		if l.Label != "" {
			if _, err := e.DrawText(l.Label+":", TextOptions{
				Weight:    fonts.Bold,
				MarginTop: labelMargin,
				MaxWidth:  maxWidth,
			}); err != nil {
				return err
			}
		}
		for _, v := range l.Value {
			if _, err := e.DrawText(v.String(), TextOptions{
				Color:     Secondary,
				MarginTop: valueMargin,
				MaxWidth:  maxWidth,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) renderTable(inv config.Invoice) error {
	e.cursor.Y = math.Max(e.heights.Customer, e.heights.Seller)
	d := inv.Details

	if len(d.Header) > 0 {
		e.cursor.Y += RowSpacing
		if err := e.LayoutRow(HeaderRow, d.Header, inv.Currency); err != nil {
			return err
		}
	}
	for _, part := range d.Parts {
		e.cursor.Y += RowSpacing
		if err := e.LayoutRow(ItemRow, part, inv.Currency); err != nil {
			return err
		}
	}
	if len(d.Total) > 0 {
		e.cursor.Y += TotalsGap
		return e.LayoutTotals(d.Total, inv.Currency)
	}
	return nil
}

func (e *Engine) renderLegal(inv config.Invoice) error {
	margin := e.style.Document.MarginLeft
	e.cursor.Y += legalOffset
	for _, l := range inv.Legal {
		value, strong := legalText(l.Value)
		weight, err := fonts.ParseWeight(l.Weight)
		if err != nil {
			return err
		}
		if strong {
			weight = fonts.Bold
		}
		role := Primary
		if l.Color == "secondary" {
			role = Secondary
		}
		e.cursor.X = 2 * margin
		if _, err := e.DrawText(value, TextOptions{
			Weight:    weight,
			Color:     role,
			Align:     builder.AlignCenter,
			MarginTop: legalLineMargin,
			MaxWidth:  e.doc.PageWidth() - 4*margin,
		}); err != nil {
			return err
		}
	}
	return nil
}
