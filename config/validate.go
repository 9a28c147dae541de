package config

import (
	"errors"
	"fmt"

	"github.com/wudi/invoicekit/fonts"
)

var (
	// ErrInvalid marks every validation failure.
	ErrInvalid = errors.New("invalid invoice options")

	// ErrUnsupportedColumnCount is reported for table rows with fewer than
	// three columns or with a column count differing from the header.
	ErrUnsupportedColumnCount = errors.New("unsupported column count")
)

// MinColumns is the smallest table row the column layout supports: at least
// one shared column plus the fixed quantity and total columns.
const MinColumns = 3

// ValidationError describes one problem with an Options value.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalid, e.Err}
	}
	return []error{ErrInvalid}
}

type validator struct {
	errs []error
}

func (v *validator) fail(field, format string, args ...interface{}) {
	v.errs = append(v.errs, &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (v *validator) failErr(field string, err error, format string, args ...interface{}) {
	v.errs = append(v.errs, &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...), Err: err})
}

// Validate checks o for structural problems that would otherwise surface as
// undefined layout. All problems are reported, joined into one error.
func (o Options) Validate() error {
	v := &validator{}
	o.Style.validate(v)
	o.Data.Invoice.validate(v)
	return errors.Join(v.errs...)
}

func (s Style) validate(v *validator) {
	d := s.Document
	if d.MarginLeft < 0 || d.MarginRight < 0 || d.MarginTop < 0 {
		v.fail("style.document", "margins must not be negative")
	}

	validateFont(v, "style.fonts.normal", s.Fonts.Normal, true)
	validateFont(v, "style.fonts.bold", s.Fonts.Bold, true)
	validateFont(v, "style.fonts.fallback", s.Fonts.Fallback.FontSpec, s.Fonts.Fallback.Enabled)
	if s.Fonts.Fallback.Enabled && s.Fonts.Fallback.Path == "" && len(s.Fonts.Fallback.Data) == 0 {
		v.fail("style.fonts.fallback.path", "an enabled fallback font needs a font file")
	}

	h := s.Header
	if h.Height < 0 {
		v.fail("style.header.height", "must not be negative")
	}
	if h.TextPosition <= d.MarginLeft+d.MarginRight {
		v.fail("style.header.textPosition", "must exceed the sum of the horizontal margins")
	}
	if h.Image != nil {
		if h.Image.Path == "" {
			v.fail("style.header.image.path", "must not be empty")
		}
		if h.Image.Width < 0 || h.Image.Height < 0 {
			v.fail("style.header.image", "dimensions must not be negative")
		}
	}

	validateColumn(v, "style.table.quantity", s.Table.Quantity)
	validateColumn(v, "style.table.total", s.Table.Total)
	if s.Table.Separator.Width < 0 {
		v.fail("style.table.separator.width", "must not be negative")
	}

	if s.Text.HeadingSize <= 0 {
		v.fail("style.text.headingSize", "must be positive")
	}
	if s.Text.RegularSize <= 0 {
		v.fail("style.text.regularSize", "must be positive")
	}
}

func validateFont(v *validator, field string, f FontSpec, required bool) {
	if required && f.Name == "" {
		v.fail(field+".name", "must not be empty")
	}
	if _, err := fonts.ParseRange(f.Range...); err != nil {
		v.failErr(field+".range", err, "%v", err)
	}
}

func validateColumn(v *validator, field string, c Column) {
	if c.Position < 0 {
		v.fail(field+".position", "must not be negative")
	}
	if c.MaxWidth <= 0 {
		v.fail(field+".maxWidth", "must be positive")
	}
}

func (inv Invoice) validate(v *validator) {
	validateLines(v, "data.invoice.header", inv.Header)
	validateLines(v, "data.invoice.customer", inv.Customer)
	validateLines(v, "data.invoice.seller", inv.Seller)

	d := inv.Details
	columns := len(d.Header)
	if columns == 0 && len(d.Parts) > 0 {
		columns = len(d.Parts[0])
	}
	if len(d.Header) > 0 || len(d.Parts) > 0 {
		if columns < MinColumns {
			v.failErr("data.invoice.details", ErrUnsupportedColumnCount,
				"rows need at least %d columns, got %d", MinColumns, columns)
		}
	}
	for i, part := range d.Parts {
		if len(part) != columns {
			v.failErr(fmt.Sprintf("data.invoice.details.parts[%d]", i), ErrUnsupportedColumnCount,
				"has %d columns, want %d", len(part), columns)
		}
	}

	for i, l := range inv.Legal {
		field := fmt.Sprintf("data.invoice.legal[%d]", i)
		switch l.Weight {
		case "", "normal", "bold":
		default:
			v.fail(field+".weight", "unknown weight %q", l.Weight)
		}
		switch l.Color {
		case "", "primary", "secondary":
		default:
			v.fail(field+".color", "unknown color %q", l.Color)
		}
	}
}

func validateLines(v *validator, field string, lines []Line) {
	for i, l := range lines {
		if l.Label == "" && len(l.Value) == 0 {
			v.fail(fmt.Sprintf("%s[%d]", field, i), "line has neither label nor value")
		}
	}
}
