package layout

import (
	"strconv"

	"github.com/wudi/invoicekit/config"
)

// FormatPrice renders a price cell. Numbers get two decimals, text is kept
// as written. A non-empty currency code is appended after a space.
func FormatPrice(v config.Value, currency string) string {
	s := v.String()
	if f, ok := v.Float(); ok {
		s = strconv.FormatFloat(f, 'f', 2, 64)
	}
	if currency != "" {
		s += " " + currency
	}
	return s
}
