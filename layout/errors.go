package layout

import (
	"fmt"

	"github.com/wudi/invoicekit/config"
)

// ErrUnsupportedColumnCount is returned for rows the column rule cannot
// lay out.
var ErrUnsupportedColumnCount = config.ErrUnsupportedColumnCount

// ColumnCountError reports a row with an unusable number of columns.
type ColumnCountError struct {
	Columns int
}

func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("%d columns: %v (need at least %d)", e.Columns, ErrUnsupportedColumnCount, config.MinColumns)
}

func (e *ColumnCountError) Unwrap() error { return ErrUnsupportedColumnCount }
