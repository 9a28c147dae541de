package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
)

func TestColumnFrames(t *testing.T) {
	e := newTestEngine(t, newRecordingDocument())

	tests := []struct {
		n    int
		want []Frame
	}{
		{3, []Frame{{X: 30, Width: 270}, {X: 330, Width: 140}, {X: 490, Width: 80}}},
		{4, []Frame{{X: 30, Width: 135}, {X: 175, Width: 135}, {X: 330, Width: 140}, {X: 490, Width: 80}}},
		{5, []Frame{{X: 30, Width: 90}, {X: 130, Width: 90}, {X: 230, Width: 90}, {X: 330, Width: 140}, {X: 490, Width: 80}}},
	}
	for _, tc := range tests {
		got, err := e.ColumnFrames(tc.n)
		if err != nil {
			t.Fatalf("ColumnFrames(%d): %v", tc.n, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("ColumnFrames(%d) mismatch (-want +got):\n%s", tc.n, diff)
		}
	}
}

func TestColumnFramesRejectsNarrowRows(t *testing.T) {
	e := newTestEngine(t, newRecordingDocument())
	for _, n := range []int{0, 1, 2} {
		_, err := e.ColumnFrames(n)
		var cce *ColumnCountError
		if !errors.As(err, &cce) || cce.Columns != n {
			t.Fatalf("ColumnFrames(%d) error = %v, want *ColumnCountError", n, err)
		}
		if !errors.Is(err, ErrUnsupportedColumnCount) || !errors.Is(err, config.ErrUnsupportedColumnCount) {
			t.Fatalf("ColumnFrames(%d) error does not match ErrUnsupportedColumnCount", n)
		}
	}
}

func TestLayoutRowHeightIsTallestCell(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)
	e.SetCursor(Cursor{Y: 200})

	long := strings.Repeat("a", 60) // wraps once in 270pt at 5pt per character
	row := []config.Cell{
		{Value: config.Text(long)},
		{Value: config.Number(1)},
		{Value: config.Text("10"), Price: true},
	}
	if err := e.LayoutRow(ItemRow, row, "USD"); err != nil {
		t.Fatalf("layout row: %v", err)
	}
	line := 10 * builder.LineHeightFactor
	for _, txt := range doc.texts {
		if txt.Y != 200 {
			t.Fatalf("cell %q drawn at y=%v, want 200", txt.Text, txt.Y)
		}
	}
	if got := e.Cursor().Y; !approx(got, 200+2*line) {
		t.Fatalf("cursor after row = %v, want %v", got, 200+2*line)
	}
	if diff := cmp.Diff([]string{long, "1", "10 USD"}, doc.drawn()); diff != "" {
		t.Fatalf("cell text mismatch (-want +got):\n%s", diff)
	}
	if len(doc.lines) != 0 {
		t.Fatalf("item rows draw no separator")
	}
}

func TestLayoutRowHeader(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)
	e.SetCursor(Cursor{Y: 100})

	header := []config.Cell{{Value: config.Text("Description")}, {Value: config.Text("Qty")}, {Value: config.Text("Subtotal")}}
	if err := e.LayoutRow(HeaderRow, header, "EUR"); err != nil {
		t.Fatalf("layout row: %v", err)
	}
	for i, txt := range doc.texts {
		if txt.Font != "Helvetica-Bold" {
			t.Fatalf("header cell %d drawn with %s", i, txt.Font)
		}
		if want := []float64{30, 330, 490}[i]; txt.X != want {
			t.Fatalf("header cell %d at x=%v, want %v", i, txt.X, want)
		}
	}
	if len(doc.lines) != 1 {
		t.Fatalf("header row should stroke one separator, got %d", len(doc.lines))
	}
	sep := doc.lines[0]
	wantY := 100 + 10*builder.LineHeightFactor + SeparatorOffset
	if sep.X1 != 30 || !approx(sep.X2, 595.28-30) || !approx(sep.Y1, wantY) || sep.Y1 != sep.Y2 {
		t.Fatalf("separator = %+v, want y=%v from 30 to 565.28", sep, wantY)
	}
	if sep.Opts.LineWidth != 1 || sep.Opts.StrokeColor != builder.RGB8(0xE0, 0xE0, 0xE0) {
		t.Fatalf("separator style = %+v", sep.Opts)
	}
}

func TestLayoutRowColumnCountError(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)
	err := e.LayoutRow(ItemRow, []config.Cell{{Value: config.Text("a")}, {Value: config.Text("b")}}, "")
	if !errors.Is(err, ErrUnsupportedColumnCount) {
		t.Fatalf("error = %v, want ErrUnsupportedColumnCount", err)
	}
	if len(doc.texts) != 0 {
		t.Fatalf("nothing should be drawn for a rejected row")
	}
}

func TestLayoutTotals(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)
	e.SetCursor(Cursor{Y: 300})

	totals := []config.Total{
		{Label: "Subtotal", Value: config.Number(51.6), Price: true},
		{Label: "Total", Value: config.Text("61.40"), Price: true},
	}
	if err := e.LayoutTotals(totals, "EUR"); err != nil {
		t.Fatalf("layout totals: %v", err)
	}
	if diff := cmp.Diff([]string{"Subtotal", "51.60 EUR", "Total", "61.40 EUR"}, doc.drawn()); diff != "" {
		t.Fatalf("totals mismatch (-want +got):\n%s", diff)
	}
	line := 10 * builder.LineHeightFactor
	label, value := doc.texts[0], doc.texts[1]
	if label.X != 330 || value.X != 490 {
		t.Fatalf("label x=%v value x=%v, want 330 and 490", label.X, value.X)
	}
	if label.Y != 312 || value.Y != 312 {
		t.Fatalf("label y=%v value y=%v, want both 312", label.Y, value.Y)
	}
	if label.Font != "Helvetica-Bold" || value.Font != "Helvetica" {
		t.Fatalf("label font %s value font %s", label.Font, value.Font)
	}
	if want := 312 + line + TotalsLabelMargin; !approx(doc.texts[2].Y, want) {
		t.Fatalf("second total at y=%v, want %v", doc.texts[2].Y, want)
	}
	if want := 312 + 2*line + TotalsLabelMargin; !approx(e.Cursor().Y, want) {
		t.Fatalf("cursor after totals = %v, want %v", e.Cursor().Y, want)
	}
}
