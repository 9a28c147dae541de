package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/fonts"
)

func newTestEngine(t *testing.T, doc *recordingDocument, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(doc, config.Default().Style, opts...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDrawTextAdvancesCursor(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)

	bottom, err := e.DrawText("Hello", TextOptions{MarginTop: 4})
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	drawn := doc.texts[0]
	if drawn.X != 30 || drawn.Y != 34 {
		t.Fatalf("drawn at (%v, %v), want (30, 34)", drawn.X, drawn.Y)
	}
	if want := 34 + 10*builder.LineHeightFactor; !approx(bottom, want) || !approx(e.Cursor().Y, want) {
		t.Fatalf("bottom %v cursor %v, want %v", bottom, e.Cursor().Y, want)
	}
	if drawn.Font != "Helvetica" || drawn.Size != 10 {
		t.Fatalf("font %s %v, want Helvetica 10", drawn.Font, drawn.Size)
	}
}

func TestDrawTextHoldPosition(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)

	bottom, err := e.DrawText("Held", TextOptions{MarginTop: 8, HoldPosition: true})
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if e.Cursor().Y != 38 {
		t.Fatalf("held cursor = %v, want 38", e.Cursor().Y)
	}
	if bottom <= 38 {
		t.Fatalf("bottom %v should be below the held line", bottom)
	}
}

func TestDrawTextHoldWithoutMovement(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want float64
	}{
		{"default constant", nil, 30 - DefaultSingleLineHeight},
		{"tuned constant", []Option{WithSingleLineHeight(20)}, 10},
		{"non-positive ignored", []Option{WithSingleLineHeight(0)}, 30 - DefaultSingleLineHeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := newRecordingDocument()
			doc.zeroDelta = true
			e := newTestEngine(t, doc, tc.opts...)
			if _, err := e.DrawText("x", TextOptions{HoldPosition: true}); err != nil {
				t.Fatalf("draw: %v", err)
			}
			if !approx(e.Cursor().Y, tc.want) {
				t.Fatalf("cursor = %v, want %v", e.Cursor().Y, tc.want)
			}
		})
	}
}

func TestDrawTextColorsAndSizes(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)
	style := config.Default().Style
	red := config.MustColor("#FF0000")

	steps := []struct {
		opts  TextOptions
		color config.Color
		size  float64
		font  string
	}{
		{TextOptions{}, style.Text.PrimaryColor, 10, "Helvetica"},
		{TextOptions{Color: Secondary}, style.Text.SecondaryColor, 10, "Helvetica"},
		{TextOptions{Color: Secondary, ExplicitColor: &red}, red, 10, "Helvetica"},
		{TextOptions{Size: Heading, Weight: fonts.Bold}, style.Text.PrimaryColor, 15, "Helvetica-Bold"},
	}
	for i, s := range steps {
		if _, err := e.DrawText("text", s.opts); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		got := doc.texts[i]
		if got.Color != toColor(s.color) || got.Size != s.size || got.Font != s.font {
			t.Fatalf("step %d: got %+v %v %s, want %+v %v %s", i, got.Color, got.Size, got.Font, toColor(s.color), s.size, s.font)
		}
	}
}

func TestDrawTextFallbackFont(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)

	for _, text := range []string{"Ковальски", "Café", "Αθήνα", "Жук"} {
		if _, err := e.DrawText(text, TextOptions{Weight: fonts.Bold}); err != nil {
			t.Fatalf("draw %q: %v", text, err)
		}
	}
	wantFonts := []string{"Go Regular", "Helvetica-Bold", "Go Regular", "Go Regular"}
	for i, want := range wantFonts {
		if doc.texts[i].Font != want {
			t.Fatalf("text %q drawn with %s, want %s", doc.texts[i].Text, doc.texts[i].Font, want)
		}
	}
	if len(doc.registered) != 1 || doc.registered[0] != "Go Regular" {
		t.Fatalf("registered fonts = %v, want [Go Regular]", doc.registered)
	}
	if !e.FallbackLoaded() {
		t.Fatalf("fallback should be loaded")
	}
}

func TestDrawTextTransliterates(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)

	if _, err := e.DrawText("Zoë 請求", TextOptions{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	got := doc.texts[0]
	if got.Text != "Zoë ??" || got.Font != "Helvetica" {
		t.Fatalf("drawn %q with %s", got.Text, got.Font)
	}
	if len(doc.registered) != 0 {
		t.Fatalf("no font should be registered, got %v", doc.registered)
	}
}

func TestDrawTextTransliteratesMixedScripts(t *testing.T) {
	doc := newRecordingDocument()
	e := newTestEngine(t, doc)

	if _, err := e.DrawText("Ковальски 請求", TextOptions{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	got := doc.texts[0]
	if got.Text != "Kovalski ??" || got.Font != "Helvetica" {
		t.Fatalf("drawn %q with %s, want %q with Helvetica", got.Text, got.Font, "Kovalski ??")
	}
	if len(doc.registered) != 0 {
		t.Fatalf("no font should be registered, got %v", doc.registered)
	}
}

func TestDrawTextRegistrationError(t *testing.T) {
	doc := newRecordingDocument()
	doc.fontErr = errors.New("no such font file")
	e := newTestEngine(t, doc)

	_, err := e.DrawText("Ковальски", TextOptions{})
	if !errors.Is(err, doc.fontErr) {
		t.Fatalf("error = %v, want wrapped font error", err)
	}
	if len(doc.texts) != 0 {
		t.Fatalf("nothing should be drawn after a failed registration")
	}
}
