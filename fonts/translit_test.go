package fonts_test

import (
	"testing"

	"github.com/wudi/invoicekit/fonts"
)

func TestTransliterate(t *testing.T) {
	latin1 := fonts.MustParseRange("0000-00FF")
	ascii := fonts.MustParseRange("0000-007F")

	tests := []struct {
		name      string
		in        string
		supported fonts.Range
		want      string
	}{
		{"supported text unchanged", "Café", latin1, "Café"},
		{"decomposition", "Řehoř", latin1, "Rehor"},
		{"ascii strips accents", "Café", ascii, "Cafe"},
		{"letters without decomposition", "Straße Łódź", ascii, "Strasse Lodz"},
		{"ligatures", "Æsir œuvre", ascii, "AEsir oeuvre"},
		{"typographic quotes", "“quoted” – ‘x’", ascii, "\"quoted\" - 'x'"},
		{"euro sign", "10 €", ascii, "10 EUR"},
		{"cyrillic", "Москва", latin1, "Moskva"},
		{"greek", "Αθήνα", ascii, "Athina"},
		{"unknown symbol", "日本", latin1, "??"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fonts.Transliterate(tc.in, tc.supported); got != tc.want {
				t.Fatalf("Transliterate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransliterateOutputSupported(t *testing.T) {
	ascii := fonts.MustParseRange("0000-007F")
	for _, in := range []string{"Ünïcödé", "Ελλάδα", "Київ", "∑ ≠ ∞", "Zürich — 5 €"} {
		out := fonts.Transliterate(in, ascii)
		if ascii.Unsupported(out) {
			t.Fatalf("Transliterate(%q) = %q still has unsupported runes", in, out)
		}
	}
}
