package builder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"golang.org/x/image/font/sfnt"
)

type coreFont struct {
	family string
	style  string
}

// coreFonts maps the names of the PDF standard fonts onto fpdf families.
var coreFonts = map[string]coreFont{
	"Helvetica":             {"Helvetica", ""},
	"Helvetica-Bold":        {"Helvetica", "B"},
	"Helvetica-Oblique":     {"Helvetica", "I"},
	"Helvetica-BoldOblique": {"Helvetica", "BI"},
	"Arial":                 {"Arial", ""},
	"Arial-Bold":            {"Arial", "B"},
	"Times-Roman":           {"Times", ""},
	"Times-Bold":            {"Times", "B"},
	"Times-Italic":          {"Times", "I"},
	"Times-BoldItalic":      {"Times", "BI"},
	"Courier":               {"Courier", ""},
	"Courier-Bold":          {"Courier", "B"},
	"Courier-Oblique":       {"Courier", "I"},
	"Courier-BoldOblique":   {"Courier", "BI"},
	"Symbol":                {"Symbol", ""},
	"ZapfDingbats":          {"ZapfDingbats", ""},
}

// IsStandardFont reports whether name is one of the built-in PDF fonts,
// which need no font file.
func IsStandardFont(name string) bool {
	_, ok := coreFonts[name]
	return ok
}

// LoadFont returns the bytes of a font. A path that does not exist is
// looked up by its base name in the system font directories.
func LoadFont(src FontSource) ([]byte, error) {
	if len(src.Data) > 0 {
		return src.Data, nil
	}
	if src.Path == "" {
		return nil, ErrNoFontSource
	}
	data, err := os.ReadFile(src.Path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read font: %w", err)
	}
	found, ferr := findfont.Find(filepath.Base(src.Path))
	if ferr != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	data, err = os.ReadFile(found)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}

// validateFont checks that data holds a parseable TrueType or OpenType font
// and returns its PostScript name.
func validateFont(data []byte) (string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse font: %w", err)
	}
	name, err := f.Name(nil, sfnt.NameIDPostScript)
	if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
		return "", fmt.Errorf("font name: %w", err)
	}
	return name, nil
}
