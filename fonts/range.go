package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	gofont "github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/rangetable"
)

// Range is the set of code points a font can display. The zero Range
// supports every code point.
type Range struct {
	table *unicode.RangeTable
}

// ParseRange builds a Range from textual specs. A spec is a hex code point
// ("00E9", "U+00E9", "0xE9"), a hex span ("0000-00FF", "U+0370-U+03FF"), or
// the name of a Unicode script or category ("Latin", "Lu").
// Without specs the zero Range is returned.
func ParseRange(specs ...string) (Range, error) {
	if len(specs) == 0 {
		return Range{}, nil
	}
	tables := make([]*unicode.RangeTable, 0, len(specs))
	for _, s := range specs {
		t, err := parseRangeSpec(s)
		if err != nil {
			return Range{}, err
		}
		tables = append(tables, t)
	}
	return Range{table: rangetable.Merge(tables...)}, nil
}

// MustParseRange is like ParseRange but panics on malformed specs.
func MustParseRange(specs ...string) Range {
	r, err := ParseRange(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRange wraps existing range tables.
func NewRange(tables ...*unicode.RangeTable) Range {
	if len(tables) == 0 {
		return Range{}
	}
	return Range{table: rangetable.Merge(tables...)}
}

func parseRangeSpec(s string) (*unicode.RangeTable, error) {
	spec := strings.TrimSpace(s)
	if t, ok := unicode.Scripts[spec]; ok {
		return t, nil
	}
	if t, ok := unicode.Categories[spec]; ok {
		return t, nil
	}
	loSpec, hiSpec, span := strings.Cut(spec, "-")
	lo, err := parseCodePoint(loSpec)
	if err != nil {
		return nil, fmt.Errorf("range %q: %w", s, err)
	}
	hi := lo
	if span {
		if hi, err = parseCodePoint(hiSpec); err != nil {
			return nil, fmt.Errorf("range %q: %w", s, err)
		}
	}
	if hi < lo {
		return nil, fmt.Errorf("range %q: end before start", s)
	}
	return spanTable(lo, hi), nil
}

func parseCodePoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"U+", "u+", "0x", "0X"} {
		s = strings.TrimPrefix(s, prefix)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || n > unicode.MaxRune {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	return rune(n), nil
}

func spanTable(lo, hi rune) *unicode.RangeTable {
	t := &unicode.RangeTable{}
	if lo <= 0xFFFF {
		top := hi
		if top > 0xFFFF {
			top = 0xFFFF
		}
		t.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(top), Stride: 1}}
		if top <= unicode.MaxLatin1 {
			t.LatinOffset = 1
		}
	}
	if hi > 0xFFFF {
		start := lo
		if start < 0x10000 {
			start = 0x10000
		}
		t.R32 = []unicode.Range32{{Lo: uint32(start), Hi: uint32(hi), Stride: 1}}
	}
	return t
}

// IsZero reports whether r is the unrestricted zero Range.
func (r Range) IsZero() bool { return r.table == nil }

// Supports reports whether c is inside r.
func (r Range) Supports(c rune) bool {
	return r.table == nil || unicode.Is(r.table, c)
}

// FirstUnsupported returns the first rune of text outside r.
func (r Range) FirstUnsupported(text string) (rune, bool) {
	if r.table == nil {
		return 0, false
	}
	for _, c := range text {
		if !unicode.Is(r.table, c) {
			return c, true
		}
	}
	return 0, false
}

// Unsupported reports whether text contains at least one rune outside r.
func (r Range) Unsupported(text string) bool {
	_, found := r.FirstUnsupported(text)
	return found
}

// CoverageFromFont returns the Basic Multilingual Plane code points mapped
// by the cmap of a TrueType or OpenType font.
func CoverageFromFont(data []byte) (Range, error) {
	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return Range{}, fmt.Errorf("parse font: %w", err)
	}
	var runes []rune
	for c := rune(0); c <= 0xFFFF; c++ {
		if c >= 0xD800 && c <= 0xDFFF {
			continue
		}
		if _, ok := face.NominalGlyph(c); ok {
			runes = append(runes, c)
		}
	}
	if len(runes) == 0 {
		return Range{}, errors.New("font maps no characters")
	}
	return Range{table: rangetable.New(runes...)}, nil
}
