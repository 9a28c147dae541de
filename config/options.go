// Package config holds the declarative description of an invoice: the style
// constants that drive the layout and the invoice data itself.
//
// Options are produced once, from a user supplied partial document merged
// onto Default, and are treated as immutable afterwards.
package config

import "golang.org/x/image/font/gofont/goregular"

// Options is the complete input of one invoice render.
type Options struct {
	Style Style `yaml:"style"`
	Data  Data  `yaml:"data"`
}

// Style groups the layout constants.
type Style struct {
	Document DocumentStyle `yaml:"document"`
	Fonts    FontsStyle    `yaml:"fonts"`
	Header   HeaderStyle   `yaml:"header"`
	Table    TableStyle    `yaml:"table"`
	Text     TextStyle     `yaml:"text"`
}

// DocumentStyle defines page margins in points.
type DocumentStyle struct {
	MarginLeft  float64 `yaml:"marginLeft"`
	MarginRight float64 `yaml:"marginRight"`
	MarginTop   float64 `yaml:"marginTop"`
}

// FontsStyle configures the three font slots.
type FontsStyle struct {
	Normal   FontSpec     `yaml:"normal"`
	Bold     FontSpec     `yaml:"bold"`
	Fallback FallbackSpec `yaml:"fallback"`
}

// FontSpec names a font. Without Path (or Data) the name must denote a
// font built into the rendering backend.
//
// Range lists the code points the font supports, as hex ranges ("0000-00FF",
// "U+0370-U+03FF"), single code points or Unicode script names. Characters
// outside the range are considered unsupported.
type FontSpec struct {
	Name  string   `yaml:"name"`
	Path  string   `yaml:"path,omitempty"`
	Range []string `yaml:"range,omitempty"`

	// Data holds the font file contents when the font does not live on disk.
	Data []byte `yaml:"-"`
}

// FallbackSpec is the font used for text the normal font cannot display.
type FallbackSpec struct {
	FontSpec      `yaml:",inline"`
	Enabled       bool `yaml:"enabled"`
	Transliterate bool `yaml:"transliterate"`
}

// HeaderStyle describes the filled band at the top of the page.
type HeaderStyle struct {
	BackgroundColor Color   `yaml:"backgroundColor"`
	Height          float64 `yaml:"height"`
	Image           *Image  `yaml:"image,omitempty"`
	TextPosition    float64 `yaml:"textPosition"`
}

// Image is a picture painted into the header.
type Image struct {
	Path   string  `yaml:"path"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// TableStyle fixes the two right-most columns of every table row.
type TableStyle struct {
	Quantity  Column    `yaml:"quantity"`
	Total     Column    `yaml:"total"`
	Separator Separator `yaml:"separator"`
}

// Column is a fixed table column.
type Column struct {
	Position float64 `yaml:"position"`
	MaxWidth float64 `yaml:"maxWidth"`
}

// Separator is the rule drawn below the table header.
type Separator struct {
	Color Color   `yaml:"color"`
	Width float64 `yaml:"width"`
}

// TextStyle holds the text palette and sizes.
type TextStyle struct {
	PrimaryColor   Color   `yaml:"primaryColor"`
	SecondaryColor Color   `yaml:"secondaryColor"`
	HeadingSize    float64 `yaml:"headingSize"`
	RegularSize    float64 `yaml:"regularSize"`
}

// Data wraps the invoice content.
type Data struct {
	Invoice Invoice `yaml:"invoice"`
}

// Invoice is the content rendered into the document.
type Invoice struct {
	Name     string  `yaml:"name"`
	Header   []Line  `yaml:"header"`
	Customer []Line  `yaml:"customer"`
	Seller   []Line  `yaml:"seller"`
	Currency string  `yaml:"currency"`
	Details  Details `yaml:"details"`
	Legal    []Legal `yaml:"legal"`
}

// Line is a labelled block of one or more values.
type Line struct {
	Label string `yaml:"label"`
	Value Values `yaml:"value"`
}

// Details is the line-item table.
type Details struct {
	Header []Cell   `yaml:"header"`
	Parts  [][]Cell `yaml:"parts"`
	Total  []Total  `yaml:"total"`
}

// Cell is one table cell. Price cells receive currency formatting.
type Cell struct {
	Value Value `yaml:"value"`
	Price bool  `yaml:"price,omitempty"`
}

// Total is one line of the totals block.
type Total struct {
	Label string `yaml:"label"`
	Value Value  `yaml:"value"`
	Price bool   `yaml:"price,omitempty"`
}

// Legal is one centered line below the table. Weight is "normal" or
// "bold", Color is "primary" or "secondary"; empty means the default.
type Legal struct {
	Value  string `yaml:"value"`
	Weight string `yaml:"weight,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// Default returns the built-in options. Every call returns fresh slices.
//
// The fallback font is Go Regular, embedded in the binary, so text in
// Latin Extended, Greek or Cyrillic renders without any font installed. Its
// range is read from the font itself.
func Default() Options {
	return Options{
		Style: Style{
			Document: DocumentStyle{
				MarginLeft:  30,
				MarginRight: 30,
				MarginTop:   30,
			},
			Fonts: FontsStyle{
				Normal: FontSpec{
					Name:  "Helvetica",
					Range: []string{"0000-00FF"},
				},
				Bold: FontSpec{
					Name: "Helvetica-Bold",
				},
				Fallback: FallbackSpec{
					FontSpec: FontSpec{
						Name: "Go Regular",
						Data: cloneSlice(goregular.TTF),
					},
					Enabled:       true,
					Transliterate: true,
				},
			},
			Header: HeaderStyle{
				BackgroundColor: MustColor("#F8F8FA"),
				Height:          150,
				TextPosition:    330,
			},
			Table: TableStyle{
				Quantity:  Column{Position: 330, MaxWidth: 140},
				Total:     Column{Position: 490, MaxWidth: 80},
				Separator: Separator{Color: MustColor("#E0E0E0"), Width: 1},
			},
			Text: TextStyle{
				PrimaryColor:   MustColor("#000100"),
				SecondaryColor: MustColor("#8F8F8F"),
				HeadingSize:    15,
				RegularSize:    10,
			},
		},
		Data: Data{
			Invoice: Invoice{
				Name:     "Invoice",
				Header:   []Line{},
				Customer: []Line{},
				Seller:   []Line{},
				Details: Details{
					Header: []Cell{},
					Parts:  [][]Cell{},
					Total:  []Total{},
				},
				Legal: []Legal{},
			},
		},
	}
}

// Clone returns a copy of o that shares no mutable state with it.
func (o Options) Clone() Options {
	c := o
	fonts := &c.Style.Fonts
	fonts.Normal = fonts.Normal.clone()
	fonts.Bold = fonts.Bold.clone()
	fonts.Fallback.FontSpec = fonts.Fallback.FontSpec.clone()
	if o.Style.Header.Image != nil {
		img := *o.Style.Header.Image
		c.Style.Header.Image = &img
	}

	inv := &c.Data.Invoice
	inv.Header = cloneLines(inv.Header)
	inv.Customer = cloneLines(inv.Customer)
	inv.Seller = cloneLines(inv.Seller)
	inv.Details.Header = cloneSlice(inv.Details.Header)
	if inv.Details.Parts != nil {
		parts := make([][]Cell, len(inv.Details.Parts))
		for i, p := range inv.Details.Parts {
			parts[i] = cloneSlice(p)
		}
		inv.Details.Parts = parts
	}
	inv.Details.Total = cloneSlice(inv.Details.Total)
	inv.Legal = cloneSlice(inv.Legal)
	return c
}

func (f FontSpec) clone() FontSpec {
	f.Range = cloneSlice(f.Range)
	f.Data = cloneSlice(f.Data)
	return f
}

func cloneLines(lines []Line) []Line {
	if lines == nil {
		return nil
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{Label: l.Label, Value: cloneSlice(l.Value)}
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}
