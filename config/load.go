package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a partial options document (YAML or JSON) onto Default.
func Parse(data []byte) (Options, error) {
	return Merge(Default(), data)
}

// Merge decodes a partial options document onto a copy of base.
//
// Mapping keys merge recursively: keys absent from the document keep the
// value from base. Sequences and scalars present in the document replace the
// corresponding value of base wholesale. Unknown keys are rejected. A font
// given a new path drops the font bytes base carried for it.
func Merge(base Options, data []byte) (Options, error) {
	opts := base.Clone()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("decode options: %w", err)
	}
	b, f := base.Style.Fonts, &opts.Style.Fonts
	dropReplacedData(b.Normal, &f.Normal)
	dropReplacedData(b.Bold, &f.Bold)
	dropReplacedData(b.Fallback.FontSpec, &f.Fallback.FontSpec)
	return opts, nil
}

func dropReplacedData(base FontSpec, merged *FontSpec) {
	if merged.Path != "" && merged.Path != base.Path {
		merged.Data = nil
	}
}

// Load reads and parses an options file.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	return Parse(data)
}

// FromMap merges a generic partial options tree onto Default, the way a
// caller would pass a nested literal.
func FromMap(m map[string]interface{}) (Options, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return Options{}, fmt.Errorf("encode options: %w", err)
	}
	return Parse(data)
}

// Encode writes o as YAML.
func Encode(w io.Writer, o Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	return enc.Close()
}
