package fonts

import (
	"fmt"

	"github.com/go-text/typesetting/language"
	"github.com/wudi/invoicekit/observability"
)

// Weight selects between the normal and the bold font.
type Weight int

const (
	Normal Weight = iota
	Bold
)

func (w Weight) String() string {
	if w == Bold {
		return "bold"
	}
	return "normal"
}

// ParseWeight accepts "normal", "bold" and the empty string (normal).
func ParseWeight(s string) (Weight, error) {
	switch s {
	case "", "normal":
		return Normal, nil
	case "bold":
		return Bold, nil
	}
	return Normal, fmt.Errorf("unknown font weight %q", s)
}

// Spec describes one font slot. A Spec without Path and Data names a font
// built into the rendering backend.
type Spec struct {
	Name  string
	Path  string
	Data  []byte
	Range Range
}

// Fallback is the font substituted for text outside the normal range.
type Fallback struct {
	Spec
	Enabled       bool
	Transliterate bool
}

// Set is the font configuration of one document.
type Set struct {
	Normal   Spec
	Bold     Spec
	Fallback Fallback
}

func (s Set) name(w Weight) string {
	if w == Bold {
		return s.Bold.Name
	}
	return s.Normal.Name
}

// Registrar makes a font file known to the rendering backend.
type Registrar interface {
	Register(spec Spec) error
}

// RegistrarFunc adapts a function to the Registrar interface.
type RegistrarFunc func(spec Spec) error

func (f RegistrarFunc) Register(spec Spec) error { return f(spec) }

// Resolver picks the font for each piece of text. It registers the
// fallback font with the backend the first time the fallback is chosen and
// never again. A Resolver belongs to exactly one document.
type Resolver struct {
	set            Set
	reg            Registrar
	log            observability.Logger
	fallbackLoaded bool
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithLogger sets the logger used for fallback decisions.
func WithLogger(l observability.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// NewResolver creates a Resolver for set, registering fonts through reg.
func NewResolver(set Set, reg Registrar, opts ...ResolverOption) *Resolver {
	r := &Resolver{set: set, reg: reg, log: observability.NopLogger{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the name of the font to draw text with at weight w.
//
// The configured font for w is used unless fallback is enabled, text has
// characters outside the normal range, and all of them are inside the
// fallback range. The fallback font has a single weight.
func (r *Resolver) Resolve(w Weight, text string) (string, error) {
	fb := r.set.Fallback
	if !fb.Enabled {
		return r.set.name(w), nil
	}
	special, found := r.set.Normal.Range.FirstUnsupported(text)
	if !found {
		return r.set.name(w), nil
	}
	if fb.Range.Unsupported(text) {
		return r.set.name(w), nil
	}
	if !r.fallbackLoaded {
		if err := r.reg.Register(fb.Spec); err != nil {
			return "", fmt.Errorf("register fallback font %q: %w", fb.Name, err)
		}
		r.fallbackLoaded = true
		r.log.Info("fallback font registered",
			observability.String("font", fb.Name),
			observability.String("script", language.LookupScript(special).String()),
			observability.String("trigger", fmt.Sprintf("%U", special)))
	}
	return fb.Name, nil
}

// Normalize returns the text actually handed to the backend. When the
// fallback font is enabled with transliteration and text has characters
// even the fallback cannot display, Resolve keeps the configured font, so
// text is transliterated into the normal range.
func (r *Resolver) Normalize(text string) string {
	fb := r.set.Fallback
	if !fb.Enabled || !fb.Transliterate || !fb.Range.Unsupported(text) {
		return text
	}
	out := Transliterate(text, r.set.Normal.Range)
	r.log.Debug("text transliterated", observability.String("from", text), observability.String("to", out))
	return out
}

// FallbackLoaded reports whether the fallback font has been registered.
func (r *Resolver) FallbackLoaded() bool { return r.fallbackLoaded }
