package invoice

import "github.com/wudi/invoicekit/observability"

// Option configures an Invoice.
type Option func(*Invoice)

// WithLogger sets the logger used while rendering.
func WithLogger(l observability.Logger) Option {
	return func(inv *Invoice) {
		if l != nil {
			inv.log = l
		}
	}
}

// WithTracer sets the tracer wrapping every render.
func WithTracer(t observability.Tracer) Option {
	return func(inv *Invoice) {
		if t != nil {
			inv.tracer = t
		}
	}
}

// WithBackend replaces the PDF backend.
func WithBackend(fn BackendFunc) Option {
	return func(inv *Invoice) { inv.backend = fn }
}

// WithSingleLineHeight tunes the cursor step of held text that the backend
// reported as zero height.
func WithSingleLineHeight(h float64) Option {
	return func(inv *Invoice) { inv.singleLineHeight = h }
}
