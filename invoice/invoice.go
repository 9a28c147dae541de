// Package invoice renders invoices described by config.Options into
// single-page PDF documents.
//
//	opts, err := config.Load("invoice.yaml")
//	...
//	inv, err := invoice.New(opts)
//	...
//	pdf, err := inv.GenerateBuffer(ctx)
package invoice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/wudi/invoicekit/builder"
	"github.com/wudi/invoicekit/config"
	"github.com/wudi/invoicekit/layout"
	"github.com/wudi/invoicekit/observability"
)

// BackendFunc creates the document a single render draws onto.
type BackendFunc func(opts config.Options) (builder.Document, error)

// Invoice is a validated, immutable invoice description. It is safe to
// generate from multiple goroutines; every call renders into its own
// document.
type Invoice struct {
	opts             config.Options
	log              observability.Logger
	tracer           observability.Tracer
	backend          BackendFunc
	singleLineHeight float64
}

// New validates opts and keeps a private copy of them.
func New(opts config.Options, options ...Option) (*Invoice, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	inv := &Invoice{
		opts:   opts.Clone(),
		log:    observability.NopLogger{},
		tracer: observability.NopTracer(),
	}
	for _, o := range options {
		o(inv)
	}
	if inv.backend == nil {
		inv.backend = inv.pdfBackend
	}
	return inv, nil
}

// Options returns a copy of the options the invoice renders.
func (inv *Invoice) Options() config.Options { return inv.opts.Clone() }

// GenerateBuffer renders the invoice and returns the finished document.
// Rendering is not interruptible; ctx is only checked before it starts.
func (inv *Invoice) GenerateBuffer(ctx context.Context) (data []byte, err error) {
	ctx, span := inv.tracer.StartSpan(ctx, observability.SpanGenerate)
	defer func() {
		if err != nil {
			span.SetError(err)
		}
		span.Finish()
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := inv.backend(inv.opts)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	engineOpts := []layout.Option{layout.WithLogger(inv.log)}
	if inv.singleLineHeight > 0 {
		engineOpts = append(engineOpts, layout.WithSingleLineHeight(inv.singleLineHeight))
	}
	engine, err := layout.NewEngine(doc, inv.opts.Style, engineOpts...)
	if err != nil {
		return nil, err
	}
	if err := engine.Render(inv.opts.Data.Invoice); err != nil {
		return nil, err
	}
	span.SetTag("fallback_font", engine.FallbackLoaded())

	_, finalize := inv.tracer.StartSpan(ctx, observability.SpanFinalize)
	data, err = doc.Close()
	if err != nil {
		finalize.SetError(err)
	}
	finalize.Finish()
	if err != nil {
		return nil, err
	}
	span.SetTag("bytes", len(data))
	inv.log.Info("invoice generated",
		observability.String("name", inv.opts.Data.Invoice.Name),
		observability.Int("bytes", len(data)))
	return data, nil
}

// Generate renders the invoice into w.
func (inv *Invoice) Generate(ctx context.Context, w io.Writer) error {
	data, err := inv.GenerateBuffer(ctx)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write invoice: %w", err)
	}
	return nil
}

// WriteFile renders the invoice into the file at path.
func (inv *Invoice) WriteFile(ctx context.Context, path string) error {
	data, err := inv.GenerateBuffer(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write invoice: %w", err)
	}
	return nil
}

func (inv *Invoice) pdfBackend(opts config.Options) (builder.Document, error) {
	return builder.NewPDF(builder.Config{
		Deterministic: true,
		Title:         opts.Data.Invoice.Name,
		RightMargin:   opts.Style.Document.MarginRight,
		Logger:        inv.log,
	}), nil
}
