package builder

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/wudi/invoicekit/observability"
)

const (
	// LineHeightFactor scales the font size into the distance between the
	// baselines of wrapped lines.
	LineHeightFactor = 1.15

	producer = "invoicekit"
)

type fontRef struct {
	family string
	style  string
	utf8   bool
}

// PDF is the fpdf backed Document. It is not safe for concurrent use.
type PDF struct {
	pdf       *fpdf.Fpdf
	log       observability.Logger
	translate func(string) string
	fonts     map[string]fontRef
	current   fontRef
	size      float64
	closed    bool
}

var _ Document = (*PDF)(nil)

// NewPDF starts an A4 portrait document with a single page.
func NewPDF(cfg Config) *PDF {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, cfg.RightMargin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCompression(!cfg.DisableCompression)
	pdf.SetProducer(producer, false)

	created := cfg.CreationDate
	if cfg.Deterministic {
		created = DeterministicDate
		pdf.SetCatalogSort(true)
	} else if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)
	if cfg.Title != "" {
		pdf.SetTitle(cfg.Title, true)
	}
	if cfg.Author != "" {
		pdf.SetAuthor(cfg.Author, true)
	}

	log := cfg.Logger
	if log == nil {
		log = observability.NopLogger{}
	}
	p := &PDF{
		pdf:       pdf,
		log:       log,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		fonts:     make(map[string]fontRef),
		size:      12,
	}
	pdf.AddPage()
	p.SetFont("Helvetica")
	return p
}

func (p *PDF) PageWidth() float64 {
	w, _ := p.pdf.GetPageSize()
	return w
}

func (p *PDF) FillRect(x, y, width, height float64, c Color) {
	r, g, b := rgb(c)
	p.pdf.SetFillColor(r, g, b)
	p.pdf.Rect(x, y, width, height, "F")
}

func (p *PDF) StrokeLine(x1, y1, x2, y2 float64, opts LineOptions) {
	r, g, b := rgb(opts.StrokeColor)
	p.pdf.SetDrawColor(r, g, b)
	if opts.LineWidth > 0 {
		p.pdf.SetLineWidth(opts.LineWidth)
	}
	p.pdf.Line(x1, y1, x2, y2)
}

func (p *PDF) DrawImage(path string, x, y float64, opts ImageOptions) error {
	tp, err := imageType(path)
	if err != nil {
		return err
	}
	p.pdf.ImageOptions(path, x, y, opts.Width, opts.Height, false,
		fpdf.ImageOptions{ImageType: tp, ReadDpi: true}, 0, "")
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("draw image %s: %w", path, err)
	}
	return nil
}

// RegisterFont embeds a TrueType font. Names of the PDF standard fonts are
// always registered.
func (p *PDF) RegisterFont(name string, src FontSource) error {
	if _, ok := p.lookup(name); ok {
		return nil
	}
	data, err := LoadFont(src)
	if err != nil {
		return fmt.Errorf("register font %q: %w", name, err)
	}
	psName, err := validateFont(data)
	if err != nil {
		return fmt.Errorf("register font %q: %w", name, err)
	}
	ref := fontRef{family: p.newFamily(name), utf8: true}
	p.pdf.AddUTF8FontFromBytes(ref.family, ref.style, data)
	if err := p.pdf.Error(); err != nil {
		return fmt.Errorf("register font %q: %w", name, err)
	}
	p.fonts[name] = ref
	p.log.Debug("font registered",
		observability.String("name", name),
		observability.String("postscript", psName),
		observability.Int("bytes", len(data)))
	return nil
}

// SetFont selects a registered or standard font. Unknown names put the
// document into an error state reported by Close.
func (p *PDF) SetFont(name string) {
	ref, ok := p.lookup(name)
	if !ok {
		p.pdf.SetErrorf("font %q is not registered", name)
		return
	}
	p.current = ref
	p.pdf.SetFont(ref.family, ref.style, p.size)
}

func (p *PDF) SetFontSize(size float64) {
	p.size = size
	p.pdf.SetFontSize(size)
}

func (p *PDF) SetFillColor(c Color) {
	r, g, b := rgb(c)
	p.pdf.SetTextColor(r, g, b)
}

func (p *PDF) DrawText(text string, x, y float64, opts TextOptions) float64 {
	p.pdf.SetXY(x, y)
	p.pdf.MultiCell(opts.MaxWidth, p.size*LineHeightFactor, p.encode(text), "", alignStr(opts.Align), false)
	return p.pdf.GetY()
}

// Close writes the document through a pipe and waits for the writer to
// finish.
func (p *PDF) Close() ([]byte, error) {
	if p.closed {
		return nil, ErrClosed
	}
	p.closed = true

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(p.pdf.Output(pw))
	}()
	data, err := io.ReadAll(pr)
	if err != nil {
		return nil, fmt.Errorf("finalize document: %w", err)
	}
	return data, nil
}

func (p *PDF) lookup(name string) (fontRef, bool) {
	if ref, ok := p.fonts[name]; ok {
		return ref, true
	}
	if core, ok := coreFonts[name]; ok {
		return fontRef{family: core.family, style: core.style}, true
	}
	return fontRef{}, false
}

func (p *PDF) encode(text string) string {
	if p.current.utf8 {
		return sanitizeUTF8(text)
	}
	return p.translate(text)
}

// sanitizeUTF8 drops characters outside the Basic Multilingual Plane, which
// embedded fonts cannot address.
func sanitizeUTF8(text string) string {
	if strings.IndexFunc(text, func(r rune) bool { return r > 0xFFFF }) < 0 {
		return text
	}
	return strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return -1
		}
		return r
	}, text)
}

// newFamily returns an fpdf family no registered font uses yet. fpdf keeps
// the first font added under a family and ignores later ones.
func (p *PDF) newFamily(name string) string {
	base := "ttf" + familyKey(name)
	taken := make(map[string]bool, len(p.fonts))
	for _, ref := range p.fonts {
		taken[ref.family] = true
	}
	family := base
	for n := 1; family == "ttf" || taken[family]; n++ {
		family = fmt.Sprintf("%s%d", base, n)
	}
	return family
}

func familyKey(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + 'a' - 'A'
		}
		return -1
	}, name)
}

func alignStr(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	}
	return "L"
}

func rgb(c Color) (int, int, int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
