package render

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/abrezinsky/scorecards/internal/layout"
)

// Creator is recorded in the PDF metadata
const Creator = "scorecards"

// PDF is a Canvas backed by fpdf. The core Helvetica faces only cover
// Windows-1252, so text is transcoded before it reaches the document.
type PDF struct {
	doc    *fpdf.Fpdf
	stroke layout.Color
	fill   layout.Color
	enc    *encoding.Encoder
}

var _ Canvas = (*PDF)(nil)

// PDFOption configures a PDF canvas
type PDFOption func(*PDF)

// WithCreationDate pins the creation and modification dates. Output is
// byte-for-byte reproducible for a fixed date.
func WithCreationDate(t time.Time) PDFOption {
	return func(p *PDF) {
		p.doc.SetCreationDate(t)
		p.doc.SetModificationDate(t)
	}
}

// WithTitle sets the document title and subject
func WithTitle(title, subject string) PDFOption {
	return func(p *PDF) {
		p.doc.SetTitle(title, true)
		p.doc.SetSubject(subject, true)
	}
}

// NewPDF returns an empty A4 portrait canvas measured in points
func NewPDF(opts ...PDFOption) *PDF {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.SetCatalogSort(true)
	doc.SetCreator(Creator, true)

	p := &PDF{
		doc: doc,
		enc: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *PDF) NewPage() {
	p.doc.AddPage()
	// fpdf resets graphics state on a new page
	p.SetStrokeColor(p.stroke)
	p.SetFillColor(p.fill)
}

func (p *PDF) SetStrokeColor(c layout.Color) {
	p.stroke = c
	r, g, b := rgb(c)
	p.doc.SetDrawColor(r, g, b)
}

// SetFillColor sets both the shape fill and the text color
func (p *PDF) SetFillColor(c layout.Color) {
	p.fill = c
	r, g, b := rgb(c)
	p.doc.SetFillColor(r, g, b)
	p.doc.SetTextColor(r, g, b)
}

func (p *PDF) SetLineWidth(w float64) {
	p.doc.SetLineWidth(w)
}

func (p *PDF) SetDash(pattern []float64) {
	p.doc.SetDashPattern(pattern, 0)
}

func (p *PDF) Rect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "FD"
	}
	p.doc.Rect(x, flipY(y+h), w, h, style)
}

func (p *PDF) Line(x1, y1, x2, y2 float64) {
	p.doc.Line(x1, flipY(y1), x2, flipY(y2))
}

func (p *PDF) Text(x, y float64, s string, font layout.Font, align layout.Align) {
	style := ""
	if font.Bold {
		style = "B"
	}
	p.doc.SetFont(font.Family, style, font.Size)

	text := p.encode(s)
	switch align {
	case layout.AlignCenter:
		x -= p.doc.GetStringWidth(text) / 2
	case layout.AlignRight:
		x -= p.doc.GetStringWidth(text)
	}
	p.doc.Text(x, flipY(y), text)
}

func (p *PDF) Image(name string, png []byte, x, y, w, h float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	p.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	p.doc.ImageOptions(name, x, flipY(y+h), w, h, false, opts, 0, "")
}

// Finish writes the document. Any error fpdf accumulated while drawing is
// reported here.
func (p *PDF) Finish(w io.Writer) error {
	return p.doc.Output(w)
}

// WritePDF draws doc onto a new PDF canvas and writes the result to w
func WritePDF(ctx context.Context, doc *layout.Document, w io.Writer, opts ...PDFOption) error {
	p := NewPDF(opts...)
	if err := Draw(ctx, doc, p); err != nil {
		return err
	}
	return p.Finish(w)
}

func (p *PDF) encode(s string) string {
	out, err := p.enc.String(s)
	if err != nil {
		return s
	}
	return out
}

// flipY converts a bottom-left y to fpdf's top-left origin
func flipY(y float64) float64 {
	return layout.PageHeight - y
}

func rgb(c layout.Color) (int, int, int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

func channel(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return int(v*255 + 0.5)
}
