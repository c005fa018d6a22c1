package render

import (
	"fmt"
	"io"
	"slices"

	"github.com/abrezinsky/scorecards/internal/layout"
)

// OpKind identifies a recorded canvas call
type OpKind int

const (
	OpNewPage OpKind = iota
	OpStrokeColor
	OpFillColor
	OpLineWidth
	OpDash
	OpRect
	OpLine
	OpText
	OpImage
)

var opNames = [...]string{"page", "stroke", "fill", "width", "dash", "rect", "line", "text", "image"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Page   int
	Color  layout.Color
	Width  float64
	Dash   []float64
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	Fill   bool
	Text   string
	Font   layout.Font
	Align  layout.Align
	Name   string
	PNG    []byte
}

// Recorder is a Canvas that keeps every call in order
type Recorder struct {
	Ops   []Op
	page  int
	fill  layout.Color
	final bool
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder returns an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{page: -1}
}

func (r *Recorder) add(op Op) {
	op.Page = r.page
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) NewPage() {
	r.page++
	r.add(Op{Kind: OpNewPage})
}

func (r *Recorder) SetStrokeColor(c layout.Color) { r.add(Op{Kind: OpStrokeColor, Color: c}) }

func (r *Recorder) SetFillColor(c layout.Color) {
	r.fill = c
	r.add(Op{Kind: OpFillColor, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) { r.add(Op{Kind: OpLineWidth, Width: w}) }

func (r *Recorder) SetDash(pattern []float64) {
	r.add(Op{Kind: OpDash, Dash: slices.Clone(pattern)})
}

func (r *Recorder) Rect(x, y, w, h float64, fill bool) {
	r.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Fill: fill})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.add(Op{Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

// Text records the run with the current fill color
func (r *Recorder) Text(x, y float64, s string, font layout.Font, align layout.Align) {
	r.add(Op{Kind: OpText, X: x, Y: y, Text: s, Font: font, Align: align, Color: r.fill})
}

func (r *Recorder) Image(name string, png []byte, x, y, w, h float64) {
	r.add(Op{Kind: OpImage, Name: name, PNG: png, X: x, Y: y, W: w, H: h})
}

// Finish marks the recording complete and writes a one-line summary to w
func (r *Recorder) Finish(w io.Writer) error {
	r.final = true
	_, err := fmt.Fprintf(w, "%d pages, %d ops\n", r.Pages(), len(r.Ops))
	return err
}

// Finished reports whether Finish was called
func (r *Recorder) Finished() bool { return r.final }

// Pages returns the number of pages started
func (r *Recorder) Pages() int { return r.page + 1 }

// Filter returns the recorded ops of the given kind
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the recorded text values in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}
