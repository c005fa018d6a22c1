// Package render draws a layout.Document onto a Canvas.
//
// A Canvas exposes the handful of primitives scorecards need: rectangles,
// aligned single-line text, dashed lines, images and page breaks. The PDF
// canvas writes a real document using go-pdf/fpdf; the Recorder keeps the
// calls in memory so tests can inspect exactly what would be drawn.
package render

import (
	"context"
	"io"

	"github.com/abrezinsky/scorecards/internal/layout"
)

// Canvas is a drawing back end. Coordinates are PDF points with a
// bottom-left origin, as produced by the layout package.
type Canvas interface {
	NewPage()
	SetStrokeColor(c layout.Color)
	SetFillColor(c layout.Color)
	SetLineWidth(w float64)
	// SetDash sets the dash pattern for subsequent lines; nil means solid
	SetDash(pattern []float64)
	Rect(x, y, w, h float64, fill bool)
	Line(x1, y1, x2, y2 float64)
	Text(x, y float64, s string, font layout.Font, align layout.Align)
	// Image draws png at the given box; name identifies the image within the document
	Image(name string, png []byte, x, y, w, h float64)
	// Finish completes the document and writes it to w
	Finish(w io.Writer) error
}

// Draw replays every page of doc onto c. QR images are encoded on the fly
// when doc.QRCodes is set. Draw stops with ctx's error if it is cancelled
// between pages.
func Draw(ctx context.Context, doc *layout.Document, c Canvas) error {
	for _, page := range doc.Pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.NewPage()
		if doc.CuttingGuides {
			if err := drawShapes(c, layout.GuideShapes()); err != nil {
				return err
			}
		}
		for _, card := range page.Cards {
			if err := drawShapes(c, layout.CardShapes(card, doc.QRCodes)); err != nil {
				return err
			}
		}
	}
	return nil
}

func drawShapes(c Canvas, shapes []layout.Shape) error {
	for _, s := range shapes {
		switch v := s.(type) {
		case layout.Rect:
			c.SetDash(nil)
			c.SetStrokeColor(v.Stroke)
			c.SetLineWidth(v.LineWidth)
			if v.Fill != nil {
				c.SetFillColor(*v.Fill)
			}
			c.Rect(v.X, v.Y, v.W, v.H, v.Fill != nil)
		case layout.Line:
			c.SetStrokeColor(v.Stroke)
			c.SetLineWidth(v.LineWidth)
			c.SetDash(v.Dash)
			c.Line(v.X1, v.Y1, v.X2, v.Y2)
			if len(v.Dash) > 0 {
				c.SetDash(nil)
			}
		case layout.Text:
			c.SetFillColor(v.Color)
			c.Text(v.X, v.Y, v.Value, v.Font, v.Align)
		case layout.Image:
			png, err := QRCode(v.Payload)
			if err != nil {
				return err
			}
			c.Image(v.Name, png, v.X, v.Y, v.W, v.H)
		}
	}
	return nil
}
