package layout

// Physical units and page geometry, in points
const (
	Cm = 72 / 2.54

	PageWidth  = 21.0 * Cm
	PageHeight = 29.7 * Cm

	CardWidth  = 10.5 * Cm
	CardHeight = 14.85 * Cm

	CardsPerPage = 4
)

// Color is an RGB color with components in [0, 1]
type Color struct {
	R, G, B float64
}

// Palette
var (
	Black      = Color{0, 0, 0}
	Purple     = Color{0.5, 0.2, 0.8}
	BannerFill = Color{0.95, 0.9, 1.0}
	BannerText = Color{0.3, 0.1, 0.5}
	GuideGray  = Color{0.8, 0.8, 0.8}
)

// Align is the horizontal anchoring of a text run relative to its X
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Font selects one of the standard Helvetica faces
type Font struct {
	Family string
	Bold   bool
	Size   float64
}

func helvetica(size float64) Font     { return Font{Family: "Helvetica", Size: size} }
func helveticaBold(size float64) Font { return Font{Family: "Helvetica", Bold: true, Size: size} }

// Shape is one element of a drawing program
type Shape interface {
	shape()
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
// A nil Fill draws the outline only.
type Rect struct {
	X, Y, W, H float64
	Stroke     Color
	LineWidth  float64
	Fill       *Color
}

// Line is a straight stroke. An empty Dash draws a solid line.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         Color
	LineWidth      float64
	Dash           []float64
}

// Text is a single-line text run with its baseline at Y
type Text struct {
	X, Y  float64
	Value string
	Font  Font
	Color Color
	Align Align
}

// Image is a square QR code encoding Payload, anchored at its bottom-left corner
type Image struct {
	Name       string
	Payload    string
	X, Y, W, H float64
}

func (Rect) shape()  {}
func (Line) shape()  {}
func (Text) shape()  {}
func (Image) shape() {}
