package layout

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Card geometry, relative to the card origin. X offsets marked "content"
// are measured from the content inset.
const (
	ContentInset = 0.9 * Cm
	ContentWidth = 8.7 * Cm

	headerX = 5.25 * Cm
	headerY = 13.5 * Cm

	infoY      = 11.5 * Cm
	infoHeight = 0.8 * Cm
	roundTextX = 8.3 * Cm // content
	roundTextY = 11.8 * Cm

	bannerY     = 10.3 * Cm
	bannerTextY = 10.55 * Cm

	firstRowY  = 8.8 * Cm
	RowHeight  = 1.1 * Cm
	RowSpacing = 0.2 * Cm
	extraGap   = 0.8 * Cm

	numberOffsetY   = 0.4 * Cm
	extraLabelY     = 1.15 * Cm
	captionOffsetY  = 0.5 * Cm
	entryColumnX    = 0.7 * Cm // content
	qrSize          = 0.95 * Cm
	qrX             = ContentWidth - qrSize // content
	qrY             = 0.1 * Cm
	boxLineWidth    = 1.2
	cutoffLineWidth = 0.8
	guideLineWidth  = 0.5
)

// Dash patterns
var (
	CutoffDash = []float64{2, 2}
	GuideDash  = []float64{1, 4}
)

// ExtraAttemptLabel is printed above the extra attempt row
const ExtraAttemptLabel = "Extra attempt (Delegate initials ____)"

// resultColumns are the three boxes of a result row: time, judge, competitor
var resultColumns = [3]struct{ x, w float64 }{
	{0.7 * Cm, 5.3 * Cm},
	{6.2 * Cm, 1.1 * Cm},
	{7.5 * Cm, 1.2 * Cm},
}

// infoColumns are the name, ID and round boxes under the header
var infoColumns = [3]struct{ x, w float64 }{
	{0, 6.5 * Cm},
	{6.7 * Cm, 1.0 * Cm},
	{7.9 * Cm, 0.8 * Cm},
}

// RowY returns the y of result row i (0-based) relative to the card origin
func RowY(i int) float64 {
	return firstRowY - float64(i)*(RowHeight+RowSpacing)
}

// ExtraRowY returns the y of the extra attempt row for a card with n rows
func ExtraRowY(n int) float64 {
	return RowY(n-1) - (RowHeight + extraGap)
}

// CutoffLineY returns the y of the dashed separator drawn above result row
// i (0-based), halfway into the spacing between rows.
func CutoffLineY(i int) float64 {
	return RowY(i) + RowHeight + RowSpacing/2
}

// CutoffCaption is the caption printed for a card with a cutoff
func CutoffCaption(cutoff string) string {
	return "Cutoff: < " + FormatTimeLabel(cutoff)
}

// LimitCaption is the caption printed for a card with a time limit
func LimitCaption(limit string) string {
	return "Time limit: " + FormatTimeLabel(limit)
}

// QRPayload is the text encoded in a card's QR code
func QRPayload(card CardDescriptor) string {
	return fmt.Sprintf("%s|%s|%s|%d/%d", card.Competition, card.Event, card.Round, card.Sequence, card.RoundCards)
}

// CardShapes returns the drawing program for one card in page coordinates
func CardShapes(card CardDescriptor, withQR bool) []Shape {
	ox, oy := Origin(card.Row, card.Col)
	sx := ox + ContentInset
	upper := cases.Upper(language.Und)

	var shapes []Shape
	box := func(x, y, w, h float64) {
		shapes = append(shapes, Rect{X: x, Y: y, W: w, H: h, Stroke: Purple, LineWidth: boxLineWidth})
	}
	row := func(y float64) {
		for _, c := range resultColumns {
			box(sx+c.x, y, c.w, RowHeight)
		}
	}

	// header
	shapes = append(shapes, Text{
		X: ox + headerX, Y: oy + headerY,
		Value: upper.String(card.Competition),
		Font:  helveticaBold(14), Color: Black, Align: AlignCenter,
	})

	for _, c := range infoColumns {
		box(sx+c.x, oy+infoY, c.w, infoHeight)
	}
	shapes = append(shapes, Text{
		X: sx + roundTextX, Y: oy + roundTextY,
		Value: card.Round,
		Font:  helveticaBold(14), Color: Black, Align: AlignCenter,
	})

	// event banner
	fill := BannerFill
	shapes = append(shapes,
		Rect{X: sx, Y: oy + bannerY, W: ContentWidth, H: infoHeight, Stroke: Purple, LineWidth: boxLineWidth, Fill: &fill},
		Text{
			X: ox + headerX, Y: oy + bannerTextY,
			Value: upper.String(card.Event),
			Font:  helveticaBold(11), Color: BannerText, Align: AlignCenter,
		},
	)

	// result rows
	n := card.Format.Attempts()
	cutAt := card.Format.CutoffAfter()
	for i := 0; i < n; i++ {
		y := oy + RowY(i)
		if card.Cutoff != "" && cutAt > 0 && i == cutAt {
			ly := oy + CutoffLineY(i)
			shapes = append(shapes, Line{
				X1: sx, Y1: ly, X2: sx + ContentWidth, Y2: ly,
				Stroke: Purple, LineWidth: cutoffLineWidth, Dash: CutoffDash,
			})
		}
		row(y)
		shapes = append(shapes, Text{
			X: sx, Y: y + numberOffsetY,
			Value: fmt.Sprint(i + 1),
			Font:  helveticaBold(10), Color: Black,
		})
	}

	// extra attempt
	ey := oy + ExtraRowY(n)
	shapes = append(shapes,
		Text{X: sx, Y: ey + numberOffsetY, Value: "_", Font: helveticaBold(8), Color: Purple},
		Text{X: sx + entryColumnX, Y: ey + extraLabelY, Value: ExtraAttemptLabel, Font: helveticaBold(8), Color: Purple},
	)
	row(ey)

	// captions
	if card.Cutoff != "" {
		shapes = append(shapes, Text{
			X: sx + entryColumnX, Y: ey - captionOffsetY,
			Value: CutoffCaption(card.Cutoff),
			Font:  helvetica(9), Color: Black,
		})
	}
	if card.Limit != "" {
		shapes = append(shapes, Text{
			X: sx + ContentWidth, Y: ey - captionOffsetY,
			Value: LimitCaption(card.Limit),
			Font:  helvetica(9), Color: Black, Align: AlignRight,
		})
	}

	if withQR {
		shapes = append(shapes, Image{
			Name:    fmt.Sprintf("qr-p%d-r%d-c%d", card.Page, card.Row, card.Col),
			Payload: QRPayload(card),
			X:       sx + qrX, Y: oy + qrY, W: qrSize, H: qrSize,
		})
	}

	return shapes
}

// GuideShapes returns the dashed center cross used to cut a page into four
func GuideShapes() []Shape {
	return []Shape{
		Line{X1: PageWidth / 2, Y1: 0, X2: PageWidth / 2, Y2: PageHeight, Stroke: GuideGray, LineWidth: guideLineWidth, Dash: GuideDash},
		Line{X1: 0, Y1: PageHeight / 2, X2: PageWidth, Y2: PageHeight / 2, Stroke: GuideGray, LineWidth: guideLineWidth, Dash: GuideDash},
	}
}
