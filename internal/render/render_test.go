package render

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/layout"
	"github.com/abrezinsky/scorecards/internal/models"
)

func sampleDocument(cards int, guides, qr bool) *layout.Document {
	comp := models.NewCompetition("Spring Open")
	comp.CuttingGuides = guides
	comp.QRCodes = qr
	comp.Events = []models.Event{{
		Name:     "Kilominx",
		Selected: true,
		Format:   models.Mo3,
		Rounds:   []models.Round{{Cards: cards, Cutoff: "60", Limit: "120"}},
	}}
	return layout.Plan(catalog.New("Kilominx"), comp)
}

func TestDraw_PagesAndGuides(t *testing.T) {
	rec := NewRecorder()
	if err := Draw(context.Background(), sampleDocument(6, true, false), rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	if rec.Pages() != 2 {
		t.Fatalf("expected 2 pages, got %d", rec.Pages())
	}

	// two guide lines plus one cutoff separator per card
	lines := rec.Filter(OpLine)
	if len(lines) != 2*2+6 {
		t.Errorf("expected %d lines, got %d", 2*2+6, len(lines))
	}
	if lines[0].X != layout.PageWidth/2 || lines[0].Page != 0 {
		t.Errorf("expected vertical guide first on page 0, got %+v", lines[0])
	}
}

func TestDraw_WithoutGuides(t *testing.T) {
	rec := NewRecorder()
	if err := Draw(context.Background(), sampleDocument(1, false, false), rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	for _, op := range rec.Filter(OpLine) {
		if op.Y == op.Y2 && op.X == 0 && op.X2 == layout.PageWidth {
			t.Errorf("unexpected guide line %+v", op)
		}
	}
	if got := len(rec.Filter(OpLine)); got != 1 {
		t.Errorf("expected only the cutoff separator, got %d lines", got)
	}
}

func TestDraw_DashResetAfterDashedLine(t *testing.T) {
	rec := NewRecorder()
	if err := Draw(context.Background(), sampleDocument(1, true, false), rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	var dashed bool
	for _, op := range rec.Ops {
		switch op.Kind {
		case OpDash:
			dashed = len(op.Dash) > 0
		case OpRect:
			if dashed {
				t.Fatalf("rect drawn with a dash pattern active: %+v", op)
			}
		}
	}
}

func TestDraw_TextColors(t *testing.T) {
	rec := NewRecorder()
	if err := Draw(context.Background(), sampleDocument(1, false, false), rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	for _, op := range rec.Filter(OpText) {
		switch op.Text {
		case "KILOMINX":
			if op.Color != layout.BannerText {
				t.Errorf("expected banner text color, got %+v", op.Color)
			}
		case "SPRING OPEN":
			if op.Color != layout.Black {
				t.Errorf("expected black header, got %+v", op.Color)
			}
		case layout.ExtraAttemptLabel:
			if op.Color != layout.Purple {
				t.Errorf("expected purple extra label, got %+v", op.Color)
			}
		}
	}

	texts := rec.Texts()
	for _, want := range []string{"SPRING OPEN", "F", "KILOMINX", "Cutoff: < 1:00", "Time limit: 2:00"} {
		if !slices.Contains(texts, want) {
			t.Errorf("expected text %q in %v", want, texts)
		}
	}
}

func TestDraw_QRImages(t *testing.T) {
	rec := NewRecorder()
	if err := Draw(context.Background(), sampleDocument(3, true, true), rec); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}

	images := rec.Filter(OpImage)
	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d", len(images))
	}
	names := map[string]bool{}
	for _, img := range images {
		if !bytes.HasPrefix(img.PNG, []byte("\x89PNG")) {
			t.Errorf("image %s is not a PNG", img.Name)
		}
		names[img.Name] = true
	}
	if len(names) != 3 {
		t.Errorf("expected unique image names, got %v", names)
	}
}

func TestDraw_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := NewRecorder()
	err := Draw(ctx, sampleDocument(4, true, false), rec)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if rec.Pages() != 0 {
		t.Errorf("expected no pages drawn, got %d", rec.Pages())
	}
}

func TestRecorder_Finish(t *testing.T) {
	rec := NewRecorder()
	rec.NewPage()
	rec.Rect(0, 0, 1, 1, false)

	var buf bytes.Buffer
	if err := rec.Finish(&buf); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if !rec.Finished() {
		t.Error("expected recorder to be finished")
	}
	if got := buf.String(); got != "1 pages, 2 ops\n" {
		t.Errorf("unexpected summary %q", got)
	}
}

func TestOpKind_String(t *testing.T) {
	if OpRect.String() != "rect" || OpImage.String() != "image" {
		t.Errorf("unexpected names %s %s", OpRect, OpImage)
	}
	if got := OpKind(42).String(); got != "op(42)" {
		t.Errorf("expected op(42), got %s", got)
	}
}

func TestQRCode(t *testing.T) {
	png, err := QRCode("Spring Open|Kilominx|F|1/4")
	if err != nil {
		t.Fatalf("QRCode failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("expected PNG signature")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(context.Background(), sampleDocument(5, true, true), &buf,
		WithCreationDate(time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)),
		WithTitle("Spring Open", "Scorecards"),
	)
	if err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-") {
		t.Errorf("expected PDF header, got %q", out[:min(len(out), 8)])
	}
	if !strings.Contains(out, "%%EOF") {
		t.Error("expected PDF trailer")
	}
}

func TestWritePDF_Reproducible(t *testing.T) {
	date := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	render := func() []byte {
		var buf bytes.Buffer
		if err := WritePDF(context.Background(), sampleDocument(2, true, false), &buf, WithCreationDate(date)); err != nil {
			t.Fatalf("WritePDF failed: %v", err)
		}
		return buf.Bytes()
	}

	if !bytes.Equal(render(), render()) {
		t.Error("expected identical output for a fixed creation date")
	}
}

func TestPDF_NonLatinTextDoesNotFail(t *testing.T) {
	comp := models.NewCompetition("Zürich Open ™ 魔方")
	comp.Events = []models.Event{{Name: "Rubik’s Magic", Selected: true, Format: models.Bo1, Rounds: []models.Round{{Cards: 1}}}}
	doc := layout.Plan(catalog.Default(), comp)

	var buf bytes.Buffer
	if err := WritePDF(context.Background(), doc, &buf); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected output")
	}
}

func TestChannel(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{0.8, 204},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := channel(tt.in); got != tt.want {
			t.Errorf("channel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
