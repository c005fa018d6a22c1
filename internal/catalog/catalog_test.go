package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abrezinsky/scorecards/internal/errors"
)

func TestDefault_Order(t *testing.T) {
	c := Default()

	if c.Len() != 26 {
		t.Fatalf("expected 26 events, got %d", c.Len())
	}
	names := c.Names()
	if names[0] != "Face-Turning Octahedron (FTO)" {
		t.Errorf("expected FTO first, got %q", names[0])
	}
	if names[len(names)-1] != "Cap On Pen" {
		t.Errorf("expected Cap On Pen last, got %q", names[len(names)-1])
	}
	if !c.Contains("Rubik’s Magic") {
		t.Error("expected catalog to contain Rubik’s Magic with typographic apostrophe")
	}
}

func TestNew_DropsBlanksAndDuplicates(t *testing.T) {
	c := New("Kilominx", "", "  ", "Redi Cube", "Kilominx", " Ivy Cube ")

	want := []string{"Kilominx", "Redi Cube", "Ivy Cube"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if c.Index("Redi Cube") != 1 {
		t.Errorf("expected Redi Cube at 1, got %d", c.Index("Redi Cube"))
	}
	if c.Index("Megaminx") != -1 {
		t.Error("expected -1 for unknown event")
	}
}

func TestNames_ReturnsCopy(t *testing.T) {
	c := New("A", "B")
	names := c.Names()
	names[0] = "changed"

	if c.Names()[0] != "A" {
		t.Error("mutating Names() result must not change the catalog")
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`events = ["Kilominx", "Redi Cube"]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 events, got %d", c.Len())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty list", `events = []`},
		{"missing key", `title = "x"`},
		{"bad toml", `events = [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsKind(err, errors.ErrInvalidInput) {
				t.Errorf("expected invalid input error, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	if err := os.WriteFile(path, []byte("events = [\"Gear Cube\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Contains("Gear Cube") {
		t.Error("expected Gear Cube in loaded catalog")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.IsKind(err, errors.ErrNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}
