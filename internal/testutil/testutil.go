package testutil

import (
	"testing"

	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/models"
)

// Event names in TestCatalog
const (
	Kilominx    = "Kilominx"
	RediCube    = "Redi Cube"
	RubiksMagic = "Rubik’s Magic"
)

// NewTestCatalog returns a small catalog for tests. Order matters to the
// layout engine: Kilominx, Redi Cube, Rubik’s Magic.
func NewTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	return catalog.New(Kilominx, RediCube, RubiksMagic)
}

// SampleCompetition returns a competition with two selected events on
// TestCatalog: Kilominx Mo3 with two rounds (5 cards with a cutoff, then 2
// cards with a limit) and Redi Cube Bo1 with one round of 3 cards.
func SampleCompetition() models.Competition {
	comp := models.NewCompetition("Spring Open")
	comp.Events = []models.Event{
		{
			Name:     Kilominx,
			Selected: true,
			Format:   models.Mo3,
			Rounds: []models.Round{
				models.NewRound(5, "60", ""),
				models.NewRound(2, "", "120"),
			},
		},
		{
			Name:     RediCube,
			Selected: true,
			Format:   models.Bo1,
			Rounds:   []models.Round{models.NewRound(3, "", "")},
		},
	}
	return comp
}

// EmptyCompetition returns a competition with one selected event and no cards
func EmptyCompetition() models.Competition {
	comp := models.NewCompetition("")
	comp.Events = []models.Event{models.NewEvent(Kilominx, models.Ao5, 1)}
	return comp
}
