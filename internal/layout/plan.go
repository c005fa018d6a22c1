package layout

import (
	"strconv"

	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/models"
)

// FinalRoundLabel marks the last round of an event
const FinalRoundLabel = "F"

// CardDescriptor describes exactly one physical card and where it sits
type CardDescriptor struct {
	Competition string        `json:"competition"`
	Event       string        `json:"event"`
	Round       string        `json:"round"`
	RoundNumber int           `json:"round_number"`
	Format      models.Format `json:"format"`
	Cutoff      string        `json:"cutoff,omitempty"`
	Limit       string        `json:"limit,omitempty"`
	Page        int           `json:"page"`
	Row         int           `json:"row"`
	Col         int           `json:"col"`
	Sequence    int           `json:"sequence"`
	RoundCards  int           `json:"round_cards"`
}

// Page is one sheet holding up to four cards in row-major slot order
type Page struct {
	Index int              `json:"index"`
	Cards []CardDescriptor `json:"cards"`
}

// Document is the full page plan for one competition
type Document struct {
	Competition   string `json:"competition"`
	CuttingGuides bool   `json:"cutting_guides"`
	QRCodes       bool   `json:"qr_codes"`
	Pages         []Page `json:"pages"`
}

// CardCount returns the number of cards across all pages
func (d *Document) CardCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Cards)
	}
	return n
}

// Plan lays out every card of comp. Selected events are visited in catalog
// order; events missing from the catalog are skipped. When an event is
// submitted more than once the first entry wins.
func Plan(cat *catalog.Catalog, comp models.Competition) *Document {
	doc := &Document{
		Competition:   models.CompetitionName(comp.Name),
		CuttingGuides: comp.CuttingGuides,
		QRCodes:       comp.QRCodes,
		Pages:         []Page{},
	}

	submitted := make(map[string]models.Event, len(comp.Events))
	for _, ev := range comp.Events {
		if _, seen := submitted[ev.Name]; !seen {
			submitted[ev.Name] = ev
		}
	}

	for _, name := range cat.Names() {
		ev, ok := submitted[name]
		if !ok || !ev.Selected {
			continue
		}
		ev = ev.Normalize()
		total := ev.RoundCount()
		for i, round := range ev.Rounds {
			doc.Pages = appendRound(doc.Pages, doc.Competition, ev, i+1, total, round)
		}
	}

	return doc
}

// appendRound emits the pages for a single round. The round always starts
// on a new page.
func appendRound(pages []Page, competition string, ev models.Event, number, total int, round models.Round) []Page {
	label := RoundLabel(number, total)
	placed := 0
	for placed < round.Cards {
		page := Page{Index: len(pages)}
		for slot := 0; slot < CardsPerPage && placed < round.Cards; slot++ {
			row, col := Slot(slot)
			placed++
			page.Cards = append(page.Cards, CardDescriptor{
				Competition: competition,
				Event:       ev.Name,
				Round:       label,
				RoundNumber: number,
				Format:      ev.Format,
				Cutoff:      round.Cutoff,
				Limit:       round.Limit,
				Page:        page.Index,
				Row:         row,
				Col:         col,
				Sequence:    placed,
				RoundCards:  round.Cards,
			})
		}
		pages = append(pages, page)
	}
	return pages
}

// RoundLabel returns "F" for the last of total rounds and the 1-based
// round number otherwise.
func RoundLabel(number, total int) string {
	if number >= total {
		return FinalRoundLabel
	}
	return strconv.Itoa(number)
}

// Slot maps a position on the page (0-3) to its grid row and column
func Slot(i int) (row, col int) {
	return i / 2, i % 2
}

// Origin returns the bottom-left corner of the card in the given slot.
// Row 0 is the top half of the page.
func Origin(row, col int) (x, y float64) {
	return float64(col) * CardWidth, float64(1-row) * CardHeight
}

// UnknownEvents lists submitted, selected events that are not in cat
func UnknownEvents(cat *catalog.Catalog, comp models.Competition) []string {
	var unknown []string
	for _, ev := range comp.Events {
		if ev.Selected && !cat.Contains(ev.Name) {
			unknown = append(unknown, ev.Name)
		}
	}
	return unknown
}
