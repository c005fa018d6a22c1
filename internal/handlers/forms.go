package handlers

import (
	"fmt"
	"net/url"

	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/models"
)

// maxFormRounds bounds how many round fields are read for one event.
// Configured limits are enforced by the scorecard service.
const maxFormRounds = 100

// Form field names
const (
	fieldCompName = "comp_name"
	fieldQR       = "qr"
	fieldNoGuides = "no_guides"
)

func fieldCheck(event string) string  { return "check_" + event }
func fieldFormat(event string) string { return "format_" + event }
func fieldRounds(event string) string { return "rounds_" + event }

func fieldCards(event string, round int) string  { return fmt.Sprintf("cards_%s_r%d", event, round) }
func fieldCutoff(event string, round int) string { return fmt.Sprintf("cutoff_%s_r%d", event, round) }
func fieldLimit(event string, round int) string  { return fmt.Sprintf("limit_%s_r%d", event, round) }

// ParseCompetitionForm reads the scorecard form. Every catalog event is
// returned in catalog order so the form can be redisplayed; only checked
// events are selected and have their round fields read, up to
// maxFormRounds rounds. Fields for events outside the catalog are ignored.
// Malformed counts degrade to defaults.
func ParseCompetitionForm(values url.Values, cat *catalog.Catalog) models.Competition {
	comp := models.NewCompetition(values.Get(fieldCompName))
	comp.QRCodes = values.Get(fieldQR) != ""
	comp.CuttingGuides = values.Get(fieldNoGuides) == ""

	for _, name := range cat.Names() {
		format := models.ParseFormat(values.Get(fieldFormat(name)))
		rounds := models.ParseRoundCount(values.Get(fieldRounds(name)))

		if values.Get(fieldCheck(name)) == "" {
			if rounds > maxFormRounds {
				rounds = models.DefaultRoundCount
			}
			ev := models.NewEvent(name, format, rounds)
			ev.Selected = false
			comp.Events = append(comp.Events, ev)
			continue
		}

		if rounds > maxFormRounds {
			rounds = maxFormRounds
		}

		ev := models.Event{Name: name, Selected: true, Format: format}
		for r := 1; r <= rounds; r++ {
			ev.Rounds = append(ev.Rounds, models.NewRound(
				models.ParseCount(values.Get(fieldCards(name, r))),
				values.Get(fieldCutoff(name, r)),
				values.Get(fieldLimit(name, r)),
			))
		}
		comp.Events = append(comp.Events, ev)
	}

	return comp
}
