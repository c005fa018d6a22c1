package models

import (
	"strconv"
	"strings"
)

// Defaults applied when a submission leaves a field out or sends garbage
const (
	DefaultCompetitionName = "Unofficial Comp"
	DefaultRoundCount      = 1
	DefaultCards           = 0
)

// Competition is one scorecard document request
type Competition struct {
	Name          string  `json:"name" toml:"name"`
	Events        []Event `json:"events" toml:"events"`
	CuttingGuides bool    `json:"cutting_guides" toml:"cutting_guides"`
	QRCodes       bool    `json:"qr_codes" toml:"qr_codes"`
}

// Event is a catalog event as submitted for one competition
type Event struct {
	Name     string  `json:"name" toml:"name"`
	Selected bool    `json:"selected" toml:"selected"`
	Format   Format  `json:"format" toml:"format"`
	Rounds   []Round `json:"rounds" toml:"rounds"`
}

// Round holds the per-round card count and optional cutoff/limit seconds.
// Cutoff and Limit keep the raw submitted value; empty means absent.
type Round struct {
	Cards  int    `json:"cards" toml:"cards"`
	Cutoff string `json:"cutoff,omitempty" toml:"cutoff"`
	Limit  string `json:"limit,omitempty" toml:"limit"`
}

// NewCompetition creates a competition, falling back to the default name
// when name is empty or blank. Cutting guides are on by default.
func NewCompetition(name string) Competition {
	return Competition{
		Name:          CompetitionName(name),
		CuttingGuides: true,
	}
}

// CompetitionName trims name and substitutes the default when nothing is left
func CompetitionName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultCompetitionName
	}
	return name
}

// NewEvent creates a selected event with roundCount empty rounds.
// Invalid round counts collapse to the default.
func NewEvent(name string, format Format, roundCount int) Event {
	roundCount = NormalizeRoundCount(roundCount)
	return Event{
		Name:     name,
		Selected: true,
		Format:   format.Normalize(),
		Rounds:   make([]Round, roundCount),
	}
}

// NewRound creates a round. Negative card counts become zero and
// cutoff/limit values are trimmed.
func NewRound(cards int, cutoff, limit string) Round {
	if cards < 0 {
		cards = DefaultCards
	}
	return Round{
		Cards:  cards,
		Cutoff: strings.TrimSpace(cutoff),
		Limit:  strings.TrimSpace(limit),
	}
}

// RoundCount returns the number of rounds the event runs
func (e Event) RoundCount() int {
	return len(e.Rounds)
}

// Normalize returns a copy of the event with defaults applied: an unknown
// format becomes Ao5, no rounds becomes one empty round, and negative card
// counts become zero.
func (e Event) Normalize() Event {
	out := Event{
		Name:     e.Name,
		Selected: e.Selected,
		Format:   e.Format.Normalize(),
	}
	if len(e.Rounds) == 0 {
		out.Rounds = make([]Round, DefaultRoundCount)
		return out
	}
	out.Rounds = make([]Round, len(e.Rounds))
	for i, r := range e.Rounds {
		out.Rounds[i] = NewRound(r.Cards, r.Cutoff, r.Limit)
	}
	return out
}

// NormalizeRoundCount maps anything below one round to the default
func NormalizeRoundCount(n int) int {
	if n < 1 {
		return DefaultRoundCount
	}
	return n
}

// ParseRoundCount parses a submitted round count. Missing, malformed or
// non-positive values yield DefaultRoundCount.
func ParseRoundCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultRoundCount
	}
	return NormalizeRoundCount(n)
}

// ParseCount parses a submitted card count. Missing, malformed or
// negative values yield zero.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return DefaultCards
	}
	return n
}
