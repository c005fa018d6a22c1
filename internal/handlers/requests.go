package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/abrezinsky/scorecards/internal/models"
)

// ScorecardRequest is the JSON body of /api/scorecards and /api/layout.
// Every listed event is selected.
type ScorecardRequest struct {
	Competition   string         `json:"competition"`
	CuttingGuides *bool          `json:"cutting_guides,omitempty"`
	QRCodes       *bool          `json:"qr_codes,omitempty"`
	Events        []EventRequest `json:"events"`
}

// EventRequest describes one event of a ScorecardRequest
type EventRequest struct {
	Name   string         `json:"name"`
	Format string         `json:"format,omitempty"`
	Rounds []RoundRequest `json:"rounds"`
}

// RoundRequest describes one round of an EventRequest
type RoundRequest struct {
	Cards  int     `json:"cards"`
	Cutoff Seconds `json:"cutoff,omitempty"`
	Limit  Seconds `json:"limit,omitempty"`
}

// Seconds is a time value given either as a JSON number or a string
type Seconds string

func (s *Seconds) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Seconds(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*s = Seconds(strconv.FormatInt(i, 10))
		return nil
	}
	*s = Seconds(n.String())
	return nil
}

// ToCompetition converts the request. defaultQR applies when qr_codes is
// omitted; cutting guides default to on.
func (req ScorecardRequest) ToCompetition(defaultQR bool) models.Competition {
	comp := models.NewCompetition(req.Competition)
	comp.QRCodes = defaultQR
	if req.QRCodes != nil {
		comp.QRCodes = *req.QRCodes
	}
	if req.CuttingGuides != nil {
		comp.CuttingGuides = *req.CuttingGuides
	}

	for _, e := range req.Events {
		ev := models.Event{
			Name:     e.Name,
			Selected: true,
			Format:   models.ParseFormat(e.Format),
		}
		for _, r := range e.Rounds {
			ev.Rounds = append(ev.Rounds, models.NewRound(r.Cards, string(r.Cutoff), string(r.Limit)))
		}
		comp.Events = append(comp.Events, ev)
	}
	return comp
}
