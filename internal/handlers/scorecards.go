package handlers

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"github.com/abrezinsky/scorecards/internal/models"
	"github.com/abrezinsky/scorecards/internal/services"
)

// IndexPageData holds the data passed to the index template
type IndexPageData struct {
	Title       string
	CompName    string
	Placeholder string
	QRCodes     bool
	NoGuides    bool
	Formats     []models.Format
	Events      []EventRow
	Error       string
}

// EventRow is one event line of the form
type EventRow struct {
	ID       int
	Name     string
	Selected bool
	Format   models.Format
	Rounds   []RoundRow
}

// RoundRow is one round's inputs within an EventRow
type RoundRow struct {
	Number int
	Cards  int
	Cutoff string
	Limit  string
}

func (h *Handlers) indexData(comp models.Competition, compName, errMsg string) IndexPageData {
	submitted := make(map[string]models.Event, len(comp.Events))
	for _, ev := range comp.Events {
		if _, ok := submitted[ev.Name]; !ok {
			submitted[ev.Name] = ev
		}
	}

	data := IndexPageData{
		Title:       "Scorecard Generator",
		CompName:    compName,
		Placeholder: models.DefaultCompetitionName,
		QRCodes:     comp.QRCodes,
		NoGuides:    !comp.CuttingGuides,
		Formats:     models.Formats,
		Error:       errMsg,
	}
	for i, name := range h.Catalog.Names() {
		ev, ok := submitted[name]
		if !ok {
			ev = models.NewEvent(name, models.DefaultFormat, models.DefaultRoundCount)
			ev.Selected = false
		}
		ev = ev.Normalize()

		row := EventRow{ID: i, Name: name, Selected: ev.Selected, Format: ev.Format}
		for n, r := range ev.Rounds {
			row.Rounds = append(row.Rounds, RoundRow{Number: n + 1, Cards: r.Cards, Cutoff: r.Cutoff, Limit: r.Limit})
		}
		data.Events = append(data.Events, row)
	}
	return data
}

func (h *Handlers) renderIndex(w http.ResponseWriter, status int, data IndexPageData) {
	var buf bytes.Buffer
	if err := h.templates.Index.Execute(&buf, data); err != nil {
		apiErr := h.apiError(InternalError(err))
		http.Error(w, apiErr.Message, apiErr.Status)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (h *Handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	comp := models.NewCompetition("")
	comp.QRCodes = h.Settings.DefaultQRCodes
	h.renderIndex(w, http.StatusOK, h.indexData(comp, "", ""))
}

func (h *Handlers) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	rawName := r.PostForm.Get(fieldCompName)
	comp := ParseCompetitionForm(r.PostForm, h.Catalog)
	sc, err := h.Scorecards.Generate(r.Context(), comp)
	if err == nil {
		writeScorecards(w, sc)
		return
	}

	apiErr := h.apiError(err)
	if apiErr.Status != http.StatusBadRequest {
		http.Error(w, apiErr.Message, apiErr.Status)
		return
	}
	h.renderIndex(w, http.StatusBadRequest, h.indexData(comp, rawName, apiErr.Message))
}

func (h *Handlers) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	formats := make([]string, len(models.Formats))
	for i, f := range models.Formats {
		formats[i] = f.String()
	}
	respondOK(w, EventsResponse{
		Events:  h.Scorecards.Events(r.Context()),
		Formats: formats,
	})
}

func (h *Handlers) handleCreateScorecards(w http.ResponseWriter, r *http.Request) {
	var req ScorecardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	sc, err := h.Scorecards.Generate(r.Context(), req.ToCompetition(h.Settings.DefaultQRCodes))
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeScorecards(w, sc)
}

func (h *Handlers) handlePreviewLayout(w http.ResponseWriter, r *http.Request) {
	var req ScorecardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	doc, err := h.Scorecards.Plan(r.Context(), req.ToCompetition(h.Settings.DefaultQRCodes))
	if err != nil {
		h.respondError(w, err)
		return
	}
	id, err := services.DocumentID(doc)
	if err != nil {
		h.respondError(w, err)
		return
	}
	respondOK(w, LayoutResponse{
		ID:       id,
		Pages:    len(doc.Pages),
		Cards:    doc.CardCount(),
		Document: doc,
	})
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, HealthResponse{Status: "ok", Version: h.Settings.Version})
}

// writeScorecards sends a rendered document as a download
func writeScorecards(w http.ResponseWriter, sc *services.Scorecards) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": sc.Filename})
	if disposition == "" {
		disposition = "attachment"
	}

	header := w.Header()
	header.Set("Content-Type", sc.ContentType)
	header.Set("Content-Disposition", disposition)
	header.Set("Content-Length", strconv.Itoa(len(sc.PDF)))
	header.Set("ETag", `W/"`+sc.ID+`"`)
	header.Set("X-Scorecard-Pages", strconv.Itoa(sc.Pages))
	header.Set("X-Scorecard-Cards", strconv.Itoa(sc.Cards))
	w.WriteHeader(http.StatusOK)
	w.Write(sc.PDF)
}
