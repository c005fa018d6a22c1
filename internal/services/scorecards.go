package services

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/errors"
	"github.com/abrezinsky/scorecards/internal/layout"
	"github.com/abrezinsky/scorecards/internal/logger"
	"github.com/abrezinsky/scorecards/internal/models"
	"github.com/abrezinsky/scorecards/internal/render"
)

// Default request limits
const (
	DefaultMaxRounds        = 10
	DefaultMaxCardsPerRound = 1000
)

// ContentTypePDF is the media type of generated documents
const ContentTypePDF = "application/pdf"

// documentNamespace scopes document IDs
var documentNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/abrezinsky/scorecards/document"))

// Limits bounds the size of a single request. Zero disables a limit.
type Limits struct {
	MaxRounds        int
	MaxCardsPerRound int
}

// DefaultLimits returns the limits used when none are configured
func DefaultLimits() Limits {
	return Limits{MaxRounds: DefaultMaxRounds, MaxCardsPerRound: DefaultMaxCardsPerRound}
}

// Scorecards is a rendered document ready to be served or saved
type Scorecards struct {
	Filename    string
	ContentType string
	PDF         []byte
	ID          string
	Pages       int
	Cards       int
}

// Option configures a ScorecardService
type Option func(*ScorecardService)

// WithLimits overrides the default request limits
func WithLimits(l Limits) Option {
	return func(s *ScorecardService) { s.limits = l }
}

// WithClock sets the clock used for PDF creation dates
func WithClock(now func() time.Time) Option {
	return func(s *ScorecardService) { s.now = now }
}

// ScorecardService turns competitions into scorecard documents
type ScorecardService struct {
	log     logger.Logger
	catalog *catalog.Catalog
	limits  Limits
	now     func() time.Time
}

// NewScorecardService creates a new ScorecardService
func NewScorecardService(log logger.Logger, cat *catalog.Catalog, opts ...Option) *ScorecardService {
	s := &ScorecardService{
		log:     log,
		catalog: cat,
		limits:  DefaultLimits(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Events returns the catalog event names in display order
func (s *ScorecardService) Events(ctx context.Context) []string {
	return s.catalog.Names()
}

// Plan lays out comp's cards. Events over the limits are skipped with a
// warning; when that leaves no event to plan the first violation is returned.
func (s *ScorecardService) Plan(ctx context.Context, comp models.Competition) (*layout.Document, error) {
	comp, err := s.applyLimits(comp)
	if err != nil {
		return nil, err
	}
	if unknown := layout.UnknownEvents(s.catalog, comp); len(unknown) > 0 {
		s.log.Warn("Ignoring events not in catalog", "events", strings.Join(unknown, ", "))
	}

	doc := layout.Plan(s.catalog, comp)
	s.log.Debug("Planned scorecards", "competition", doc.Competition, "pages", len(doc.Pages), "cards", doc.CardCount())
	return doc, nil
}

// Generate plans and renders comp as a PDF
func (s *ScorecardService) Generate(ctx context.Context, comp models.Competition) (*Scorecards, error) {
	doc, err := s.Plan(ctx, comp)
	if err != nil {
		return nil, err
	}
	if doc.CardCount() == 0 {
		return nil, ErrNoScorecards
	}

	id, err := DocumentID(doc)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	err = render.WritePDF(ctx, doc, &buf,
		render.WithCreationDate(s.now()),
		render.WithTitle(doc.Competition, "Scorecards"),
	)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render scorecards")
	}

	s.log.Info("Generated scorecards",
		"competition", doc.Competition,
		"pages", len(doc.Pages),
		"cards", doc.CardCount(),
		"bytes", buf.Len(),
	)

	return &Scorecards{
		Filename:    Filename(doc.Competition),
		ContentType: ContentTypePDF,
		PDF:         buf.Bytes(),
		ID:          id,
		Pages:       len(doc.Pages),
		Cards:       doc.CardCount(),
	}, nil
}

// applyLimits deselects the planned events that exceed the limits. Only
// the first entry of a name is planned, so only that entry is checked.
func (s *ScorecardService) applyLimits(comp models.Competition) (models.Competition, error) {
	events := make([]models.Event, len(comp.Events))
	copy(events, comp.Events)

	var first error
	kept := 0
	seen := make(map[string]bool)
	for i, ev := range events {
		if seen[ev.Name] {
			continue
		}
		seen[ev.Name] = true
		if !ev.Selected || !s.catalog.Contains(ev.Name) {
			continue
		}

		if err := s.checkLimits(ev); err != nil {
			s.log.Warn("Skipping event over limits", "event", ev.Name, "reason", err.Error())
			events[i].Selected = false
			if first == nil {
				first = err
			}
			continue
		}
		kept++
	}

	if first != nil && kept == 0 {
		return comp, first
	}
	comp.Events = events
	return comp, nil
}

func (s *ScorecardService) checkLimits(ev models.Event) error {
	if s.limits.MaxRounds > 0 && ev.RoundCount() > s.limits.MaxRounds {
		return errors.Validationf("%s: at most %d rounds allowed, got %d", ev.Name, s.limits.MaxRounds, ev.RoundCount())
	}
	if s.limits.MaxCardsPerRound <= 0 {
		return nil
	}
	for i, r := range ev.Rounds {
		if r.Cards > s.limits.MaxCardsPerRound {
			return errors.Validationf("%s round %d: at most %d cards allowed, got %d", ev.Name, i+1, s.limits.MaxCardsPerRound, r.Cards)
		}
	}
	return nil
}

// DocumentID derives a stable UUID from the page plan
func DocumentID(doc *layout.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode document")
	}
	return uuid.NewSHA1(documentNamespace, data).String(), nil
}

// Filename is the download name for a competition's scorecards
func Filename(competition string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(models.CompetitionName(competition))
	return name + "_Scorecards.pdf"
}
