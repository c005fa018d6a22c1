package handlers

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/abrezinsky/scorecards/internal/catalog"
	"github.com/abrezinsky/scorecards/internal/layout"
	"github.com/abrezinsky/scorecards/internal/services"
)

// NewStaticServer creates a static file server from an fs.FS
func NewStaticServer(staticFS fs.FS) http.Handler {
	return http.FileServer(http.FS(staticFS))
}

// Templates holds all parsed HTML templates
type Templates struct {
	Index *template.Template
}

// Settings are the presentation defaults handlers apply to requests
type Settings struct {
	Version        string
	DefaultQRCodes bool
}

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Scorecards   services.ScorecardServicer
	Catalog      *catalog.Catalog
	Log          HTTPLogger
	Settings     Settings
	templates    *Templates
	staticServer http.Handler
}

// HTTPLogger is an interface for loggers that support HTTP logging control
type HTTPLogger interface {
	IsHTTPLoggingEnabled() bool
	Error(msg string, args ...any)
}

// New creates a new Handlers instance with all dependencies
func New(
	scorecards services.ScorecardServicer,
	cat *catalog.Catalog,
	templatesFS fs.FS,
	staticServer http.Handler,
	log HTTPLogger,
	settings Settings,
) (*Handlers, error) {
	templates, err := loadTemplates(templatesFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &Handlers{
		Scorecards:   scorecards,
		Catalog:      cat,
		Log:          log,
		Settings:     settings,
		templates:    templates,
		staticServer: staticServer,
	}, nil
}

// NoopHTTPLogger is a test logger that always returns false for HTTP logging
// and discards errors
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) IsHTTPLoggingEnabled() bool { return false }

func (NoopHTTPLogger) Error(string, ...any) {}

// NewForTesting creates a Handlers instance without loading templates (for testing API endpoints)
func NewForTesting(scorecards services.ScorecardServicer, cat *catalog.Catalog) *Handlers {
	return &Handlers{
		Scorecards:   scorecards,
		Catalog:      cat,
		Log:          NoopHTTPLogger{},
		Settings:     Settings{Version: "test"},
		staticServer: http.NotFoundHandler(),
		// templates left nil - API endpoints don't use templates
	}
}

// loadTemplates parses all templates once at startup
func loadTemplates(templatesFS fs.FS) (*Templates, error) {
	t := &Templates{}
	var err error

	if t.Index, err = template.New("index.html").Funcs(templateFuncs).ParseFS(templatesFS, "index.html"); err != nil {
		return nil, fmt.Errorf("index template: %w", err)
	}

	return t, nil
}

var templateFuncs = template.FuncMap{
	"timeLabel": layout.FormatTimeLabel,
}
