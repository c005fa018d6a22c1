package handlers

import "github.com/abrezinsky/scorecards/internal/layout"

// EventsResponse lists the catalog
type EventsResponse struct {
	Events  []string `json:"events"`
	Formats []string `json:"formats"`
}

// LayoutResponse is the page plan returned by /api/layout
type LayoutResponse struct {
	ID       string           `json:"id"`
	Pages    int              `json:"pages"`
	Cards    int              `json:"cards"`
	Document *layout.Document `json:"document"`
}

// HealthResponse is returned by /healthz
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
