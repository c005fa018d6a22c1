package services

import (
	"context"

	"github.com/abrezinsky/scorecards/internal/layout"
	"github.com/abrezinsky/scorecards/internal/models"
)

// ScorecardServicer defines the interface for scorecard operations
type ScorecardServicer interface {
	Events(ctx context.Context) []string
	Plan(ctx context.Context, comp models.Competition) (*layout.Document, error)
	Generate(ctx context.Context, comp models.Competition) (*Scorecards, error)
}

// Ensure concrete types implement interfaces
var (
	_ ScorecardServicer = (*ScorecardService)(nil)
)
