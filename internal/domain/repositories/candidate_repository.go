package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
)

// CandidateRepository defines the interface for candidate data access
type CandidateRepository interface {
	// Create inserts a new candidate
	Create(ctx context.Context, candidate *entities.Candidate) error

	// FindByID retrieves a candidate with its analysis, nil when absent
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error)

	// List retrieves candidates newest first with their analyses
	List(ctx context.Context, filters CandidateFilters) ([]*entities.Candidate, error)

	// UpdateAudioURLs replaces the audio locator map of a candidate
	UpdateAudioURLs(ctx context.Context, id uuid.UUID, locators entities.AudioLocators) error

	// Delete removes a candidate; the analysis goes with it by cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

// CandidateFilters represents filter options for listing candidates
type CandidateFilters struct {
	Limit  int
	Offset int
}

// AnalysisRepository defines the interface for analysis data access
type AnalysisRepository interface {
	// Create inserts an analysis; entities.ErrDuplicateRecord when one exists
	Create(ctx context.Context, analysis *entities.Analysis) error

	// FindByCandidateID retrieves the analysis of a candidate, nil when absent
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*entities.Analysis, error)

	// ExistsForCandidate reports whether the candidate already has an analysis
	ExistsForCandidate(ctx context.Context, candidateID uuid.UUID) (bool, error)

	// UpdateAudioTone overwrites the vocal delivery findings of a candidate's analysis
	UpdateAudioTone(ctx context.Context, candidateID uuid.UUID, findings []entities.VocalDeliveryFinding) error
}
