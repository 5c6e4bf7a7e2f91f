package candidate

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/usecase/ai"
)

// Service defines the interface for the candidate use case
type Service interface {
	// Submit validates and stores an application, then schedules scoring
	Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error)

	// UploadAudio stores answer recordings and points the candidate at them
	UploadAudio(ctx context.Context, candidateID uuid.UUID, uploads []AudioUpload) (*UploadResult, error)

	// SyncAudio rebuilds the audio locator map from the object store
	SyncAudio(ctx context.Context, candidateID uuid.UUID) (entities.AudioLocators, error)

	// Delete removes a candidate, its analysis and its recordings
	Delete(ctx context.Context, candidateID uuid.UUID) (*DeleteResult, error)

	// List returns candidates newest first, filtered by search
	List(ctx context.Context, search string) ([]*entities.Candidate, error)

	// Get returns one candidate with playback URLs for its recordings
	Get(ctx context.Context, candidateID uuid.UUID) (*Detail, error)
}

// Enqueuer schedules background scoring
type Enqueuer interface {
	Enqueue(candidateID uuid.UUID) *ai.Task
}

// Ensure CandidateService implements Service interface
var _ Service = (*CandidateService)(nil)
