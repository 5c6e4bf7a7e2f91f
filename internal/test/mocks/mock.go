package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

// CandidateRepo is candidate repository mock
type CandidateRepo struct{ mock.Mock }

func (m *CandidateRepo) Create(ctx context.Context, candidate *entities.Candidate) error {
	args := m.Called(ctx, candidate)
	return args.Error(0)
}

func (m *CandidateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error) {
	args := m.Called(ctx, id)
	return to[*entities.Candidate](args.Get(0)), args.Error(1)
}

func (m *CandidateRepo) List(ctx context.Context, filters repositories.CandidateFilters) ([]*entities.Candidate, error) {
	args := m.Called(ctx, filters)
	return to[[]*entities.Candidate](args.Get(0)), args.Error(1)
}

func (m *CandidateRepo) UpdateAudioURLs(ctx context.Context, id uuid.UUID, locators entities.AudioLocators) error {
	args := m.Called(ctx, id, locators)
	return args.Error(0)
}

func (m *CandidateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AnalysisRepo is analysis repository mock
type AnalysisRepo struct{ mock.Mock }

func (m *AnalysisRepo) Create(ctx context.Context, analysis *entities.Analysis) error {
	args := m.Called(ctx, analysis)
	return args.Error(0)
}

func (m *AnalysisRepo) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*entities.Analysis, error) {
	args := m.Called(ctx, candidateID)
	return to[*entities.Analysis](args.Get(0)), args.Error(1)
}

func (m *AnalysisRepo) ExistsForCandidate(ctx context.Context, candidateID uuid.UUID) (bool, error) {
	args := m.Called(ctx, candidateID)
	return args.Bool(0), args.Error(1)
}

func (m *AnalysisRepo) UpdateAudioTone(ctx context.Context, candidateID uuid.UUID, findings []entities.VocalDeliveryFinding) error {
	args := m.Called(ctx, candidateID, findings)
	return args.Error(0)
}

// Storage is minio mock
type Storage struct{ mock.Mock }

func (m *Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, body, size, contentType)
	return args.Error(0)
}

func (m *Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	return to[io.ReadCloser](args.Get(0)), args.Error(1)
}

func (m *Storage) List(ctx context.Context, prefix string) ([]repositories.StoredObject, error) {
	args := m.Called(ctx, prefix)
	return to[[]repositories.StoredObject](args.Get(0)), args.Error(1)
}

func (m *Storage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) PresignedURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

// DraftRepo is draft store mock
type DraftRepo struct{ mock.Mock }

func (m *DraftRepo) Get(ctx context.Context, id string) (*entities.FormDraft, error) {
	args := m.Called(ctx, id)
	return to[*entities.FormDraft](args.Get(0)), args.Error(1)
}

func (m *DraftRepo) Save(ctx context.Context, draft *entities.FormDraft, ttl time.Duration) error {
	args := m.Called(ctx, draft, ttl)
	return args.Error(0)
}

func (m *DraftRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Generator is LLM client mock
type Generator struct{ mock.Mock }

func (m *Generator) GenerateJSON(ctx context.Context, prompt pkgai.Prompt) (*pkgai.Completion, error) {
	args := m.Called(ctx, prompt)
	return to[*pkgai.Completion](args.Get(0)), args.Error(1)
}

func (m *Generator) Model() string {
	args := m.Called()
	return args.String(0)
}

// Transcriber is speech-to-text client mock
type Transcriber struct{ mock.Mock }

func (m *Transcriber) Transcribe(ctx context.Context, audio io.Reader, fileName string) (*pkgai.Transcription, error) {
	args := m.Called(ctx, audio, fileName)
	return to[*pkgai.Transcription](args.Get(0)), args.Error(1)
}

func to[T interface{}](val interface{}) T {
	if val == nil {
		var res T
		return res
	}
	return val.(T)
}
