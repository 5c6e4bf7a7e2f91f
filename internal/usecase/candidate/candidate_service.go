package candidate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	"github.com/johnquangdev/candidate-screening/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	"github.com/johnquangdev/candidate-screening/pkg/validator"
)

// CandidateService handles candidate business logic
type CandidateService struct {
	candidateRepo repositories.CandidateRepository
	storage       repositories.AudioStorage
	drafts        repositories.DraftRepository
	scoring       Enqueuer
	validator     *validator.CustomValidator
	logger        *zap.Logger
	now           func() time.Time
}

// NewCandidateService creates a new candidate service. drafts may be nil.
func NewCandidateService(
	candidateRepo repositories.CandidateRepository,
	storage repositories.AudioStorage,
	drafts repositories.DraftRepository,
	scoring Enqueuer,
	logger *zap.Logger,
) *CandidateService {
	return &CandidateService{
		candidateRepo: candidateRepo,
		storage:       storage,
		drafts:        drafts,
		scoring:       scoring,
		validator:     validator.New(),
		logger:        logger,
		now:           time.Now,
	}
}

// SubmitInput is a completed intake form
type SubmitInput struct {
	FullName           string
	Email              string
	Phone              string
	Location           string
	Availability       string
	AgeVerified        bool
	ProductComfort     string
	PreviousExperience string
	Responses          map[string]string
	DraftID            string
}

// SubmitResult is returned by a successful submission
type SubmitResult struct {
	CandidateID uuid.UUID
	// Task observes the background scoring run
	Task *ai.Task
}

type contactFields struct {
	FullName       string `json:"fullName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Location       string `json:"location" validate:"required"`
	Availability   string `json:"availability" validate:"required,oneof=full-time part-time weekends flexible"`
	AgeVerified    bool   `json:"ageVerified" validate:"required"`
	ProductComfort string `json:"productComfort" validate:"omitempty,oneof=very-comfortable comfortable neutral somewhat-uncomfortable uncomfortable"`
}

// Submit validates the form, stores one candidate and schedules scoring
// without waiting for it. Nothing is stored when validation fails.
func (s *CandidateService) Submit(ctx context.Context, input SubmitInput) (*SubmitResult, error) {
	contact := contactFields{
		FullName:       strings.TrimSpace(input.FullName),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		Location:       strings.TrimSpace(input.Location),
		Availability:   strings.TrimSpace(input.Availability),
		AgeVerified:    input.AgeVerified,
		ProductComfort: strings.TrimSpace(input.ProductComfort),
	}
	if err := s.validator.Validate(contact); err != nil {
		return nil, &usecaseErrors.ValidationError{
			Message: usecaseErrors.MsgMissingRequiredFields,
			Fields:  validator.FieldNames(err),
		}
	}

	responses := entities.Responses(input.Responses)
	if missing := responses.Missing(); len(missing) > 0 {
		return nil, &usecaseErrors.ValidationError{
			Message: usecaseErrors.MsgMissingAnswers,
			Fields:  missing,
		}
	}

	profile := entities.CandidateProfile{
		FullName:     contact.FullName,
		Email:        contact.Email,
		Phone:        contact.Phone,
		Location:     contact.Location,
		Availability: entities.Availability(contact.Availability),
		AgeVerified:  contact.AgeVerified,
	}
	if contact.ProductComfort != "" {
		comfort := entities.ProductComfort(contact.ProductComfort)
		profile.ProductComfort = &comfort
	}
	if exp := strings.TrimSpace(input.PreviousExperience); exp != "" {
		profile.PreviousExperience = &exp
	}

	candidate := entities.NewCandidate(profile, responses)
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("📝 Application submitted",
			zap.String("candidate_id", candidate.ID.String()),
		)
	}

	s.clearDraft(ctx, input.DraftID)

	result := &SubmitResult{CandidateID: candidate.ID}
	if s.scoring != nil {
		result.Task = s.scoring.Enqueue(candidate.ID)
	}
	return result, nil
}

func (s *CandidateService) clearDraft(ctx context.Context, draftID string) {
	if s.drafts == nil || strings.TrimSpace(draftID) == "" {
		return
	}
	if err := s.drafts.Delete(ctx, draftID); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to clear form draft",
			zap.String("draft_id", draftID),
			zap.Error(err),
		)
	}
}

// AudioUpload is one recorded answer to store
type AudioUpload struct {
	Question int
	Body     io.Reader
	Size     int64
}

// UploadResult reports where recordings landed
type UploadResult struct {
	Locators entities.AudioLocators
	Failed   []int
}

// UploadAudio stores each recording under the candidate's namespace, best
// effort per file, then replaces the locator map with what was stored.
// If the final update fails the objects stay behind for SyncAudio to pick up.
func (s *CandidateService) UploadAudio(ctx context.Context, candidateID uuid.UUID, uploads []AudioUpload) (*UploadResult, error) {
	if len(uploads) == 0 {
		return nil, &usecaseErrors.ValidationError{Message: "No audio files provided"}
	}
	for _, u := range uploads {
		if u.Question < 1 || u.Question > entities.QuestionCount {
			return nil, fmt.Errorf("%w: %w: %d", usecaseErrors.ErrInvalidInput, entities.ErrInvalidQuestion, u.Question)
		}
	}

	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, usecaseErrors.ErrCandidateNotFound
	}

	result := &UploadResult{Locators: entities.AudioLocators{}, Failed: []int{}}
	for _, u := range uploads {
		key := entities.AudioObjectKey(candidateID, u.Question, s.now())
		if err := s.storage.Upload(ctx, key, u.Body, u.Size, entities.AudioContentType); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Audio upload failed",
					zap.String("candidate_id", candidateID.String()),
					zap.Int("question", u.Question),
					zap.Error(err),
				)
			}
			result.Failed = append(result.Failed, u.Question)
			continue
		}
		result.Locators[entities.QuestionKey(u.Question)] = key
	}

	if len(result.Locators) == 0 {
		return result, fmt.Errorf("%w: no recording could be stored", usecaseErrors.ErrStorage)
	}

	if err := s.candidateRepo.UpdateAudioURLs(ctx, candidateID, result.Locators); err != nil {
		return result, fmt.Errorf("failed to save audio locators: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("🎧 Audio stored",
			zap.String("candidate_id", candidateID.String()),
			zap.Int("stored", len(result.Locators)),
			zap.Ints("failed", result.Failed),
		)
	}
	return result, nil
}

// SyncAudio lists the candidate's namespace and overwrites the locator map
// with the newest object per question.
func (s *CandidateService) SyncAudio(ctx context.Context, candidateID uuid.UUID) (entities.AudioLocators, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, usecaseErrors.ErrCandidateNotFound
	}

	objects, err := s.storage.List(ctx, entities.AudioObjectPrefix(candidateID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrStorage, err)
	}

	locators := latestPerQuestion(objects)
	if len(locators) == 0 {
		return nil, usecaseErrors.ErrNothingToSync
	}

	if err := s.candidateRepo.UpdateAudioURLs(ctx, candidateID, locators); err != nil {
		return nil, fmt.Errorf("failed to save audio locators: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("🔄 Audio locators synced",
			zap.String("candidate_id", candidateID.String()),
			zap.Int("objects", len(objects)),
			zap.Int("questions", len(locators)),
		)
	}
	return locators, nil
}

// latestPerQuestion keeps one object per recognized question tag, preferring
// the newest embedded timestamp and then the newest modification time.
func latestPerQuestion(objects []repositories.StoredObject) entities.AudioLocators {
	type pick struct {
		obj   repositories.StoredObject
		stamp int64
	}
	best := map[int]pick{}
	for _, obj := range objects {
		n, ok := entities.ParseQuestionTag(obj.Key)
		if !ok {
			continue
		}
		stamp := entities.ObjectTimestamp(obj.Key)
		cur, seen := best[n]
		if !seen || stamp > cur.stamp || (stamp == cur.stamp && obj.LastModified.After(cur.obj.LastModified)) {
			best[n] = pick{obj: obj, stamp: stamp}
		}
	}

	locators := make(entities.AudioLocators, len(best))
	for n, p := range best {
		locators[entities.QuestionKey(n)] = p.obj.Key
	}
	return locators
}

// DeleteResult reports the recordings that could not be removed
type DeleteResult struct {
	StorageWarnings []string
}

// Delete removes the recordings best effort, then the row. The analysis
// goes with the row.
func (s *CandidateService) Delete(ctx context.Context, candidateID uuid.UUID) (*DeleteResult, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, usecaseErrors.ErrCandidateNotFound
	}

	result := &DeleteResult{StorageWarnings: []string{}}
	for _, n := range candidate.AudioURLs.Questions() {
		key := candidate.AudioURLs[entities.QuestionKey(n)]
		if err := s.storage.Remove(ctx, key); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to remove recording",
					zap.String("candidate_id", candidateID.String()),
					zap.String("key", key),
					zap.Error(err),
				)
			}
			result.StorageWarnings = append(result.StorageWarnings, fmt.Sprintf("question%d: %v", n, err))
		}
	}

	if err := s.candidateRepo.Delete(ctx, candidateID); err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to delete candidate: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("🗑️ Candidate deleted",
			zap.String("candidate_id", candidateID.String()),
			zap.Int("storage_warnings", len(result.StorageWarnings)),
		)
	}
	return result, nil
}

// List returns candidates newest first. The search is a case-insensitive
// substring match over name, email and location.
func (s *CandidateService) List(ctx context.Context, search string) ([]*entities.Candidate, error) {
	candidates, err := s.candidateRepo.List(ctx, repositories.CandidateFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	out := make([]*entities.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.MatchesSearch(search) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Detail is one candidate with playback URLs keyed by question
type Detail struct {
	Candidate *entities.Candidate
	Playback  map[string]string
}

// Get returns a candidate with presigned playback URLs
func (s *CandidateService) Get(ctx context.Context, candidateID uuid.UUID) (*Detail, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, usecaseErrors.ErrCandidateNotFound
	}

	playback := make(map[string]string, len(candidate.AudioURLs))
	for _, n := range candidate.AudioURLs.Questions() {
		key := entities.QuestionKey(n)
		u, err := s.storage.PresignedURL(ctx, candidate.AudioURLs[key])
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to presign recording",
					zap.String("candidate_id", candidateID.String()),
					zap.String("question", key),
					zap.Error(err),
				)
			}
			continue
		}
		playback[key] = u
	}

	return &Detail{Candidate: candidate, Playback: playback}, nil
}
