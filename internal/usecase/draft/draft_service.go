package draft

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
)

// DraftService keeps intake form progress between visits
type DraftService struct {
	repo   repositories.DraftRepository
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewDraftService creates a draft service storing drafts for ttl
func NewDraftService(repo repositories.DraftRepository, ttl time.Duration, logger *zap.Logger) *DraftService {
	return &DraftService{
		repo:   repo,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Load returns a saved draft
func (s *DraftService) Load(ctx context.Context, id string) (*entities.FormDraft, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, usecaseErrors.ErrDraftNotFound
	}

	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load draft: %w", usecaseErrors.ErrDraftStore, err)
	}
	if d == nil {
		return nil, usecaseErrors.ErrDraftNotFound
	}
	d.Normalize()
	return d, nil
}

// Save stores the draft and refreshes its expiry. A draft without an id
// gets a fresh one.
func (s *DraftService) Save(ctx context.Context, d *entities.FormDraft) (*entities.FormDraft, error) {
	if d == nil {
		d = entities.NewFormDraft()
	}
	if strings.TrimSpace(d.ID) == "" {
		d.ID = entities.NewFormDraft().ID
	}
	d.Normalize()
	d.UpdatedAt = s.now().UTC()

	if err := s.repo.Save(ctx, d, s.ttl); err != nil {
		return nil, fmt.Errorf("%w: failed to save draft: %w", usecaseErrors.ErrDraftStore, err)
	}

	if s.logger != nil {
		s.logger.Debug("💾 Draft saved",
			zap.String("draft_id", d.ID),
			zap.Int("step", d.CurrentStep),
		)
	}
	return d, nil
}

// Clear removes a draft; clearing a missing draft is not an error
func (s *DraftService) Clear(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: failed to clear draft: %w", usecaseErrors.ErrDraftStore, err)
	}
	return nil
}
