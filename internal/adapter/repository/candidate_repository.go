package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
)

// candidateRepository implements the CandidateRepository interface
type candidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) repositories.CandidateRepository {
	return &candidateRepository{db: db}
}

// Create inserts a new candidate
func (r *candidateRepository) Create(ctx context.Context, candidate *entities.Candidate) error {
	if candidate == nil {
		return errors.New("candidate cannot be nil")
	}
	return r.db.WithContext(ctx).Omit("Analysis").Create(candidate).Error
}

// FindByID retrieves a candidate with its analysis
func (r *candidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error) {
	var candidate entities.Candidate
	err := r.db.WithContext(ctx).
		Preload("Analysis").
		Where("id = ?", id).
		First(&candidate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &candidate, nil
}

// List retrieves candidates newest first
func (r *candidateRepository) List(ctx context.Context, filters repositories.CandidateFilters) ([]*entities.Candidate, error) {
	var candidates []*entities.Candidate

	query := r.db.WithContext(ctx).
		Model(&entities.Candidate{}).
		Preload("Analysis").
		Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}

	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// UpdateAudioURLs replaces the audio locator map
func (r *candidateRepository) UpdateAudioURLs(ctx context.Context, id uuid.UUID, locators entities.AudioLocators) error {
	if locators == nil {
		locators = entities.AudioLocators{}
	}
	res := r.db.WithContext(ctx).
		Model(&entities.Candidate{}).
		Where("id = ?", id).
		Update("audio_urls", locators)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// Delete removes a candidate row
func (r *candidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Candidate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}
