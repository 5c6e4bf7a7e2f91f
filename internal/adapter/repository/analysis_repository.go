package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
)

type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository backed by GORM
func NewAnalysisRepository(db *gorm.DB) repositories.AnalysisRepository {
	return &analysisRepository{db: db}
}

// Create inserts an analysis. The unique index on candidate_id turns a
// concurrent second insert into entities.ErrDuplicateRecord.
func (r *analysisRepository) Create(ctx context.Context, analysis *entities.Analysis) error {
	if analysis == nil {
		return errors.New("analysis cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.ErrDuplicateRecord
		}
		return err
	}
	return nil
}

func (r *analysisRepository) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) (*entities.Analysis, error) {
	var analysis entities.Analysis
	if err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *analysisRepository) ExistsForCandidate(ctx context.Context, candidateID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Analysis{}).
		Where("candidate_id = ?", candidateID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateAudioTone overwrites audio_tone_analysis, never merging with earlier findings
func (r *analysisRepository) UpdateAudioTone(ctx context.Context, candidateID uuid.UUID, findings []entities.VocalDeliveryFinding) error {
	if findings == nil {
		findings = []entities.VocalDeliveryFinding{}
	}
	res := r.db.WithContext(ctx).
		Model(&entities.Analysis{}).
		Where("candidate_id = ?", candidateID).
		Update("audio_tone_analysis", datatypes.NewJSONSlice(findings))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}
