package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
	"github.com/johnquangdev/candidate-screening/pkg/logger"
)

// EvaluationInput is everything the model sees about a candidate
type EvaluationInput struct {
	CandidateName string
	Responses     entities.Responses
	Findings      []entities.VocalDeliveryFinding
}

// ScoringService turns candidate answers into a persisted Analysis
type ScoringService struct {
	candidateRepo repositories.CandidateRepository
	analysisRepo  repositories.AnalysisRepository
	generator     pkgai.TextGenerator
	parser        *Parser
	logger        *zap.Logger
}

// NewScoringService creates a scoring service
func NewScoringService(
	candidateRepo repositories.CandidateRepository,
	analysisRepo repositories.AnalysisRepository,
	generator pkgai.TextGenerator,
	logger *zap.Logger,
) *ScoringService {
	return &ScoringService{
		candidateRepo: candidateRepo,
		analysisRepo:  analysisRepo,
		generator:     generator,
		parser:        NewParser(),
		logger:        logger,
	}
}

// Evaluate runs one fresh evaluation. Nothing is cached or retried.
func (s *ScoringService) Evaluate(ctx context.Context, in EvaluationInput) (*entities.Evaluation, error) {
	completion, err := s.generator.GenerateJSON(ctx, buildScoringPrompt(in))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrAnalysisUnavailable, err)
	}

	eval, err := s.parser.ParseEvaluation(completion.Text)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Model returned malformed evaluation",
				zap.String("model", completion.Model),
				zap.String("content", logger.Truncate(completion.Text, 300)),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return eval, nil
}

// ScoreCandidate evaluates a stored candidate and inserts its Analysis
func (s *ScoringService) ScoreCandidate(ctx context.Context, candidateID uuid.UUID) (*entities.Analysis, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, usecaseErrors.ErrCandidateNotFound
	}

	exists, err := s.analysisRepo.ExistsForCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to check analysis: %w", err)
	}
	if exists {
		return nil, usecaseErrors.ErrAnalysisExists
	}

	if s.logger != nil {
		s.logger.Info("🤖 Scoring candidate",
			zap.String("candidate_id", candidateID.String()),
			zap.String("model", s.generator.Model()),
		)
	}

	start := time.Now()
	eval, err := s.Evaluate(ctx, EvaluationInput{
		CandidateName: candidate.FullName,
		Responses:     candidate.Responses,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Scoring failed",
				zap.String("candidate_id", candidateID.String()),
				zap.Error(err),
			)
		}
		return nil, err
	}

	analysis := entities.NewAnalysis(candidateID, eval, s.generator.Model(), time.Since(start))
	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		if errors.Is(err, entities.ErrDuplicateRecord) {
			return nil, usecaseErrors.ErrAnalysisExists
		}
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Candidate scored",
			zap.String("candidate_id", candidateID.String()),
			zap.Int("overall_score", analysis.OverallScore),
			zap.String("recommendation", string(analysis.Recommendation)),
			zap.Int64("processing_time_ms", analysis.ProcessingTimeMs),
		)
	}

	return analysis, nil
}
