package ai

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

// SkippedQuestion records a recording that could not be rated
type SkippedQuestion struct {
	QuestionNumber int    `json:"questionNumber"`
	Reason         string `json:"reason"`
}

// ToneResult summarizes one vocal delivery run
type ToneResult struct {
	Analyzed int                             `json:"analyzed"`
	Findings []entities.VocalDeliveryFinding `json:"findings"`
	Skipped  []SkippedQuestion               `json:"skipped"`
}

// ToneService rates the vocal delivery of a candidate's recorded answers
type ToneService struct {
	candidateRepo repositories.CandidateRepository
	analysisRepo  repositories.AnalysisRepository
	storage       repositories.AudioStorage
	transcriber   pkgai.Transcriber
	generator     pkgai.TextGenerator
	parser        *Parser
	logger        *zap.Logger
}

// NewToneService creates a tone service
func NewToneService(
	candidateRepo repositories.CandidateRepository,
	analysisRepo repositories.AnalysisRepository,
	storage repositories.AudioStorage,
	transcriber pkgai.Transcriber,
	generator pkgai.TextGenerator,
	logger *zap.Logger,
) *ToneService {
	return &ToneService{
		candidateRepo: candidateRepo,
		analysisRepo:  analysisRepo,
		storage:       storage,
		transcriber:   transcriber,
		generator:     generator,
		parser:        NewParser(),
		logger:        logger,
	}
}

// AnalyzeCandidate rates every recorded answer in question order and
// replaces the stored findings. A failing question is skipped; when none
// succeed nothing is written.
func (s *ToneService) AnalyzeCandidate(ctx context.Context, candidateID uuid.UUID) (*ToneResult, error) {
	candidate, err := s.candidateRepo.FindByID(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if candidate == nil {
		return nil, usecaseErrors.ErrCandidateNotFound
	}
	if !candidate.HasAudio() {
		return nil, usecaseErrors.ErrNoAudio
	}

	exists, err := s.analysisRepo.ExistsForCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("failed to check analysis: %w", err)
	}
	if !exists {
		return nil, usecaseErrors.ErrAnalysisNotFound
	}

	result := &ToneResult{
		Findings: []entities.VocalDeliveryFinding{},
		Skipped:  []SkippedQuestion{},
	}

	for n := 1; n <= entities.QuestionCount; n++ {
		key, ok := candidate.AudioURLs[entities.QuestionKey(n)]
		if !ok || key == "" {
			continue
		}

		if s.logger != nil {
			s.logger.Info("🎙️ Analyzing answer recording",
				zap.String("candidate_id", candidateID.String()),
				zap.Int("question", n),
			)
		}

		finding, err := s.analyzeRecording(ctx, n, key)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if s.logger != nil {
				s.logger.Warn("⚠️ Skipping answer recording",
					zap.String("candidate_id", candidateID.String()),
					zap.Int("question", n),
					zap.Error(err),
				)
			}
			result.Skipped = append(result.Skipped, SkippedQuestion{QuestionNumber: n, Reason: err.Error()})
			continue
		}
		result.Findings = append(result.Findings, *finding)
	}

	result.Analyzed = len(result.Findings)
	if result.Analyzed == 0 {
		return result, nil
	}

	if err := s.analysisRepo.UpdateAudioTone(ctx, candidateID, result.Findings); err != nil {
		return nil, fmt.Errorf("failed to save vocal delivery findings: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Vocal delivery analysis stored",
			zap.String("candidate_id", candidateID.String()),
			zap.Int("analyzed", result.Analyzed),
			zap.Int("skipped", len(result.Skipped)),
		)
	}

	return result, nil
}

func (s *ToneService) analyzeRecording(ctx context.Context, question int, key string) (*entities.VocalDeliveryFinding, error) {
	obj, err := s.storage.Open(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrStorage, err)
	}
	defer obj.Close()

	transcription, err := s.transcriber.Transcribe(ctx, obj, path.Base(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrTranscriptionFailed, err)
	}

	completion, err := s.generator.GenerateJSON(ctx, buildTonePrompt(question, transcription))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrAnalysisUnavailable, err)
	}

	finding, err := s.parser.ParseFinding(completion.Text, question)
	if err != nil {
		return nil, err
	}
	finding.Transcript = transcription.Text
	finding.DurationSeconds = transcription.DurationSeconds
	finding.Language = transcription.Language
	return finding, nil
}
