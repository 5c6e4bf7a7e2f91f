package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/test"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

func TestScoreCandidate(t *testing.T) {
	initTest(t)
	c := testCandidate()

	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(false, nil)
	generatorMock.On("GenerateJSON", anyCtx, mock.MatchedBy(func(p pkgai.Prompt) bool {
		return strings.Contains(p.User, "Thandi Mokoena") &&
			strings.Contains(p.User, entities.QuestionText(7)) &&
			strings.Contains(p.User, "answer for question4") &&
			!strings.Contains(p.User, "VOICE & TONE")
	})).Return(completion(validEvaluation), nil)
	analysisRepoMock.On("Create", anyCtx, mock.AnythingOfType("*entities.Analysis")).Return(nil)

	analysis, err := newScoring(t).ScoreCandidate(test.Ctx(t), c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, analysis.CandidateID)
	assert.Equal(t, 72, analysis.OverallScore)
	assert.Equal(t, entities.RecommendationMaybe, analysis.Recommendation)
	assert.Equal(t, "gpt-4o", analysis.ModelUsed)
	assert.Equal(t, 80, analysis.Traits().SelfMotivation)
	assert.Empty(t, analysis.Findings())
	analysisRepoMock.AssertExpectations(t)
}

func TestScoreCandidate_NotFound(t *testing.T) {
	initTest(t)
	c := testCandidate()
	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(nil, nil)

	_, err := newScoring(t).ScoreCandidate(test.Ctx(t), c.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrCandidateNotFound)
	generatorMock.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything)
}

func TestScoreCandidate_AlreadyAnalyzed(t *testing.T) {
	initTest(t)
	c := testCandidate()
	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(true, nil)

	_, err := newScoring(t).ScoreCandidate(test.Ctx(t), c.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrAnalysisExists)
	generatorMock.AssertNotCalled(t, "GenerateJSON", mock.Anything, mock.Anything)
}

func TestScoreCandidate_DuplicateOnInsert(t *testing.T) {
	initTest(t)
	c := testCandidate()
	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(false, nil)
	generatorMock.On("GenerateJSON", anyCtx, mock.Anything).Return(completion(validEvaluation), nil)
	analysisRepoMock.On("Create", anyCtx, mock.Anything).Return(entities.ErrDuplicateRecord)

	_, err := newScoring(t).ScoreCandidate(test.Ctx(t), c.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrAnalysisExists)
}

func TestScoreCandidate_UpstreamFailure(t *testing.T) {
	initTest(t)
	c := testCandidate()
	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(false, nil)
	generatorMock.On("GenerateJSON", anyCtx, mock.Anything).Return(nil, errors.New("503 service unavailable"))

	_, err := newScoring(t).ScoreCandidate(test.Ctx(t), c.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrAnalysisUnavailable)
	assert.False(t, errors.Is(err, usecaseErrors.ErrMalformedUpstream))
	analysisRepoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestScoreCandidate_Malformed(t *testing.T) {
	initTest(t)
	c := testCandidate()
	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(false, nil)
	generatorMock.On("GenerateJSON", anyCtx, mock.Anything).Return(completion(`{"overallScore": 150}`), nil)

	_, err := newScoring(t).ScoreCandidate(test.Ctx(t), c.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMalformedUpstream)
	analysisRepoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEvaluate_IncludesFindings(t *testing.T) {
	initTest(t)
	generatorMock.On("GenerateJSON", anyCtx, mock.MatchedBy(func(p pkgai.Prompt) bool {
		return strings.Contains(p.User, "VOICE & TONE") && strings.Contains(p.User, "Tone Qualities: warm, upbeat")
	})).Return(completion(validEvaluation), nil)

	eval, err := newScoring(t).Evaluate(test.Ctx(t), EvaluationInput{
		CandidateName: "Sipho",
		Responses:     testCandidate().Responses,
		Findings: []entities.VocalDeliveryFinding{
			{QuestionNumber: 2, Confidence: "high", Enthusiasm: "high", Tone: []string{"warm", "upbeat"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 72, eval.OverallScore)
	generatorMock.AssertExpectations(t)
}
