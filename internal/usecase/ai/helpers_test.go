package ai

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/test/mocks"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

var (
	candidateRepoMock *mocks.CandidateRepo
	analysisRepoMock  *mocks.AnalysisRepo
	storageMock       *mocks.Storage
	generatorMock     *mocks.Generator
	transcriberMock   *mocks.Transcriber
)

func initTest(t *testing.T) {
	candidateRepoMock = &mocks.CandidateRepo{}
	analysisRepoMock = &mocks.AnalysisRepo{}
	storageMock = &mocks.Storage{}
	generatorMock = &mocks.Generator{}
	transcriberMock = &mocks.Transcriber{}
	generatorMock.On("Model").Return("gpt-4o").Maybe()
}

func newScoring(t *testing.T) *ScoringService {
	return NewScoringService(candidateRepoMock, analysisRepoMock, generatorMock, zaptest.NewLogger(t))
}

func testCandidate() *entities.Candidate {
	responses := entities.Responses{}
	for _, key := range entities.QuestionKeys() {
		responses[key] = "answer for " + key
	}
	c := entities.NewCandidate(entities.CandidateProfile{
		FullName:     "Thandi Mokoena",
		Email:        "thandi@example.com",
		Phone:        "+27 82 555 0101",
		Location:     "Soweto",
		Availability: entities.AvailabilityFullTime,
		AgeVerified:  true,
	}, responses)
	c.ID = uuid.New()
	return c
}

func completion(text string) *pkgai.Completion {
	return &pkgai.Completion{Text: text, Model: "gpt-4o"}
}

var anyCtx = mock.Anything
