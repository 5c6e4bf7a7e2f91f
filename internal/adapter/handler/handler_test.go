package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/infrastructure/cache"
	"github.com/johnquangdev/candidate-screening/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/candidate-screening/internal/test/mocks"
	aiUsecase "github.com/johnquangdev/candidate-screening/internal/usecase/ai"
	candidateUsecase "github.com/johnquangdev/candidate-screening/internal/usecase/candidate"
	draftUsecase "github.com/johnquangdev/candidate-screening/internal/usecase/draft"
	"github.com/johnquangdev/candidate-screening/pkg/jwt"
	"github.com/johnquangdev/candidate-screening/pkg/validator"
)

type testEnv struct {
	echo          *echo.Echo
	candidateRepo *mocks.CandidateRepo
	analysisRepo  *mocks.AnalysisRepo
	storage       *mocks.Storage
	generator     *mocks.Generator
	transcriber   *mocks.Transcriber
	dispatcher    *aiUsecase.Dispatcher
	tokens        *jwt.Manager
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type errorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Info    string            `json:"info"`
	Details map[string]string `json:"details"`
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zaptest.NewLogger(t)

	env := &testEnv{
		candidateRepo: &mocks.CandidateRepo{},
		analysisRepo:  &mocks.AnalysisRepo{},
		storage:       &mocks.Storage{},
		generator:     &mocks.Generator{},
		transcriber:   &mocks.Transcriber{},
		tokens:        jwt.NewManager("test-secret", "candidate-screening"),
	}
	env.generator.On("Model").Return("gpt-4o").Maybe()

	drafts := cache.NewMemoryDraftStore()
	t.Cleanup(drafts.Close)

	scoring := aiUsecase.NewScoringService(env.candidateRepo, env.analysisRepo, env.generator, logger)
	env.dispatcher = aiUsecase.NewDispatcher(scoring, 2, 5*time.Second, logger)
	t.Cleanup(func() { _ = env.dispatcher.Stop(context.Background()) })

	candidateService := candidateUsecase.NewCandidateService(env.candidateRepo, env.storage, drafts, env.dispatcher, logger)
	draftService := draftUsecase.NewDraftService(drafts, time.Hour, logger)
	tone := aiUsecase.NewToneService(env.candidateRepo, env.analysisRepo, env.storage, env.transcriber, env.generator, logger)
	transcription := aiUsecase.NewTranscriptionService(env.transcriber, logger)
	auth := middleware.NewAdminAuth(env.tokens, []string{"admin"}, false, logger)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger)
	NewRouter(
		nil,
		NewCandidateHandler(candidateService, transcription, 1<<20, logger),
		NewDraftHandler(draftService, logger),
		NewAdminHandler(candidateService, scoring, tone, logger),
		auth.Middleware(),
		nil,
	).Setup(e)
	env.echo = e
	return env
}

// admin signs req with an admin bearer token
func (env *testEnv) admin(t *testing.T, req *http.Request) *http.Request {
	t.Helper()
	token, err := env.tokens.GenerateToken("admin-1", "admin@example.com", "admin", time.Hour)
	require.NoError(t, err)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	return req
}

func multipartRequest(t *testing.T, target string, files map[string]string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".webm")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func sampleCandidate(name, email, location string) *entities.Candidate {
	responses := entities.Responses{}
	for _, key := range entities.QuestionKeys() {
		responses[key] = "answer for " + key
	}
	return entities.NewCandidate(entities.CandidateProfile{
		FullName:     name,
		Email:        email,
		Phone:        "+27 82 555 0101",
		Location:     location,
		Availability: entities.AvailabilityFullTime,
		AgeVerified:  true,
	}, responses)
}

func sampleAnalysis(c *entities.Candidate, score int, rec entities.Recommendation) *entities.Analysis {
	return entities.NewAnalysis(c.ID, &entities.Evaluation{
		OverallScore: score,
		TraitScores: entities.TraitScores{
			SelfMotivation: 85,
			SalesAptitude:  65,
			Reliability:    50,
			Dedication:     80,
		},
		Strengths:      []string{"Warm with customers"},
		RedFlags:       []string{},
		Recommendation: rec,
	}, "gpt-4o", time.Second)
}
