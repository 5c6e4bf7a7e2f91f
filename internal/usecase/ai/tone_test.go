package ai

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/test"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

const validFinding = `{"confidence": "high", "enthusiasm": "medium", "tone": ["warm"], "speechPace": "moderate",
	"clarity": "clear", "naturalness": "natural", "insights": "Sounds sincere."}`

func newTone(t *testing.T) *ToneService {
	return NewToneService(candidateRepoMock, analysisRepoMock, storageMock, transcriberMock, generatorMock, zaptest.NewLogger(t))
}

func TestAnalyzeCandidate(t *testing.T) {
	initTest(t)
	c := testCandidate()
	c.AudioURLs = entities.AudioLocators{
		"question1": c.ID.String() + "/question1-100.webm",
		"question3": c.ID.String() + "/question3-300.webm",
		"question5": c.ID.String() + "/question5-500.webm",
	}

	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(true, nil)

	storageMock.On("Open", anyCtx, c.AudioURLs["question1"]).Return(test.NopCloser("a1"), nil)
	storageMock.On("Open", anyCtx, c.AudioURLs["question3"]).Return(nil, errors.New("no such key"))
	storageMock.On("Open", anyCtx, c.AudioURLs["question5"]).Return(test.NopCloser("a5"), nil)

	transcriberMock.On("Transcribe", anyCtx, mock.Anything, "question1-100.webm").
		Return(&pkgai.Transcription{Text: "I helped my aunt", DurationSeconds: 31.5, Language: "en"}, nil)
	transcriberMock.On("Transcribe", anyCtx, mock.Anything, "question5-500.webm").
		Return(&pkgai.Transcription{Text: "I get along", DurationSeconds: 12, Language: "en"}, nil)

	generatorMock.On("GenerateJSON", anyCtx, mock.MatchedBy(func(p pkgai.Prompt) bool {
		return strings.Contains(p.User, entities.QuestionText(1))
	})).Return(completion(validFinding), nil)
	generatorMock.On("GenerateJSON", anyCtx, mock.MatchedBy(func(p pkgai.Prompt) bool {
		return strings.Contains(p.User, entities.QuestionText(5))
	})).Return(completion(validFinding), nil)

	var stored []entities.VocalDeliveryFinding
	analysisRepoMock.On("UpdateAudioTone", anyCtx, c.ID, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(2).([]entities.VocalDeliveryFinding) }).
		Return(nil)

	res, err := newTone(t).AnalyzeCandidate(test.Ctx(t), c.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Analyzed)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 3, res.Skipped[0].QuestionNumber)

	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].QuestionNumber)
	assert.Equal(t, 5, stored[1].QuestionNumber)
	assert.Equal(t, "I helped my aunt", stored[0].Transcript)
	assert.InDelta(t, 31.5, stored[0].DurationSeconds, 0.01)
	assert.Equal(t, "high", stored[0].Confidence)
}

func TestAnalyzeCandidate_NothingSucceeded(t *testing.T) {
	initTest(t)
	c := testCandidate()
	c.AudioURLs = entities.AudioLocators{"question2": c.ID.String() + "/question2-1.webm"}

	candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
	analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(true, nil)
	storageMock.On("Open", anyCtx, mock.Anything).Return(test.NopCloser("a"), nil)
	transcriberMock.On("Transcribe", anyCtx, mock.Anything, mock.Anything).
		Return(&pkgai.Transcription{Text: "hi"}, nil)
	generatorMock.On("GenerateJSON", anyCtx, mock.Anything).Return(completion(`{"confidence": "loud"}`), nil)

	res, err := newTone(t).AnalyzeCandidate(test.Ctx(t), c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Analyzed)
	assert.Len(t, res.Skipped, 1)
	analysisRepoMock.AssertNotCalled(t, "UpdateAudioTone", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeCandidate_Preconditions(t *testing.T) {
	t.Run("candidate missing", func(t *testing.T) {
		initTest(t)
		c := testCandidate()
		candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(nil, nil)
		_, err := newTone(t).AnalyzeCandidate(test.Ctx(t), c.ID)
		assert.ErrorIs(t, err, usecaseErrors.ErrCandidateNotFound)
	})

	t.Run("no audio", func(t *testing.T) {
		initTest(t)
		c := testCandidate()
		candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
		_, err := newTone(t).AnalyzeCandidate(test.Ctx(t), c.ID)
		assert.ErrorIs(t, err, usecaseErrors.ErrNoAudio)
	})

	t.Run("no analysis row", func(t *testing.T) {
		initTest(t)
		c := testCandidate()
		c.AudioURLs = entities.AudioLocators{"question1": "k"}
		candidateRepoMock.On("FindByID", anyCtx, c.ID).Return(c, nil)
		analysisRepoMock.On("ExistsForCandidate", anyCtx, c.ID).Return(false, nil)

		_, err := newTone(t).AnalyzeCandidate(test.Ctx(t), c.ID)
		assert.ErrorIs(t, err, usecaseErrors.ErrAnalysisNotFound)
		storageMock.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
	})
}

func TestTranscribeAnswer(t *testing.T) {
	initTest(t)
	svc := NewTranscriptionService(transcriberMock, zaptest.NewLogger(t))

	transcriberMock.On("Transcribe", anyCtx, mock.Anything, "question1.webm").
		Return(&pkgai.Transcription{Text: "  hello  ", DurationSeconds: 2, Language: "en"}, nil).Once()
	out, err := svc.TranscribeAnswer(test.Ctx(t), strings.NewReader("x"), "question1.webm")
	require.NoError(t, err)
	assert.Equal(t, "hello", out.Text)

	transcriberMock.On("Transcribe", anyCtx, mock.Anything, "question2.webm").
		Return(nil, errors.New("timeout")).Once()
	_, err = svc.TranscribeAnswer(test.Ctx(t), strings.NewReader("x"), "question2.webm")
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptionFailed)
}
