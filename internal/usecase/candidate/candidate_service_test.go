package candidate

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/domain/repositories"
	"github.com/johnquangdev/candidate-screening/internal/test"
	"github.com/johnquangdev/candidate-screening/internal/test/mocks"
	"github.com/johnquangdev/candidate-screening/internal/usecase/ai"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
)

var (
	candidateRepoMock *mocks.CandidateRepo
	storageMock       *mocks.Storage
	draftRepoMock     *mocks.DraftRepo
	enqueuer          *fakeEnqueuer
	tService          *CandidateService
)

type fakeEnqueuer struct {
	ids []uuid.UUID
}

func (f *fakeEnqueuer) Enqueue(id uuid.UUID) *ai.Task {
	f.ids = append(f.ids, id)
	return &ai.Task{ID: uuid.New(), CandidateID: id}
}

func initTest(t *testing.T) {
	candidateRepoMock = &mocks.CandidateRepo{}
	storageMock = &mocks.Storage{}
	draftRepoMock = &mocks.DraftRepo{}
	enqueuer = &fakeEnqueuer{}
	tService = NewCandidateService(candidateRepoMock, storageMock, draftRepoMock, enqueuer, zaptest.NewLogger(t))
	tService.now = func() time.Time { return time.UnixMilli(1700000000000) }
}

func validInput() SubmitInput {
	responses := map[string]string{}
	for _, key := range entities.QuestionKeys() {
		responses[key] = "my answer to " + key
	}
	return SubmitInput{
		FullName:     " Thandi Mokoena ",
		Email:        "thandi@example.com",
		Phone:        "+27 82 555 0101",
		Location:     "Soweto",
		Availability: "full-time",
		AgeVerified:  true,
		Responses:    responses,
	}
}

func storedCandidate(locators entities.AudioLocators) *entities.Candidate {
	c := entities.NewCandidate(entities.CandidateProfile{FullName: "Ana"}, entities.Responses{})
	c.AudioURLs = locators
	return c
}

func TestSubmit(t *testing.T) {
	initTest(t)
	var created *entities.Candidate
	candidateRepoMock.On("Create", mock.Anything, mock.AnythingOfType("*entities.Candidate")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entities.Candidate) }).
		Return(nil)

	in := validInput()
	in.ProductComfort = "comfortable"
	in.PreviousExperience = "  two years retail "
	res, err := tService.Submit(test.Ctx(t), in)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, created.ID, res.CandidateID)
	assert.Equal(t, "Thandi Mokoena", created.FullName)
	require.NotNil(t, created.ProductComfort)
	assert.Equal(t, entities.ProductComfort("comfortable"), *created.ProductComfort)
	require.NotNil(t, created.PreviousExperience)
	assert.Equal(t, "two years retail", *created.PreviousExperience)
	assert.Len(t, created.Responses, entities.QuestionCount)

	assert.Equal(t, []uuid.UUID{created.ID}, enqueuer.ids)
	require.NotNil(t, res.Task)
	assert.Equal(t, created.ID, res.Task.CandidateID)
	draftRepoMock.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubmit_ClearsDraft(t *testing.T) {
	initTest(t)
	candidateRepoMock.On("Create", mock.Anything, mock.Anything).Return(nil)
	draftRepoMock.On("Delete", mock.Anything, "draft-1").Return(errors.New("redis down"))

	in := validInput()
	in.DraftID = "draft-1"
	_, err := tService.Submit(test.Ctx(t), in)
	require.NoError(t, err)
	draftRepoMock.AssertExpectations(t)
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*SubmitInput)
		message string
		fields  []string
	}{
		{"missing phone", func(in *SubmitInput) { in.Phone = "  " }, usecaseErrors.MsgMissingRequiredFields, []string{"phone"}},
		{"missing name and location", func(in *SubmitInput) { in.FullName = ""; in.Location = "" }, usecaseErrors.MsgMissingRequiredFields, []string{"fullName", "location"}},
		{"age not verified", func(in *SubmitInput) { in.AgeVerified = false }, usecaseErrors.MsgMissingRequiredFields, []string{"ageVerified"}},
		{"bad email", func(in *SubmitInput) { in.Email = "thandi@" }, usecaseErrors.MsgMissingRequiredFields, []string{"email"}},
		{"bad availability", func(in *SubmitInput) { in.Availability = "nights" }, usecaseErrors.MsgMissingRequiredFields, []string{"availability"}},
		{"bad comfort", func(in *SubmitInput) { in.ProductComfort = "meh" }, usecaseErrors.MsgMissingRequiredFields, []string{"productComfort"}},
		{"blank answer", func(in *SubmitInput) { in.Responses["question4"] = " " }, usecaseErrors.MsgMissingAnswers, []string{"question4"}},
		{"absent answers", func(in *SubmitInput) { delete(in.Responses, "question1"); delete(in.Responses, "question7") }, usecaseErrors.MsgMissingAnswers, []string{"question1", "question7"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initTest(t)
			in := validInput()
			tt.modify(&in)

			_, err := tService.Submit(test.Ctx(t), in)
			require.Error(t, err)
			assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

			var verr *usecaseErrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.message, verr.Message)
			assert.Equal(t, tt.fields, verr.Fields)

			candidateRepoMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Empty(t, enqueuer.ids)
		})
	}
}

func TestSubmit_PersistenceFailure(t *testing.T) {
	initTest(t)
	candidateRepoMock.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := tService.Submit(test.Ctx(t), validInput())
	require.Error(t, err)
	assert.False(t, errors.Is(err, usecaseErrors.ErrInvalidInput))
	assert.Empty(t, enqueuer.ids)
}

func TestUploadAudio(t *testing.T) {
	initTest(t)
	c := storedCandidate(entities.AudioLocators{})
	candidateRepoMock.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	key1 := c.ID.String() + "/question1-1700000000000.webm"
	key2 := c.ID.String() + "/question2-1700000000000.webm"
	storageMock.On("Upload", mock.Anything, key1, mock.Anything, int64(3), entities.AudioContentType).Return(nil)
	storageMock.On("Upload", mock.Anything, key2, mock.Anything, int64(3), entities.AudioContentType).Return(errors.New("timeout"))
	candidateRepoMock.On("UpdateAudioURLs", mock.Anything, c.ID, entities.AudioLocators{"question1": key1}).Return(nil)

	res, err := tService.UploadAudio(test.Ctx(t), c.ID, []AudioUpload{
		{Question: 1, Body: strings.NewReader("abc"), Size: 3},
		{Question: 2, Body: strings.NewReader("def"), Size: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, entities.AudioLocators{"question1": key1}, res.Locators)
	assert.Equal(t, []int{2}, res.Failed)
	candidateRepoMock.AssertExpectations(t)
}

func TestUploadAudio_Errors(t *testing.T) {
	initTest(t)
	_, err := tService.UploadAudio(test.Ctx(t), uuid.New(), nil)
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	_, err = tService.UploadAudio(test.Ctx(t), uuid.New(), []AudioUpload{{Question: 8}})
	assert.ErrorIs(t, err, entities.ErrInvalidQuestion)

	id := uuid.New()
	candidateRepoMock.On("FindByID", mock.Anything, id).Return(nil, nil)
	_, err = tService.UploadAudio(test.Ctx(t), id, []AudioUpload{{Question: 1, Body: strings.NewReader("a"), Size: 1}})
	assert.ErrorIs(t, err, usecaseErrors.ErrCandidateNotFound)
}

func TestSyncAudio(t *testing.T) {
	initTest(t)
	c := storedCandidate(entities.AudioLocators{"question1": "stale"})
	prefix := c.ID.String() + "/"
	now := time.Now()

	candidateRepoMock.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	storageMock.On("List", mock.Anything, prefix).Return([]repositories.StoredObject{
		{Key: prefix + "question1-100.webm", LastModified: now},
		{Key: prefix + "question1-300.webm", LastModified: now.Add(-time.Hour)},
		{Key: prefix + "question1-200.webm", LastModified: now.Add(time.Hour)},
		{Key: prefix + "question3-50.webm"},
		{Key: prefix + "question9-50.webm"},
		{Key: prefix + "notes.txt"},
	}, nil)

	want := entities.AudioLocators{
		"question1": prefix + "question1-300.webm",
		"question3": prefix + "question3-50.webm",
	}
	candidateRepoMock.On("UpdateAudioURLs", mock.Anything, c.ID, want).Return(nil)

	got, err := tService.SyncAudio(test.Ctx(t), c.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	candidateRepoMock.AssertExpectations(t)
}

func TestSyncAudio_Errors(t *testing.T) {
	t.Run("nothing to sync", func(t *testing.T) {
		initTest(t)
		c := storedCandidate(entities.AudioLocators{})
		candidateRepoMock.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		storageMock.On("List", mock.Anything, mock.Anything).Return([]repositories.StoredObject{{Key: c.ID.String() + "/readme"}}, nil)

		_, err := tService.SyncAudio(test.Ctx(t), c.ID)
		assert.ErrorIs(t, err, usecaseErrors.ErrNothingToSync)
		candidateRepoMock.AssertNotCalled(t, "UpdateAudioURLs", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure", func(t *testing.T) {
		initTest(t)
		c := storedCandidate(entities.AudioLocators{})
		candidateRepoMock.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		storageMock.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

		_, err := tService.SyncAudio(test.Ctx(t), c.ID)
		assert.ErrorIs(t, err, usecaseErrors.ErrStorage)
	})

	t.Run("missing candidate", func(t *testing.T) {
		initTest(t)
		id := uuid.New()
		candidateRepoMock.On("FindByID", mock.Anything, id).Return(nil, nil)
		_, err := tService.SyncAudio(test.Ctx(t), id)
		assert.ErrorIs(t, err, usecaseErrors.ErrCandidateNotFound)
	})
}

func TestDelete(t *testing.T) {
	initTest(t)
	c := storedCandidate(entities.AudioLocators{"question1": "k1", "question2": "k2"})
	candidateRepoMock.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	storageMock.On("Remove", mock.Anything, "k1").Return(nil)
	storageMock.On("Remove", mock.Anything, "k2").Return(errors.New("gone"))
	candidateRepoMock.On("Delete", mock.Anything, c.ID).Return(nil)

	res, err := tService.Delete(test.Ctx(t), c.ID)
	require.NoError(t, err)
	require.Len(t, res.StorageWarnings, 1)
	assert.Contains(t, res.StorageWarnings[0], "question2")
	candidateRepoMock.AssertExpectations(t)
}

func TestDelete_Missing(t *testing.T) {
	initTest(t)
	id := uuid.New()
	candidateRepoMock.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := tService.Delete(test.Ctx(t), id)
	assert.ErrorIs(t, err, usecaseErrors.ErrCandidateNotFound)
	candidateRepoMock.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestList(t *testing.T) {
	initTest(t)
	older := storedCandidate(nil)
	older.FullName, older.Email, older.Location = "Sipho Dlamini", "sipho@example.com", "Durban"
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := storedCandidate(nil)
	newer.FullName, newer.Email, newer.Location = "Ana Smith", "ana@example.com", "Cape Town"
	newer.CreatedAt = time.Now()

	candidateRepoMock.On("List", mock.Anything, repositories.CandidateFilters{}).Return([]*entities.Candidate{older, newer}, nil)

	all, err := tService.List(test.Ctx(t), "")
	require.NoError(t, err)
	assert.Equal(t, []*entities.Candidate{newer, older}, all)

	found, err := tService.List(test.Ctx(t), "DURBAN")
	require.NoError(t, err)
	assert.Equal(t, []*entities.Candidate{older}, found)

	none, err := tService.List(test.Ctx(t), "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGet(t *testing.T) {
	initTest(t)
	c := storedCandidate(entities.AudioLocators{"question1": "k1", "question2": "k2"})
	candidateRepoMock.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	storageMock.On("PresignedURL", mock.Anything, "k1").Return("https://media/k1?sig", nil)
	storageMock.On("PresignedURL", mock.Anything, "k2").Return("", errors.New("boom"))

	d, err := tService.Get(test.Ctx(t), c.ID)
	require.NoError(t, err)
	assert.Same(t, c, d.Candidate)
	assert.Equal(t, map[string]string{"question1": "https://media/k1?sig"}, d.Playback)
}
