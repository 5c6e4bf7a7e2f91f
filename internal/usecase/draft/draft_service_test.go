package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/infrastructure/cache"
	"github.com/johnquangdev/candidate-screening/internal/test"
	"github.com/johnquangdev/candidate-screening/internal/test/mocks"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
)

func TestDraftLifecycle(t *testing.T) {
	store := cache.NewMemoryDraftStore()
	t.Cleanup(store.Close)
	svc := NewDraftService(store, time.Hour, zaptest.NewLogger(t))
	ctx := test.Ctx(t)

	saved, err := svc.Save(ctx, &entities.FormDraft{FullName: "Ana", CurrentStep: 42})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.Equal(t, entities.TotalSteps, saved.CurrentStep)
	assert.False(t, saved.UpdatedAt.IsZero())

	loaded, err := svc.Load(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", loaded.FullName)
	assert.NotNil(t, loaded.Responses)

	require.NoError(t, svc.Clear(ctx, saved.ID))
	_, err = svc.Load(ctx, saved.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrDraftNotFound)

	assert.NoError(t, svc.Clear(ctx, saved.ID))
	assert.NoError(t, svc.Clear(ctx, ""))
}

func TestSave_NilDraft(t *testing.T) {
	repo := &mocks.DraftRepo{}
	repo.On("Save", mock.Anything, mock.AnythingOfType("*entities.FormDraft"), 2*time.Hour).Return(nil)
	svc := NewDraftService(repo, 2*time.Hour, nil)

	d, err := svc.Save(test.Ctx(t), nil)
	require.NoError(t, err)
	assert.Equal(t, entities.StepBasicInfo, d.CurrentStep)
	repo.AssertExpectations(t)
}

func TestLoad_Errors(t *testing.T) {
	repo := &mocks.DraftRepo{}
	repo.On("Get", mock.Anything, "broken").Return(nil, errors.New("redis down"))
	svc := NewDraftService(repo, time.Hour, nil)

	_, err := svc.Load(test.Ctx(t), "broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecaseErrors.ErrDraftStore)
	assert.False(t, errors.Is(err, usecaseErrors.ErrDraftNotFound))

	_, err = svc.Load(test.Ctx(t), " ")
	assert.ErrorIs(t, err, usecaseErrors.ErrDraftNotFound)
}
