package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/candidate-screening/errors"
	draftDTO "github.com/johnquangdev/candidate-screening/internal/adapter/dto/draft"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/internal/test"
)

func TestDraft_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	rec := test.Code(t, env.echo, test.JSONRequest(http.MethodPut, "/v1/drafts", `{
		"currentStep": 2,
		"fullName": "Ana Silva",
		"email": "ana@example.com",
		"phone": "+27 82 555 0101",
		"responses": {"question1": "I helped a neighbour."},
		"audioRecorded": {"question1": true}
	}`), http.StatusOK)
	created := test.Decode[envelope[draftDTO.DraftResponse]](t, rec).Data

	require.NotEmpty(t, created.ID)
	assert.Equal(t, 2, created.CurrentStep)
	assert.Equal(t, entities.TotalSteps, created.TotalSteps)
	assert.True(t, created.CanProceed[entities.StepBasicInfo])
	assert.True(t, created.CanProceed[entities.StepFirstQuestion])
	assert.False(t, created.CanProceed[entities.StepFirstQuestion+1])
	assert.False(t, created.Complete)

	rec = test.Code(t, env.echo, httptest.NewRequest(http.MethodGet, "/v1/drafts/"+created.ID, nil), http.StatusOK)
	loaded := test.Decode[envelope[draftDTO.DraftResponse]](t, rec).Data
	assert.Equal(t, "Ana Silva", loaded.FullName)
	assert.Equal(t, "I helped a neighbour.", loaded.Responses["question1"])

	rec = test.Code(t, env.echo, test.JSONRequest(http.MethodPut, "/v1/drafts/"+created.ID, `{"currentStep": 3, "fullName": "Ana"}`), http.StatusOK)
	replaced := test.Decode[envelope[draftDTO.DraftResponse]](t, rec).Data
	assert.Equal(t, created.ID, replaced.ID)
	assert.False(t, replaced.CanProceed[entities.StepBasicInfo])

	test.Code(t, env.echo, httptest.NewRequest(http.MethodDelete, "/v1/drafts/"+created.ID, nil), http.StatusOK)

	rec = test.Code(t, env.echo, httptest.NewRequest(http.MethodGet, "/v1/drafts/"+created.ID, nil), http.StatusNotFound)
	body := test.Decode[errorBody](t, rec)
	assert.Equal(t, int(errors.ErrorCode_DRAFT_NOT_FOUND), body.Code)
	assert.Equal(t, created.ID, body.Details["draft_id"])
}

func TestDraft_InvalidFields(t *testing.T) {
	env := newTestEnv(t)

	rec := test.Code(t, env.echo, test.JSONRequest(http.MethodPut, "/v1/drafts", `{"availability": "sometimes"}`), http.StatusBadRequest)
	body := test.Decode[errorBody](t, rec)
	assert.Equal(t, int(errors.ErrorCode_VALIDATION_FAILED), body.Code)
	assert.Equal(t, "availability", body.Details["fields"])

	test.Code(t, env.echo, test.JSONRequest(http.MethodPut, "/v1/drafts", `{"currentStep": "two"}`), http.StatusBadRequest)
}
