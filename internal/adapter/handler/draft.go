package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/errors"
	draftDTO "github.com/johnquangdev/candidate-screening/internal/adapter/dto/draft"
	"github.com/johnquangdev/candidate-screening/internal/adapter/presenter"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	"github.com/johnquangdev/candidate-screening/pkg/validator"
)

// DraftStore loads and saves intake form drafts
type DraftStore interface {
	Load(ctx context.Context, id string) (*entities.FormDraft, error)
	Save(ctx context.Context, d *entities.FormDraft) (*entities.FormDraft, error)
	Clear(ctx context.Context, id string) error
}

// Draft handles the intake form draft endpoints
type Draft struct {
	drafts DraftStore
	logger *zap.Logger
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(drafts DraftStore, logger *zap.Logger) *Draft {
	return &Draft{drafts: drafts, logger: logger}
}

// GetDraft handles GET /drafts/:id
// @Summary      Load a draft
// @Tags         Drafts
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  common.SuccessResponse{data=draft.DraftResponse}
// @Failure      404  {object}  common.ErrorResponse  "Draft not found"
// @Router       /drafts/{id} [get]
func (h *Draft) GetDraft(c echo.Context) error {
	d, err := h.drafts.Load(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToDraftResponse(d))
}

// SaveDraft handles PUT /drafts and PUT /drafts/:id
// @Summary      Save a draft
// @Description  Creates or replaces a draft and returns it with the gating state of every step
// @Tags         Drafts
// @Accept       json
// @Produce      json
// @Param        id       path      string                  false  "Draft ID, omitted to create"
// @Param        request  body      draft.SaveDraftRequest  true   "Form progress"
// @Success      200      {object}  common.SuccessResponse{data=draft.DraftResponse}
// @Failure      400      {object}  common.ErrorResponse  "Invalid draft"
// @Router       /drafts/{id} [put]
func (h *Draft) SaveDraft(c echo.Context) error {
	var req draftDTO.SaveDraftRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("Invalid draft", validator.FieldNames(err)))
	}

	saved, err := h.drafts.Save(c.Request().Context(), presenter.ToFormDraft(c.Param("id"), &req))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToDraftResponse(saved))
}

// DeleteDraft handles DELETE /drafts/:id
// @Summary      Clear a draft
// @Tags         Drafts
// @Produce      json
// @Param        id   path      string  true  "Draft ID"
// @Success      200  {object}  common.SuccessResponse
// @Router       /drafts/{id} [delete]
func (h *Draft) DeleteDraft(c echo.Context) error {
	id := c.Param("id")
	if err := h.drafts.Clear(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{
		"id":      id,
		"deleted": true,
	})
}
