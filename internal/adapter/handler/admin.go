package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/errors"
	candidateDTO "github.com/johnquangdev/candidate-screening/internal/adapter/dto/candidate"
	"github.com/johnquangdev/candidate-screening/internal/adapter/presenter"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	aiUsecase "github.com/johnquangdev/candidate-screening/internal/usecase/ai"
	candidateUsecase "github.com/johnquangdev/candidate-screening/internal/usecase/candidate"
)

// CandidateScorer evaluates a candidate on demand
type CandidateScorer interface {
	ScoreCandidate(ctx context.Context, candidateID uuid.UUID) (*entities.Analysis, error)
}

// ToneAnalyzer rates the vocal delivery of a candidate's recordings
type ToneAnalyzer interface {
	AnalyzeCandidate(ctx context.Context, candidateID uuid.UUID) (*aiUsecase.ToneResult, error)
}

// Admin handles the review dashboard endpoints
type Admin struct {
	candidateService candidateUsecase.Service
	scorer           CandidateScorer
	tone             ToneAnalyzer
	logger           *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	candidateService candidateUsecase.Service,
	scorer CandidateScorer,
	tone ToneAnalyzer,
	logger *zap.Logger,
) *Admin {
	return &Admin{
		candidateService: candidateService,
		scorer:           scorer,
		tone:             tone,
		logger:           logger,
	}
}

// ListCandidates handles GET /admin/candidates
// @Summary      List candidates
// @Description  Lists candidates newest first. search matches name, email or location, case-insensitive.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Substring filter"
// @Success      200     {object}  common.SuccessResponse{data=candidate.CandidateListResponse}
// @Failure      401     {object}  common.ErrorResponse
// @Failure      500     {object}  common.ErrorResponse
// @Router       /admin/candidates [get]
func (h *Admin) ListCandidates(c echo.Context) error {
	var req candidateDTO.ListCandidatesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("search is too long"))
	}

	candidates, err := h.candidateService.List(c.Request().Context(), req.Search)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCandidateList(candidates, req.Search))
}

// GetCandidate handles GET /admin/candidates/:id
// @Summary      Get candidate detail
// @Description  Returns the candidate, the analysis with score bands and playback URLs per question
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  common.SuccessResponse{data=candidate.CandidateDetailResponse}
// @Failure      404  {object}  common.ErrorResponse  "Candidate not found"
// @Router       /admin/candidates/{id} [get]
func (h *Admin) GetCandidate(c echo.Context) error {
	candidateID, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	detail, err := h.candidateService.Get(c.Request().Context(), candidateID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCandidateDetail(detail.Candidate, detail.Playback))
}

// AnalyzeCandidate handles POST /admin/candidates/:id/analysis
// @Summary      Score a candidate
// @Description  Runs the AI evaluation now. Only one analysis may exist per candidate.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      201  {object}  common.SuccessResponse{data=candidate.AnalysisResponse}
// @Failure      404  {object}  common.ErrorResponse  "Candidate not found"
// @Failure      409  {object}  common.ErrorResponse  "Analysis already exists for this candidate"
// @Failure      502  {object}  common.ErrorResponse  "AI analysis unavailable"
// @Router       /admin/candidates/{id}/analysis [post]
func (h *Admin) AnalyzeCandidate(c echo.Context) error {
	candidateID, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	analysis, err := h.scorer.ScoreCandidate(c.Request().Context(), candidateID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleStatus(h.logger, c, http.StatusCreated, presenter.ToAnalysisResponse(analysis))
}

// SyncAudio handles POST /admin/candidates/:id/audio/sync
// @Summary      Sync recordings from storage
// @Description  Rebuilds the candidate's recording map from the objects found in storage
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  common.SuccessResponse{data=candidate.SyncAudioResponse}
// @Failure      404  {object}  common.ErrorResponse  "Candidate not found or nothing to sync"
// @Failure      500  {object}  common.ErrorResponse  "Storage failure"
// @Router       /admin/candidates/{id}/audio/sync [post]
func (h *Admin) SyncAudio(c echo.Context) error {
	candidateID, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	locators, err := h.candidateService.SyncAudio(c.Request().Context(), candidateID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &candidateDTO.SyncAudioResponse{
		AudioURLs: presenter.ToLocatorMap(locators),
		Synced:    len(locators.Questions()),
	})
}

// AnalyzeAudio handles POST /admin/candidates/:id/audio/analysis
// @Summary      Analyze vocal delivery
// @Description  Transcribes each recording and rates its delivery, then stores the findings on the analysis
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  common.SuccessResponse{data=candidate.ToneAnalysisResponse}
// @Failure      400  {object}  common.ErrorResponse  "No audio to analyze"
// @Failure      404  {object}  common.ErrorResponse  "Candidate not found"
// @Failure      409  {object}  common.ErrorResponse  "Analysis not ready"
// @Router       /admin/candidates/{id}/audio/analysis [post]
func (h *Admin) AnalyzeAudio(c echo.Context) error {
	candidateID, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.tone.AnalyzeCandidate(c.Request().Context(), candidateID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	skipped := make([]candidateDTO.SkippedQuestionResponse, 0, len(result.Skipped))
	for _, s := range result.Skipped {
		skipped = append(skipped, candidateDTO.SkippedQuestionResponse{
			QuestionNumber: s.QuestionNumber,
			Reason:         s.Reason,
		})
	}

	return HandleSuccess(h.logger, c, &candidateDTO.ToneAnalysisResponse{
		Analyzed: result.Analyzed,
		Findings: presenter.ToVocalFindingResponses(result.Findings),
		Skipped:  skipped,
	})
}

// DeleteCandidate handles DELETE /admin/candidates/:id
// @Summary      Delete a candidate
// @Description  Removes the candidate, its analysis and its recordings. Storage failures are reported as warnings.
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  common.SuccessResponse{data=candidate.DeleteCandidateResponse}
// @Failure      404  {object}  common.ErrorResponse  "Candidate not found"
// @Router       /admin/candidates/{id} [delete]
func (h *Admin) DeleteCandidate(c echo.Context) error {
	candidateID, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.candidateService.Delete(c.Request().Context(), candidateID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if h.logger != nil {
		h.logger.Info("candidate deleted by admin",
			zap.String("candidate_id", candidateID.String()),
			zap.Any("admin_id", c.Get("admin_id")),
		)
	}

	return HandleSuccess(h.logger, c, &candidateDTO.DeleteCandidateResponse{
		ID:              candidateID.String(),
		Deleted:         true,
		StorageWarnings: result.StorageWarnings,
	})
}
