package handler

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/errors"
	candidateDTO "github.com/johnquangdev/candidate-screening/internal/adapter/dto/candidate"
	"github.com/johnquangdev/candidate-screening/internal/adapter/presenter"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	candidateUsecase "github.com/johnquangdev/candidate-screening/internal/usecase/candidate"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

// Messages returned by the public intake endpoints
const (
	msgSubmitFailed     = "Failed to submit application. Please try again."
	msgInvalidBody      = "Invalid request body"
	msgNoAudioProvided  = "No audio file provided"
	msgAudioTooLarge    = "Audio file is too large"
	defaultMaxAudioSize = 25 << 20
)

// AnswerTranscriber turns one recorded answer into text
type AnswerTranscriber interface {
	TranscribeAnswer(ctx context.Context, audio io.Reader, fileName string) (*pkgai.Transcription, error)
}

// Candidate handles the public intake endpoints
type Candidate struct {
	candidateService candidateUsecase.Service
	transcriber      AnswerTranscriber
	maxAudioBytes    int64
	logger           *zap.Logger
}

// NewCandidateHandler creates a new intake handler
func NewCandidateHandler(
	candidateService candidateUsecase.Service,
	transcriber AnswerTranscriber,
	maxAudioBytes int64,
	logger *zap.Logger,
) *Candidate {
	if maxAudioBytes <= 0 {
		maxAudioBytes = defaultMaxAudioSize
	}
	return &Candidate{
		candidateService: candidateService,
		transcriber:      transcriber,
		maxAudioBytes:    maxAudioBytes,
		logger:           logger,
	}
}

// Submit handles POST /candidates
// @Summary      Submit an application
// @Description  Validates and stores a completed intake form, then schedules AI scoring in the background
// @Tags         Candidates
// @Accept       json
// @Produce      json
// @Param        request  body      candidate.SubmitApplicationRequest   true  "Completed intake form"
// @Success      201      {object}  candidate.SubmitApplicationResponse  "Application stored"
// @Failure      400      {object}  candidate.SubmitApplicationResponse  "Missing fields or answers"
// @Failure      500      {object}  candidate.SubmitApplicationResponse  "Failed to store the application"
// @Router       /candidates [post]
func (h *Candidate) Submit(c echo.Context) error {
	var req candidateDTO.SubmitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, candidateDTO.SubmitApplicationResponse{
			Success: false,
			Error:   msgInvalidBody,
		})
	}

	result, err := h.candidateService.Submit(c.Request().Context(), candidateUsecase.SubmitInput{
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		Availability:       req.Availability,
		AgeVerified:        req.AgeVerified,
		ProductComfort:     req.ProductComfort,
		PreviousExperience: req.PreviousExperience,
		Responses:          req.Responses,
		DraftID:            req.DraftID,
	})
	if err != nil {
		var verr *usecaseErrors.ValidationError
		if stdErrors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, candidateDTO.SubmitApplicationResponse{
				Success:       false,
				Error:         verr.Message,
				MissingFields: verr.Fields,
			})
		}

		if h.logger != nil {
			h.logger.Error("❌ Failed to submit application",
				zap.String("request_id", getRequestID(c)),
				zap.Error(err),
			)
		}
		return c.JSON(http.StatusInternalServerError, candidateDTO.SubmitApplicationResponse{
			Success: false,
			Error:   msgSubmitFailed,
		})
	}

	return c.JSON(http.StatusCreated, candidateDTO.SubmitApplicationResponse{
		Success:     true,
		CandidateID: result.CandidateID.String(),
	})
}

// UploadAudio handles POST /candidates/:id/audio
// @Summary      Upload answer recordings
// @Description  Stores the recorded answers of a candidate. Form fields question1..question7 each carry one audio file.
// @Tags         Candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id         path      string  true   "Candidate ID"
// @Param        question1  formData  file    false  "Recording for question 1"
// @Param        question7  formData  file    false  "Recording for question 7"
// @Success      200  {object}  common.SuccessResponse{data=candidate.UploadAudioResponse}
// @Failure      400  {object}  common.ErrorResponse  "No files or invalid candidate id"
// @Failure      404  {object}  common.ErrorResponse  "Candidate not found"
// @Failure      500  {object}  common.ErrorResponse  "Storage failure"
// @Router       /candidates/{id}/audio [post]
func (h *Candidate) UploadAudio(c echo.Context) error {
	candidateID, err := parseID(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Expected multipart form data"))
	}

	var uploads []candidateUsecase.AudioUpload
	var opened []multipart.File
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()

	for n := 1; n <= entities.QuestionCount; n++ {
		files := form.File[entities.QuestionKey(n)]
		if len(files) == 0 {
			continue
		}
		fh := files[0]
		if fh.Size > h.maxAudioBytes {
			return HandleError(h.logger, c,
				errors.ErrInvalidArgument(msgAudioTooLarge).WithDetail("field", entities.QuestionKey(n)))
		}
		f, err := fh.Open()
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInternal(fmt.Errorf("open %s: %w", fh.Filename, err)))
		}
		opened = append(opened, f)
		uploads = append(uploads, candidateUsecase.AudioUpload{Question: n, Body: f, Size: fh.Size})
	}

	result, err := h.candidateService.UploadAudio(c.Request().Context(), candidateID, uploads)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, &candidateDTO.UploadAudioResponse{
		AudioURLs: presenter.ToLocatorMap(result.Locators),
		Failed:    result.Failed,
	})
}

// Transcribe handles POST /transcriptions
// @Summary      Transcribe an answer
// @Description  Transcribes one recorded answer so the candidate can review the text
// @Tags         Candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file  true  "Recorded answer"
// @Success      200  {object}  common.SuccessResponse{data=candidate.TranscriptionResponse}
// @Failure      400  {object}  common.ErrorResponse  "No audio file provided"
// @Failure      502  {object}  common.ErrorResponse  "Failed to transcribe audio"
// @Router       /transcriptions [post]
func (h *Candidate) Transcribe(c echo.Context) error {
	fh, err := c.FormFile("audio")
	if err != nil || fh.Size == 0 {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(msgNoAudioProvided))
	}
	if fh.Size > h.maxAudioBytes {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(msgAudioTooLarge))
	}

	f, err := fh.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer f.Close()

	transcription, err := h.transcriber.TranscribeAnswer(c.Request().Context(), f, fh.Filename)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTranscriptionResponse(transcription))
}
