package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/candidate-screening/errors"
	"github.com/johnquangdev/candidate-screening/internal/adapter/dto/common"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request or the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return HandleStatus(logger, c, http.StatusOK, data)
}

// HandleStatus writes a standardized success response with the given status
func HandleStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// Upstream causes are logged but never echoed for server-side failures.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := ToAppError(err, c.Param("id"))

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", appErr.HTTPCode),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Raw != nil && appErr.HTTPCode < http.StatusInternalServerError {
		body.Info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, body)
}

// ToAppError maps use case errors to the API error taxonomy. id names the
// resource the request addressed.
func ToAppError(err error, id string) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var verr *usecaseErrors.ValidationError
	switch {
	case stdErrors.As(err, &verr):
		return errors.ErrValidation(verr.Message, verr.Fields)
	case stdErrors.Is(err, usecaseErrors.ErrCandidateNotFound):
		return errors.ErrCandidateNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrDraftNotFound):
		return errors.ErrDraftNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrNoAudio):
		return errors.ErrNoAudio(id)
	case stdErrors.Is(err, usecaseErrors.ErrNothingToSync):
		return errors.ErrNothingToSync(id)
	case stdErrors.Is(err, usecaseErrors.ErrAnalysisNotFound):
		return errors.ErrAnalysisNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrAnalysisExists):
		return errors.ErrAnalysisAlreadyExists(id)
	case stdErrors.Is(err, usecaseErrors.ErrMalformedUpstream):
		return errors.ErrMalformedUpstream(err)
	case stdErrors.Is(err, usecaseErrors.ErrAnalysisUnavailable):
		return errors.ErrAIAnalysisFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptionFailed):
		return errors.ErrAITranscriptionFailed(err)
	case stdErrors.Is(err, usecaseErrors.ErrDispatcherStopped):
		return errors.ErrAIServiceUnavailable("scoring")
	case stdErrors.Is(err, usecaseErrors.ErrStorage):
		return errors.ErrStorageFailed("audio", err)
	case stdErrors.Is(err, usecaseErrors.ErrDraftStore):
		return errors.ErrCacheFailed("draft", err)
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		e := errors.ErrInvalidArgument("Invalid input")
		e.Raw = err
		return e
	}
	return errors.ErrInternal(err)
}

// NewHTTPErrorHandler renders errors returned by middleware and unmatched
// routes in the same envelope as HandleError
func NewHTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if s, ok := he.Message.(string); ok && s != "" {
				msg = s
			}
			_ = c.JSON(he.Code, common.ErrorResponse{Code: he.Code, Message: msg})
			return
		}

		if herr := HandleError(logger, c, err); herr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(herr))
		}
	}
}

// parseID reads the :id path parameter as a UUID
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		e := errors.ErrInvalidArgument("Invalid id")
		e.Raw = err
		return uuid.Nil, e
	}
	return id, nil
}
