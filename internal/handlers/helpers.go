package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "familia/internal/errors"
	"familia/internal/logger"
	"familia/internal/middleware"
	"familia/internal/uuid"
)

// parseIDParam reads a transaction id from the path. Anything that is not a
// UUID is rejected before it reaches the store.
func parseIDParam(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid id")
	}
	return id, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	log := logger.Named("handlers")

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", middleware.RequestID(c),
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		log.Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"request_id", middleware.RequestID(c),
		)
	}

	c.JSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
	})
}

func invalidInput(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
