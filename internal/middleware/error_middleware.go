package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/YassenAli/Mentoria/internal/app/models/dto"
	"github.com/YassenAli/Mentoria/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to their HTTP status and the
// {message} error envelope.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrCourseNotFound, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(401, dto.NewErrorResponse(err.Error()))
	case apperrors.Is(err, apperrors.ErrTokenExpired, apperrors.ErrTokenInvalid, apperrors.ErrTokenNotFound, apperrors.ErrInvalidFormat):
		c.JSON(401, dto.NewErrorResponse(err.Error()))
	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrConflict,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrNotEnrolled,
		apperrors.ErrAlreadyReviewed,
		apperrors.ErrInvalidRating,
		apperrors.ErrInvalidCategory,
		apperrors.ErrInvalidDifficulty):
		c.JSON(400, dto.NewErrorResponse(err.Error()))
	default:
		// Unknown errors are logged with detail but reported generically
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(500, dto.NewErrorResponse("Internal server error"))
	}
}
