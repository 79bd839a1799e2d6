package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/pkg/apperrors"
)

// HandleAPIError converts service errors into the uniform JSON error
// envelope. Validation failures map to 400 with their specific message;
// anything unrecognized is logged and reported as a plain 500 so raw
// store errors never reach the caller.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingFields):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
	case errors.Is(err, apperrors.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid role"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already exists"))
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username already taken"))
	case errors.Is(err, apperrors.ErrInvalidViewName):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid view name"))
	case errors.Is(err, apperrors.ErrMissingNurseID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing nurse ID"))
	case errors.Is(err, apperrors.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid date format, expected YYYY-MM-DD"))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied"))
	case errors.Is(err, apperrors.ErrUserNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
