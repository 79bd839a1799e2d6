package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/daudx/sfhms/internal/pkg/apperrors"
)

// optionalIDQuery reads an optional integer query parameter. A missing
// parameter yields nil; a present but non-numeric one is a validation error.
func optionalIDQuery(ctx *gin.Context, name string) (*int64, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid " + name + " parameter")
	}

	return &id, nil
}

// requiredNurseIDHeader reads the x-nurse-id request header used by the
// nurse dashboard endpoints. Absent or malformed values are rejected
// before any query is issued.
func requiredNurseIDHeader(ctx *gin.Context) (int64, error) {
	raw := ctx.GetHeader("x-nurse-id")
	if raw == "" {
		return 0, apperrors.ErrMissingNurseID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.ErrMissingNurseID
	}

	return id, nil
}
