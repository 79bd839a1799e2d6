package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/app/repositories"
	"github.com/daudx/sfhms/internal/app/views"
	"github.com/daudx/sfhms/internal/middleware"
	"github.com/daudx/sfhms/internal/pkg/apperrors"
)

// ViewController handles GET /api/views/:viewName. The path segment is
// attacker-controlled; it is resolved against the closed allow-list in
// the views package before any database work happens.
type ViewController struct {
	viewRepo repositories.IViewRepository
	logger   zerolog.Logger
}

// NewViewController creates a new ViewController
func NewViewController(viewRepo repositories.IViewRepository, logger zerolog.Logger) *ViewController {
	return &ViewController{
		viewRepo: viewRepo,
		logger:   logger,
	}
}

// GetView handles GET /api/views/:viewName
func (c *ViewController) GetView(ctx *gin.Context) {
	viewName := ctx.Param("viewName")

	stmt, ok := views.Resolve(viewName)
	if !ok {
		c.logger.Warn().Str("viewName", viewName).Msg("Rejected unknown view name")
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidViewName)
		return
	}

	rows, err := c.viewRepo.QueryView(ctx.Request.Context(), stmt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ViewResponse{
		Success: true,
		View:    viewName,
		Count:   len(rows),
		Data:    rows,
	})
}
