package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/app/services"
	"github.com/daudx/sfhms/internal/middleware"
)

// AdminController handles the admin dashboard endpoints
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// GetStats handles GET /api/admin/stats
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.adminService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminStatsResponse{
		Success: true,
		Stats:   *stats,
	})
}

// GetSystemLogs handles GET /api/admin/system-logs. Deployments
// without the audit table get an empty list, not an error.
func (c *AdminController) GetSystemLogs(ctx *gin.Context) {
	logs, err := c.adminService.GetSystemLogs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SystemLogsResponse{
		Success: true,
		Logs:    logs,
	})
}
