package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/app/repositories"
	"github.com/daudx/sfhms/internal/middleware"
	"github.com/daudx/sfhms/internal/pkg/apperrors"
	"github.com/daudx/sfhms/internal/pkg/helpers"
)

// TrainingPlanController handles the training plan endpoints
type TrainingPlanController struct {
	planRepo repositories.ITrainingPlanRepository
	logger   zerolog.Logger
}

// NewTrainingPlanController creates a new TrainingPlanController
func NewTrainingPlanController(planRepo repositories.ITrainingPlanRepository, logger zerolog.Logger) *TrainingPlanController {
	return &TrainingPlanController{
		planRepo: planRepo,
		logger:   logger,
	}
}

// List handles GET /api/training-plans?coachId=<int>
func (c *TrainingPlanController) List(ctx *gin.Context) {
	coachID, err := optionalIDQuery(ctx, "coachId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	plans, err := c.planRepo.List(ctx.Request.Context(), coachID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data := make([]dto.TrainingPlanData, 0, len(plans))
	for _, plan := range plans {
		data = append(data, dto.TrainingPlanData{
			ID:          plan.ID,
			CoachID:     plan.CoachID,
			PlanName:    plan.PlanName,
			Description: plan.Description,
			StartDate:   helpers.FormatDate(plan.StartDate),
			EndDate:     helpers.FormatDate(plan.EndDate),
		})
	}

	ctx.JSON(http.StatusOK, dto.TrainingPlanListResponse{
		Success: true,
		Plans:   data,
	})
}

// Create handles POST /api/training-plans
func (c *TrainingPlanController) Create(ctx *gin.Context) {
	var req dto.CreateTrainingPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidDate)
		return
	}

	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidDate)
		return
	}

	if endDate.Before(startDate) {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("End date must not be before start date"))
		return
	}

	plan := &models.TrainingPlan{
		CoachID:     req.CoachID,
		PlanName:    req.PlanName,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	planID, err := c.planRepo.Create(ctx.Request.Context(), plan)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("planID", planID).Int64("coachID", req.CoachID).Msg("Training plan created")

	ctx.JSON(http.StatusCreated, dto.TrainingPlanCreateResponse{
		Success: true,
		PlanID:  planID,
	})
}
