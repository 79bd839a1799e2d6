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

// AppointmentController handles the appointment endpoints
type AppointmentController struct {
	apptRepo repositories.IAppointmentRepository
	logger   zerolog.Logger
}

// NewAppointmentController creates a new AppointmentController
func NewAppointmentController(apptRepo repositories.IAppointmentRepository, logger zerolog.Logger) *AppointmentController {
	return &AppointmentController{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// List handles GET /api/appointments?studentId=<int>
func (c *AppointmentController) List(ctx *gin.Context) {
	studentID, err := optionalIDQuery(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	appointments, err := c.apptRepo.List(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppointmentListResponse{
		Success:      true,
		Appointments: toAppointmentData(appointments),
	})
}

// Create handles POST /api/appointments
func (c *AppointmentController) Create(ctx *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	apptDate, err := helpers.ParseDate(req.ApptDate)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidDate)
		return
	}

	appt := &models.Appointment{
		StudentID: req.StudentID,
		NurseID:   req.NurseID,
		ApptDate:  apptDate,
		ApptTime:  req.ApptTime,
		Status:    models.AppointmentScheduled,
		Reason:    req.Reason,
	}

	apptID, err := c.apptRepo.Create(ctx.Request.Context(), appt)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("appointmentID", apptID).Int64("studentID", req.StudentID).Msg("Appointment created")

	ctx.JSON(http.StatusCreated, dto.AppointmentCreateResponse{
		Success:       true,
		AppointmentID: apptID,
	})
}

func toAppointmentData(appointments []models.Appointment) []dto.AppointmentData {
	data := make([]dto.AppointmentData, 0, len(appointments))
	for _, appt := range appointments {
		data = append(data, dto.AppointmentData{
			ID:        appt.ID,
			StudentID: appt.StudentID,
			NurseID:   appt.NurseID,
			ApptDate:  helpers.FormatDate(appt.ApptDate),
			ApptTime:  appt.ApptTime,
			Status:    appt.Status,
			Reason:    appt.Reason,
		})
	}
	return data
}
