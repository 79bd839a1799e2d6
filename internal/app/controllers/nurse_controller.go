package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/app/repositories"
	"github.com/daudx/sfhms/internal/middleware"
)

// NurseController handles the nurse dashboard endpoints. Both require
// the caller's nurse id in the x-nurse-id header and reject the
// request before any query when it is absent.
type NurseController struct {
	apptRepo   repositories.IAppointmentRepository
	recordRepo repositories.IMedicalRecordRepository
	logger     zerolog.Logger
}

// NewNurseController creates a new NurseController
func NewNurseController(apptRepo repositories.IAppointmentRepository, recordRepo repositories.IMedicalRecordRepository, logger zerolog.Logger) *NurseController {
	return &NurseController{
		apptRepo:   apptRepo,
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// GetAppointments handles GET /api/nurse/appointments
func (c *NurseController) GetAppointments(ctx *gin.Context) {
	nurseID, err := requiredNurseIDHeader(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	appointments, err := c.apptRepo.ListByNurse(ctx.Request.Context(), nurseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AppointmentListResponse{
		Success:      true,
		Appointments: toAppointmentData(appointments),
	})
}

// GetRecords handles GET /api/nurse/records
func (c *NurseController) GetRecords(ctx *gin.Context) {
	nurseID, err := requiredNurseIDHeader(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, err := c.recordRepo.ListByNurse(ctx.Request.Context(), nurseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MedicalRecordListResponse{
		Success: true,
		Records: toMedicalRecordData(records),
	})
}
