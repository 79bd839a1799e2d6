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

// MedicalRecordController handles the medical record endpoints
type MedicalRecordController struct {
	recordRepo repositories.IMedicalRecordRepository
	logger     zerolog.Logger
}

// NewMedicalRecordController creates a new MedicalRecordController
func NewMedicalRecordController(recordRepo repositories.IMedicalRecordRepository, logger zerolog.Logger) *MedicalRecordController {
	return &MedicalRecordController{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// List handles GET /api/medical-records?studentId=<int>
func (c *MedicalRecordController) List(ctx *gin.Context) {
	studentID, err := optionalIDQuery(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	records, err := c.recordRepo.List(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MedicalRecordListResponse{
		Success: true,
		Records: toMedicalRecordData(records),
	})
}

// Create handles POST /api/medical-records
func (c *MedicalRecordController) Create(ctx *gin.Context) {
	var req dto.CreateMedicalRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Missing required fields"))
		return
	}

	visitDate, err := helpers.ParseDate(req.VisitDate)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrInvalidDate)
		return
	}

	record := &models.MedicalRecord{
		StudentID:    req.StudentID,
		NurseID:      req.NurseID,
		VisitDate:    visitDate,
		Diagnosis:    req.Diagnosis,
		Prescription: req.Prescription,
		Notes:        req.Notes,
	}

	recordID, err := c.recordRepo.Create(ctx.Request.Context(), record)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("recordID", recordID).Int64("studentID", req.StudentID).Msg("Medical record created")

	ctx.JSON(http.StatusCreated, dto.MedicalRecordCreateResponse{
		Success:  true,
		RecordID: recordID,
	})
}

func toMedicalRecordData(records []models.MedicalRecord) []dto.MedicalRecordData {
	data := make([]dto.MedicalRecordData, 0, len(records))
	for _, rec := range records {
		data = append(data, dto.MedicalRecordData{
			ID:           rec.ID,
			StudentID:    rec.StudentID,
			NurseID:      rec.NurseID,
			VisitDate:    helpers.FormatDate(rec.VisitDate),
			Diagnosis:    rec.Diagnosis,
			Prescription: rec.Prescription,
			Notes:        rec.Notes,
		})
	}
	return data
}
