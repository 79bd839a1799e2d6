package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/daudx/sfhms/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	medicalRecordController *controllers.MedicalRecordController,
	trainingPlanController *controllers.TrainingPlanController,
	appointmentController *controllers.AppointmentController,
	nurseController *controllers.NurseController,
	viewController *controllers.ViewController,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Admin dashboard routes ---
	admin := api.Group("/admin")
	{
		admin.GET("/stats", adminController.GetStats)
		admin.GET("/system-logs", adminController.GetSystemLogs)
	}

	// --- Resource routes ---
	medicalRecords := api.Group("/medical-records")
	{
		medicalRecords.GET("", medicalRecordController.List)
		medicalRecords.POST("", medicalRecordController.Create)
	}

	trainingPlans := api.Group("/training-plans")
	{
		trainingPlans.GET("", trainingPlanController.List)
		trainingPlans.POST("", trainingPlanController.Create)
	}

	appointments := api.Group("/appointments")
	{
		appointments.GET("", appointmentController.List)
		appointments.POST("", appointmentController.Create)
	}

	// --- Nurse dashboard routes (x-nurse-id header required) ---
	nurse := api.Group("/nurse")
	{
		nurse.GET("/appointments", nurseController.GetAppointments)
		nurse.GET("/records", nurseController.GetRecords)
	}

	// --- Read-only view dispatch (closed allow-list) ---
	api.GET("/views/:viewName", viewController.GetView)
}
