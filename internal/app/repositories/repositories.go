package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	UserRepository          *UserRepository
	MedicalRecordRepository *MedicalRecordRepository
	TrainingPlanRepository  *TrainingPlanRepository
	AppointmentRepository   *AppointmentRepository
	AdminRepository         *AdminRepository
	ViewRepository          *ViewRepository
}

// NewRepositories creates all repositories backed by the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		MedicalRecordRepository: NewMedicalRecordRepository(db),
		TrainingPlanRepository:  NewTrainingPlanRepository(db),
		AppointmentRepository:   NewAppointmentRepository(db),
		AdminRepository:         NewAdminRepository(db),
		ViewRepository:          NewViewRepository(db),
	}
}
