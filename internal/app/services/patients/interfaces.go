package patients

import (
	"context"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error)
	FindAllPatients(ctx context.Context, session *models.Session) ([]*responses.Patient, error)
	FindMyPatient(ctx context.Context, session *models.Session) (*responses.Patient, error)
	FindPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, session *models.Session, patientID string) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patientEntity *models.Patient) (patientID string, err error)
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
	UpdateFields(ctx context.Context, patientID string, updateData map[string]interface{}) error
	DeleteByID(ctx context.Context, patientID string) error
}
