package providers

import (
	"context"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type ProviderUsecase interface {
	CreateProvider(ctx context.Context, session *models.Session, request *requests.CreateProvider) (*responses.Provider, error)
	FindAllProviders(ctx context.Context, request *requests.FindAllProviders) ([]*responses.Provider, error)
	FindMyProvider(ctx context.Context, session *models.Session) (*responses.Provider, error)
	FindProviderByID(ctx context.Context, providerID string) (*responses.Provider, error)
	UpdateProvider(ctx context.Context, session *models.Session, providerID string, request *requests.UpdateProvider) (*responses.Provider, error)
	DeleteProvider(ctx context.Context, session *models.Session, providerID string) error
	AssignPatient(ctx context.Context, session *models.Session, providerID string, request *requests.AssignPatient) (*responses.Provider, error)
}

type ProviderRepository interface {
	CreateProvider(ctx context.Context, providerEntity *models.Provider) (providerID string, err error)
	FindAll(ctx context.Context, filters *requests.FindAllProviders) ([]models.Provider, error)
	FindByID(ctx context.Context, providerID string) (*models.Provider, error)
	FindByUserID(ctx context.Context, userID string) (*models.Provider, error)
	FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Provider, error)
	UpdateFields(ctx context.Context, providerID string, updateData map[string]interface{}) error
	AddPatient(ctx context.Context, providerID, patientID string) error
	DeleteByID(ctx context.Context, providerID string) error
}
