package providers

import (
	"context"
	"testing"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) CreateProvider(ctx context.Context, providerEntity *models.Provider) (string, error) {
	args := m.Called(ctx, providerEntity)
	return args.String(0), args.Error(1)
}

func (m *MockProviderRepository) FindAll(ctx context.Context, filters *requests.FindAllProviders) ([]models.Provider, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindByID(ctx context.Context, providerID string) (*models.Provider, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) FindByLicenseNumber(ctx context.Context, licenseNumber string) (*models.Provider, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) UpdateFields(ctx context.Context, providerID string, updateData map[string]interface{}) error {
	args := m.Called(ctx, providerID, updateData)
	return args.Error(0)
}

func (m *MockProviderRepository) AddPatient(ctx context.Context, providerID, patientID string) error {
	args := m.Called(ctx, providerID, patientID)
	return args.Error(0)
}

func (m *MockProviderRepository) DeleteByID(ctx context.Context, providerID string) error {
	args := m.Called(ctx, providerID)
	return args.Error(0)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patientEntity *models.Patient) (string, error) {
	args := m.Called(ctx, patientEntity)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdateFields(ctx context.Context, patientID string, updateData map[string]interface{}) error {
	args := m.Called(ctx, patientID, updateData)
	return args.Error(0)
}

func (m *MockPatientRepository) DeleteByID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

func TestCreateProvider(t *testing.T) {
	t.Run("duplicate license number is rejected", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		providerRepo.On("FindByUserID", mock.Anything, "user-1").Return(nil, nil)
		providerRepo.On("FindByLicenseNumber", mock.Anything, "LIC-123").
			Return(&models.Provider{ID: "prov-other", LicenseNumber: "LIC-123"}, nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		_, err := usecase.CreateProvider(context.Background(), session, &requests.CreateProvider{
			Specialty:         "cardiology",
			LicenseNumber:     "LIC-123",
			LicenseExpiration: "2030-01-01",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		providerRepo.AssertNotCalled(t, "CreateProvider")
	})

	t.Run("accepting new patients defaults to true", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		providerRepo.On("FindByUserID", mock.Anything, "user-1").Return(nil, nil)
		providerRepo.On("FindByLicenseNumber", mock.Anything, "LIC-123").Return(nil, nil)
		providerRepo.On("CreateProvider", mock.Anything, mock.MatchedBy(func(provider *models.Provider) bool {
			return provider.AcceptingNewPatients && provider.PatientIDs != nil && len(provider.PatientIDs) == 0
		})).Return("prov-1", nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		response, err := usecase.CreateProvider(context.Background(), session, &requests.CreateProvider{
			Specialty:         "cardiology",
			LicenseNumber:     "LIC-123",
			LicenseExpiration: "2030-01-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, "prov-1", response.ID)
		providerRepo.AssertExpectations(t)
	})
}

func TestAssignPatient(t *testing.T) {
	t.Run("already assigned patient is rejected", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1", PatientIDs: []string{"pat-1"}}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)
		patientRepo.On("FindByID", mock.Anything, "pat-1").
			Return(&models.Patient{ID: "pat-1"}, nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		_, err := usecase.AssignPatient(context.Background(), session, "prov-1", &requests.AssignPatient{
			PatientID: "pat-1",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		providerRepo.AssertNotCalled(t, "AddPatient")
	})

	t.Run("new assignment is appended", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1", PatientIDs: []string{}}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)
		patientRepo.On("FindByID", mock.Anything, "pat-1").
			Return(&models.Patient{ID: "pat-1"}, nil)
		providerRepo.On("AddPatient", mock.Anything, "prov-1", "pat-1").Return(nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		_, err := usecase.AssignPatient(context.Background(), session, "prov-1", &requests.AssignPatient{
			PatientID: "pat-1",
		})

		assert.NoError(t, err)
		providerRepo.AssertExpectations(t)
	})

	t.Run("unknown patient is rejected", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1"}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)
		patientRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		_, err := usecase.AssignPatient(context.Background(), session, "prov-1", &requests.AssignPatient{
			PatientID: "ghost",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("another provider cannot assign to someone else's panel", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1"}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)

		session := &models.Session{UserID: "user-2", Role: constvars.RoleTypeProvider}
		_, err := usecase.AssignPatient(context.Background(), session, "prov-1", &requests.AssignPatient{
			PatientID: "pat-1",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestUpdateProvider(t *testing.T) {
	t.Run("license change to a taken number fails", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1", LicenseNumber: "LIC-123"}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)
		providerRepo.On("FindByLicenseNumber", mock.Anything, "LIC-999").
			Return(&models.Provider{ID: "prov-other", LicenseNumber: "LIC-999"}, nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		licenseNumber := "LIC-999"
		_, err := usecase.UpdateProvider(context.Background(), session, "prov-1", &requests.UpdateProvider{
			LicenseNumber: &licenseNumber,
		})

		assert.Error(t, err)
		providerRepo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("clearing the npi unsets the field", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1", NPI: "1234567890"}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)
		providerRepo.On("UpdateFields", mock.Anything, "prov-1", mock.MatchedBy(func(updateData map[string]interface{}) bool {
			value, present := updateData["npi"]
			return present && value == nil
		})).Return(nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		npi := ""
		_, err := usecase.UpdateProvider(context.Background(), session, "prov-1", &requests.UpdateProvider{
			NPI: &npi,
		})

		assert.NoError(t, err)
		providerRepo.AssertExpectations(t)
	})

	t.Run("unchanged license number skips the duplicate check", func(t *testing.T) {
		providerRepo := new(MockProviderRepository)
		patientRepo := new(MockPatientRepository)
		usecase := NewProviderUsecase(providerRepo, patientRepo)

		stored := &models.Provider{ID: "prov-1", UserID: "user-1", LicenseNumber: "LIC-123"}
		providerRepo.On("FindByID", mock.Anything, "prov-1").Return(stored, nil)
		providerRepo.On("UpdateFields", mock.Anything, "prov-1", mock.Anything).Return(nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypeProvider}
		licenseNumber := "LIC-123"
		_, err := usecase.UpdateProvider(context.Background(), session, "prov-1", &requests.UpdateProvider{
			LicenseNumber: &licenseNumber,
		})

		assert.NoError(t, err)
		providerRepo.AssertNotCalled(t, "FindByLicenseNumber")
	})
}
