package providers

import (
	"context"
	"time"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/patients"
	"medrecord-service/internal/app/services/shared/access"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
)

type providerUsecase struct {
	ProviderRepository ProviderRepository
	PatientRepository  patients.PatientRepository
}

func NewProviderUsecase(
	providerMongoRepository ProviderRepository,
	patientMongoRepository patients.PatientRepository,
) ProviderUsecase {
	return &providerUsecase{
		ProviderRepository: providerMongoRepository,
		PatientRepository:  patientMongoRepository,
	}
}

func (uc *providerUsecase) CreateProvider(ctx context.Context, session *models.Session, request *requests.CreateProvider) (*responses.Provider, error) {
	existingProvider, err := uc.ProviderRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingProvider != nil {
		return nil, exceptions.ErrProviderProfileAlreadyExist(nil)
	}

	existingLicense, err := uc.ProviderRepository.FindByLicenseNumber(ctx, request.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if existingLicense != nil {
		return nil, exceptions.ErrLicenseNumberAlreadyExist(nil)
	}

	licenseExpiration, err := utils.ParseDate(request.LicenseExpiration)
	if err != nil {
		return nil, err
	}

	acceptingNewPatients := true
	if request.AcceptingNewPatients != nil {
		acceptingNewPatients = *request.AcceptingNewPatients
	}

	provider := &models.Provider{
		UserID:               session.UserID,
		Specialty:            request.Specialty,
		LicenseNumber:        request.LicenseNumber,
		LicenseState:         request.LicenseState,
		LicenseExpiration:    licenseExpiration,
		NPI:                  request.NPI,
		Qualifications:       buildQualifications(request.Qualifications),
		PracticeAddress:      buildPracticeAddress(request.PracticeAddress),
		WorkingHours:         buildWorkingHours(request.WorkingHours),
		AcceptingNewPatients: acceptingNewPatients,
		Languages:            request.Languages,
		PatientIDs:           make([]string, 0),
	}
	provider.TouchForCreate(time.Now())

	providerID, err := uc.ProviderRepository.CreateProvider(ctx, provider)
	if err != nil {
		return nil, err
	}
	provider.ID = providerID

	return responses.NewProvider(provider, time.Now()), nil
}

func (uc *providerUsecase) FindAllProviders(ctx context.Context, request *requests.FindAllProviders) ([]*responses.Provider, error) {
	providers, err := uc.ProviderRepository.FindAll(ctx, request)
	if err != nil {
		return nil, err
	}
	return responses.NewProviders(providers, time.Now()), nil
}

func (uc *providerUsecase) FindMyProvider(ctx context.Context, session *models.Session) (*responses.Provider, error) {
	provider, err := uc.ProviderRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderProfileNotExist(nil)
	}
	return responses.NewProvider(provider, time.Now()), nil
}

func (uc *providerUsecase) FindProviderByID(ctx context.Context, providerID string) (*responses.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotExist(nil)
	}
	return responses.NewProvider(provider, time.Now()), nil
}

func (uc *providerUsecase) UpdateProvider(ctx context.Context, session *models.Session, providerID string, request *requests.UpdateProvider) (*responses.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotExist(nil)
	}

	caller := &access.Caller{UserID: session.UserID, Role: session.Role}
	err = access.CanUpdateProvider(caller, provider)
	if err != nil {
		return nil, err
	}

	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
	}
	if request.Specialty != nil {
		updateData["specialty"] = *request.Specialty
	}
	if request.LicenseNumber != nil && *request.LicenseNumber != provider.LicenseNumber {
		existingLicense, err := uc.ProviderRepository.FindByLicenseNumber(ctx, *request.LicenseNumber)
		if err != nil {
			return nil, err
		}
		if existingLicense != nil {
			return nil, exceptions.ErrLicenseNumberAlreadyExist(nil)
		}
		updateData["licenseNumber"] = *request.LicenseNumber
	}
	if request.LicenseState != nil {
		updateData["licenseState"] = *request.LicenseState
	}
	if request.LicenseExpiration != nil {
		licenseExpiration, err := utils.ParseDate(*request.LicenseExpiration)
		if err != nil {
			return nil, err
		}
		updateData["licenseExpiration"] = licenseExpiration
	}
	if request.NPI != nil {
		if *request.NPI == "" {
			// A cleared NPI must leave the document, not store "";
			// the sparse unique index counts an empty string as a value.
			updateData["npi"] = nil
		} else {
			updateData["npi"] = *request.NPI
		}
	}
	if request.Qualifications != nil {
		updateData["qualifications"] = buildQualifications(request.Qualifications)
	}
	if request.PracticeAddress != nil {
		updateData["practiceAddress"] = buildPracticeAddress(request.PracticeAddress)
	}
	if request.WorkingHours != nil {
		updateData["workingHours"] = buildWorkingHours(request.WorkingHours)
	}
	if request.AcceptingNewPatients != nil {
		updateData["acceptingNewPatients"] = *request.AcceptingNewPatients
	}
	if request.Languages != nil {
		updateData["languages"] = request.Languages
	}

	err = uc.ProviderRepository.UpdateFields(ctx, providerID, updateData)
	if err != nil {
		return nil, err
	}

	updated, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return responses.NewProvider(updated, time.Now()), nil
}

func (uc *providerUsecase) DeleteProvider(ctx context.Context, session *models.Session, providerID string) error {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return err
	}
	if provider == nil {
		return exceptions.ErrProviderNotExist(nil)
	}

	return uc.ProviderRepository.DeleteByID(ctx, providerID)
}

func (uc *providerUsecase) AssignPatient(ctx context.Context, session *models.Session, providerID string, request *requests.AssignPatient) (*responses.Provider, error) {
	provider, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, exceptions.ErrProviderNotExist(nil)
	}

	caller := &access.Caller{UserID: session.UserID, Role: session.Role}
	err = access.CanUpdateProvider(caller, provider)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	if provider.HasPatient(request.PatientID) {
		return nil, exceptions.ErrPatientAlreadyAssigned(nil)
	}

	err = uc.ProviderRepository.AddPatient(ctx, providerID, request.PatientID)
	if err != nil {
		return nil, err
	}

	updated, err := uc.ProviderRepository.FindByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return responses.NewProvider(updated, time.Now()), nil
}
