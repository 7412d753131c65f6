package patients

import (
	"context"
	"time"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/shared/access"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository PatientRepository
}

func NewPatientUsecase(patientMongoRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*responses.Patient, error) {
	existingPatient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existingPatient != nil {
		return nil, exceptions.ErrPatientProfileAlreadyExist(nil)
	}

	dateOfBirth, err := utils.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	bloodType := request.BloodType
	if bloodType == "" {
		bloodType = models.BloodTypeUnknown
	}

	patient := &models.Patient{
		UserID:            session.UserID,
		DateOfBirth:       dateOfBirth,
		Gender:            request.Gender,
		BloodType:         bloodType,
		Address:           buildAddress(request.Address),
		EmergencyContact:  buildEmergencyContact(request.EmergencyContact),
		PrimaryProviderID: request.PrimaryProviderID,
	}
	patient.Insurance, err = buildInsurance(request.Insurance)
	if err != nil {
		return nil, err
	}
	patient.Allergies = buildAllergies(request.Allergies)
	patient.Medications, err = buildMedications(request.Medications)
	if err != nil {
		return nil, err
	}
	patient.MedicalConditions, err = buildMedicalConditions(request.MedicalConditions)
	if err != nil {
		return nil, err
	}
	patient.TouchForCreate(time.Now())

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	return responses.NewPatient(patient, time.Now()), nil
}

func (uc *patientUsecase) FindAllPatients(ctx context.Context, session *models.Session) ([]*responses.Patient, error) {
	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewPatients(patients, time.Now()), nil
}

func (uc *patientUsecase) FindMyPatient(ctx context.Context, session *models.Session) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientProfileNotExist(nil)
	}
	return responses.NewPatient(patient, time.Now()), nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, session *models.Session, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	caller := &access.Caller{UserID: session.UserID, Role: session.Role}
	err = access.CanViewPatient(caller, patient)
	if err != nil {
		return nil, err
	}

	return responses.NewPatient(patient, time.Now()), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, session *models.Session, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	caller := &access.Caller{UserID: session.UserID, Role: session.Role}
	err = access.CanUpdatePatient(caller, patient)
	if err != nil {
		return nil, err
	}

	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
	}
	if request.DateOfBirth != nil {
		dateOfBirth, err := utils.ParseDate(*request.DateOfBirth)
		if err != nil {
			return nil, err
		}
		updateData["dateOfBirth"] = dateOfBirth
	}
	if request.Gender != nil {
		updateData["gender"] = *request.Gender
	}
	if request.BloodType != nil {
		updateData["bloodType"] = *request.BloodType
	}
	if request.Address != nil {
		updateData["address"] = buildAddress(request.Address)
	}
	if request.EmergencyContact != nil {
		updateData["emergencyContact"] = buildEmergencyContact(request.EmergencyContact)
	}
	if request.Insurance != nil {
		insurance, err := buildInsurance(request.Insurance)
		if err != nil {
			return nil, err
		}
		updateData["insurance"] = insurance
	}
	if request.Allergies != nil {
		updateData["allergies"] = buildAllergies(request.Allergies)
	}
	if request.Medications != nil {
		medications, err := buildMedications(request.Medications)
		if err != nil {
			return nil, err
		}
		updateData["medications"] = medications
	}
	if request.MedicalConditions != nil {
		conditions, err := buildMedicalConditions(request.MedicalConditions)
		if err != nil {
			return nil, err
		}
		updateData["medicalConditions"] = conditions
	}
	if request.PrimaryProviderID != nil {
		updateData["primaryProvider"] = *request.PrimaryProviderID
	}

	err = uc.PatientRepository.UpdateFields(ctx, patientID, updateData)
	if err != nil {
		return nil, err
	}

	updated, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return responses.NewPatient(updated, time.Now()), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, session *models.Session, patientID string) error {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotExist(nil)
	}

	return uc.PatientRepository.DeleteByID(ctx, patientID)
}
