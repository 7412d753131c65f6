package patients

import (
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/utils"
)

func buildAddress(request *requests.PatientAddress) *models.Address {
	if request == nil {
		return nil
	}
	return &models.Address{
		Street:  request.Street,
		City:    request.City,
		State:   request.State,
		ZipCode: request.ZipCode,
		Country: request.Country,
	}
}

func buildEmergencyContact(request *requests.PatientEmergencyContact) *models.EmergencyContact {
	if request == nil {
		return nil
	}
	return &models.EmergencyContact{
		Name:         request.Name,
		Relationship: request.Relationship,
		Phone:        request.Phone,
	}
}

func buildInsurance(request *requests.PatientInsurance) (*models.Insurance, error) {
	if request == nil {
		return nil, nil
	}
	expirationDate, err := utils.ParseDatePtr(request.ExpirationDate)
	if err != nil {
		return nil, err
	}
	return &models.Insurance{
		Provider:       request.Provider,
		PolicyNumber:   request.PolicyNumber,
		GroupNumber:    request.GroupNumber,
		ExpirationDate: expirationDate,
	}, nil
}

func buildAllergies(request []requests.PatientAllergy) []models.Allergy {
	allergies := make([]models.Allergy, 0, len(request))
	for _, item := range request {
		allergies = append(allergies, models.Allergy{
			Name:     item.Name,
			Severity: item.Severity,
			Notes:    item.Notes,
		})
	}
	return allergies
}

func buildMedications(request []requests.PatientMedication) ([]models.Medication, error) {
	medications := make([]models.Medication, 0, len(request))
	for _, item := range request {
		startDate, err := utils.ParseDatePtr(item.StartDate)
		if err != nil {
			return nil, err
		}
		endDate, err := utils.ParseDatePtr(item.EndDate)
		if err != nil {
			return nil, err
		}

		isActive := true
		if item.IsActive != nil {
			isActive = *item.IsActive
		}

		medications = append(medications, models.Medication{
			Name:         item.Name,
			Dosage:       item.Dosage,
			Frequency:    item.Frequency,
			PrescribedBy: item.PrescribedBy,
			StartDate:    startDate,
			EndDate:      endDate,
			IsActive:     isActive,
		})
	}
	return medications, nil
}

func buildMedicalConditions(request []requests.PatientMedicalCondition) ([]models.MedicalCondition, error) {
	conditions := make([]models.MedicalCondition, 0, len(request))
	for _, item := range request {
		diagnosedDate, err := utils.ParseDatePtr(item.DiagnosedDate)
		if err != nil {
			return nil, err
		}

		status := item.Status
		if status == "" {
			status = models.ConditionStatusActive
		}

		conditions = append(conditions, models.MedicalCondition{
			Name:          item.Name,
			DiagnosedDate: diagnosedDate,
			Status:        status,
			Notes:         item.Notes,
		})
	}
	return conditions, nil
}
