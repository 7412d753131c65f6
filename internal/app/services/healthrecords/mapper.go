package healthrecords

import (
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/utils"
)

func buildVitals(request *requests.RecordVitals) *models.Vitals {
	if request == nil {
		return nil
	}
	return &models.Vitals{
		BloodPressureSystolic:  request.BloodPressureSystolic,
		BloodPressureDiastolic: request.BloodPressureDiastolic,
		HeartRate:              request.HeartRate,
		RespiratoryRate:        request.RespiratoryRate,
		Temperature:            request.Temperature,
		OxygenSaturation:       request.OxygenSaturation,
		Height:                 request.Height,
		Weight:                 request.Weight,
	}
}

func buildLabResults(request []requests.RecordLabResult) []models.LabResult {
	labResults := make([]models.LabResult, 0, len(request))
	for _, item := range request {
		isAbnormal := false
		if item.IsAbnormal != nil {
			isAbnormal = *item.IsAbnormal
		}
		labResults = append(labResults, models.LabResult{
			TestName:       item.TestName,
			Value:          item.Value,
			Unit:           item.Unit,
			ReferenceRange: item.ReferenceRange,
			IsAbnormal:     isAbnormal,
		})
	}
	return labResults
}

func buildDiagnosis(request []requests.RecordDiagnosis) []models.Diagnosis {
	diagnosis := make([]models.Diagnosis, 0, len(request))
	for _, item := range request {
		isPrimary := false
		if item.IsPrimary != nil {
			isPrimary = *item.IsPrimary
		}
		diagnosis = append(diagnosis, models.Diagnosis{
			Code:        item.Code,
			Description: item.Description,
			IsPrimary:   isPrimary,
		})
	}
	return diagnosis
}

func buildTreatment(request *requests.RecordTreatment) *models.Treatment {
	if request == nil {
		return nil
	}
	return &models.Treatment{
		Medications:  request.Medications,
		Procedures:   request.Procedures,
		Instructions: request.Instructions,
	}
}

func buildFollowUp(request *requests.RecordFollowUp) (*models.FollowUp, error) {
	if request == nil {
		return nil, nil
	}

	date, err := utils.ParseDatePtr(request.Date)
	if err != nil {
		return nil, err
	}

	required := false
	if request.Required != nil {
		required = *request.Required
	}

	return &models.FollowUp{
		Required: required,
		Date:     date,
		Notes:    request.Notes,
	}, nil
}
