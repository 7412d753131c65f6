package providers

import (
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
)

func buildQualifications(request []requests.ProviderQualification) []models.Qualification {
	qualifications := make([]models.Qualification, 0, len(request))
	for _, item := range request {
		qualifications = append(qualifications, models.Qualification{
			Degree:      item.Degree,
			Institution: item.Institution,
			Year:        item.Year,
		})
	}
	return qualifications
}

func buildPracticeAddress(request *requests.ProviderPracticeAddress) *models.PracticeAddress {
	if request == nil {
		return nil
	}
	return &models.PracticeAddress{
		FacilityName: request.FacilityName,
		Street:       request.Street,
		City:         request.City,
		State:        request.State,
		ZipCode:      request.ZipCode,
		Country:      request.Country,
	}
}

func buildDailyHours(request *requests.ProviderDailyHours) *models.DailyHours {
	if request == nil {
		return nil
	}

	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}

	return &models.DailyHours{
		Start:       request.Start,
		End:         request.End,
		IsAvailable: isAvailable,
	}
}

func buildWorkingHours(request *requests.ProviderWorkingHours) *models.WorkingHours {
	if request == nil {
		return nil
	}
	return &models.WorkingHours{
		Monday:    buildDailyHours(request.Monday),
		Tuesday:   buildDailyHours(request.Tuesday),
		Wednesday: buildDailyHours(request.Wednesday),
		Thursday:  buildDailyHours(request.Thursday),
		Friday:    buildDailyHours(request.Friday),
		Saturday:  buildDailyHours(request.Saturday),
		Sunday:    buildDailyHours(request.Sunday),
	}
}
