package responses

import (
	"time"

	"medrecord-service/internal/app/models"
)

// Patient wraps the stored document with the derived age. Age is never
// persisted; it is computed against the clock at response time.
type Patient struct {
	models.Patient
	Age int `json:"age"`
}

func NewPatient(patient *models.Patient, now time.Time) *Patient {
	return &Patient{
		Patient: *patient,
		Age:     patient.Age(now),
	}
}

func NewPatients(patients []models.Patient, now time.Time) []*Patient {
	result := make([]*Patient, 0, len(patients))
	for i := range patients {
		result = append(result, NewPatient(&patients[i], now))
	}
	return result
}
