package models

import "time"

const (
	BloodTypeUnknown = "unknown"

	AllergySeverityMild     = "mild"
	AllergySeverityModerate = "moderate"
	AllergySeveritySevere   = "severe"

	ConditionStatusActive   = "active"
	ConditionStatusResolved = "resolved"
	ConditionStatusChronic  = "chronic"
)

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Relationship string `json:"relationship,omitempty" bson:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
}

type Insurance struct {
	Provider       string     `json:"provider,omitempty" bson:"provider,omitempty"`
	PolicyNumber   string     `json:"policyNumber,omitempty" bson:"policyNumber,omitempty"`
	GroupNumber    string     `json:"groupNumber,omitempty" bson:"groupNumber,omitempty"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty" bson:"expirationDate,omitempty"`
}

type Allergy struct {
	Name     string `json:"name" bson:"name"`
	Severity string `json:"severity,omitempty" bson:"severity,omitempty"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Medication struct {
	Name         string     `json:"name" bson:"name"`
	Dosage       string     `json:"dosage,omitempty" bson:"dosage,omitempty"`
	Frequency    string     `json:"frequency,omitempty" bson:"frequency,omitempty"`
	PrescribedBy string     `json:"prescribedBy,omitempty" bson:"prescribedBy,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
}

type MedicalCondition struct {
	Name          string     `json:"name" bson:"name"`
	DiagnosedDate *time.Time `json:"diagnosedDate,omitempty" bson:"diagnosedDate,omitempty"`
	Status        string     `json:"status,omitempty" bson:"status,omitempty"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Patient struct {
	ID                string             `json:"id" bson:"_id,omitempty"`
	UserID            string             `json:"user" bson:"user"`
	DateOfBirth       time.Time          `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender            string             `json:"gender,omitempty" bson:"gender,omitempty"`
	BloodType         string             `json:"bloodType" bson:"bloodType"`
	Address           *Address           `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact  *EmergencyContact  `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	Insurance         *Insurance         `json:"insurance,omitempty" bson:"insurance,omitempty"`
	Allergies         []Allergy          `json:"allergies,omitempty" bson:"allergies,omitempty"`
	Medications       []Medication       `json:"medications,omitempty" bson:"medications,omitempty"`
	MedicalConditions []MedicalCondition `json:"medicalConditions,omitempty" bson:"medicalConditions,omitempty"`
	PrimaryProviderID string             `json:"primaryProvider,omitempty" bson:"primaryProvider,omitempty"`
	TimeModel         `bson:",inline"`
}

// Age is computed from the date of birth at read time, never stored.
func (p *Patient) Age(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		age--
	}
	return age
}
