package requests

type PatientAddress struct {
	Street  string `json:"street" validate:"omitempty,max=120"`
	City    string `json:"city" validate:"omitempty,max=60"`
	State   string `json:"state" validate:"omitempty,max=60"`
	ZipCode string `json:"zipCode" validate:"omitempty,max=12"`
	Country string `json:"country" validate:"omitempty,max=60"`
}

type PatientEmergencyContact struct {
	Name         string `json:"name" validate:"omitempty,max=100"`
	Relationship string `json:"relationship" validate:"omitempty,max=60"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
}

type PatientInsurance struct {
	Provider       string `json:"provider" validate:"omitempty,max=100"`
	PolicyNumber   string `json:"policyNumber" validate:"omitempty,max=60"`
	GroupNumber    string `json:"groupNumber" validate:"omitempty,max=60"`
	ExpirationDate string `json:"expirationDate" validate:"omitempty,datetime=2006-01-02"`
}

type PatientAllergy struct {
	Name     string `json:"name" validate:"required,max=100"`
	Severity string `json:"severity" validate:"omitempty,oneof=mild moderate severe"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

type PatientMedication struct {
	Name         string `json:"name" validate:"required,max=100"`
	Dosage       string `json:"dosage" validate:"omitempty,max=60"`
	Frequency    string `json:"frequency" validate:"omitempty,max=60"`
	PrescribedBy string `json:"prescribedBy" validate:"omitempty,max=100"`
	StartDate    string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate      string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive     *bool  `json:"isActive"`
}

type PatientMedicalCondition struct {
	Name          string `json:"name" validate:"required,max=100"`
	DiagnosedDate string `json:"diagnosedDate" validate:"omitempty,datetime=2006-01-02"`
	Status        string `json:"status" validate:"omitempty,oneof=active resolved chronic"`
	Notes         string `json:"notes" validate:"omitempty,max=500"`
}

type CreatePatient struct {
	DateOfBirth       string                    `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Gender            string                    `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	BloodType         string                    `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O- unknown"`
	Address           *PatientAddress           `json:"address" validate:"omitempty"`
	EmergencyContact  *PatientEmergencyContact  `json:"emergencyContact" validate:"omitempty"`
	Insurance         *PatientInsurance         `json:"insurance" validate:"omitempty"`
	Allergies         []PatientAllergy          `json:"allergies" validate:"omitempty,dive"`
	Medications       []PatientMedication       `json:"medications" validate:"omitempty,dive"`
	MedicalConditions []PatientMedicalCondition `json:"medicalConditions" validate:"omitempty,dive"`
	PrimaryProviderID string                    `json:"primaryProvider" validate:"omitempty"`
}

// UpdatePatient is a partial update. Nil pointers and nil slices leave
// the stored values untouched.
type UpdatePatient struct {
	DateOfBirth       *string                   `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Gender            *string                   `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	BloodType         *string                   `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O- unknown"`
	Address           *PatientAddress           `json:"address" validate:"omitempty"`
	EmergencyContact  *PatientEmergencyContact  `json:"emergencyContact" validate:"omitempty"`
	Insurance         *PatientInsurance         `json:"insurance" validate:"omitempty"`
	Allergies         []PatientAllergy          `json:"allergies" validate:"omitempty,dive"`
	Medications       []PatientMedication       `json:"medications" validate:"omitempty,dive"`
	MedicalConditions []PatientMedicalCondition `json:"medicalConditions" validate:"omitempty,dive"`
	PrimaryProviderID *string                   `json:"primaryProvider" validate:"omitempty"`
}
