package requests

type RecordVitals struct {
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic" validate:"omitempty,min=0,max=400"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic" validate:"omitempty,min=0,max=300"`
	HeartRate              *int     `json:"heartRate" validate:"omitempty,min=0,max=400"`
	RespiratoryRate        *int     `json:"respiratoryRate" validate:"omitempty,min=0,max=120"`
	Temperature            *float64 `json:"temperature" validate:"omitempty,min=20,max=45"`
	OxygenSaturation       *float64 `json:"oxygenSaturation" validate:"omitempty,min=0,max=100"`
	Height                 *float64 `json:"height" validate:"omitempty,min=0"`
	Weight                 *float64 `json:"weight" validate:"omitempty,min=0"`
}

type RecordLabResult struct {
	TestName       string `json:"testName" validate:"required,max=120"`
	Value          string `json:"value" validate:"omitempty,max=120"`
	Unit           string `json:"unit" validate:"omitempty,max=40"`
	ReferenceRange string `json:"referenceRange" validate:"omitempty,max=120"`
	IsAbnormal     *bool  `json:"isAbnormal"`
}

type RecordDiagnosis struct {
	Code        string `json:"code" validate:"omitempty,max=20"`
	Description string `json:"description" validate:"omitempty,max=500"`
	IsPrimary   *bool  `json:"isPrimary"`
}

type RecordTreatment struct {
	Medications  []string `json:"medications" validate:"omitempty,dive,max=200"`
	Procedures   []string `json:"procedures" validate:"omitempty,dive,max=200"`
	Instructions string   `json:"instructions" validate:"omitempty,max=2000"`
}

type RecordFollowUp struct {
	Required *bool  `json:"required"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes    string `json:"notes" validate:"omitempty,max=500"`
}

type CreateHealthRecord struct {
	PatientID      string            `json:"patient" validate:"required"`
	ProviderID     string            `json:"provider" validate:"omitempty"`
	RecordType     string            `json:"recordType" validate:"required,oneof=consultation lab_result prescription imaging procedure vaccination vital_signs note referral discharge_summary"`
	Title          string            `json:"title" validate:"required,max=200"`
	Description    string            `json:"description" validate:"omitempty,max=5000"`
	VisitDate      string            `json:"visitDate" validate:"omitempty,datetime=2006-01-02"`
	Vitals         *RecordVitals     `json:"vitals" validate:"omitempty"`
	LabResults     []RecordLabResult `json:"labResults" validate:"omitempty,dive"`
	Diagnosis      []RecordDiagnosis `json:"diagnosis" validate:"omitempty,dive"`
	Treatment      *RecordTreatment  `json:"treatment" validate:"omitempty"`
	FollowUp       *RecordFollowUp   `json:"followUp" validate:"omitempty"`
	IsConfidential *bool             `json:"isConfidential"`
	Status         string            `json:"status" validate:"omitempty,oneof=draft final amended entered_in_error"`
}

// UpdateHealthRecord is a partial update. Status transitions follow the
// amendment rule handled in the use case, not here.
type UpdateHealthRecord struct {
	RecordType     *string           `json:"recordType" validate:"omitempty,oneof=consultation lab_result prescription imaging procedure vaccination vital_signs note referral discharge_summary"`
	Title          *string           `json:"title" validate:"omitempty,max=200"`
	Description    *string           `json:"description" validate:"omitempty,max=5000"`
	VisitDate      *string           `json:"visitDate" validate:"omitempty,datetime=2006-01-02"`
	Vitals         *RecordVitals     `json:"vitals" validate:"omitempty"`
	LabResults     []RecordLabResult `json:"labResults" validate:"omitempty,dive"`
	Diagnosis      []RecordDiagnosis `json:"diagnosis" validate:"omitempty,dive"`
	Treatment      *RecordTreatment  `json:"treatment" validate:"omitempty"`
	FollowUp       *RecordFollowUp   `json:"followUp" validate:"omitempty"`
	IsConfidential *bool             `json:"isConfidential"`
	Status         *string           `json:"status" validate:"omitempty,oneof=draft final amended entered_in_error"`
}

// FindAllHealthRecords carries the listing filters. PatientID is only
// honored for provider and admin callers.
type FindAllHealthRecords struct {
	PatientID  string `validate:"omitempty"`
	RecordType string `validate:"omitempty,oneof=consultation lab_result prescription imaging procedure vaccination vital_signs note referral discharge_summary"`
	StartDate  string `validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `validate:"omitempty,datetime=2006-01-02"`
}
