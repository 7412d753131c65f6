package models

import "time"

const (
	RecordTypeConsultation = "consultation"
	RecordTypeLabResult    = "lab_result"
	RecordTypePrescription = "prescription"
	RecordTypeImaging      = "imaging"
	RecordTypeProcedure    = "procedure"
	RecordTypeVaccination  = "vaccination"
	RecordTypeVitalSigns   = "vital_signs"
	RecordTypeNote         = "note"
	RecordTypeReferral     = "referral"
	RecordTypeDischarge    = "discharge_summary"

	RecordStatusDraft          = "draft"
	RecordStatusFinal          = "final"
	RecordStatusAmended        = "amended"
	RecordStatusEnteredInError = "entered_in_error"

	AccessActionView     = "view"
	AccessActionEdit     = "edit"
	AccessActionDownload = "download"
)

type Vitals struct {
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic,omitempty" bson:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic,omitempty" bson:"bloodPressureDiastolic,omitempty"`
	HeartRate              *int     `json:"heartRate,omitempty" bson:"heartRate,omitempty"`
	RespiratoryRate        *int     `json:"respiratoryRate,omitempty" bson:"respiratoryRate,omitempty"`
	Temperature            *float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	OxygenSaturation       *float64 `json:"oxygenSaturation,omitempty" bson:"oxygenSaturation,omitempty"`
	Height                 *float64 `json:"height,omitempty" bson:"height,omitempty"`
	Weight                 *float64 `json:"weight,omitempty" bson:"weight,omitempty"`
}

type LabResult struct {
	TestName       string `json:"testName" bson:"testName"`
	Value          string `json:"value,omitempty" bson:"value,omitempty"`
	Unit           string `json:"unit,omitempty" bson:"unit,omitempty"`
	ReferenceRange string `json:"referenceRange,omitempty" bson:"referenceRange,omitempty"`
	IsAbnormal     bool   `json:"isAbnormal" bson:"isAbnormal"`
}

type Diagnosis struct {
	Code        string `json:"code,omitempty" bson:"code,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	IsPrimary   bool   `json:"isPrimary" bson:"isPrimary"`
}

type Treatment struct {
	Medications  []string `json:"medications,omitempty" bson:"medications,omitempty"`
	Procedures   []string `json:"procedures,omitempty" bson:"procedures,omitempty"`
	Instructions string   `json:"instructions,omitempty" bson:"instructions,omitempty"`
}

type FollowUp struct {
	Required bool       `json:"required" bson:"required"`
	Date     *time.Time `json:"date,omitempty" bson:"date,omitempty"`
	Notes    string     `json:"notes,omitempty" bson:"notes,omitempty"`
}

type Attachment struct {
	FileName   string    `json:"fileName" bson:"fileName"`
	FileType   string    `json:"fileType,omitempty" bson:"fileType,omitempty"`
	URL        string    `json:"url" bson:"url"`
	UploadedAt time.Time `json:"uploadedAt" bson:"uploadedAt"`
}

type AccessLogEntry struct {
	UserID     string    `json:"accessedBy" bson:"accessedBy"`
	AccessedAt time.Time `json:"accessedAt" bson:"accessedAt"`
	Action     string    `json:"action" bson:"action"`
}

type HealthRecord struct {
	ID             string           `json:"id" bson:"_id,omitempty"`
	PatientID      string           `json:"patient" bson:"patient"`
	ProviderID     string           `json:"provider" bson:"provider"`
	RecordType     string           `json:"recordType" bson:"recordType"`
	Title          string           `json:"title" bson:"title"`
	Description    string           `json:"description,omitempty" bson:"description,omitempty"`
	VisitDate      time.Time        `json:"visitDate" bson:"visitDate"`
	Vitals         *Vitals          `json:"vitals,omitempty" bson:"vitals,omitempty"`
	LabResults     []LabResult      `json:"labResults,omitempty" bson:"labResults,omitempty"`
	Diagnosis      []Diagnosis      `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Treatment      *Treatment       `json:"treatment,omitempty" bson:"treatment,omitempty"`
	FollowUp       *FollowUp        `json:"followUp,omitempty" bson:"followUp,omitempty"`
	Attachments    []Attachment     `json:"attachments,omitempty" bson:"attachments,omitempty"`
	IsConfidential bool             `json:"isConfidential" bson:"isConfidential"`
	Status         string           `json:"status" bson:"status"`
	AccessLog      []AccessLogEntry `json:"accessLog,omitempty" bson:"accessLog,omitempty"`
	TimeModel      `bson:",inline"`
}
