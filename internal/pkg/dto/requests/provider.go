package requests

type ProviderQualification struct {
	Degree      string `json:"degree" validate:"omitempty,max=60"`
	Institution string `json:"institution" validate:"omitempty,max=120"`
	Year        int    `json:"year" validate:"omitempty,min=1900,max=2100"`
}

type ProviderPracticeAddress struct {
	FacilityName string `json:"facilityName" validate:"omitempty,max=120"`
	Street       string `json:"street" validate:"omitempty,max=120"`
	City         string `json:"city" validate:"omitempty,max=60"`
	State        string `json:"state" validate:"omitempty,max=60"`
	ZipCode      string `json:"zipCode" validate:"omitempty,max=12"`
	Country      string `json:"country" validate:"omitempty,max=60"`
}

type ProviderDailyHours struct {
	Start       string `json:"start" validate:"omitempty,datetime=15:04"`
	End         string `json:"end" validate:"omitempty,datetime=15:04"`
	IsAvailable *bool  `json:"isAvailable"`
}

type ProviderWorkingHours struct {
	Monday    *ProviderDailyHours `json:"monday" validate:"omitempty"`
	Tuesday   *ProviderDailyHours `json:"tuesday" validate:"omitempty"`
	Wednesday *ProviderDailyHours `json:"wednesday" validate:"omitempty"`
	Thursday  *ProviderDailyHours `json:"thursday" validate:"omitempty"`
	Friday    *ProviderDailyHours `json:"friday" validate:"omitempty"`
	Saturday  *ProviderDailyHours `json:"saturday" validate:"omitempty"`
	Sunday    *ProviderDailyHours `json:"sunday" validate:"omitempty"`
}

type CreateProvider struct {
	Specialty            string                   `json:"specialty" validate:"required,max=100"`
	LicenseNumber        string                   `json:"licenseNumber" validate:"required,max=60"`
	LicenseState         string                   `json:"licenseState" validate:"required,max=60"`
	LicenseExpiration    string                   `json:"licenseExpiration" validate:"required,datetime=2006-01-02"`
	NPI                  string                   `json:"npi" validate:"omitempty,len=10,numeric"`
	Qualifications       []ProviderQualification  `json:"qualifications" validate:"omitempty,dive"`
	PracticeAddress      *ProviderPracticeAddress `json:"practiceAddress" validate:"omitempty"`
	WorkingHours         *ProviderWorkingHours    `json:"workingHours" validate:"omitempty"`
	AcceptingNewPatients *bool                    `json:"acceptingNewPatients"`
	Languages            []string                 `json:"languages" validate:"omitempty,dive,max=40"`
}

// UpdateProvider is a partial update. Nil pointers and nil slices leave
// the stored values untouched.
type UpdateProvider struct {
	Specialty            *string                  `json:"specialty" validate:"omitempty,max=100"`
	LicenseNumber        *string                  `json:"licenseNumber" validate:"omitempty,max=60"`
	LicenseState         *string                  `json:"licenseState" validate:"omitempty,max=60"`
	LicenseExpiration    *string                  `json:"licenseExpiration" validate:"omitempty,datetime=2006-01-02"`
	NPI                  *string                  `json:"npi" validate:"omitempty,len=10,numeric"`
	Qualifications       []ProviderQualification  `json:"qualifications" validate:"omitempty,dive"`
	PracticeAddress      *ProviderPracticeAddress `json:"practiceAddress" validate:"omitempty"`
	WorkingHours         *ProviderWorkingHours    `json:"workingHours" validate:"omitempty"`
	AcceptingNewPatients *bool                    `json:"acceptingNewPatients"`
	Languages            []string                 `json:"languages" validate:"omitempty,dive,max=40"`
}

type AssignPatient struct {
	PatientID string `json:"patientId" validate:"required"`
}

// FindAllProviders carries the public listing filters.
type FindAllProviders struct {
	Specialty            string
	AcceptingNewPatients *bool
}
