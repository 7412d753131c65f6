package models

import "time"

type Qualification struct {
	Degree      string `json:"degree,omitempty" bson:"degree,omitempty"`
	Institution string `json:"institution,omitempty" bson:"institution,omitempty"`
	Year        int    `json:"year,omitempty" bson:"year,omitempty"`
}

type PracticeAddress struct {
	FacilityName string `json:"facilityName,omitempty" bson:"facilityName,omitempty"`
	Street       string `json:"street,omitempty" bson:"street,omitempty"`
	City         string `json:"city,omitempty" bson:"city,omitempty"`
	State        string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode      string `json:"zipCode,omitempty" bson:"zipCode,omitempty"`
	Country      string `json:"country,omitempty" bson:"country,omitempty"`
}

type DailyHours struct {
	Start       string `json:"start,omitempty" bson:"start,omitempty"`
	End         string `json:"end,omitempty" bson:"end,omitempty"`
	IsAvailable bool   `json:"isAvailable" bson:"isAvailable"`
}

type WorkingHours struct {
	Monday    *DailyHours `json:"monday,omitempty" bson:"monday,omitempty"`
	Tuesday   *DailyHours `json:"tuesday,omitempty" bson:"tuesday,omitempty"`
	Wednesday *DailyHours `json:"wednesday,omitempty" bson:"wednesday,omitempty"`
	Thursday  *DailyHours `json:"thursday,omitempty" bson:"thursday,omitempty"`
	Friday    *DailyHours `json:"friday,omitempty" bson:"friday,omitempty"`
	Saturday  *DailyHours `json:"saturday,omitempty" bson:"saturday,omitempty"`
	Sunday    *DailyHours `json:"sunday,omitempty" bson:"sunday,omitempty"`
}

type Provider struct {
	ID                   string           `json:"id" bson:"_id,omitempty"`
	UserID               string           `json:"user" bson:"user"`
	Specialty            string           `json:"specialty" bson:"specialty"`
	LicenseNumber        string           `json:"licenseNumber" bson:"licenseNumber"`
	LicenseState         string           `json:"licenseState" bson:"licenseState"`
	LicenseExpiration    time.Time        `json:"licenseExpiration" bson:"licenseExpiration"`
	NPI                  string           `json:"npi,omitempty" bson:"npi,omitempty"`
	Qualifications       []Qualification  `json:"qualifications,omitempty" bson:"qualifications,omitempty"`
	PracticeAddress      *PracticeAddress `json:"practiceAddress,omitempty" bson:"practiceAddress,omitempty"`
	WorkingHours         *WorkingHours    `json:"workingHours,omitempty" bson:"workingHours,omitempty"`
	AcceptingNewPatients bool             `json:"acceptingNewPatients" bson:"acceptingNewPatients"`
	Languages            []string         `json:"languages,omitempty" bson:"languages,omitempty"`
	PatientIDs           []string         `json:"patients" bson:"patients"`
	TimeModel            `bson:",inline"`
}

// IsLicenseValid is computed against the clock at read time, never stored.
func (p *Provider) IsLicenseValid(now time.Time) bool {
	return p.LicenseExpiration.After(now)
}

func (p *Provider) HasPatient(patientID string) bool {
	for _, id := range p.PatientIDs {
		if id == patientID {
			return true
		}
	}
	return false
}
