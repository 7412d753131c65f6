package access

import (
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
)

// Caller is the resolved identity of the requester: the user behind the
// session plus the Patient/Provider profile tied to that user, when one
// exists. Profile IDs are empty when the user has no such profile.
type Caller struct {
	UserID     string
	Role       string
	PatientID  string
	ProviderID string
}

// RecordFilter narrows a health record list query. Empty fields mean no
// constraint on that field.
type RecordFilter struct {
	PatientID  string
	ProviderID string
}

// RecordListFilter returns the filter a caller's role imposes on the
// health record listing. A patient is pinned to their own records and a
// provider without an explicit patientId is pinned to records they
// created. A provider who supplies patientId may query any patient's
// records; ownership is deliberately not checked.
func RecordListFilter(caller *Caller, requestedPatientID string) (*RecordFilter, error) {
	switch caller.Role {
	case constvars.RoleTypePatient:
		if caller.PatientID == "" {
			return nil, exceptions.ErrPatientProfileNotExist(nil)
		}
		return &RecordFilter{PatientID: caller.PatientID}, nil
	case constvars.RoleTypeProvider:
		if requestedPatientID != "" {
			return &RecordFilter{PatientID: requestedPatientID}, nil
		}
		if caller.ProviderID == "" {
			return nil, exceptions.ErrProviderProfileNotExist(nil)
		}
		return &RecordFilter{ProviderID: caller.ProviderID}, nil
	case constvars.RoleTypeAdmin:
		return &RecordFilter{PatientID: requestedPatientID}, nil
	default:
		return nil, exceptions.ErrInvalidRoleType(nil)
	}
}

// CanViewRecord gates single-record reads. Only patient callers are
// restricted: the record must belong to their own Patient profile.
func CanViewRecord(caller *Caller, record *models.HealthRecord) error {
	if caller.Role == constvars.RoleTypePatient && record.PatientID != caller.PatientID {
		return exceptions.ErrHealthRecordViewForbidden(nil)
	}
	return nil
}

// ResolveRecordProvider decides which provider a new record is created
// under. A provider always creates under their own profile, whatever
// the body says. An admin must name a provider explicitly.
func ResolveRecordProvider(caller *Caller, bodyProviderID string) (string, error) {
	switch caller.Role {
	case constvars.RoleTypeProvider:
		if caller.ProviderID == "" {
			return "", exceptions.ErrProviderProfileRequired(nil)
		}
		return caller.ProviderID, nil
	case constvars.RoleTypeAdmin:
		if bodyProviderID == "" {
			return "", exceptions.ErrProviderProfileRequired(nil)
		}
		return bodyProviderID, nil
	default:
		return "", exceptions.ErrNotMatchRoleType(nil)
	}
}

// CanUpdateRecord allows admins to update any record and providers to
// update only records they created.
func CanUpdateRecord(caller *Caller, record *models.HealthRecord) error {
	switch caller.Role {
	case constvars.RoleTypeAdmin:
		return nil
	case constvars.RoleTypeProvider:
		if caller.ProviderID == "" || record.ProviderID != caller.ProviderID {
			return exceptions.ErrHealthRecordUpdateForbidden(nil)
		}
		return nil
	default:
		return exceptions.ErrNotMatchRoleType(nil)
	}
}

// CanViewPatient restricts patient callers to their own profile. Other
// authenticated roles may read any patient.
func CanViewPatient(caller *Caller, patient *models.Patient) error {
	if caller.Role == constvars.RoleTypePatient && patient.UserID != caller.UserID {
		return exceptions.ErrPatientViewForbidden(nil)
	}
	return nil
}

// CanUpdatePatient allows the owning user or an admin.
func CanUpdatePatient(caller *Caller, patient *models.Patient) error {
	if caller.Role == constvars.RoleTypeAdmin || patient.UserID == caller.UserID {
		return nil
	}
	return exceptions.ErrPatientUpdateForbidden(nil)
}

// CanUpdateProvider allows the owning user or an admin.
func CanUpdateProvider(caller *Caller, provider *models.Provider) error {
	if caller.Role == constvars.RoleTypeAdmin || provider.UserID == caller.UserID {
		return nil
	}
	return exceptions.ErrProviderUpdateForbidden(nil)
}

// CanViewUser allows self or admin.
func CanViewUser(caller *Caller, targetUserID string) error {
	if caller.Role == constvars.RoleTypeAdmin || caller.UserID == targetUserID {
		return nil
	}
	return exceptions.ErrUserViewForbidden(nil)
}

// CanUpdateUser allows self or admin.
func CanUpdateUser(caller *Caller, targetUserID string) error {
	if caller.Role == constvars.RoleTypeAdmin || caller.UserID == targetUserID {
		return nil
	}
	return exceptions.ErrUserUpdateForbidden(nil)
}
