package access

import (
	"testing"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestRecordListFilter(t *testing.T) {
	testCases := []struct {
		name               string
		caller             *Caller
		requestedPatientID string
		expectedFilter     *RecordFilter
		expectedStatusCode int
	}{
		{
			name:           "patient is pinned to own records",
			caller:         &Caller{UserID: "u1", Role: constvars.RoleTypePatient, PatientID: "p1"},
			expectedFilter: &RecordFilter{PatientID: "p1"},
		},
		{
			name:               "patient without profile gets not found",
			caller:             &Caller{UserID: "u1", Role: constvars.RoleTypePatient},
			expectedStatusCode: constvars.StatusNotFound,
		},
		{
			name:               "patient cannot widen filter with patientId param",
			caller:             &Caller{UserID: "u1", Role: constvars.RoleTypePatient, PatientID: "p1"},
			requestedPatientID: "p2",
			expectedFilter:     &RecordFilter{PatientID: "p1"},
		},
		{
			name:           "provider defaults to own records",
			caller:         &Caller{UserID: "u2", Role: constvars.RoleTypeProvider, ProviderID: "pr1"},
			expectedFilter: &RecordFilter{ProviderID: "pr1"},
		},
		{
			name:               "provider with patientId queries any patient",
			caller:             &Caller{UserID: "u2", Role: constvars.RoleTypeProvider, ProviderID: "pr1"},
			requestedPatientID: "p9",
			expectedFilter:     &RecordFilter{PatientID: "p9"},
		},
		{
			name:               "provider without profile gets not found",
			caller:             &Caller{UserID: "u2", Role: constvars.RoleTypeProvider},
			expectedStatusCode: constvars.StatusNotFound,
		},
		{
			name:           "admin sees everything",
			caller:         &Caller{UserID: "u3", Role: constvars.RoleTypeAdmin},
			expectedFilter: &RecordFilter{},
		},
		{
			name:               "admin can narrow by patientId",
			caller:             &Caller{UserID: "u3", Role: constvars.RoleTypeAdmin},
			requestedPatientID: "p5",
			expectedFilter:     &RecordFilter{PatientID: "p5"},
		},
		{
			name:               "unknown role is rejected",
			caller:             &Caller{UserID: "u4", Role: "superuser"},
			expectedStatusCode: constvars.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			filter, err := RecordListFilter(tc.caller, tc.requestedPatientID)
			if tc.expectedStatusCode != 0 {
				assert.Nil(t, filter)
				customErr, ok := err.(*exceptions.CustomError)
				assert.True(t, ok)
				assert.Equal(t, tc.expectedStatusCode, customErr.StatusCode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedFilter, filter)
		})
	}
}

func TestCanViewRecord(t *testing.T) {
	record := &models.HealthRecord{ID: "r1", PatientID: "p1", ProviderID: "pr1"}

	err := CanViewRecord(&Caller{UserID: "u1", Role: constvars.RoleTypePatient, PatientID: "p1"}, record)
	assert.NoError(t, err)

	err = CanViewRecord(&Caller{UserID: "u2", Role: constvars.RoleTypePatient, PatientID: "p2"}, record)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

	err = CanViewRecord(&Caller{UserID: "u3", Role: constvars.RoleTypeProvider, ProviderID: "pr9"}, record)
	assert.NoError(t, err)

	err = CanViewRecord(&Caller{UserID: "u4", Role: constvars.RoleTypeAdmin}, record)
	assert.NoError(t, err)
}

func TestResolveRecordProvider(t *testing.T) {
	providerID, err := ResolveRecordProvider(&Caller{Role: constvars.RoleTypeProvider, ProviderID: "pr1"}, "pr9")
	assert.NoError(t, err)
	assert.Equal(t, "pr1", providerID, "body provider hint must be ignored for providers")

	providerID, err = ResolveRecordProvider(&Caller{Role: constvars.RoleTypeAdmin}, "pr9")
	assert.NoError(t, err)
	assert.Equal(t, "pr9", providerID)

	_, err = ResolveRecordProvider(&Caller{Role: constvars.RoleTypeProvider}, "")
	assert.Error(t, err)

	_, err = ResolveRecordProvider(&Caller{Role: constvars.RoleTypeAdmin}, "")
	assert.Error(t, err)

	_, err = ResolveRecordProvider(&Caller{Role: constvars.RoleTypePatient, PatientID: "p1"}, "")
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
}

func TestCanUpdateRecord(t *testing.T) {
	record := &models.HealthRecord{ID: "r1", PatientID: "p1", ProviderID: "pr1"}

	assert.NoError(t, CanUpdateRecord(&Caller{Role: constvars.RoleTypeProvider, ProviderID: "pr1"}, record))
	assert.NoError(t, CanUpdateRecord(&Caller{Role: constvars.RoleTypeAdmin}, record))

	err := CanUpdateRecord(&Caller{Role: constvars.RoleTypeProvider, ProviderID: "pr2"}, record)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)

	err = CanUpdateRecord(&Caller{Role: constvars.RoleTypePatient, PatientID: "p1"}, record)
	assert.Error(t, err)
}

func TestPatientAccess(t *testing.T) {
	patient := &models.Patient{ID: "p1", UserID: "u1"}

	assert.NoError(t, CanViewPatient(&Caller{UserID: "u1", Role: constvars.RoleTypePatient, PatientID: "p1"}, patient))
	assert.NoError(t, CanViewPatient(&Caller{UserID: "u2", Role: constvars.RoleTypeProvider}, patient))
	assert.Error(t, CanViewPatient(&Caller{UserID: "u3", Role: constvars.RoleTypePatient, PatientID: "p3"}, patient))

	assert.NoError(t, CanUpdatePatient(&Caller{UserID: "u1", Role: constvars.RoleTypePatient}, patient))
	assert.NoError(t, CanUpdatePatient(&Caller{UserID: "u9", Role: constvars.RoleTypeAdmin}, patient))
	assert.Error(t, CanUpdatePatient(&Caller{UserID: "u2", Role: constvars.RoleTypeProvider}, patient))
}

func TestUserAccess(t *testing.T) {
	assert.NoError(t, CanViewUser(&Caller{UserID: "u1", Role: constvars.RoleTypePatient}, "u1"))
	assert.NoError(t, CanViewUser(&Caller{UserID: "u9", Role: constvars.RoleTypeAdmin}, "u1"))
	assert.Error(t, CanViewUser(&Caller{UserID: "u2", Role: constvars.RoleTypePatient}, "u1"))

	assert.NoError(t, CanUpdateUser(&Caller{UserID: "u1", Role: constvars.RoleTypeProvider}, "u1"))
	assert.Error(t, CanUpdateUser(&Caller{UserID: "u2", Role: constvars.RoleTypeProvider}, "u1"))
}
