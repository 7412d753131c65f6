package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// User messages
	UserListSuccess   = "users retrieved successfully"
	UserGetSuccess    = "user retrieved successfully"
	UserUpdateSuccess = "user updated successfully"
	UserDeleteSuccess = "user deleted successfully"

	// Patient messages
	PatientCreateSuccess = "patient profile created successfully"
	PatientListSuccess   = "patients retrieved successfully"
	PatientGetSuccess    = "patient retrieved successfully"
	PatientUpdateSuccess = "patient updated successfully"
	PatientDeleteSuccess = "patient profile deleted successfully"

	// Provider messages
	ProviderCreateSuccess = "provider profile created successfully"
	ProviderListSuccess   = "providers retrieved successfully"
	ProviderGetSuccess    = "provider retrieved successfully"
	ProviderUpdateSuccess = "provider updated successfully"
	ProviderDeleteSuccess = "provider profile deleted successfully"
	ProviderAssignSuccess = "patient assigned to provider successfully"

	// Health record messages
	HealthRecordCreateSuccess     = "health record created successfully"
	HealthRecordListSuccess       = "health records retrieved successfully"
	HealthRecordGetSuccess        = "health record retrieved successfully"
	HealthRecordUpdateSuccess     = "health record updated successfully"
	HealthRecordDeleteSuccess     = "health record marked as entered in error"
	HealthRecordAttachmentSuccess         = "attachment uploaded successfully"
	HealthRecordAttachmentDownloadSuccess = "attachment download link generated successfully"
)
