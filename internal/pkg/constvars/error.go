package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of: %s",
	"datetime": "must match the %s format",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
	"eqfield":  true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"

	ErrClientPatientProfileExists    = "patient profile already exists for this user"
	ErrClientPatientProfileNotFound  = "patient profile not found"
	ErrClientPatientNotFound         = "patient not found"
	ErrClientProviderProfileExists   = "provider profile already exists for this user"
	ErrClientProviderProfileNotFound = "provider profile not found"
	ErrClientProviderProfileRequired = "provider profile required to create health records"
	ErrClientProviderNotFound        = "provider not found"
	ErrClientLicenseNumberExists     = "license number already registered"
	ErrClientPatientAlreadyAssigned  = "patient already assigned to this provider"
	ErrClientHealthRecordNotFound    = "health record not found"
	ErrClientRecordViewForbidden     = "not authorized to view this record"
	ErrClientRecordUpdateForbidden   = "not authorized to update this record"
	ErrClientUserNotFound            = "user not found"
	ErrClientUserViewForbidden       = "not authorized to view this user"
	ErrClientUserUpdateForbidden     = "not authorized to update this user"
	ErrClientAttachmentTooLarge      = "attachment exceeds the maximum upload size"
)

// Error messages for developers
const (
	ErrDevInvalidInput         = "invalid input"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevCannotParseDate      = "cannot parse date"
	ErrDevValidationFailed     = "validation failed"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevInvalidRoleType      = "invalid role type"
	ErrDevRoleTypeDoesntMatch  = "role type doesn't match required roles"
	ErrDevOwnershipCheckFailed = "caller does not own the target resource"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenExpired          = "token expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"

	// Domain messages
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevPasswordsDoNotMatch       = "passwords do not match"
	ErrDevUserNotExists             = "user does not exist"
	ErrDevPatientProfileExists      = "patient profile already exists for user"
	ErrDevPatientNotExists          = "patient does not exist"
	ErrDevProviderProfileExists     = "provider profile already exists for user"
	ErrDevProviderNotExists         = "provider does not exist"
	ErrDevLicenseNumberExists       = "provider license number already exists"
	ErrDevNpiExists                 = "provider npi already exists"
	ErrDevPatientAlreadyAssigned    = "patient already in provider assignment list"
	ErrDevHealthRecordNotExists     = "health record does not exist"
	ErrDevHealthRecordNotOwned      = "health record belongs to another provider"
	ErrDevPatientRecordAccessDenied = "patient may only access own records"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Redis messages
	ErrDevRedisStoreSession = "failed to store session data into redis"
	ErrDevRedisGetData      = "failed to get data from redis"
	ErrDevRedisGetNoData    = "no data found in redis for key %s"
	ErrDevRedisSetData      = "failed to set data into redis"
	ErrDevRedisDeleteData   = "failed to delete data from redis"

	// Minio messages
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "failed to presign object URL in bucket %s"

	// Server messages
	ErrDevServerProcess          = "internal server error"
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevCannotParseMultipart   = "cannot parse multipart form"
	ErrDevURLParamIDValidation   = "URL param %s failed validation"
)
