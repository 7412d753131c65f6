package constvars

type ContextKey string

const (
	ResourceUsers         = "users"
	ResourceAuth          = "auth"
	ResourcePatients      = "patients"
	ResourceProviders     = "providers"
	ResourceHealthRecords = "health-records"
)

const (
	RoleTypePatient  = "patient"
	RoleTypeProvider = "provider"
	RoleTypeAdmin    = "admin"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDRC_SVC_"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionPatients      = "patients"
	MongoCollectionProviders     = "providers"
	MongoCollectionHealthRecords = "health_records"
)

const (
	AttachmentFilePrefix = "record_attachment"
)
