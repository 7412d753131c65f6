package config

type InternalConfig struct {
	App   App
	JWT   AppJWT
	Admin AppAdmin
	Minio AppMinio
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

// AppAdmin describes the seeded admin account. Registration never
// produces an admin; the seed is the only source.
type AppAdmin struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AppMinio struct {
	BucketName                         string
	AttachmentMaxUploadSizeInMB        int
	PreSignedUrlObjectExpiryTimeInHour int
}
