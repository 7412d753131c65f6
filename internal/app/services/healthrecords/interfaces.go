package healthrecords

import (
	"context"
	"time"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type HealthRecordUsecase interface {
	CreateHealthRecord(ctx context.Context, session *models.Session, request *requests.CreateHealthRecord) (*models.HealthRecord, error)
	FindAllHealthRecords(ctx context.Context, session *models.Session, request *requests.FindAllHealthRecords) ([]models.HealthRecord, error)
	FindHealthRecordByID(ctx context.Context, session *models.Session, recordID string) (*models.HealthRecord, error)
	FindHealthRecordsByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.HealthRecord, error)
	UpdateHealthRecord(ctx context.Context, session *models.Session, recordID string, request *requests.UpdateHealthRecord) (*models.HealthRecord, error)
	DeleteHealthRecord(ctx context.Context, session *models.Session, recordID string) error
	UploadAttachment(ctx context.Context, session *models.Session, request *requests.UploadAttachment) (*responses.AttachmentUpload, error)
	DownloadAttachment(ctx context.Context, session *models.Session, recordID, fileName string) (*responses.AttachmentDownload, error)
}

// RecordQuery is the persistence-level filter for health record
// listings. Zero values mean no constraint.
type RecordQuery struct {
	PatientID  string
	ProviderID string
	RecordType string
	StartDate  *time.Time
	EndDate    *time.Time
}

type HealthRecordRepository interface {
	CreateHealthRecord(ctx context.Context, recordEntity *models.HealthRecord) (recordID string, err error)
	FindAll(ctx context.Context, query *RecordQuery) ([]models.HealthRecord, error)
	FindByID(ctx context.Context, recordID string) (*models.HealthRecord, error)
	UpdateFields(ctx context.Context, recordID string, updateData map[string]interface{}) error
	AppendAccessLog(ctx context.Context, recordID string, entry models.AccessLogEntry) error
	AppendAttachment(ctx context.Context, recordID string, attachment models.Attachment) error
}
