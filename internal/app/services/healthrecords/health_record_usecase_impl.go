package healthrecords

import (
	"context"
	"path/filepath"
	"time"

	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/patients"
	"medrecord-service/internal/app/services/providers"
	"medrecord-service/internal/app/services/shared/access"
	"medrecord-service/internal/app/services/shared/storage"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
)

type healthRecordUsecase struct {
	HealthRecordRepository HealthRecordRepository
	PatientRepository      patients.PatientRepository
	ProviderRepository     providers.ProviderRepository
	Storage                storage.Storage
	InternalConfig         *config.InternalConfig
}

func NewHealthRecordUsecase(
	healthRecordMongoRepository HealthRecordRepository,
	patientMongoRepository patients.PatientRepository,
	providerMongoRepository providers.ProviderRepository,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		HealthRecordRepository: healthRecordMongoRepository,
		PatientRepository:      patientMongoRepository,
		ProviderRepository:     providerMongoRepository,
		Storage:                minioStorage,
		InternalConfig:         internalConfig,
	}
}

// resolveCaller joins the session identity with the caller's own
// Patient/Provider profile. Profiles are looked up per request so a
// profile created after login is visible immediately.
func (uc *healthRecordUsecase) resolveCaller(ctx context.Context, session *models.Session) (*access.Caller, error) {
	caller := &access.Caller{UserID: session.UserID, Role: session.Role}

	switch session.Role {
	case constvars.RoleTypePatient:
		patient, err := uc.PatientRepository.FindByUserID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			caller.PatientID = patient.ID
		}
	case constvars.RoleTypeProvider:
		provider, err := uc.ProviderRepository.FindByUserID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		if provider != nil {
			caller.ProviderID = provider.ID
		}
	}

	return caller, nil
}

func (uc *healthRecordUsecase) CreateHealthRecord(ctx context.Context, session *models.Session, request *requests.CreateHealthRecord) (*models.HealthRecord, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	providerID, err := access.ResolveRecordProvider(caller, request.ProviderID)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	now := time.Now()

	visitDate := now
	if request.VisitDate != "" {
		visitDate, err = utils.ParseDate(request.VisitDate)
		if err != nil {
			return nil, err
		}
	}

	status := request.Status
	if status == "" {
		status = models.RecordStatusFinal
	}

	isConfidential := false
	if request.IsConfidential != nil {
		isConfidential = *request.IsConfidential
	}

	record := &models.HealthRecord{
		PatientID:      request.PatientID,
		ProviderID:     providerID,
		RecordType:     request.RecordType,
		Title:          request.Title,
		Description:    request.Description,
		VisitDate:      visitDate,
		Vitals:         buildVitals(request.Vitals),
		LabResults:     buildLabResults(request.LabResults),
		Diagnosis:      buildDiagnosis(request.Diagnosis),
		Treatment:      buildTreatment(request.Treatment),
		IsConfidential: isConfidential,
		Status:         status,
		AccessLog:      make([]models.AccessLogEntry, 0),
	}
	record.FollowUp, err = buildFollowUp(request.FollowUp)
	if err != nil {
		return nil, err
	}
	record.TouchForCreate(now)

	recordID, err := uc.HealthRecordRepository.CreateHealthRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	record.ID = recordID

	return record, nil
}

func (uc *healthRecordUsecase) FindAllHealthRecords(ctx context.Context, session *models.Session, request *requests.FindAllHealthRecords) ([]models.HealthRecord, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	filter, err := access.RecordListFilter(caller, request.PatientID)
	if err != nil {
		return nil, err
	}

	query := &RecordQuery{
		PatientID:  filter.PatientID,
		ProviderID: filter.ProviderID,
		RecordType: request.RecordType,
	}
	query.StartDate, err = utils.ParseDatePtr(request.StartDate)
	if err != nil {
		return nil, err
	}
	query.EndDate, err = utils.ParseDatePtr(request.EndDate)
	if err != nil {
		return nil, err
	}

	return uc.HealthRecordRepository.FindAll(ctx, query)
}

func (uc *healthRecordUsecase) FindHealthRecordByID(ctx context.Context, session *models.Session, recordID string) (*models.HealthRecord, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	record, err := uc.HealthRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrHealthRecordNotExist(nil)
	}

	err = access.CanViewRecord(caller, record)
	if err != nil {
		return nil, err
	}

	entry := models.AccessLogEntry{
		UserID:     session.UserID,
		AccessedAt: time.Now(),
		Action:     models.AccessActionView,
	}
	err = uc.HealthRecordRepository.AppendAccessLog(ctx, recordID, entry)
	if err != nil {
		return nil, err
	}
	record.AccessLog = append(record.AccessLog, entry)

	return record, nil
}

func (uc *healthRecordUsecase) FindHealthRecordsByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.HealthRecord, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	if caller.Role == constvars.RoleTypePatient && caller.PatientID != patientID {
		return nil, exceptions.ErrHealthRecordViewForbidden(nil)
	}

	return uc.HealthRecordRepository.FindAll(ctx, &RecordQuery{PatientID: patientID})
}

func (uc *healthRecordUsecase) UpdateHealthRecord(ctx context.Context, session *models.Session, recordID string, request *requests.UpdateHealthRecord) (*models.HealthRecord, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	record, err := uc.HealthRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrHealthRecordNotExist(nil)
	}

	err = access.CanUpdateRecord(caller, record)
	if err != nil {
		return nil, err
	}

	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
		"status":    nextStatus(record.Status, request.Status),
	}
	if request.RecordType != nil {
		updateData["recordType"] = *request.RecordType
	}
	if request.Title != nil {
		updateData["title"] = *request.Title
	}
	if request.Description != nil {
		updateData["description"] = *request.Description
	}
	if request.VisitDate != nil {
		visitDate, err := utils.ParseDate(*request.VisitDate)
		if err != nil {
			return nil, err
		}
		updateData["visitDate"] = visitDate
	}
	if request.Vitals != nil {
		updateData["vitals"] = buildVitals(request.Vitals)
	}
	if request.LabResults != nil {
		updateData["labResults"] = buildLabResults(request.LabResults)
	}
	if request.Diagnosis != nil {
		updateData["diagnosis"] = buildDiagnosis(request.Diagnosis)
	}
	if request.Treatment != nil {
		updateData["treatment"] = buildTreatment(request.Treatment)
	}
	if request.FollowUp != nil {
		followUp, err := buildFollowUp(request.FollowUp)
		if err != nil {
			return nil, err
		}
		updateData["followUp"] = followUp
	}
	if request.IsConfidential != nil {
		updateData["isConfidential"] = *request.IsConfidential
	}

	err = uc.HealthRecordRepository.UpdateFields(ctx, recordID, updateData)
	if err != nil {
		return nil, err
	}

	entry := models.AccessLogEntry{
		UserID:     session.UserID,
		AccessedAt: time.Now(),
		Action:     models.AccessActionEdit,
	}
	err = uc.HealthRecordRepository.AppendAccessLog(ctx, recordID, entry)
	if err != nil {
		return nil, err
	}

	return uc.HealthRecordRepository.FindByID(ctx, recordID)
}

// nextStatus applies the amendment rule: editing a finalized record
// always yields "amended" unless the caller explicitly enters the
// record in error.
func nextStatus(currentStatus string, requestedStatus *string) string {
	if currentStatus == models.RecordStatusFinal {
		if requestedStatus != nil && *requestedStatus == models.RecordStatusEnteredInError {
			return models.RecordStatusEnteredInError
		}
		return models.RecordStatusAmended
	}
	if requestedStatus != nil {
		return *requestedStatus
	}
	return currentStatus
}

// DeleteHealthRecord never removes the document; it flips status to
// entered_in_error and leaves everything else untouched.
func (uc *healthRecordUsecase) DeleteHealthRecord(ctx context.Context, session *models.Session, recordID string) error {
	record, err := uc.HealthRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record == nil {
		return exceptions.ErrHealthRecordNotExist(nil)
	}

	updateData := map[string]interface{}{
		"status":    models.RecordStatusEnteredInError,
		"updatedAt": time.Now(),
	}
	return uc.HealthRecordRepository.UpdateFields(ctx, recordID, updateData)
}

func (uc *healthRecordUsecase) UploadAttachment(ctx context.Context, session *models.Session, request *requests.UploadAttachment) (*responses.AttachmentUpload, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	record, err := uc.HealthRecordRepository.FindByID(ctx, request.RecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrHealthRecordNotExist(nil)
	}

	err = access.CanUpdateRecord(caller, record)
	if err != nil {
		return nil, err
	}

	maxUploadSize := int64(uc.InternalConfig.Minio.AttachmentMaxUploadSizeInMB) * 1024 * 1024
	if request.FileSize > maxUploadSize {
		return nil, exceptions.ErrAttachmentTooLarge(nil)
	}

	objectName := utils.GenerateFileName(constvars.AttachmentFilePrefix, request.RecordID, filepath.Ext(request.FileName))
	_, err = uc.Storage.UploadFile(ctx, request.Reader, objectName, request.FileType, request.FileSize)
	if err != nil {
		return nil, err
	}

	attachment := models.Attachment{
		FileName:   request.FileName,
		FileType:   request.FileType,
		URL:        objectName,
		UploadedAt: time.Now(),
	}
	err = uc.HealthRecordRepository.AppendAttachment(ctx, request.RecordID, attachment)
	if err != nil {
		return nil, err
	}

	return &responses.AttachmentUpload{
		FileName: request.FileName,
		URL:      objectName,
		FileSize: request.FileSize,
	}, nil
}

func (uc *healthRecordUsecase) DownloadAttachment(ctx context.Context, session *models.Session, recordID, fileName string) (*responses.AttachmentDownload, error) {
	caller, err := uc.resolveCaller(ctx, session)
	if err != nil {
		return nil, err
	}

	record, err := uc.HealthRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrHealthRecordNotExist(nil)
	}

	err = access.CanViewRecord(caller, record)
	if err != nil {
		return nil, err
	}

	var attachment *models.Attachment
	for i := range record.Attachments {
		if record.Attachments[i].FileName == fileName {
			attachment = &record.Attachments[i]
			break
		}
	}
	if attachment == nil {
		return nil, exceptions.ErrHealthRecordNotExist(nil)
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHour) * time.Hour
	presignedURL, err := uc.Storage.PresignedDownloadURL(ctx, attachment.URL, expiry)
	if err != nil {
		return nil, err
	}

	entry := models.AccessLogEntry{
		UserID:     session.UserID,
		AccessedAt: time.Now(),
		Action:     models.AccessActionDownload,
	}
	err = uc.HealthRecordRepository.AppendAccessLog(ctx, recordID, entry)
	if err != nil {
		return nil, err
	}

	return &responses.AttachmentDownload{
		FileName: attachment.FileName,
		URL:      presignedURL,
	}, nil
}
