package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/healthrecords"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockHealthRecordUsecase struct {
	mock.Mock
}

func (m *MockHealthRecordUsecase) CreateHealthRecord(ctx context.Context, session *models.Session, request *requests.CreateHealthRecord) (*models.HealthRecord, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordUsecase) FindAllHealthRecords(ctx context.Context, session *models.Session, request *requests.FindAllHealthRecords) ([]models.HealthRecord, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordUsecase) FindHealthRecordByID(ctx context.Context, session *models.Session, recordID string) (*models.HealthRecord, error) {
	args := m.Called(ctx, session, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordUsecase) FindHealthRecordsByPatientID(ctx context.Context, session *models.Session, patientID string) ([]models.HealthRecord, error) {
	args := m.Called(ctx, session, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordUsecase) UpdateHealthRecord(ctx context.Context, session *models.Session, recordID string, request *requests.UpdateHealthRecord) (*models.HealthRecord, error) {
	args := m.Called(ctx, session, recordID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthRecord), args.Error(1)
}

func (m *MockHealthRecordUsecase) DeleteHealthRecord(ctx context.Context, session *models.Session, recordID string) error {
	args := m.Called(ctx, session, recordID)
	return args.Error(0)
}

func (m *MockHealthRecordUsecase) UploadAttachment(ctx context.Context, session *models.Session, request *requests.UploadAttachment) (*responses.AttachmentUpload, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AttachmentUpload), args.Error(1)
}

func (m *MockHealthRecordUsecase) DownloadAttachment(ctx context.Context, session *models.Session, recordID, fileName string) (*responses.AttachmentDownload, error) {
	args := m.Called(ctx, session, recordID, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AttachmentDownload), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

const testJWTSecret = "router-test-secret"

func newHealthRecordTestRouter(redisRepo *MockRedisRepository, usecase healthrecords.HealthRecordUsecase) *chi.Mux {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		JWT: config.AppJWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, redisRepo, internalConfig)
	controller := healthrecords.NewHealthRecordController(logger, usecase)

	router := chi.NewRouter()
	attachHealthRecordRoutes(router, middlewareInstance, controller)
	return router
}

func bearerToken(t *testing.T, sessionID string) string {
	token, err := utils.GenerateJWT(sessionID, testJWTSecret, 1)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestHealthRecordRouter_Authentication(t *testing.T) {
	t.Run("missing token is unauthorized", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		mockUsecase := new(MockHealthRecordUsecase)
		router := newHealthRecordTestRouter(redisRepo, mockUsecase)

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "FindAllHealthRecords")
	})

	t.Run("expired session is unauthorized", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		mockUsecase := new(MockHealthRecordUsecase)
		router := newHealthRecordTestRouter(redisRepo, mockUsecase)

		redisRepo.On("GetSession", mock.Anything, "sess-gone").Return(nil, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-gone"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		mockUsecase.AssertNotCalled(t, "FindAllHealthRecords")
	})

	t.Run("valid session reaches the controller", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		mockUsecase := new(MockHealthRecordUsecase)
		router := newHealthRecordTestRouter(redisRepo, mockUsecase)

		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleTypePatient}
		redisRepo.On("GetSession", mock.Anything, "sess-1").Return(session, nil)
		mockUsecase.On("FindAllHealthRecords", mock.Anything, session, mock.Anything).
			Return([]models.HealthRecord{}, nil)

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})
}

func TestHealthRecordRouter_RoleGuards(t *testing.T) {
	t.Run("patient cannot create records", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		mockUsecase := new(MockHealthRecordUsecase)
		router := newHealthRecordTestRouter(redisRepo, mockUsecase)

		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleTypePatient}
		redisRepo.On("GetSession", mock.Anything, "sess-1").Return(session, nil)

		req := httptest.NewRequest("POST", "/", nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockUsecase.AssertNotCalled(t, "CreateHealthRecord")
	})

	t.Run("provider cannot hard delete", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		mockUsecase := new(MockHealthRecordUsecase)
		router := newHealthRecordTestRouter(redisRepo, mockUsecase)

		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleTypeProvider}
		redisRepo.On("GetSession", mock.Anything, "sess-1").Return(session, nil)

		req := httptest.NewRequest("DELETE", "/rec-1", nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockUsecase.AssertNotCalled(t, "DeleteHealthRecord")
	})

	t.Run("admin delete passes the guard", func(t *testing.T) {
		redisRepo := new(MockRedisRepository)
		mockUsecase := new(MockHealthRecordUsecase)
		router := newHealthRecordTestRouter(redisRepo, mockUsecase)

		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleTypeAdmin}
		redisRepo.On("GetSession", mock.Anything, "sess-1").Return(session, nil)
		mockUsecase.On("DeleteHealthRecord", mock.Anything, session, "rec-1").Return(nil)

		req := httptest.NewRequest("DELETE", "/rec-1", nil)
		req.Header.Set("Authorization", bearerToken(t, "sess-1"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockUsecase.AssertExpectations(t)
	})
}
