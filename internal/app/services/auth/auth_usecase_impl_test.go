package auth

import (
	"context"
	"testing"
	"time"

	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userEntity *models.User) (string, error) {
	args := m.Called(ctx, userEntity)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateFields(ctx context.Context, userID string, updateData map[string]interface{}) error {
	args := m.Called(ctx, userID, updateData)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
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

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 2},
		JWT: config.AppJWT{Secret: "test-secret", ExpTimeInHour: 2},
	}
}

func TestRegisterUser(t *testing.T) {
	t.Run("password mismatch is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		_, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			FirstName:      "Ann",
			LastName:       "Lee",
			Email:          "ann@example.com",
			Password:       "Str0ngPass!",
			RetypePassword: "Different1!",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("admin role cannot be claimed at registration", func(t *testing.T) {
		request := &requests.RegisterUser{
			FirstName:      "Eve",
			LastName:       "Mallory",
			Email:          "eve@example.com",
			Password:       "Str0ngPass!",
			RetypePassword: "Str0ngPass!",
			Role:           constvars.RoleTypeAdmin,
		}

		err := utils.ValidateStruct(request)
		assert.Error(t, err, "validator must reject the admin role")

		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		_, err = usecase.RegisterUser(context.Background(), request)

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "FindByEmail")
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "ann@example.com").
			Return(&models.User{ID: "user-1", Email: "ann@example.com"}, nil)

		_, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			FirstName:      "Ann",
			LastName:       "Lee",
			Email:          "ann@example.com",
			Password:       "Str0ngPass!",
			RetypePassword: "Str0ngPass!",
		})

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("role defaults to patient and password is hashed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RoleTypePatient &&
				user.Password != "Str0ngPass!" &&
				utils.CheckPasswordHash("Str0ngPass!", user.Password)
		})).Return("user-1", nil)
		redisRepo.On("CreateSession", mock.Anything, mock.Anything, 2*time.Hour).Return(nil)

		response, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			FirstName:      "Ann",
			LastName:       "Lee",
			Email:          "ann@example.com",
			Password:       "Str0ngPass!",
			RetypePassword: "Str0ngPass!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "user-1", response.User.ID)
		userRepo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
	})
}

func TestLoginUser(t *testing.T) {
	hashed, _ := utils.HashPassword("Str0ngPass!")
	storedUser := &models.User{
		ID:       "user-1",
		Email:    "ann@example.com",
		Password: hashed,
		Role:     constvars.RoleTypePatient,
	}

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(storedUser, nil)

		_, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "ann@example.com",
			Password: "WrongPass1!",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		redisRepo.AssertNotCalled(t, "CreateSession")
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		_, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "ghost@example.com",
			Password: "Str0ngPass!",
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("successful login mints a resolvable token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		var createdSession *models.Session
		userRepo.On("FindByEmail", mock.Anything, "ann@example.com").Return(storedUser, nil)
		redisRepo.On("CreateSession", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			createdSession = session
			return session.UserID == "user-1" && session.Role == constvars.RoleTypePatient && session.SessionID != ""
		}), 2*time.Hour).Return(nil)

		response, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "ann@example.com",
			Password: "Str0ngPass!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)

		sessionID, err := utils.ParseJWT(response.Token, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, createdSession.SessionID, sessionID)
	})
}

func TestSeedAdminUser(t *testing.T) {
	seededConfig := func() *config.InternalConfig {
		cfg := testInternalConfig()
		cfg.Admin = config.AppAdmin{
			Email:     "root@example.com",
			Password:  "Sup3rSecret!",
			FirstName: "System",
			LastName:  "Admin",
		}
		return cfg
	}

	t.Run("missing admin is created with the admin role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, seededConfig())

		userRepo.On("FindByEmail", mock.Anything, "root@example.com").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Role == constvars.RoleTypeAdmin &&
				user.Email == "root@example.com" &&
				utils.CheckPasswordHash("Sup3rSecret!", user.Password)
		})).Return("admin-1", nil)

		err := usecase.SeedAdminUser(context.Background())

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("existing account with the seed email is left alone", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, seededConfig())

		userRepo.On("FindByEmail", mock.Anything, "root@example.com").
			Return(&models.User{ID: "admin-1", Email: "root@example.com", Role: constvars.RoleTypeAdmin}, nil)

		err := usecase.SeedAdminUser(context.Background())

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("seed is skipped when not configured", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		redisRepo := new(MockRedisRepository)
		usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

		err := usecase.SeedAdminUser(context.Background())

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "FindByEmail")
	})
}

func TestLogoutUser(t *testing.T) {
	userRepo := new(MockUserRepository)
	redisRepo := new(MockRedisRepository)
	usecase := NewAuthUsecase(userRepo, redisRepo, testInternalConfig())

	redisRepo.On("DeleteSession", mock.Anything, "sess-1").Return(nil)

	err := usecase.LogoutUser(context.Background(), &models.Session{SessionID: "sess-1", UserID: "user-1"})

	assert.NoError(t, err)
	redisRepo.AssertExpectations(t)
}
