package users

import (
	"context"
	"testing"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"

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

func TestUpdateUser(t *testing.T) {
	storedUser := func() *models.User {
		return &models.User{ID: "user-1", FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Role: constvars.RoleTypePatient}
	}

	t.Run("role change is stripped for non-admins", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user-1").Return(storedUser(), nil)
		userRepo.On("UpdateFields", mock.Anything, "user-1", mock.MatchedBy(func(updateData map[string]interface{}) bool {
			_, hasRole := updateData["role"]
			return !hasRole && updateData["firstName"] == "Anna"
		})).Return(nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypePatient}
		firstName := "Anna"
		role := constvars.RoleTypeAdmin
		_, err := usecase.UpdateUser(context.Background(), session, "user-1", &requests.UpdateUser{
			FirstName: &firstName,
			Role:      &role,
		})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("admin role change is honored", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user-1").Return(storedUser(), nil)
		userRepo.On("UpdateFields", mock.Anything, "user-1", mock.MatchedBy(func(updateData map[string]interface{}) bool {
			return updateData["role"] == constvars.RoleTypeProvider
		})).Return(nil)

		session := &models.Session{UserID: "admin-1", Role: constvars.RoleTypeAdmin}
		role := constvars.RoleTypeProvider
		_, err := usecase.UpdateUser(context.Background(), session, "user-1", &requests.UpdateUser{
			Role: &role,
		})

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("changing email to a taken address fails", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user-1").Return(storedUser(), nil)
		userRepo.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&models.User{ID: "user-2", Email: "taken@example.com"}, nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypePatient}
		email := "taken@example.com"
		_, err := usecase.UpdateUser(context.Background(), session, "user-1", &requests.UpdateUser{
			Email: &email,
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "UpdateFields")
	})

	t.Run("non-admin cannot update another user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		session := &models.Session{UserID: "user-2", Role: constvars.RoleTypePatient}
		firstName := "Eve"
		_, err := usecase.UpdateUser(context.Background(), session, "user-1", &requests.UpdateUser{
			FirstName: &firstName,
		})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
		userRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestFindUserByID(t *testing.T) {
	t.Run("non-admin cannot read another user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		session := &models.Session{UserID: "user-2", Role: constvars.RoleTypeProvider}
		_, err := usecase.FindUserByID(context.Background(), session, "user-1")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("owner read returns the role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user-1").
			Return(&models.User{ID: "user-1", Email: "ann@example.com", Role: constvars.RoleTypePatient}, nil)

		session := &models.Session{UserID: "user-1", Role: constvars.RoleTypePatient}
		response, err := usecase.FindUserByID(context.Background(), session, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, constvars.RoleTypePatient, response.Role)
	})

	t.Run("missing user returns 404", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		session := &models.Session{UserID: "admin-1", Role: constvars.RoleTypeAdmin}
		_, err := usecase.FindUserByID(context.Background(), session, "ghost")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("missing user returns 404", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		session := &models.Session{UserID: "admin-1", Role: constvars.RoleTypeAdmin}
		err := usecase.DeleteUser(context.Background(), session, "ghost")

		assert.Error(t, err)
		userRepo.AssertNotCalled(t, "DeleteByID")
	})

	t.Run("existing user is deleted", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		usecase := NewUserUsecase(userRepo)

		userRepo.On("FindByID", mock.Anything, "user-1").
			Return(&models.User{ID: "user-1"}, nil)
		userRepo.On("DeleteByID", mock.Anything, "user-1").Return(nil)

		session := &models.Session{UserID: "admin-1", Role: constvars.RoleTypeAdmin}
		err := usecase.DeleteUser(context.Background(), session, "user-1")

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})
}
