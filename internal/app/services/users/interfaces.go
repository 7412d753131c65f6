package users

import (
	"context"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	FindAllUsers(ctx context.Context, session *models.Session) ([]*responses.User, error)
	FindUserByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error)
	UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error)
	DeleteUser(ctx context.Context, session *models.Session, userID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, userEntity *models.User) (userID string, err error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateFields(ctx context.Context, userID string, updateData map[string]interface{}) error
	DeleteByID(ctx context.Context, userID string) error
}
