package auth

import (
	"context"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error)
	LogoutUser(ctx context.Context, session *models.Session) error
	SeedAdminUser(ctx context.Context) error
}
