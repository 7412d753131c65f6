package auth

import (
	"context"
	"time"

	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/shared/redis"
	"medrecord-service/internal/app/services/users"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type authUsecase struct {
	UserRepository  users.UserRepository
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository:  userMongoRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	// Admin accounts only come from SeedAdminUser; registration is
	// limited to patient and provider.
	role := request.Role
	switch role {
	case "":
		role = constvars.RoleTypePatient
	case constvars.RoleTypePatient, constvars.RoleTypeProvider:
	default:
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  hashedPassword,
		Role:      role,
		Phone:     request.Phone,
	}
	user.TouchForCreate(time.Now())

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = userID

	return uc.createSession(ctx, user)
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.createSession(ctx, user)
}

func (uc *authUsecase) LogoutUser(ctx context.Context, session *models.Session) error {
	return uc.RedisRepository.DeleteSession(ctx, session.SessionID)
}

// SeedAdminUser creates the configured admin account at startup. It is
// idempotent: an existing account with the seed email is left alone.
func (uc *authUsecase) SeedAdminUser(ctx context.Context) error {
	seed := uc.InternalConfig.Admin
	if seed.Email == "" || seed.Password == "" {
		return nil
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, seed.Email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(seed.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	admin := &models.User{
		FirstName: seed.FirstName,
		LastName:  seed.LastName,
		Email:     seed.Email,
		Password:  hashedPassword,
		Role:      constvars.RoleTypeAdmin,
	}
	admin.TouchForCreate(time.Now())

	_, err = uc.UserRepository.CreateUser(ctx, admin)
	return err
}

// createSession stores the identity snapshot in Redis and mints a JWT
// carrying only the session id.
func (uc *authUsecase) createSession(ctx context.Context, user *models.User) (*responses.Auth, error) {
	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	err := uc.RedisRepository.CreateSession(ctx, session, sessionExpiry)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Auth{
		Token: token,
		User:  responses.NewUser(user),
	}, nil
}
