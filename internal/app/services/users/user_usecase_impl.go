package users

import (
	"context"
	"time"

	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/shared/access"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
)

type userUsecase struct {
	UserRepository UserRepository
}

func NewUserUsecase(userMongoRepository UserRepository) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
	}
}

func (uc *userUsecase) FindAllUsers(ctx context.Context, session *models.Session) ([]*responses.User, error) {
	users, err := uc.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewUsers(users), nil
}

func (uc *userUsecase) FindUserByID(ctx context.Context, session *models.Session, userID string) (*responses.User, error) {
	caller := &access.Caller{UserID: session.UserID, Role: session.Role}
	err := access.CanViewUser(caller, userID)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return responses.NewUser(user), nil
}

func (uc *userUsecase) UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error) {
	caller := &access.Caller{UserID: session.UserID, Role: session.Role}
	err := access.CanUpdateUser(caller, userID)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
	}
	if request.FirstName != nil {
		updateData["firstName"] = *request.FirstName
	}
	if request.LastName != nil {
		updateData["lastName"] = *request.LastName
	}
	if request.Email != nil && *request.Email != user.Email {
		existingUser, err := uc.UserRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		updateData["email"] = *request.Email
	}
	if request.Phone != nil {
		updateData["phone"] = *request.Phone
	}
	// Role changes are only honored for admins; everyone else has the
	// field silently stripped from the payload.
	if request.Role != nil && session.Role == constvars.RoleTypeAdmin {
		updateData["role"] = *request.Role
	}

	err = uc.UserRepository.UpdateFields(ctx, userID, updateData)
	if err != nil {
		return nil, err
	}

	updated, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return responses.NewUser(updated), nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, session *models.Session, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}

	return uc.UserRepository.DeleteByID(ctx, userID)
}
