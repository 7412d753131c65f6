package responses

import (
	"medrecord-service/internal/app/models"
)

// User is the API shape of a user. Password never leaves the server;
// the access rules only let the account owner or an admin read a user,
// so the role is always included.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewUser(user *models.User) *User {
	return &User{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: user.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func NewUsers(users []models.User) []*User {
	result := make([]*User, 0, len(users))
	for i := range users {
		result = append(result, NewUser(&users[i]))
	}
	return result
}
