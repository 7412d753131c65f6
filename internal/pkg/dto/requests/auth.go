package requests

type RegisterUser struct {
	FirstName      string `json:"firstName" validate:"required,max=50"`
	LastName       string `json:"lastName" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"password"`
	RetypePassword string `json:"retypePassword" validate:"required"`
	Role           string `json:"role" validate:"omitempty,oneof=patient provider"`
	Phone          string `json:"phone" validate:"omitempty,phone"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
