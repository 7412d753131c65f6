package requests

// UpdateUser carries a partial update. Nil pointers leave the stored
// value untouched. Role is only honored when the caller is an admin.
type UpdateUser struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName" validate:"omitempty,max=50"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,phone"`
	Role      *string `json:"role" validate:"omitempty,oneof=patient provider admin"`
}
