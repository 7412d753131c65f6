package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	FirstName string `json:"firstName" bson:"firstName"`
	LastName  string `json:"lastName" bson:"lastName"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	Role      string `json:"role" bson:"role"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	TimeModel `bson:",inline"`
}
