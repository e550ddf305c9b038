package user

import (
	"net/mail"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

// User is the acting tutor of a session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func (u User) HasEmail() bool { return u.Email != "" }

func (u User) Address() mail.Address {
	return mail.Address{Name: u.Name, Address: u.Email}
}

// Credentials are accepted by the login endpoint.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (cr *Credentials) Validate(validate *validator.Validate) error {
	cr.Email = core.CleanString(cr.Email, true /* lower */)
	return validate.Struct(cr)
}
