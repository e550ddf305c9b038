package user

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/tutordesk/core"
)

var (
	// errors
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// Service hands out the configured tutor to anyone presenting non-empty credentials,
// under the email they logged in with. There is no user store behind it.
type Service struct {
	tutor    User
	validate *validator.Validate
}

func NewService(conf *core.Config, validate *validator.Validate) *Service {
	return &Service{
		tutor: User{
			ID:    conf.Tutor.ID,
			Name:  conf.Tutor.Name,
			Email: conf.Tutor.Email,
		},
		validate: validate,
	}
}

// Tutor returns the acting tutor, with the configured email.
func (svc *Service) Tutor() User { return svc.tutor }

func (svc *Service) Login(creds Credentials) (User, error) {
	if err := creds.Validate(svc.validate); err != nil {
		return User{}, ErrInvalidCredentials
	}
	usr := svc.tutor
	usr.Email = creds.Email
	return usr, nil
}
