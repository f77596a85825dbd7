package service

import (
	"errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/AlibekovAA/caption-studio/backend/internal/common/constants"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type credentials struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func validatePresence(email, password string) error {
	err := validate.Struct(credentials{Email: email, Password: password})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrCredentialsRequired
	}
	return err
}

// validateSignup expects an already normalized email. Password length is
// counted in characters for the minimum and in bytes for the bcrypt limit.
func validateSignup(email, password string) error {
	if err := validatePresence(email, password); err != nil {
		return err
	}
	if len(email) > constants.EmailMaxLength {
		return ErrEmailTooLong
	}
	if utf8.RuneCountInString(password) < constants.PasswordMinLength {
		return ErrPasswordTooShort
	}
	if len(password) > constants.PasswordMaxLength {
		return ErrPasswordTooLong
	}
	return nil
}
