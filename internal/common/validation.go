package common

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks tagged request payload structs. Shared instance; the
// validator caches struct metadata internally.
var Validate = validator.New(validator.WithRequiredStructEnabled())

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
var handleRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func ValidateHandle(handle string) error {
	handle = strings.TrimSpace(handle)
	if len(handle) < 3 || len(handle) > 50 {
		return errors.New("handle must be between 3 and 50 characters")
	}
	if !handleRegex.MatchString(handle) {
		return errors.New("handle can only contain letters, numbers, and underscores")
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	if len(password) > 100 {
		return errors.New("password is too long")
	}
	return nil
}

func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

// FieldErrors flattens validator errors into a field -> message map for the
// JSON error body.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = "failed on '" + fe.Tag() + "'"
		}
	}
	return fields
}
