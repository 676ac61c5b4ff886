package user

import (
	"regexp"
	"strings"

	"parking-api/internal/pkg/errs"
)

var (
	ErrInvalidEmail       = errs.NewKind(errs.KindValidation, "invalid email format")
	ErrInvalidRole        = errs.NewKind(errs.KindValidation, "invalid role")
	ErrInvalidName        = errs.NewKind(errs.KindValidation, "name is required")
	ErrPasswordTooWeak    = errs.NewKind(errs.KindValidation, "password must be at least 8 characters long")
	ErrEmailTaken         = errs.NewKind(errs.KindConflict, "email is already registered")
	ErrInvalidCredentials = errs.NewKind(errs.KindUnauthenticated, "invalid email or password")
	ErrUserNotFound       = errs.NewKind(errs.KindNotFound, "user not found")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so lookups are case insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
