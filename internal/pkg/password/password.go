package password

import (
	"sync"

	"parking-api/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes, so longer secrets are rejected up front.
const maxBytes = 72

var (
	ErrInvalidPassword  = errs.NewKind(errs.KindValidation, "password is required")
	ErrTooLong          = errs.NewKind(errs.KindValidation, "password must be at most 72 bytes")
	ErrComparisonFailed = errs.New("password comparison failed")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}
	if len(password) > maxBytes {
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return errs.Wrap(err, "compare password")
	}
	return nil
}

var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), DefaultCost)
	return h
})

// Burn spends one bcrypt comparison so a login for an unknown account takes as long
// as a wrong password.
func Burn(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
}
