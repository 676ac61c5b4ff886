//go:build unit

package password_test

import (
	"strings"
	"testing"

	"parking-api/internal/pkg/errs"
	"parking-api/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong horse"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)
}

func TestHashPassword_Rejects(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: "", wantErr: password.ErrInvalidPassword},
		{name: "past the bcrypt limit", input: strings.Repeat("x", 73), wantErr: password.ErrTooLong},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := password.HashPassword(tc.input)

			require.ErrorIs(t, err, tc.wantErr)
			kind, ok := errs.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, errs.KindValidation, kind)
		})
	}
}

func TestBurn(t *testing.T) {
	assert.NotPanics(t, func() { password.Burn("anything") })
}
