//go:build unit

package vehicle_test

import (
	"testing"
	"time"

	"parking-api/internal/domain/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		plate     string
		wantPlate string
		errIs     error
	}{
		{name: "plain plate", plate: "AB1234", wantPlate: "AB1234"},
		{name: "lower case with spaces", plate: " ab 12-34 ", wantPlate: "AB12-34"},
		{name: "empty", plate: "", errIs: vehicle.ErrInvalidPlate},
		{name: "single character", plate: "A", errIs: vehicle.ErrInvalidPlate},
		{name: "too long", plate: "ABCDEFGHIJKLMNOPQ", errIs: vehicle.ErrInvalidPlate},
		{name: "leading dash", plate: "-AB12", errIs: vehicle.ErrInvalidPlate},
		{name: "symbols", plate: "AB#12", errIs: vehicle.ErrInvalidPlate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vehicle.NewVehicle(42, tc.plate, vehicle.Details{Make: "Mazda"}, now)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPlate, v.LicensePlate())
			assert.Equal(t, int64(42), v.UserID())
			assert.Equal(t, "Mazda", v.Details().Make)
			assert.Equal(t, now, v.CreatedAt())
		})
	}
}
