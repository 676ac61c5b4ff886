//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-api/internal/domain/vehicle"
	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/usecase/commands"
	"parking-api/internal/usecase/queries"
	"parking-api/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	h *apiHarness
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	s.h = newAPIHarness(s.T())
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func (s *VehicleHandlerTestSuite) TestRegister() {
	url := "/api/vehicles"

	s.Run("success: registers for the caller", func() {
		s.h.vehicleCommands.EXPECT().RegisterVehicle(gomock.Any(), int64(1), commands.RegisterVehicleRequest{
			LicensePlate: "ab-123",
			Make:         "Toyota",
		}).Return(int64(20), nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
			map[string]any{"license_plate": "ab-123", "make": "Toyota"}, userToken)

		var res resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(int64(20), res.ID)
	})

	s.Run("error: duplicate plate is 409", func() {
		s.h.vehicleCommands.EXPECT().RegisterVehicle(gomock.Any(), int64(1), gomock.Any()).Return(int64(0), vehicle.ErrPlateTaken)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
			map[string]any{"license_plate": "AB-123"}, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already registered")
	})

	s.Run("error: malformed plate fails the plate rule", func() {
		for _, plate := range []string{"!", "A", "ABCDEFGHIJKLMNOPQ"} {
			rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
				map[string]any{"license_plate": plate}, userToken)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})
}

func (s *VehicleHandlerTestSuite) TestListMine() {
	s.h.vehicleQueries.EXPECT().ListMine(gomock.Any(), int64(2)).Return([]*queries.VehicleView{
		{ID: 21, UserID: 2, LicensePlate: "CD-456", Year: 2020, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodGet, "/api/vehicles", nil, otherToken)

	var res []resdto.VehicleResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Require().Len(res, 1)
	s.Equal("CD-456", res[0].LicensePlate)
	s.Equal(int32(2020), res[0].Year)
}
