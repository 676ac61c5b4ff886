//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"parking-api/internal/domain/pricing"
	"parking-api/internal/domain/session"
	resdto "parking-api/internal/handler/dto/response"
	"parking-api/internal/usecase/commands"
	"parking-api/tests/common/builder"
	"parking-api/tests/common/httptest"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SessionHandlerTestSuite struct {
	suite.Suite
	h *apiHarness
}

func (s *SessionHandlerTestSuite) SetupTest() {
	s.h = newAPIHarness(s.T())
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (s *SessionHandlerTestSuite) TestStart() {
	url := "/api/parking-lots/10/sessions/start"

	s.Run("success: returns the open session", func() {
		s.h.sessionCommands.EXPECT().StartSession(gomock.Any(), int64(1), int64(10), "ab-123").
			Return(builder.NewSessionBuilder().BuildDomain(), nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
			map[string]any{"license_plate": "ab-123"}, userToken)

		var res resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(int64(30), res.ID)
		s.Equal("active", res.Status)
		s.False(res.EndTime.Valid)
		s.False(res.Cost.Valid)
	})

	s.Run("error: second start is 409", func() {
		s.h.sessionCommands.EXPECT().StartSession(gomock.Any(), int64(1), int64(10), "AB-123").
			Return(nil, session.ErrSessionAlreadyActive)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
			map[string]any{"license_plate": "AB-123"}, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has an active session")
	})

	s.Run("error: missing plate is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url, map[string]any{}, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: bad lot id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, "/api/parking-lots/0/sessions/start",
			map[string]any{"license_plate": "AB-123"}, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SessionHandlerTestSuite) TestStop() {
	url := "/api/parking-lots/10/sessions/stop"

	s.Run("success: returns cost and billed hours", func() {
		end := time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC)
		stopped := builder.NewSessionBuilder().Stopped(end, 2000).BuildDomain()
		s.h.sessionCommands.EXPECT().StopSession(gomock.Any(), int64(1), int64(10), "AB-123").
			Return(&commands.StopResult{Session: stopped, Quote: pricing.Quote{Cost: pricing.NewMoney(2000), Hours: 4}}, nil)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
			map[string]any{"license_plate": "AB-123"}, userToken)

		var res resdto.StopSessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().NotNil(res.SessionResponse)
		s.Equal("completed", res.Status)
		s.Equal(20.0, res.Cost.Float64)
		s.Equal(end, res.EndTime.Time.UTC())
		s.Equal(int64(4), res.BilledHours)
	})

	s.Run("error: nothing open is 404", func() {
		s.h.sessionCommands.EXPECT().StopSession(gomock.Any(), int64(1), int64(10), "AB-123").
			Return(nil, session.ErrNoActiveSession)

		rec := httptest.PerformRequest(s.T(), s.h.router, http.MethodPost, url,
			map[string]any{"license_plate": "AB-123"}, userToken)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
