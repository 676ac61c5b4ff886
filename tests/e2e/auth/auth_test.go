//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parking-api/internal/domain/user"
	"parking-api/internal/handler/dto/request"
	"parking-api/internal/handler/dto/response"
	"parking-api/internal/pkg/cookie"
	"parking-api/tests/common/authtest"
	"parking-api/tests/common/dbtest"
	"parking-api/tests/common/httptest"
	"parking-api/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "driver@example.com", string(user.RoleUser))
	inactive := dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", string(user.RoleUser))
	dbtest.DeactivateUser(s.T(), s.DB, inactive)
}

func (s *authSuite) TestRegister() {
	s.Run("new account can log in", func() {
		t := s.T()
		body := request.RegisterRequest{Email: "new@example.com", Password: "longenough", Name: "New Driver"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, body, "")

		var res response.RegisterResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
		assert.Positive(t, res.ID)
		token := authtest.LoginUser(t, s.Router, "new@example.com", "longenough")
		assert.NotEmpty(t, token)
	})

	s.Run("email is case insensitive and unique", func() {
		body := request.RegisterRequest{Email: "DRIVER@example.com", Password: "longenough", Name: "Dup"}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})

	s.Run("short password", func() {
		body := request.RegisterRequest{Email: "short@example.com", Password: "short", Name: "Short"}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, body, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "driver@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "driver@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive account", email: "inactive@example.com", password: dbtest.DefaultPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.DefaultPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "driver@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				assert.NotEmpty(t, res.AccessToken)
				assert.Equal(t, "Bearer", res.TokenType)
				assert.Equal(t, string(user.RoleUser), res.Role)

				c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
				require.NotNil(t, c)
				assert.Equal(t, res.AccessToken, c.Value)
				assert.True(t, c.HttpOnly)
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("bearer token resolves the caller", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "driver@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)

		var res response.MeResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		assert.Equal(t, "driver@example.com", res.Email)
		assert.True(t, res.IsActive)
	})

	s.Run("missing token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})

	s.Run("forged token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not.a.token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the access cookie", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "driver@example.com", dbtest.DefaultPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)

		require.Equal(t, http.StatusNoContent, w.Code)
		c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
	})
}
