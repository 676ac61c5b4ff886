//go:build unit

package api_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"parking-api/internal/domain/user"
	"parking-api/internal/handler"
	"parking-api/internal/handler/api"
	"parking-api/internal/handler/middleware"
	"parking-api/internal/pkg/config"
	"parking-api/internal/pkg/jwt"
	commandsmock "parking-api/tests/mock/commands"
	queriesmock "parking-api/tests/mock/queries"
	usecasemock "parking-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	userToken  = "user-token"
	adminToken = "admin-token"
	otherToken = "other-token"
)

// apiHarness serves the real router over mocked commands and queries. userToken
// authenticates user 1, otherToken user 2 and adminToken admin 99.
type apiHarness struct {
	router *gin.Engine

	authCommands        *commandsmock.MockAuthCommands
	lotCommands         *commandsmock.MockLotCommands
	vehicleCommands     *commandsmock.MockVehicleCommands
	reservationCommands *commandsmock.MockReservationCommands
	sessionCommands     *commandsmock.MockSessionCommands
	paymentCommands     *commandsmock.MockPaymentCommands

	userQueries        *queriesmock.MockUserQueries
	lotQueries         *queriesmock.MockLotQueries
	vehicleQueries     *queriesmock.MockVehicleQueries
	reservationQueries *queriesmock.MockReservationQueries
	paymentQueries     *queriesmock.MockPaymentQueries
	billingQueries     *queriesmock.MockBillingQueries
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	h := &apiHarness{
		router:              gin.New(),
		authCommands:        commandsmock.NewMockAuthCommands(ctrl),
		lotCommands:         commandsmock.NewMockLotCommands(ctrl),
		vehicleCommands:     commandsmock.NewMockVehicleCommands(ctrl),
		reservationCommands: commandsmock.NewMockReservationCommands(ctrl),
		sessionCommands:     commandsmock.NewMockSessionCommands(ctrl),
		paymentCommands:     commandsmock.NewMockPaymentCommands(ctrl),
		userQueries:         queriesmock.NewMockUserQueries(ctrl),
		lotQueries:          queriesmock.NewMockLotQueries(ctrl),
		vehicleQueries:      queriesmock.NewMockVehicleQueries(ctrl),
		reservationQueries:  queriesmock.NewMockReservationQueries(ctrl),
		paymentQueries:      queriesmock.NewMockPaymentQueries(ctrl),
		billingQueries:      queriesmock.NewMockBillingQueries(ctrl),
	}

	validator := usecasemock.NewMockTokenValidator(ctrl)
	validator.EXPECT().ValidateToken(userToken).Return(int64(1), user.RoleUser, nil).AnyTimes()
	validator.EXPECT().ValidateToken(otherToken).Return(int64(2), user.RoleUser, nil).AnyTimes()
	validator.EXPECT().ValidateToken(adminToken).Return(int64(99), user.RoleAdmin, nil).AnyTimes()
	validator.EXPECT().ValidateToken(gomock.Any()).Return(int64(0), user.Role(""), jwt.ErrInvalidToken).AnyTimes()

	cfg := config.NewTestConfig()
	handlers := handler.Handlers{
		Auth:        api.NewAuthHandler(h.authCommands, h.userQueries, jwt.NewService(cfg.JWT.Secret, time.Hour), cfg),
		Lot:         api.NewLotHandler(h.lotCommands, h.lotQueries),
		Vehicle:     api.NewVehicleHandler(h.vehicleCommands, h.vehicleQueries),
		Reservation: api.NewReservationHandler(h.reservationCommands, h.reservationQueries),
		Session:     api.NewSessionHandler(h.sessionCommands),
		Payment:     api.NewPaymentHandler(h.paymentCommands, h.paymentQueries),
		Billing:     api.NewBillingHandler(h.billingQueries),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, handler.NewRouter(h.router, cfg, logger, handlers, middleware.NewAuthMiddleware(validator)))
	return h
}
