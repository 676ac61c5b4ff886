package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"parking-api/internal/domain/user"
	"parking-api/internal/handler/api"
	reqdto "parking-api/internal/handler/dto/request"
	"parking-api/internal/handler/middleware"
	"parking-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth        *api.AuthHandler
	Lot         *api.LotHandler
	Vehicle     *api.VehicleHandler
	Reservation *api.ReservationHandler
	Session     *api.SessionHandler
	Payment     *api.PaymentHandler
	Billing     *api.BillingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	if err := setupMiddleware(engine, cfg, logger); err != nil {
		return err
	}
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) error {
	corsMiddleware, err := middleware.NewCORSMiddleware(cfg.CORS, logger)
	if err != nil {
		return err
	}
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(corsMiddleware)
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
	return nil
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	adminOnly := []gin.HandlerFunc{requireAuth, authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		// Lot reads are public; writes are admin-only and sessions need a caller
		lots := apiGroup.Group("/parking-lots")
		{
			addRoutes(lots, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Lot.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Lot.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Lot.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Lot.Update, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/sessions/start", Handler: h.Session.Start, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodPost, Path: "/:id/sessions/stop", Handler: h.Session.Stop, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		vehicles := apiGroup.Group("/vehicles")
		vehicles.Use(requireAuth)
		{
			addRoutes(vehicles, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Vehicle.Register},
				{Method: http.MethodGet, Path: "", Handler: h.Vehicle.ListMine},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(requireAuth)
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/me", Handler: h.Reservation.ListMine},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Cancel},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(requireAuth)
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			})
		}

		billing := apiGroup.Group("/billing")
		billing.Use(requireAuth)
		{
			addRoutes(billing, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Billing.Upcoming},
				{Method: http.MethodGet, Path: "/history", Handler: h.Billing.History},
				{Method: http.MethodGet, Path: "/payments", Handler: h.Billing.Payments},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(adminOnly...)
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/payments/:transaction/cancel", Handler: h.Payment.Cancel},
				{Method: http.MethodPatch, Path: "/payments/:transaction", Handler: h.Payment.Amend},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
