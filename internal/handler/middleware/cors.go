package middleware

import (
	"log/slog"
	"slices"

	"parking-api/internal/pkg/config"
	"parking-api/internal/pkg/errs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Headers browsers must be allowed to send or read for payments and request tracing,
// whatever the deployment lists in CORS_*.
var (
	requiredAllowHeaders  = []string{"Authorization", "Content-Type", IdempotencyKeyHeader}
	requiredExposeHeaders = []string{requestIDHeader, "Idempotent-Replayed"}
)

// NewCORSMiddleware rejects settings gin-contrib/cors would panic on, such as an
// empty origin list.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) (gin.HandlerFunc, error) {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withRequired(cfg.AllowHeaders, requiredAllowHeaders),
		ExposeHeaders:    withRequired(cfg.ExposeHeaders, requiredExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if err := corsCfg.Validate(); err != nil {
		return nil, errs.Wrap(err, "invalid CORS configuration")
	}
	logger.Debug("CORS middleware initialized",
		"allow_origins", corsCfg.AllowOrigins,
		"expose_headers", corsCfg.ExposeHeaders,
	)
	return cors.New(corsCfg), nil
}

func withRequired(configured, required []string) []string {
	out := slices.Clone(configured)
	for _, h := range required {
		if !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}
