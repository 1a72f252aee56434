package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
	"github.com/Raafet57/uae-payment-validator/internal/codes"
	"github.com/Raafet57/uae-payment-validator/internal/health"
	"github.com/Raafet57/uae-payment-validator/internal/iban"
	"github.com/Raafet57/uae-payment-validator/internal/shared/config"
	"github.com/Raafet57/uae-payment-validator/internal/shared/server/middleware"
	"github.com/Raafet57/uae-payment-validator/internal/shared/server/respond"
	"github.com/Raafet57/uae-payment-validator/internal/validation"
)

const validationRateGroup = "VALIDATION"

// NewRouter constructs the Gin engine with middleware and routes registered.
// The reference catalog is built once here and shared by reference across
// all handlers; nothing mutates it afterwards.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	cat := catalog.New()
	ibans := iban.NewValidator(cat)
	limits := cfg.Limits()
	engine := validation.NewEngine(cat, ibans, limits)

	api := r.Group("/api/v1/uae")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			validationRateGroup: {Rate: 20, Burst: 40},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.Contains(c.FullPath(), "/validation/") {
				return validationRateGroup
			}
			return ""
		},
	}))

	validation.NewHandler(engine, ibans).RegisterRoutes(api)
	codes.NewHandler(cat).RegisterRoutes(api)
	health.NewHandler(cat, limits).RegisterRoutes(api)

	r.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"name":    "UAE Payment Validator API",
			"version": "1.0.0",
			"health":  "/api/v1/uae/health/",
			"endpoints": gin.H{
				"codes":      "/api/v1/uae/codes/",
				"validation": "/api/v1/uae/validation/validate",
				"iban":       "/api/v1/uae/validation/validate-iban",
			},
		})
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
