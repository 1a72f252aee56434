package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
	"github.com/Raafet57/uae-payment-validator/internal/shared/server/respond"
	"github.com/Raafet57/uae-payment-validator/internal/validation"
)

const (
	module  = "uae"
	version = "1.0.0"
)

// Handler serves the health endpoint with a snapshot of the active
// regulatory thresholds and catalog size.
type Handler struct {
	catalog *catalog.Catalog
	limits  validation.Limits
}

func NewHandler(c *catalog.Catalog, limits validation.Limits) *Handler {
	return &Handler{catalog: c, limits: limits}
}

// RegisterRoutes mounts the health routes on the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/health")
	g.GET("", h.status)
	g.GET("/", h.status)
}

func (h *Handler) status(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"status":    "healthy",
		"module":    module,
		"version":   version,
		"timestamp": time.Now().UTC(),
		"config": gin.H{
			"purpose_codes":             len(h.catalog.AllCodes()),
			"categories":                len(h.catalog.AllCategories()),
			"high_value_threshold_aed":  h.limits.HighValueThresholdAED,
			"lei_threshold_aed":         h.limits.LEIThresholdAED,
			"penalty_per_violation_aed": h.limits.PenaltyPerViolationAED,
		},
		"features": []string{
			"purpose_code_validation",
			"iban_validation",
			"lei_validation",
			"stp_scoring",
			"penalty_assessment",
		},
	})
}
