package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
	"github.com/Raafet57/uae-payment-validator/internal/validation"
)

func TestHealthStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHandler(catalog.New(), validation.DefaultLimits()).RegisterRoutes(r.Group("/api/v1/uae"))

	for _, path := range []string{"/api/v1/uae/health", "/api/v1/uae/health/"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}

		var payload struct {
			Status  string `json:"status"`
			Module  string `json:"module"`
			Version string `json:"version"`
			Config  struct {
				PurposeCodes          int    `json:"purpose_codes"`
				Categories            int    `json:"categories"`
				HighValueThresholdAED string `json:"high_value_threshold_aed"`
			} `json:"config"`
			Features []string `json:"features"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if payload.Status != "healthy" || payload.Module != "uae" {
			t.Fatalf("%s: unexpected payload: %+v", path, payload)
		}
		if payload.Config.PurposeCodes != 117 || payload.Config.Categories != 20 {
			t.Fatalf("%s: expected 117 codes / 20 categories, got %+v", path, payload.Config)
		}
		if payload.Config.HighValueThresholdAED != "500000" {
			t.Fatalf("%s: unexpected threshold %q", path, payload.Config.HighValueThresholdAED)
		}
		if len(payload.Features) == 0 {
			t.Fatalf("%s: expected feature list", path)
		}
	}
}
