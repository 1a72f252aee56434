package codes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewHandler(catalog.New()).RegisterRoutes(r.Group("/api/v1/uae"))
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) listResponse {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp listResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	return resp
}

func TestListAllCodes(t *testing.T) {
	r := newTestRouter(t)

	resp := decodeList(t, get(t, r, "/api/v1/uae/codes/"))
	if resp.Total != 117 {
		t.Fatalf("expected 117 codes, got %d", resp.Total)
	}
	if len(resp.Codes) != 100 {
		t.Fatalf("expected default page of 100, got %d", len(resp.Codes))
	}
	if len(resp.Categories) != 20 {
		t.Fatalf("expected 20 categories, got %d", len(resp.Categories))
	}
}

func TestListPagination(t *testing.T) {
	r := newTestRouter(t)

	resp := decodeList(t, get(t, r, "/api/v1/uae/codes/?limit=10&offset=110"))
	if resp.Total != 117 {
		t.Fatalf("expected total 117, got %d", resp.Total)
	}
	if len(resp.Codes) != 7 {
		t.Fatalf("expected trailing page of 7, got %d", len(resp.Codes))
	}

	// Out-of-range values fall back to safe defaults.
	resp = decodeList(t, get(t, r, "/api/v1/uae/codes/?limit=9999&offset=-3"))
	if resp.Limit != 200 || resp.Offset != 0 {
		t.Fatalf("expected clamped limit=200 offset=0, got %d/%d", resp.Limit, resp.Offset)
	}

	resp = decodeList(t, get(t, r, "/api/v1/uae/codes/?offset=500"))
	if len(resp.Codes) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(resp.Codes))
	}
}

func TestListFilters(t *testing.T) {
	r := newTestRouter(t)

	t.Run("category", func(t *testing.T) {
		resp := decodeList(t, get(t, r, "/api/v1/uae/codes/?category=sal"))
		if resp.Total != 7 {
			t.Fatalf("expected 7 salary codes, got %d", resp.Total)
		}
		for _, c := range resp.Codes {
			if c.CategoryCode != "SAL" {
				t.Fatalf("stray code %s in SAL listing", c.Code)
			}
		}
	})

	t.Run("transaction_type_with_lei", func(t *testing.T) {
		resp := decodeList(t, get(t, r, "/api/v1/uae/codes/?transaction_type=domestic&requires_lei=true"))
		if resp.Total == 0 {
			t.Fatalf("expected domestic LEI-gated codes")
		}
		for _, c := range resp.Codes {
			if !c.AppliesDomestic || !c.RequiresLEI {
				t.Fatalf("filter leak: %+v", c)
			}
			if c.LEIThresholdAED == nil || *c.LEIThresholdAED != 1000000 {
				t.Fatalf("expected LEI threshold on %s", c.Code)
			}
		}
	})

	t.Run("search", func(t *testing.T) {
		resp := decodeList(t, get(t, r, "/api/v1/uae/codes/?search=salary"))
		if resp.Total == 0 {
			t.Fatalf("expected matches for 'salary'")
		}
		found := false
		for _, c := range resp.Codes {
			if c.Code == "SAL" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected SAL in search results")
		}
	})

	t.Run("no_match", func(t *testing.T) {
		resp := decodeList(t, get(t, r, "/api/v1/uae/codes/?search=zzzznope"))
		if resp.Total != 0 {
			t.Fatalf("expected no matches, got %d", resp.Total)
		}
	})
}

func TestGetSingleCode(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/v1/uae/codes/sal")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp codeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != "SAL" || resp.Name != "Salary Payment" {
		t.Fatalf("unexpected code payload: %+v", resp)
	}
	if !resp.IsActive {
		t.Fatalf("expected active code")
	}

	w = get(t, r, "/api/v1/uae/codes/NOPE")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/v1/uae/codes/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cats []categoryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cats) != 20 {
		t.Fatalf("expected 20 categories, got %d", len(cats))
	}
	totalCodes := 0
	for _, c := range cats {
		totalCodes += c.CodeCount
	}
	if totalCodes != 117 {
		t.Fatalf("category counts must cover all codes, got %d", totalCodes)
	}
}

func TestStaticBulkEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := get(t, r, "/api/v1/uae/codes/static")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp bulkResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalCodes != 117 || resp.TotalCategories != 20 {
		t.Fatalf("expected 117/20, got %d/%d", resp.TotalCodes, resp.TotalCategories)
	}
	if len(resp.CodesByCategory["SAL"]) != 7 {
		t.Fatalf("expected 7 SAL codes in bulk payload, got %d", len(resp.CodesByCategory["SAL"]))
	}
}
