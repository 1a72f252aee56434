package codes

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
	"github.com/Raafet57/uae-payment-validator/internal/shared/server/respond"
	"github.com/Raafet57/uae-payment-validator/internal/validation"
)

const (
	defaultLimit = 100
	maxLimit     = 200
)

// Handler serves the purpose-code lookup endpoints.
type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}

// RegisterRoutes mounts the code lookup routes on the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/codes")
	g.GET("", h.list)
	g.GET("/", h.list)
	g.GET("/static", h.static)
	g.GET("/categories", h.categories)
	g.GET("/:code", h.get)
}

func (h *Handler) list(c *gin.Context) {
	filtered := h.filterCodes(c)

	limit := queryInt(c, "limit", defaultLimit, 1, maxLimit)
	offset := queryInt(c, "offset", 0, 0, 1<<30)

	total := len(filtered)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := filtered[offset:end]

	out := make([]codeResponse, 0, len(page))
	for _, pc := range page {
		out = append(out, h.toResponse(pc))
	}

	respond.JSON(c, http.StatusOK, listResponse{
		Total:      total,
		Offset:     offset,
		Limit:      limit,
		Codes:      out,
		Categories: h.categoryResponses(),
	})
}

func (h *Handler) filterCodes(c *gin.Context) []catalog.PurposeCode {
	all := h.catalog.AllCodes()
	filtered := make([]catalog.PurposeCode, 0, len(all))

	category := strings.ToUpper(strings.TrimSpace(c.Query("category")))
	txType := strings.TrimSpace(c.Query("transaction_type"))
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	requiresLEI, hasLEIFilter := queryBool(c, "requires_lei")

	for _, pc := range all {
		if category != "" && pc.Category != category {
			continue
		}
		if txType == validation.TypeDomestic && !pc.AppliesDomestic {
			continue
		}
		if txType == validation.TypeOffshore && !pc.AppliesOffshore {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(pc.Code), search) &&
			!strings.Contains(strings.ToLower(pc.Name), search) {
			continue
		}
		if hasLEIFilter && pc.RequiresLEI != requiresLEI {
			continue
		}
		filtered = append(filtered, pc)
	}
	return filtered
}

func (h *Handler) static(c *gin.Context) {
	byCategory := make(map[string][]codeResponse, len(h.catalog.AllCategories()))
	for _, cat := range h.catalog.AllCategories() {
		codes := h.catalog.CodesByCategory(cat.Code)
		if len(codes) == 0 {
			continue
		}
		out := make([]codeResponse, 0, len(codes))
		for _, pc := range codes {
			out = append(out, h.toResponse(pc))
		}
		byCategory[cat.Code] = out
	}

	respond.JSON(c, http.StatusOK, bulkResponse{
		TotalCodes:      len(h.catalog.AllCodes()),
		TotalCategories: len(h.catalog.AllCategories()),
		Categories:      h.categoryResponses(),
		CodesByCategory: byCategory,
	})
}

func (h *Handler) categories(c *gin.Context) {
	respond.JSON(c, http.StatusOK, h.categoryResponses())
}

func (h *Handler) get(c *gin.Context) {
	code := c.Param("code")
	pc, ok := h.catalog.LookupPurposeCode(code)
	if !ok {
		respond.Error(c, http.StatusNotFound, "not_found", "purpose code not found", nil)
		return
	}
	respond.JSON(c, http.StatusOK, h.toResponse(pc))
}

func (h *Handler) categoryResponses() []categoryResponse {
	cats := h.catalog.AllCategories()
	out := make([]categoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryResponse{
			CategoryCode:    cat.Code,
			CategoryName:    cat.Name,
			CrossBorderOnly: cat.CrossBorderOnly,
			CodeCount:       len(h.catalog.CodesByCategory(cat.Code)),
		})
	}
	return out
}

func (h *Handler) toResponse(pc catalog.PurposeCode) codeResponse {
	resp := codeResponse{
		Code:            pc.Code,
		Name:            pc.Name,
		CategoryCode:    pc.Category,
		CategoryName:    h.catalog.CategoryName(pc.Category),
		AppliesDomestic: pc.AppliesDomestic,
		AppliesOffshore: pc.AppliesOffshore,
		RequiresLEI:     pc.RequiresLEI,
		IsActive:        true,
	}
	if pc.RequiresLEI {
		threshold := int64(validation.DefaultLEIThresholdAED)
		resp.LEIThresholdAED = &threshold
	}
	return resp
}

func queryInt(c *gin.Context, key string, def, min, max int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func queryBool(c *gin.Context, key string) (value, present bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return false, false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return b, true
}
