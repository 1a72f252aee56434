package validation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raafet57/uae-payment-validator/internal/iban"
	"github.com/Raafet57/uae-payment-validator/internal/shared/server/respond"
	"github.com/Raafet57/uae-payment-validator/internal/shared/telemetry"
)

// Handler exposes the validation endpoints.
type Handler struct {
	engine *Engine
	ibans  *iban.Validator
}

func NewHandler(engine *Engine, ibans *iban.Validator) *Handler {
	return &Handler{engine: engine, ibans: ibans}
}

// RegisterRoutes mounts the validation routes on the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	v := rg.Group("/validation")
	v.POST("/validate", h.validate)
	v.POST("/validate-iban", h.validateIBAN)
}

func (h *Handler) validate(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", err.Error())
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	verdict := h.engine.Evaluate(req)

	telemetry.Info("validation.complete", map[string]any{
		"request_id":       c.GetString("requestId"),
		"session_uuid":     verdict.SessionUUID,
		"transaction_type": verdict.TransactionType,
		"stp_score":        verdict.STPScore,
		"stp_rating":       verdict.STPRating,
		"violations":       verdict.ViolationCount,
		"compliant":        verdict.Summary.UAEFTSCompliant,
	})

	respond.JSON(c, http.StatusOK, verdict)
}

type ibanRequest struct {
	IBAN string `json:"iban" binding:"required"`
}

type ibanResponse struct {
	IBAN          string `json:"iban"`
	Valid         bool   `json:"is_valid"`
	FormattedIBAN string `json:"formatted_iban,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	CheckDigits   string `json:"check_digits,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	ErrorMessage  string `json:"error_message,omitempty"`
}

func (h *Handler) validateIBAN(c *gin.Context) {
	var req ibanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "iban is required", nil)
		return
	}

	res := h.ibans.Validate(req.IBAN)

	resp := ibanResponse{
		IBAN:          req.IBAN,
		Valid:         res.Valid,
		BankCode:      res.BankCode,
		BankName:      res.BankName,
		AccountNumber: res.AccountNumber,
		CheckDigits:   res.CheckDigits,
		ErrorCode:     string(res.ErrorCode),
		ErrorMessage:  res.ErrorMessage,
	}
	if res.Valid {
		resp.IBAN = res.IBAN
		resp.FormattedIBAN = iban.Format(res.IBAN)
	}

	respond.JSON(c, http.StatusOK, resp)
}
