package validation

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raafet57/uae-payment-validator/internal/iban"
)

// Transaction types and directions accepted by the engine.
const (
	TypeDomestic = "domestic"
	TypeOffshore = "offshore"

	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Severity levels attached to check results.
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Per-check statuses.
const (
	StatusPass    = "pass"
	StatusFail    = "fail"
	StatusWarning = "warning"
)

const maxRemittanceInfoLen = 140

var purposeCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,5}$`)

// Request is a single transaction to validate. It is bound from JSON at the
// HTTP boundary and immutable for the duration of an evaluation.
type Request struct {
	TransactionType      string          `json:"transaction_type" binding:"required,oneof=domestic offshore"`
	TransactionDirection string          `json:"transaction_direction" binding:"required,oneof=inbound outbound"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency" binding:"omitempty,max=3"`
	PurposeCode          string          `json:"purpose_code"`
	DebtorIBAN           string          `json:"debtor_iban"`
	CreditorIBAN         string          `json:"creditor_iban"`
	DebtorLEI            string          `json:"debtor_lei"`
	CreditorLEI          string          `json:"creditor_lei"`
	RemittanceInfo       string          `json:"remittance_info"`
}

// Normalize applies canonical forms: uppercased purpose code and a default
// AED currency.
func (r *Request) Normalize() {
	r.PurposeCode = strings.ToUpper(strings.TrimSpace(r.PurposeCode))
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = "AED"
	}
}

// Validate rejects requests the engine must never see; malformed input is a
// request-construction concern, not a rule check. Call after Normalize.
func (r *Request) Validate() error {
	if !r.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	if r.PurposeCode != "" && !purposeCodePattern.MatchString(r.PurposeCode) {
		return errors.New("purpose_code must be 2-5 alphanumeric characters")
	}
	if len(r.RemittanceInfo) > maxRemittanceInfoLen {
		return errors.New("remittance_info must be at most 140 characters")
	}
	return nil
}

// CheckResult is the outcome of one rule check. Results are never mutated
// after creation; the ordered sequence of them is the engine's primary
// output artifact.
type CheckResult struct {
	RuleCode         string          `json:"rule_code"`
	RuleName         string          `json:"rule_name"`
	RuleCategory     string          `json:"rule_category"`
	FieldCode        string          `json:"field_code"`
	FieldValue       string          `json:"field_value,omitempty"`
	Status           string          `json:"validation_status"`
	IsValid          bool            `json:"is_valid"`
	ErrorCode        string          `json:"error_code,omitempty"`
	ErrorMessage     string          `json:"error_message,omitempty"`
	UAEFTSReference  string          `json:"uaefts_reference,omitempty"`
	Remediation      string          `json:"remediation_suggestion,omitempty"`
	Severity         string          `json:"severity"`
	STPImpact        int             `json:"stp_impact"`
	PenaltyAmountAED decimal.Decimal `json:"penalty_amount_aed"`
}

// Recommendation is a ranked remediation step derived from a failed check.
type Recommendation struct {
	Type              string          `json:"recommendation_type"`
	FieldCode         string          `json:"field_code"`
	Priority          string          `json:"priority"`
	CurrentValue      string          `json:"current_value,omitempty"`
	Reason            string          `json:"reason"`
	STPImprovement    int             `json:"stp_improvement"`
	PenaltyAvoidedAED decimal.Decimal `json:"penalty_avoided_aed"`
}

// Summary aggregates result counts and the headline flags.
type Summary struct {
	TotalRules      int             `json:"total_rules"`
	Passed          int             `json:"passed"`
	Failed          int             `json:"failed"`
	Warnings        int             `json:"warnings"`
	Errors          int             `json:"errors"`
	UAEFTSCompliant bool            `json:"uaefts_compliant"`
	AmountAED       decimal.Decimal `json:"amount_aed"`
	IsHighValue     bool            `json:"is_high_value"`
	LEIRequired     bool            `json:"lei_required"`
	LEIProvided     bool            `json:"lei_provided"`
}

// IBANDetails pairs the per-side IBAN breakdowns in the verdict.
type IBANDetails struct {
	Debtor   *iban.Result `json:"debtor"`
	Creditor *iban.Result `json:"creditor"`
}

// Verdict is the full evaluation output for one request.
type Verdict struct {
	SessionUUID            string           `json:"session_uuid"`
	TransactionType        string           `json:"transaction_type"`
	TransactionDirection   string           `json:"transaction_direction"`
	PurposeCode            string           `json:"purpose_code,omitempty"`
	PurposeCodeValid       bool             `json:"purpose_code_valid"`
	PurposeCodeDescription string           `json:"purpose_code_description,omitempty"`
	DebtorIBANValid        bool             `json:"debtor_iban_valid"`
	CreditorIBANValid      bool             `json:"creditor_iban_valid"`
	IBANDetails            IBANDetails      `json:"iban_details"`
	LEIRequired            bool             `json:"lei_required"`
	LEIProvided            bool             `json:"lei_provided"`
	STPScore               int              `json:"stp_score"`
	STPRating              string           `json:"stp_rating"`
	ViolationCount         int              `json:"violation_count"`
	TotalPenaltyRiskAED    decimal.Decimal  `json:"total_penalty_risk_aed"`
	ValidationStatus       string           `json:"validation_status"`
	Results                []CheckResult    `json:"results"`
	Recommendations        []Recommendation `json:"recommendations"`
	Summary                Summary          `json:"summary"`
	ProcessingTimeMS       int64            `json:"processing_time_ms"`
	CreatedAt              time.Time        `json:"created_at"`
}
