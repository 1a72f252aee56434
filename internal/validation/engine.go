package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
	"github.com/Raafet57/uae-payment-validator/internal/iban"
)

// Regulatory policy defaults (CBUAE Circular 22/2021 and UAEFTS AUX700).
// Jurisdiction-specific deployments override them through Limits.
const (
	DefaultHighValueThresholdAED  = 500_000
	DefaultLEIThresholdAED        = 1_000_000
	DefaultPenaltyPerViolationAED = 1_000
)

// STP rating bands.
const (
	ratingHighMin   = 90
	ratingMediumMin = 70

	RatingHigh   = "high"
	RatingMedium = "medium"
	RatingLow    = "low"
)

// Rule codes.
const (
	RulePPCMandatory     = "UAE_PPC_MANDATORY"
	RulePPCValid         = "UAE_PPC_VALID"
	RulePPCApplicability = "UAE_PPC_APPLICABILITY"
	RuleIBANDebtor       = "UAE_IBAN_DEBTOR"
	RuleIBANCreditor     = "UAE_IBAN_CREDITOR"
	RuleLEIDebtor        = "UAE_LEI_DEBTOR"
	RuleLEIDebtorFormat  = "UAE_LEI_DEBTOR_FORMAT"
	RuleHighValue        = "UAE_HIGH_VALUE"
)

// Error codes surfaced on failed checks.
const (
	ErrPPCRequired              = "PPC_REQUIRED"
	ErrPPCInvalid               = "PPC_INVALID"
	ErrPPCNotApplicable         = "PPC_NOT_APPLICABLE"
	ErrPPCNotApplicableDomestic = "PPC_NOT_APPLICABLE_DOMESTIC"
	ErrIBANInvalid              = "IBAN_INVALID"
	ErrLEIRequired              = "LEI_REQUIRED"
	ErrLEIFormatInvalid         = "LEI_FORMAT_INVALID"
)

// STP score impacts per rule outcome. Always ≤ 0.
const (
	impactPPCMissing          = -20
	impactPPCUnknown          = -20
	impactPPCNotApplicable    = -10
	impactPPCDomesticMismatch = -5
	impactIBANInvalid         = -15
	impactLEIMissing          = -25
	impactLEIFormat           = -20
	impactHighValue           = -5
)

var leiPattern = regexp.MustCompile(`^[A-Z0-9]{20}$`)

// Limits carries the regulatory thresholds injected into the engine.
type Limits struct {
	HighValueThresholdAED  decimal.Decimal
	LEIThresholdAED        decimal.Decimal
	PenaltyPerViolationAED decimal.Decimal
}

// DefaultLimits returns the CBUAE reference thresholds.
func DefaultLimits() Limits {
	return Limits{
		HighValueThresholdAED:  decimal.NewFromInt(DefaultHighValueThresholdAED),
		LEIThresholdAED:        decimal.NewFromInt(DefaultLEIThresholdAED),
		PenaltyPerViolationAED: decimal.NewFromInt(DefaultPenaltyPerViolationAED),
	}
}

// Engine evaluates transactions against the UAEFTS rule set. It is pure and
// stateless across calls: any number of goroutines may call Evaluate
// concurrently on a shared instance.
type Engine struct {
	catalog *catalog.Catalog
	ibans   *iban.Validator
	limits  Limits
}

// NewEngine wires the engine with its collaborators. It panics on a nil
// collaborator or non-positive limits, which are caller contract breaches.
func NewEngine(c *catalog.Catalog, v *iban.Validator, limits Limits) *Engine {
	if c == nil {
		panic("validation: nil catalog")
	}
	if v == nil {
		panic("validation: nil iban validator")
	}
	if !limits.HighValueThresholdAED.IsPositive() ||
		!limits.LEIThresholdAED.IsPositive() ||
		!limits.PenaltyPerViolationAED.IsPositive() {
		panic("validation: limits must be positive")
	}
	return &Engine{catalog: c, ibans: v, limits: limits}
}

// Limits returns the thresholds the engine was built with.
func (e *Engine) Limits() Limits {
	return e.limits
}

// Evaluate runs the fixed rule pipeline over a well-formed request and
// aggregates the results into a verdict. It cannot fail: every branch of
// every rule has a defined outcome.
func (e *Engine) Evaluate(req Request) Verdict {
	start := time.Now()

	results := make([]CheckResult, 0, 8)
	results = append(results, e.checkPurposeCode(req)...)
	results = append(results, e.checkIBANs(req)...)
	results = append(results, e.checkLEI(req)...)
	results = append(results, e.checkAmount(req)...)

	score := stpScore(results)
	violations := violationCount(results)
	penaltyRisk := e.limits.PenaltyPerViolationAED.Mul(decimal.NewFromInt(int64(violations)))

	return e.buildVerdict(req, results, score, violations, penaltyRisk, start)
}

// checkPurposeCode enforces presence for offshore transactions and, when a
// code is supplied, catalog membership and corridor applicability. Domestic
// transactions without a code emit nothing: the field is optional there.
func (e *Engine) checkPurposeCode(req Request) []CheckResult {
	if req.PurposeCode == "" {
		if req.TransactionType != TypeOffshore {
			return nil
		}
		return []CheckResult{{
			RuleCode:         RulePPCMandatory,
			RuleName:         "Purpose Code Mandatory for Cross-Border",
			RuleCategory:     "mandatory",
			FieldCode:        "purpose_code",
			Status:           StatusFail,
			IsValid:          false,
			ErrorCode:        ErrPPCRequired,
			ErrorMessage:     "Purpose code is mandatory for offshore payments per UAEFTS AUX700",
			UAEFTSReference:  "AUX700 Section 4.1",
			Remediation:      "Select a valid purpose code (e.g., SAL, FAM, GDE)",
			Severity:         SeverityError,
			STPImpact:        impactPPCMissing,
			PenaltyAmountAED: e.limits.PenaltyPerViolationAED,
		}}
	}

	ppc, ok := e.catalog.LookupPurposeCode(req.PurposeCode)
	if !ok {
		return []CheckResult{{
			RuleCode:         RulePPCValid,
			RuleName:         "Purpose Code Validation",
			RuleCategory:     "enumeration",
			FieldCode:        "purpose_code",
			FieldValue:       req.PurposeCode,
			Status:           StatusFail,
			IsValid:          false,
			ErrorCode:        ErrPPCInvalid,
			ErrorMessage:     fmt.Sprintf("Purpose code %q is not a valid UAE code", req.PurposeCode),
			UAEFTSReference:  "AUX700 Appendix A",
			Remediation:      "Use one of the 117 valid UAE codes (SAL, FAM, GDE, etc.)",
			Severity:         SeverityError,
			STPImpact:        impactPPCUnknown,
			PenaltyAmountAED: e.limits.PenaltyPerViolationAED,
		}}
	}

	switch {
	case req.TransactionType == TypeOffshore && !ppc.AppliesOffshore:
		return []CheckResult{{
			RuleCode:     RulePPCApplicability,
			RuleName:     "Purpose Code Applicability",
			RuleCategory: "enumeration",
			FieldCode:    "purpose_code",
			FieldValue:   req.PurposeCode,
			Status:       StatusWarning,
			IsValid:      false,
			ErrorCode:    ErrPPCNotApplicable,
			ErrorMessage: fmt.Sprintf("%q is not applicable for offshore transactions", req.PurposeCode),
			Severity:     SeverityWarning,
			STPImpact:    impactPPCNotApplicable,
		}}
	case req.TransactionType == TypeDomestic && !ppc.AppliesDomestic:
		return []CheckResult{{
			RuleCode:     RulePPCApplicability,
			RuleName:     "Purpose Code Applicability",
			RuleCategory: "enumeration",
			FieldCode:    "purpose_code",
			FieldValue:   req.PurposeCode,
			Status:       StatusWarning,
			IsValid:      false,
			ErrorCode:    ErrPPCNotApplicableDomestic,
			ErrorMessage: fmt.Sprintf("%q is typically for offshore, not domestic", req.PurposeCode),
			Severity:     SeverityWarning,
			STPImpact:    impactPPCDomesticMismatch,
		}}
	default:
		return []CheckResult{{
			RuleCode:     RulePPCValid,
			RuleName:     "Purpose Code Validation",
			RuleCategory: "enumeration",
			FieldCode:    "purpose_code",
			FieldValue:   req.PurposeCode,
			Status:       StatusPass,
			IsValid:      true,
			Severity:     SeverityInfo,
		}}
	}
}

// checkIBANs validates whichever of the debtor/creditor IBANs are present.
// Absent IBANs emit no result and count as valid at the verdict level.
func (e *Engine) checkIBANs(req Request) []CheckResult {
	var results []CheckResult

	if req.DebtorIBAN != "" {
		results = append(results, e.ibanResult(
			RuleIBANDebtor, "Debtor IBAN Validation", "debtor_iban",
			req.DebtorIBAN, "AUX700 Section 3.2",
		))
	}
	if req.CreditorIBAN != "" {
		results = append(results, e.ibanResult(
			RuleIBANCreditor, "Creditor IBAN Validation", "creditor_iban",
			req.CreditorIBAN, "",
		))
	}

	return results
}

func (e *Engine) ibanResult(ruleCode, ruleName, fieldCode, value, reference string) CheckResult {
	res := e.ibans.Validate(value)

	cr := CheckResult{
		RuleCode:        ruleCode,
		RuleName:        ruleName,
		RuleCategory:    "format",
		FieldCode:       fieldCode,
		FieldValue:      value,
		Status:          StatusPass,
		IsValid:         true,
		UAEFTSReference: reference,
		Severity:        SeverityInfo,
	}
	if !res.Valid {
		cr.Status = StatusFail
		cr.IsValid = false
		cr.ErrorCode = ErrIBANInvalid
		cr.ErrorMessage = res.ErrorMessage
		cr.Remediation = "Provide valid UAE IBAN: AE + 21 digits"
		cr.Severity = SeverityError
		cr.STPImpact = impactIBANInvalid
		cr.PenaltyAmountAED = e.limits.PenaltyPerViolationAED
	}
	return cr
}

// checkLEI enforces the high-value entity-identifier rule. Only the debtor
// side is inspected; the creditor LEI is accepted but never checked.
func (e *Engine) checkLEI(req Request) []CheckResult {
	if req.Amount.LessThan(e.limits.LEIThresholdAED) {
		return nil
	}

	if req.DebtorLEI == "" {
		return []CheckResult{{
			RuleCode:         RuleLEIDebtor,
			RuleName:         "Debtor LEI Required for High Value",
			RuleCategory:     "threshold",
			FieldCode:        "debtor_lei",
			Status:           StatusFail,
			IsValid:          false,
			ErrorCode:        ErrLEIRequired,
			ErrorMessage:     fmt.Sprintf("Debtor LEI required for transactions >= AED %s", e.limits.LEIThresholdAED.StringFixed(0)),
			UAEFTSReference:  "AUX700 Section 5.1",
			Remediation:      "Provide a valid 20-character LEI",
			Severity:         SeverityError,
			STPImpact:        impactLEIMissing,
			PenaltyAmountAED: e.limits.PenaltyPerViolationAED,
		}}
	}

	if !validLEI(req.DebtorLEI) {
		return []CheckResult{{
			RuleCode:         RuleLEIDebtorFormat,
			RuleName:         "Debtor LEI Format",
			RuleCategory:     "format",
			FieldCode:        "debtor_lei",
			FieldValue:       req.DebtorLEI,
			Status:           StatusFail,
			IsValid:          false,
			ErrorCode:        ErrLEIFormatInvalid,
			ErrorMessage:     "LEI must be 20 alphanumeric characters",
			Remediation:      "Provide a valid 20-character LEI",
			Severity:         SeverityError,
			STPImpact:        impactLEIFormat,
			PenaltyAmountAED: e.limits.PenaltyPerViolationAED,
		}}
	}

	return []CheckResult{{
		RuleCode:     RuleLEIDebtor,
		RuleName:     "Debtor LEI Validation",
		RuleCategory: "format",
		FieldCode:    "debtor_lei",
		FieldValue:   req.DebtorLEI,
		Status:       StatusPass,
		IsValid:      true,
		Severity:     SeverityInfo,
	}}
}

// checkAmount flags high-value transactions. Informational: the result is
// valid, so it never affects the compliance flag or the STP score.
func (e *Engine) checkAmount(req Request) []CheckResult {
	if req.Amount.LessThan(e.limits.HighValueThresholdAED) {
		return nil
	}
	return []CheckResult{{
		RuleCode:     RuleHighValue,
		RuleName:     "High Value Transaction Flag",
		RuleCategory: "threshold",
		FieldCode:    "amount",
		FieldValue:   req.Amount.String(),
		Status:       StatusWarning,
		IsValid:      false,
		ErrorMessage: fmt.Sprintf("High-value transaction (>= AED %s)", e.limits.HighValueThresholdAED.StringFixed(0)),
		Severity:     SeverityWarning,
		STPImpact:    impactHighValue,
	}}
}

// stpScore starts at 100, applies the impact of every failed check and
// clamps to [0,100].
func stpScore(results []CheckResult) int {
	score := 100
	for _, r := range results {
		if !r.IsValid {
			score += r.STPImpact
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func stpRating(score int) string {
	switch {
	case score >= ratingHighMin:
		return RatingHigh
	case score >= ratingMediumMin:
		return RatingMedium
	default:
		return RatingLow
	}
}

// violationCount counts error-severity failures. Warnings never count.
func violationCount(results []CheckResult) int {
	n := 0
	for _, r := range results {
		if !r.IsValid && r.Severity == SeverityError {
			n++
		}
	}
	return n
}

func validLEI(lei string) bool {
	return leiPattern.MatchString(lei)
}

func (e *Engine) buildVerdict(
	req Request,
	results []CheckResult,
	score, violations int,
	penaltyRisk decimal.Decimal,
	start time.Time,
) Verdict {
	ppcValid := true
	ppcDescription := ""
	if req.PurposeCode != "" {
		if ppc, ok := e.catalog.LookupPurposeCode(req.PurposeCode); ok {
			ppcDescription = ppc.Name
		} else {
			ppcValid = false
		}
	}

	details := IBANDetails{}
	debtorValid, creditorValid := true, true
	if req.DebtorIBAN != "" {
		res := e.ibans.Validate(req.DebtorIBAN)
		details.Debtor = &res
		debtorValid = res.Valid
	}
	if req.CreditorIBAN != "" {
		res := e.ibans.Validate(req.CreditorIBAN)
		details.Creditor = &res
		creditorValid = res.Valid
	}

	passed, failed, warnings, errorsN := 0, 0, 0, 0
	for _, r := range results {
		if r.IsValid {
			passed++
			continue
		}
		failed++
		switch r.Severity {
		case SeverityError:
			errorsN++
		case SeverityWarning:
			warnings++
		}
	}

	leiRequired := req.Amount.GreaterThanOrEqual(e.limits.LEIThresholdAED)
	leiProvided := req.DebtorLEI != "" || req.CreditorLEI != ""

	return Verdict{
		SessionUUID:            uuid.NewString(),
		TransactionType:        req.TransactionType,
		TransactionDirection:   req.TransactionDirection,
		PurposeCode:            req.PurposeCode,
		PurposeCodeValid:       ppcValid,
		PurposeCodeDescription: ppcDescription,
		DebtorIBANValid:        debtorValid,
		CreditorIBANValid:      creditorValid,
		IBANDetails:            details,
		LEIRequired:            leiRequired,
		LEIProvided:            leiProvided,
		STPScore:               score,
		STPRating:              stpRating(score),
		ViolationCount:         violations,
		TotalPenaltyRiskAED:    penaltyRisk,
		ValidationStatus:       "completed",
		Results:                results,
		Recommendations:        buildRecommendations(results),
		Summary: Summary{
			TotalRules:      len(results),
			Passed:          passed,
			Failed:          failed,
			Warnings:        warnings,
			Errors:          errorsN,
			UAEFTSCompliant: errorsN == 0,
			AmountAED:       req.Amount,
			IsHighValue:     req.Amount.GreaterThanOrEqual(e.limits.HighValueThresholdAED),
			LEIRequired:     leiRequired,
			LEIProvided:     leiProvided,
		},
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		CreatedAt:        time.Now().UTC(),
	}
}
