package iban

import (
	"fmt"
	"strings"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
)

// UAE IBAN structure: "AE" + 2 check digits + 3-digit bank code + 16-digit
// account number, 23 characters total.
const (
	Length      = 23
	CountryCode = "AE"

	checkDigitsEnd = 4
	bankCodeEnd    = 7
)

// UnknownBankName is reported when the bank code has no CBUAE assignment.
// An unknown bank does not invalidate the IBAN.
const UnknownBankName = "Unknown Bank"

// ErrorCode classifies why an IBAN failed validation.
type ErrorCode string

const (
	ErrMissingInput    ErrorCode = "MISSING_INPUT"
	ErrLengthMismatch  ErrorCode = "LENGTH_MISMATCH"
	ErrCountryMismatch ErrorCode = "COUNTRY_MISMATCH"
	ErrFormatInvalid   ErrorCode = "FORMAT_INVALID"
	ErrChecksumInvalid ErrorCode = "CHECKSUM_INVALID"
)

// Result carries the outcome of validating a single IBAN.
type Result struct {
	IBAN          string    `json:"iban,omitempty"`
	Valid         bool      `json:"is_valid"`
	CheckDigits   string    `json:"check_digits,omitempty"`
	BankCode      string    `json:"bank_code,omitempty"`
	BankName      string    `json:"bank_name,omitempty"`
	AccountNumber string    `json:"account_number,omitempty"`
	ErrorCode     ErrorCode `json:"error_code,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// Validator validates UAE IBANs and resolves issuing banks against the
// reference catalog. It is stateless and safe for concurrent use.
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator panics on a nil catalog: wiring the validator without
// reference data is a caller contract breach.
func NewValidator(c *catalog.Catalog) *Validator {
	if c == nil {
		panic("iban: nil catalog")
	}
	return &Validator{catalog: c}
}

// Validate normalizes and validates a UAE IBAN. Expected failures are
// reported in the Result, never as an error.
func (v *Validator) Validate(raw string) Result {
	normalized := Normalize(raw)
	if normalized == "" {
		return Result{
			Valid:        false,
			ErrorCode:    ErrMissingInput,
			ErrorMessage: "IBAN is required",
		}
	}

	if len(normalized) != Length {
		return Result{
			Valid:        false,
			ErrorCode:    ErrLengthMismatch,
			ErrorMessage: fmt.Sprintf("UAE IBAN must be %d characters (got %d)", Length, len(normalized)),
		}
	}

	if !strings.HasPrefix(normalized, CountryCode) {
		return Result{
			Valid:        false,
			ErrorCode:    ErrCountryMismatch,
			ErrorMessage: fmt.Sprintf("UAE IBAN must start with %q", CountryCode),
		}
	}

	if !allDigits(normalized[len(CountryCode):]) {
		return Result{
			Valid:        false,
			ErrorCode:    ErrFormatInvalid,
			ErrorMessage: "UAE IBAN must be AE followed by 21 digits",
		}
	}

	checkDigits := normalized[len(CountryCode):checkDigitsEnd]
	bankCode := normalized[checkDigitsEnd:bankCodeEnd]
	accountNumber := normalized[bankCodeEnd:]

	if !checksumOK(normalized) {
		return Result{
			Valid:         false,
			CheckDigits:   checkDigits,
			BankCode:      bankCode,
			AccountNumber: accountNumber,
			ErrorCode:     ErrChecksumInvalid,
			ErrorMessage:  "Invalid IBAN checksum",
		}
	}

	bankName := UnknownBankName
	if bank, ok := v.catalog.LookupBank(bankCode); ok {
		bankName = bank.Name
	}

	return Result{
		IBAN:          normalized,
		Valid:         true,
		CheckDigits:   checkDigits,
		BankCode:      bankCode,
		BankName:      bankName,
		AccountNumber: accountNumber,
	}
}

// Normalize uppercases the input and strips spaces and hyphens.
func Normalize(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "")
	return strings.ReplaceAll(normalized, "-", "")
}

// Format regroups a normalized IBAN into space-separated 4-character blocks
// for display. It does not validate.
func Format(raw string) string {
	normalized := Normalize(raw)
	var b strings.Builder
	for i := 0; i < len(normalized); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(normalized) {
			end = len(normalized)
		}
		b.WriteString(normalized[i:end])
	}
	return b.String()
}

// checksumOK runs the ISO 13616 MOD 97-10 check: move the first four
// characters to the end, map letters to two-digit values (A=10 .. Z=35) and
// require the resulting decimal number to be ≡ 1 (mod 97). The remainder is
// reduced as digits are consumed; the 25-digit number is never materialized.
func checksumOK(normalized string) bool {
	rearranged := normalized[4:] + normalized[:4]

	rem := 0
	for i := 0; i < len(rearranged); i++ {
		ch := rearranged[i]
		switch {
		case ch >= '0' && ch <= '9':
			rem = (rem*10 + int(ch-'0')) % 97
		case ch >= 'A' && ch <= 'Z':
			rem = (rem*100 + int(ch-'A') + 10) % 97
		default:
			return false
		}
	}
	return rem == 1
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
