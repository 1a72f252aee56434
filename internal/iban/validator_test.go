package iban

import (
	"strings"
	"testing"

	"github.com/Raafet57/uae-payment-validator/internal/catalog"
)

// Checksum-correct fixtures (MOD 97-10).
const (
	validENBD    = "AE070331234567890123456" // Emirates NBD (033)
	validFAB     = "AE460190000000000000001" // First Abu Dhabi Bank (019)
	validNoBank  = "AE089998888888888888888" // bank code 999 has no CBUAE assignment
	badCheckENBD = "AE080331234567890123456" // check digits off by one
)

func newValidator(t *testing.T) *Validator {
	t.Helper()
	return NewValidator(catalog.New())
}

func TestValidateKnownGood(t *testing.T) {
	v := newValidator(t)

	res := v.Validate(validENBD)
	if !res.Valid {
		t.Fatalf("expected valid, got error %s: %s", res.ErrorCode, res.ErrorMessage)
	}
	if res.CheckDigits != "07" {
		t.Fatalf("expected check digits 07, got %q", res.CheckDigits)
	}
	if res.BankCode != "033" {
		t.Fatalf("expected bank code 033, got %q", res.BankCode)
	}
	if res.AccountNumber != "1234567890123456" {
		t.Fatalf("expected account 1234567890123456, got %q", res.AccountNumber)
	}
	if res.BankName != "Emirates NBD" {
		t.Fatalf("expected Emirates NBD, got %q", res.BankName)
	}

	res = v.Validate(validFAB)
	if !res.Valid {
		t.Fatalf("expected valid, got error %s: %s", res.ErrorCode, res.ErrorMessage)
	}
	if res.BankName != "First Abu Dhabi Bank" {
		t.Fatalf("expected First Abu Dhabi Bank, got %q", res.BankName)
	}
}

func TestValidateNormalizesInput(t *testing.T) {
	v := newValidator(t)

	res := v.Validate("ae07 0331-2345 6789 0123 456")
	if !res.Valid {
		t.Fatalf("expected valid after normalization, got %s", res.ErrorCode)
	}
	if res.IBAN != validENBD {
		t.Fatalf("expected normalized %q, got %q", validENBD, res.IBAN)
	}
}

func TestValidateUnknownBank(t *testing.T) {
	v := newValidator(t)

	res := v.Validate(validNoBank)
	if !res.Valid {
		t.Fatalf("expected valid, got %s", res.ErrorCode)
	}
	if res.BankName != UnknownBankName {
		t.Fatalf("expected %q, got %q", UnknownBankName, res.BankName)
	}
}

func TestValidateFailureModes(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		name string
		in   string
		code ErrorCode
	}{
		{"empty", "", ErrMissingInput},
		{"spaces_only", "   ", ErrMissingInput},
		{"too_long", validENBD + "7", ErrLengthMismatch},
		{"too_short", validENBD[:22], ErrLengthMismatch},
		{"wrong_country", "GB" + validENBD[2:], ErrCountryMismatch},
		{"letter_in_body", validENBD[:22] + "X", ErrFormatInvalid},
		{"bad_checksum", badCheckENBD, ErrChecksumInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := v.Validate(tc.in)
			if res.Valid {
				t.Fatalf("expected invalid")
			}
			if res.ErrorCode != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, res.ErrorCode)
			}
		})
	}
}

// Any single-digit change must break the checksum: a prime modulus means a
// delta of d*10^k with 1 <= d <= 9 is never 0 mod 97.
func TestChecksumDetectsSingleDigitMutations(t *testing.T) {
	v := newValidator(t)

	for pos := 2; pos < len(validENBD); pos++ {
		mutated := []byte(validENBD)
		mutated[pos] = '0' + (mutated[pos]-'0'+1)%10
		res := v.Validate(string(mutated))
		if res.Valid {
			t.Fatalf("mutation at position %d went undetected: %s", pos, mutated)
		}
		if res.ErrorCode != ErrChecksumInvalid {
			t.Fatalf("mutation at position %d: expected CHECKSUM_INVALID, got %s", pos, res.ErrorCode)
		}
	}
}

func TestFormatGroupsIntoFourCharBlocks(t *testing.T) {
	got := Format(validENBD)
	want := "AE07 0331 2345 6789 0123 456"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if strings.ReplaceAll(got, " ", "") != validENBD {
		t.Fatalf("formatting must round-trip to the normalized value")
	}
}

func TestFormatDoesNotValidate(t *testing.T) {
	if got := Format("ae12-34"); got != "AE12 34" {
		t.Fatalf("expected %q, got %q", "AE12 34", got)
	}
}

func TestNewValidatorNilCatalogPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil catalog")
		}
	}()
	NewValidator(nil)
}
