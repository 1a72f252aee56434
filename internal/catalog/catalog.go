package catalog

import (
	"fmt"
	"strings"
)

// PurposeCode describes one UAEFTS AUX700 payment purpose code.
type PurposeCode struct {
	Code            string
	Name            string
	Category        string
	AppliesDomestic bool
	AppliesOffshore bool
	RequiresLEI     bool
}

// Category groups purpose codes under a CBUAE reporting heading.
type Category struct {
	Code            string
	Name            string
	CrossBorderOnly bool
}

// Bank is a CBUAE bank-code assignment used to annotate validated IBANs.
type Bank struct {
	Code  string
	Name  string
	Swift string
}

// Catalog is the immutable reference-data set the validation engine reads.
// Build it once with New and share it by reference; it is never mutated
// afterwards, so concurrent reads need no locking.
type Catalog struct {
	codes      []PurposeCode
	byCode     map[string]PurposeCode
	byCategory map[string][]PurposeCode
	categories []Category
	byCatCode  map[string]Category
	banks      map[string]Bank
}

// New builds the catalog from the static tables. It panics on table defects
// (duplicate codes, codes pointing at unknown categories) since those are
// programming errors, not runtime conditions.
func New() *Catalog {
	c := &Catalog{
		codes:      purposeCodes,
		byCode:     make(map[string]PurposeCode, len(purposeCodes)),
		byCategory: make(map[string][]PurposeCode, len(categories)),
		categories: categories,
		byCatCode:  make(map[string]Category, len(categories)),
		banks:      make(map[string]Bank, len(banks)),
	}

	for _, cat := range categories {
		if _, dup := c.byCatCode[cat.Code]; dup {
			panic(fmt.Sprintf("catalog: duplicate category %q", cat.Code))
		}
		c.byCatCode[cat.Code] = cat
	}

	for _, pc := range purposeCodes {
		key := strings.ToUpper(pc.Code)
		if _, dup := c.byCode[key]; dup {
			panic(fmt.Sprintf("catalog: duplicate purpose code %q", pc.Code))
		}
		if _, ok := c.byCatCode[pc.Category]; !ok {
			panic(fmt.Sprintf("catalog: purpose code %q references unknown category %q", pc.Code, pc.Category))
		}
		c.byCode[key] = pc
		c.byCategory[pc.Category] = append(c.byCategory[pc.Category], pc)
	}

	for _, b := range banks {
		c.banks[b.Code] = b
	}

	return c
}

// LookupPurposeCode resolves a purpose code case-insensitively.
func (c *Catalog) LookupPurposeCode(code string) (PurposeCode, bool) {
	pc, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return pc, ok
}

// CodesByCategory returns the purpose codes under a category, in table order.
// The returned slice is shared and must not be modified.
func (c *Catalog) CodesByCategory(category string) []PurposeCode {
	return c.byCategory[strings.ToUpper(strings.TrimSpace(category))]
}

// AllCodes returns every purpose code in table order. Read-only.
func (c *Catalog) AllCodes() []PurposeCode {
	return c.codes
}

// AllCategories returns every category in table order. Read-only.
func (c *Catalog) AllCategories() []Category {
	return c.categories
}

// LookupCategory resolves a category by its code.
func (c *Catalog) LookupCategory(code string) (Category, bool) {
	cat, ok := c.byCatCode[strings.ToUpper(strings.TrimSpace(code))]
	return cat, ok
}

// CategoryName returns the display name for a category code, or "Other"
// when the code is unknown.
func (c *Catalog) CategoryName(code string) string {
	if cat, ok := c.LookupCategory(code); ok {
		return cat.Name
	}
	return "Other"
}

// LookupBank resolves a CBUAE bank code.
func (c *Catalog) LookupBank(code string) (Bank, bool) {
	b, ok := c.banks[code]
	return b, ok
}
