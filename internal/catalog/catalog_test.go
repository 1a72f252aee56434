package catalog

import "testing"

func TestNewBuildsFullCatalog(t *testing.T) {
	c := New()

	if got := len(c.AllCodes()); got != 117 {
		t.Fatalf("expected 117 purpose codes, got %d", got)
	}
	if got := len(c.AllCategories()); got != 20 {
		t.Fatalf("expected 20 categories, got %d", got)
	}
}

func TestLookupPurposeCodeCaseInsensitive(t *testing.T) {
	c := New()

	for _, in := range []string{"SAL", "sal", " Sal "} {
		pc, ok := c.LookupPurposeCode(in)
		if !ok {
			t.Fatalf("lookup %q failed", in)
		}
		if pc.Name != "Salary Payment" {
			t.Fatalf("lookup %q: expected Salary Payment, got %q", in, pc.Name)
		}
	}

	if _, ok := c.LookupPurposeCode("ZZZZZ"); ok {
		t.Fatalf("expected ZZZZZ to be unknown")
	}
}

func TestEveryCodeResolvesItsCategory(t *testing.T) {
	c := New()

	for _, pc := range c.AllCodes() {
		if _, ok := c.LookupCategory(pc.Category); !ok {
			t.Fatalf("code %s references unknown category %q", pc.Code, pc.Category)
		}
		if !pc.AppliesDomestic && !pc.AppliesOffshore {
			t.Fatalf("code %s applies to no transaction type", pc.Code)
		}
	}
}

func TestCodesByCategory(t *testing.T) {
	c := New()

	sal := c.CodesByCategory("SAL")
	if len(sal) != 7 {
		t.Fatalf("expected 7 salary codes, got %d", len(sal))
	}
	for _, pc := range sal {
		if pc.Category != "SAL" {
			t.Fatalf("code %s filed under SAL but categorized %q", pc.Code, pc.Category)
		}
	}

	if got := c.CodesByCategory("NOPE"); len(got) != 0 {
		t.Fatalf("expected no codes for unknown category, got %d", len(got))
	}
}

func TestLEICodes(t *testing.T) {
	c := New()

	count := 0
	for _, pc := range c.AllCodes() {
		if pc.RequiresLEI {
			count++
		}
	}
	if count != 10 {
		t.Fatalf("expected 10 LEI-gated codes, got %d", count)
	}

	pc, ok := c.LookupPurposeCode("FSL")
	if !ok || !pc.RequiresLEI {
		t.Fatalf("expected FSL to require an LEI")
	}
}

func TestCategoryName(t *testing.T) {
	c := New()

	if got := c.CategoryName("SAL"); got != "Salary and Compensation" {
		t.Fatalf("expected Salary and Compensation, got %q", got)
	}
	if got := c.CategoryName("NOPE"); got != "Other" {
		t.Fatalf("expected Other fallback, got %q", got)
	}
}

func TestLookupBank(t *testing.T) {
	c := New()

	b, ok := c.LookupBank("033")
	if !ok {
		t.Fatalf("expected bank 033")
	}
	if b.Name != "Emirates NBD" {
		t.Fatalf("expected Emirates NBD, got %q", b.Name)
	}

	if _, ok := c.LookupBank("999"); ok {
		t.Fatalf("expected bank 999 to be unknown")
	}
}
