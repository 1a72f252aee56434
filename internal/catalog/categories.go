package catalog

// categories lists the 20 CBUAE purpose-code reporting categories.
// CrossBorderOnly marks categories whose codes exist for offshore flows.
var categories = []Category{
	{Code: "SAL", Name: "Salary and Compensation"},
	{Code: "FAM", Name: "Family Maintenance and Remittances", CrossBorderOnly: true},
	{Code: "GDE", Name: "Goods - Export"},
	{Code: "GDI", Name: "Goods - Import"},
	{Code: "SRV", Name: "Services"},
	{Code: "TRV", Name: "Travel", CrossBorderOnly: true},
	{Code: "EDU", Name: "Education", CrossBorderOnly: true},
	{Code: "MED", Name: "Medical and Healthcare", CrossBorderOnly: true},
	{Code: "INV", Name: "Investment"},
	{Code: "DIV", Name: "Dividends"},
	{Code: "INT", Name: "Interest"},
	{Code: "RNT", Name: "Rent and Leasing"},
	{Code: "PEN", Name: "Pension"},
	{Code: "TAX", Name: "Tax"},
	{Code: "INS", Name: "Insurance"},
	{Code: "CHR", Name: "Charity and Donations", CrossBorderOnly: true},
	{Code: "LNR", Name: "Loan Related"},
	{Code: "CPT", Name: "Capital Transfer"},
	{Code: "CRD", Name: "Cards and Digital Payments"},
	{Code: "OTH", Name: "Other"},
}
