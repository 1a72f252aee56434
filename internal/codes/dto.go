package codes

// codeResponse is the wire shape for one purpose code.
type codeResponse struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	CategoryCode    string `json:"category_code"`
	CategoryName    string `json:"category_name"`
	AppliesDomestic bool   `json:"applies_to_domestic"`
	AppliesOffshore bool   `json:"applies_to_offshore"`
	RequiresLEI     bool   `json:"requires_lei"`
	LEIThresholdAED *int64 `json:"lei_threshold_aed,omitempty"`
	IsActive        bool   `json:"is_active"`
}

type categoryResponse struct {
	CategoryCode    string `json:"category_code"`
	CategoryName    string `json:"category_name"`
	CrossBorderOnly bool   `json:"is_cross_border_only"`
	CodeCount       int    `json:"code_count"`
}

type listResponse struct {
	Total      int                `json:"total"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
	Codes      []codeResponse     `json:"codes"`
	Categories []categoryResponse `json:"categories"`
}

type bulkResponse struct {
	TotalCodes      int                       `json:"total_codes"`
	TotalCategories int                       `json:"total_categories"`
	Categories      []categoryResponse        `json:"categories"`
	CodesByCategory map[string][]codeResponse `json:"codes_by_category"`
}
