package dto

// ApprovedSearchDTO filters the approved-name directory. Keyword is split
// on whitespace; every token must match at least one searchable field.
type ApprovedSearchDTO struct {
	Keyword     string `form:"keyword"`
	ServiceLine string `form:"service_line"`
	IPR         string `form:"ipr"`
	Category    string `form:"category"`
	Class       string `form:"class"`
}
