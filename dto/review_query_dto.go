package dto

import "github.com/linskybing/naming-go/models"

type SortKey string

const (
	SortBySubmittedAt SortKey = "submittedAt"
	SortByTitle       SortKey = "title"
)

// ReviewQueryDTO is the reviewer-dashboard filter set. Filters combine
// with AND; Search is a case-insensitive substring OR-ed across
// title/description/requestor name.
type ReviewQueryDTO struct {
	Status    string  `form:"status"`
	Requestor string  `form:"requestor"`
	Reviewer  string  `form:"reviewer"`
	Search    string  `form:"search"`
	SortBy    SortKey `form:"sort_by"`
	SortDesc  bool    `form:"sort_desc"`
	Page      int     `form:"page"`
	PageSize  int     `form:"page_size"`
}

type ReviewMetrics struct {
	TotalRequests     int64   `json:"total_requests"`
	AvgApprovalDays   float64 `json:"avg_approval_days"`
	RequestsThisMonth int64   `json:"requests_this_month"`
}

type ReviewPage struct {
	Items   []models.NamingRequest `json:"items"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	Metrics ReviewMetrics          `json:"metrics"`
}
