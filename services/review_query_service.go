package services

import (
	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
)

// ReviewQueryService is the read side of the reviewer dashboard.
type ReviewQueryService struct {
	Repos *repositories.Repos
}

func NewReviewQueryService(repos *repositories.Repos) *ReviewQueryService {
	return &ReviewQueryService{Repos: repos}
}

func (s *ReviewQueryService) Query(input dto.ReviewQueryDTO) (dto.ReviewPage, error) {
	var page dto.ReviewPage

	params := repositories.RequestQueryParams{
		RequestorName: input.Requestor,
		ReviewerName:  input.Reviewer,
		Search:        input.Search,
		Page:          input.Page,
		PageSize:      input.PageSize,
	}

	if input.Status != "" && input.Status != "all" {
		status := models.RequestStatus(input.Status)
		if !status.IsValid() {
			return page, apperrors.NewValidationError("status", "unknown status "+input.Status)
		}
		params.Status = &status
	}

	switch input.SortBy {
	case dto.SortByTitle:
		params.SortBy = "title"
		params.SortDesc = input.SortDesc
	case dto.SortBySubmittedAt:
		params.SortBy = "submitted_at"
		params.SortDesc = input.SortDesc
	case "":
		// Newest submissions first when no sort is requested.
		params.SortBy = "submitted_at"
		params.SortDesc = true
	default:
		return page, apperrors.NewValidationError("sort_by", "unknown sort key "+string(input.SortBy))
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	items, total, err := s.Repos.Request.Query(params)
	if err != nil {
		return page, apperrors.WrapStorage("query requests", err)
	}

	metrics, err := s.Repos.Request.Metrics()
	if err != nil {
		return page, apperrors.WrapStorage("request metrics", err)
	}

	page.Items = items
	page.Total = total
	page.Page = params.Page
	page.Metrics = dto.ReviewMetrics{
		TotalRequests:     metrics.TotalRequests,
		AvgApprovalDays:   metrics.AvgApprovalDays,
		RequestsThisMonth: metrics.RequestsThisMonth,
	}
	return page, nil
}
