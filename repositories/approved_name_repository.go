package repositories

import (
	"fmt"
	"strings"

	"github.com/linskybing/naming-go/db"
	"github.com/linskybing/naming-go/models"
)

// searchResultCap bounds directory search results.
const searchResultCap = 100

// approvedFacets whitelists the queryable facet columns.
var approvedFacets = map[string]string{
	"service_line": "service_line",
	"ipr":          "ipr",
	"category":     "category",
	"class":        "class",
}

type ApprovedSearchParams struct {
	Keyword     string
	ServiceLine string
	IPR         string
	Category    string
	Class       string
}

type ApprovedNameRepo interface {
	Create(record *models.ApprovedName) error
	CreateBatch(records []models.ApprovedName) error
	GetByRequestID(requestID uint) (*models.ApprovedName, error)
	Search(params ApprovedSearchParams) ([]models.ApprovedName, error)
	FacetValues(facet string) ([]string, error)
}

type DBApprovedNameRepo struct{}

func (r *DBApprovedNameRepo) Create(record *models.ApprovedName) error {
	return db.DB.Create(record).Error
}

func (r *DBApprovedNameRepo) CreateBatch(records []models.ApprovedName) error {
	if len(records) == 0 {
		return nil
	}
	return db.DB.Create(&records).Error
}

func (r *DBApprovedNameRepo) GetByRequestID(requestID uint) (*models.ApprovedName, error) {
	var record models.ApprovedName
	err := db.DB.Where("request_id = ?", requestID).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Search filters by exact facet match and multi-keyword AND search: each
// whitespace-separated token must match at least one searchable column.
func (r *DBApprovedNameRepo) Search(params ApprovedSearchParams) ([]models.ApprovedName, error) {
	query := db.DB.Model(&models.ApprovedName{})

	if params.ServiceLine != "" {
		query = query.Where("service_line = ?", params.ServiceLine)
	}
	if params.IPR != "" {
		query = query.Where("ipr = ?", params.IPR)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Class != "" {
		query = query.Where("class = ?", params.Class)
	}

	for _, token := range strings.Fields(params.Keyword) {
		like := "%" + token + "%"
		query = query.Where(
			"approved_name ILIKE ? OR description ILIKE ? OR service_line ILIKE ? OR contact_person ILIKE ?",
			like, like, like, like,
		)
	}

	var records []models.ApprovedName
	err := query.Order("approval_date desc").Order("id asc").Limit(searchResultCap).Find(&records).Error
	return records, err
}

func (r *DBApprovedNameRepo) FacetValues(facet string) ([]string, error) {
	column, ok := approvedFacets[facet]
	if !ok {
		return nil, fmt.Errorf("unknown facet %q", facet)
	}
	var values []string
	err := db.DB.Model(&models.ApprovedName{}).
		Distinct(column).
		Where(column+" <> ''").
		Order(column).
		Pluck(column, &values).Error
	return values, err
}
