package repositories

import (
	"time"

	"github.com/linskybing/naming-go/db"
	"github.com/linskybing/naming-go/models"
	"gorm.io/gorm"
)

// RequestQueryParams is the reviewer dashboard filter set. Nil/empty
// members are skipped; the rest combine with AND.
type RequestQueryParams struct {
	Status        *models.RequestStatus
	RequestorName string
	ReviewerName  string
	Search        string
	SortBy        string // submitted_at or title
	SortDesc      bool
	Page          int
	PageSize      int
}

// RequestMetrics are the dashboard aggregates.
type RequestMetrics struct {
	TotalRequests     int64
	AvgApprovalDays   float64
	RequestsThisMonth int64
}

// TransitionUpdate describes one lifecycle transition to apply atomically:
// the status CAS, the audit row, and (for approvals) the projection insert.
type TransitionUpdate struct {
	Request    *models.NamingRequest
	From       models.RequestStatus
	Projection *models.ApprovedName
	Audit      *models.RequestAudit
}

type RequestRepo interface {
	Create(req *models.NamingRequest) error
	GetByID(id uint) (models.NamingRequest, error)
	Claim(id uint, reviewerID uint, reviewerName string, at time.Time) (bool, error)
	Unclaim(id uint) error
	Transition(update TransitionUpdate) (bool, error)
	Query(params RequestQueryParams) ([]models.NamingRequest, int64, error)
	Metrics() (RequestMetrics, error)
	CountByFormConfiguration(configID uint) (int64, error)
}

type DBRequestRepo struct{}

func (r *DBRequestRepo) Create(req *models.NamingRequest) error {
	return db.DB.Create(req).Error
}

func (r *DBRequestRepo) GetByID(id uint) (models.NamingRequest, error) {
	var req models.NamingRequest
	err := db.DB.First(&req, id).Error
	return req, err
}

// Claim assigns a reviewer with a single conditional update. Returns false
// without error when another reviewer holds the request; two concurrent
// claims can never both see RowsAffected == 1.
func (r *DBRequestRepo) Claim(id uint, reviewerID uint, reviewerName string, at time.Time) (bool, error) {
	res := db.DB.Model(&models.NamingRequest{}).
		Where("id = ? AND reviewer_id IS NULL", id).
		Updates(map[string]interface{}{
			"reviewer_id":   reviewerID,
			"reviewer_name": reviewerName,
			"claimed_at":    at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBRequestRepo) Unclaim(id uint) error {
	return db.DB.Model(&models.NamingRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reviewer_id":   nil,
			"reviewer_name": nil,
			"claimed_at":    nil,
		}).Error
}

// Transition applies the status change guarded by the expected source
// status, then writes the audit row and any approval projection in the
// same transaction. Returns false when the guard fails (concurrent
// transition or stale caller).
func (r *DBRequestRepo) Transition(update TransitionUpdate) (bool, error) {
	applied := false
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.NamingRequest{}).
			Where("id = ? AND status = ?", update.Request.ID, update.From).
			Select("status", "reviewed_at", "approved_at", "rejected_at").
			Updates(update.Request)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true
		if update.Projection != nil {
			if err := tx.Create(update.Projection).Error; err != nil {
				return err
			}
		}
		if update.Audit != nil {
			if err := tx.Create(update.Audit).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return applied, err
}

func (r *DBRequestRepo) Query(params RequestQueryParams) ([]models.NamingRequest, int64, error) {
	query := db.DB.Model(&models.NamingRequest{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.RequestorName != "" {
		query = query.Where("requestor_name ILIKE ?", "%"+params.RequestorName+"%")
	}
	if params.ReviewerName != "" {
		query = query.Where("reviewer_name ILIKE ?", "%"+params.ReviewerName+"%")
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR requestor_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortCol := "submitted_at"
	if params.SortBy == "title" {
		sortCol = "title"
	}
	direction := "asc"
	if params.SortDesc {
		direction = "desc"
	}
	// id breaks ties so pagination is deterministic
	query = query.Order(sortCol + " " + direction).Order("id asc")

	if params.PageSize > 0 {
		offset := (params.Page - 1) * params.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Limit(params.PageSize).Offset(offset)
	}

	var reqs []models.NamingRequest
	err := query.Find(&reqs).Error
	return reqs, total, err
}

func (r *DBRequestRepo) Metrics() (RequestMetrics, error) {
	var m RequestMetrics

	if err := db.DB.Model(&models.NamingRequest{}).Count(&m.TotalRequests).Error; err != nil {
		return m, err
	}

	var avg *float64
	err := db.DB.Model(&models.NamingRequest{}).
		Where("status = ? AND approved_at IS NOT NULL", models.StatusApproved).
		Select("AVG(EXTRACT(EPOCH FROM (approved_at - submitted_at)) / 86400)").
		Scan(&avg).Error
	if err != nil {
		return m, err
	}
	if avg != nil {
		m.AvgApprovalDays = *avg
	}

	err = db.DB.Model(&models.NamingRequest{}).
		Where("submitted_at >= date_trunc('month', now())").
		Count(&m.RequestsThisMonth).Error
	return m, err
}

func (r *DBRequestRepo) CountByFormConfiguration(configID uint) (int64, error) {
	var count int64
	err := db.DB.Model(&models.NamingRequest{}).
		Where("form_configuration_id = ?", configID).
		Count(&count).Error
	return count, err
}
