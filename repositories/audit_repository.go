package repositories

import (
	"github.com/linskybing/naming-go/db"
	"github.com/linskybing/naming-go/models"
)

type AuditRepo interface {
	Create(entry *models.RequestAudit) error
	ListByRequestID(requestID uint) ([]models.RequestAudit, error)
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) Create(entry *models.RequestAudit) error {
	return db.DB.Create(entry).Error
}

func (r *DBAuditRepo) ListByRequestID(requestID uint) ([]models.RequestAudit, error) {
	var entries []models.RequestAudit
	err := db.DB.Where("request_id = ?", requestID).Order("created_at asc, id asc").Find(&entries).Error
	return entries, err
}
