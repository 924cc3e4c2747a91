package models

import "time"

type ApprovedNameSource string

const (
	ApprovedNameSourceWorkflow ApprovedNameSource = "workflow"
	ApprovedNameSourceLegacy   ApprovedNameSource = "legacy"
)

// ApprovedName is the read-only archive entry created when a request
// reaches approved, or bulk-imported from the legacy spreadsheet. Rows are
// never updated after insert; directory search treats both sources the same.
type ApprovedName struct {
	ID            uint               `json:"id" gorm:"primaryKey"`
	ApprovedName  string             `json:"approved_name" gorm:"size:256;not null;index"`
	Description   string             `json:"description" gorm:"type:text"`
	ServiceLine   string             `json:"service_line" gorm:"size:128;index"`
	IPR           string             `json:"ipr" gorm:"size:128;index"`
	Category      string             `json:"category" gorm:"size:128;index"`
	Class         string             `json:"class" gorm:"size:128;index"`
	ContactPerson string             `json:"contact_person" gorm:"size:128"`
	ApprovalDate  time.Time          `json:"approval_date" gorm:"not null"`
	Source        ApprovedNameSource `json:"source" gorm:"type:varchar(20);not null;default:'workflow'"`
	RequestID     *uint              `json:"request_id" gorm:"uniqueIndex"`
	ImportBatchID string             `json:"import_batch_id,omitempty" gorm:"size:36"`
	CreatedAt     time.Time          `json:"created_at"`
}
