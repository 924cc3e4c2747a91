package models

import "time"

// RequestAudit is one append-only entry in a request's review trail.
type RequestAudit struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	RequestID  uint          `json:"request_id" gorm:"not null;index"`
	ActorID    uint          `json:"actor_id" gorm:"not null"`
	ActorName  string        `json:"actor_name" gorm:"size:128"`
	Action     string        `json:"action" gorm:"size:32;not null"`
	FromStatus RequestStatus `json:"from_status" gorm:"type:varchar(20)"`
	ToStatus   RequestStatus `json:"to_status" gorm:"type:varchar(20)"`
	Notes      string        `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time     `json:"created_at"`
}

const (
	AuditActionSubmit     = "submit"
	AuditActionClaim      = "claim"
	AuditActionUnclaim    = "unclaim"
	AuditActionTransition = "transition"
	AuditActionSuggestion = "suggestion"
)
