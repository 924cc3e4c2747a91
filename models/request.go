package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// NamingRequest is a submitted naming request moving through review.
// Schema is the frozen copy of the configuration's field definitions at
// submission time; later edits to the configuration never touch it.
type NamingRequest struct {
	ID                  uint           `json:"id" gorm:"primaryKey"`
	RequestorID         uint           `json:"requestor_id" gorm:"not null;index"`
	RequestorName       string         `json:"requestor_name" gorm:"size:128;not null"`
	FormConfigurationID uint           `json:"form_configuration_id" gorm:"not null;index"`
	Schema              datatypes.JSON `json:"schema" gorm:"not null"`
	Values              datatypes.JSON `json:"values" gorm:"not null"`
	Title               string         `json:"title" gorm:"size:256;index"`
	Description         string         `json:"description" gorm:"type:text"`
	Status              RequestStatus  `json:"status" gorm:"type:varchar(20);not null;default:'submitted';index"`
	ReviewerID          *uint          `json:"reviewer_id" gorm:"index"`
	ReviewerName        *string        `json:"reviewer_name" gorm:"size:128"`
	SubmittedAt         time.Time      `json:"submitted_at" gorm:"not null;index"`
	ClaimedAt           *time.Time     `json:"claimed_at"`
	ReviewedAt          *time.Time     `json:"reviewed_at"`
	ApprovedAt          *time.Time     `json:"approved_at"`
	RejectedAt          *time.Time     `json:"rejected_at"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// SchemaFields decodes the frozen field definitions.
func (r *NamingRequest) SchemaFields() ([]FieldDefinition, error) {
	var defs []FieldDefinition
	if len(r.Schema) == 0 {
		return defs, nil
	}
	err := json.Unmarshal(r.Schema, &defs)
	return defs, err
}

// ValueMap decodes the submitted field values.
func (r *NamingRequest) ValueMap() (map[string]string, error) {
	values := map[string]string{}
	if len(r.Values) == 0 {
		return values, nil
	}
	err := json.Unmarshal(r.Values, &values)
	return values, err
}
