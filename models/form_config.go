package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldTypeText         FieldType = "text"
	FieldTypeTextarea     FieldType = "textarea"
	FieldTypeSelect       FieldType = "select"
	FieldTypeCheckbox     FieldType = "checkbox"
	FieldTypeRadio        FieldType = "radio"
	FieldTypeFile         FieldType = "file"
	FieldTypeContentBlock FieldType = "content-block"
)

var validFieldTypes = map[FieldType]bool{
	FieldTypeText:         true,
	FieldTypeTextarea:     true,
	FieldTypeSelect:       true,
	FieldTypeCheckbox:     true,
	FieldTypeRadio:        true,
	FieldTypeFile:         true,
	FieldTypeContentBlock: true,
}

func (t FieldType) IsValid() bool {
	return validFieldTypes[t]
}

// HasOptions reports whether the field type carries a declared option list.
func (t FieldType) HasOptions() bool {
	return t == FieldTypeSelect || t == FieldTypeRadio
}

// FieldDefinition is one intake field of a form configuration. Name is an
// identifier (no whitespace) and is unique within the configuration.
type FieldDefinition struct {
	Name       string    `json:"name"`
	Label      string    `json:"label"`
	Type       FieldType `json:"type"`
	Required   bool      `json:"required"`
	Options    []string  `json:"options,omitempty"`
	AISuggest  bool      `json:"ai_suggest,omitempty"`
	AIEvaluate bool      `json:"ai_evaluate,omitempty"`
}

// FormConfiguration is an admin-authored intake form. At most one
// configuration is active at a time; new requests snapshot its fields.
type FormConfiguration struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:128;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Fields      datatypes.JSON `json:"fields" gorm:"not null"`
	IsActive    bool           `json:"is_active" gorm:"not null;default:false;index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// FieldDefinitions decodes the stored field list.
func (c *FormConfiguration) FieldDefinitions() ([]FieldDefinition, error) {
	var defs []FieldDefinition
	if len(c.Fields) == 0 {
		return defs, nil
	}
	err := json.Unmarshal(c.Fields, &defs)
	return defs, err
}

// SetFieldDefinitions encodes defs into the JSON column.
func (c *FormConfiguration) SetFieldDefinitions(defs []FieldDefinition) error {
	data, err := json.Marshal(defs)
	if err != nil {
		return err
	}
	c.Fields = datatypes.JSON(data)
	return nil
}
