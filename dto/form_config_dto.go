package dto

import "github.com/linskybing/naming-go/models"

type CreateFormConfigurationDTO struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	Fields      []models.FieldDefinition `json:"fields" binding:"required"`
	Activate    bool                     `json:"activate"`
}

type UpdateFormConfigurationDTO struct {
	Name        *string                   `json:"name"`
	Description *string                   `json:"description"`
	Fields      *[]models.FieldDefinition `json:"fields"`
}
