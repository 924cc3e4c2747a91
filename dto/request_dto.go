package dto

import "github.com/linskybing/naming-go/models"

type SubmitRequestDTO struct {
	// Defaults to the active configuration when zero.
	FormConfigurationID uint              `json:"form_configuration_id"`
	Values              map[string]string `json:"values" binding:"required"`
}

type TransitionRequestDTO struct {
	Status models.RequestStatus `json:"status" binding:"required"`
	Notes  string               `json:"notes"`
}

type ClaimRequestDTO struct {
	// Admin reassignment only; reviewers always claim for themselves.
	ReviewerID *uint `json:"reviewer_id"`
}
