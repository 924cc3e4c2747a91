package services

import (
	"errors"
	"strings"

	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"gorm.io/gorm"
)

type FormConfigService struct {
	Repos *repositories.Repos
}

func NewFormConfigService(repos *repositories.Repos) *FormConfigService {
	return &FormConfigService{Repos: repos}
}

// validateFieldDefinitions enforces the field schema rules: identifier
// names without whitespace, unique per configuration, known types, and a
// declared option list for select/radio fields.
func validateFieldDefinitions(defs []models.FieldDefinition) error {
	verr := &apperrors.ValidationError{}
	if len(defs) == 0 {
		verr.Add("fields", "at least one field is required")
		return verr
	}

	seen := map[string]bool{}
	for _, def := range defs {
		name := def.Name
		if name == "" {
			verr.Add("fields", "field name must not be empty")
			continue
		}
		if strings.ContainsAny(name, " \t\n") {
			verr.Add(name, "field name must not contain whitespace")
		}
		if seen[name] {
			verr.Add(name, "duplicate field name")
		}
		seen[name] = true

		if !def.Type.IsValid() {
			verr.Add(name, "unknown field type "+string(def.Type))
		}
		if def.Type.HasOptions() && len(def.Options) == 0 {
			verr.Add(name, "select and radio fields require options")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func (s *FormConfigService) Create(input dto.CreateFormConfigurationDTO) (*models.FormConfiguration, error) {
	if err := validateFieldDefinitions(input.Fields); err != nil {
		return nil, err
	}

	config := &models.FormConfiguration{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := config.SetFieldDefinitions(input.Fields); err != nil {
		return nil, apperrors.WrapStorage("encode fields", err)
	}

	if err := s.Repos.FormConfig.Create(config); err != nil {
		return nil, apperrors.WrapStorage("create form configuration", err)
	}

	if input.Activate {
		if err := s.Activate(config.ID); err != nil {
			return nil, err
		}
		config.IsActive = true
	}
	return config, nil
}

func (s *FormConfigService) List() ([]models.FormConfiguration, error) {
	configs, err := s.Repos.FormConfig.List()
	if err != nil {
		return nil, apperrors.WrapStorage("list form configurations", err)
	}
	return configs, nil
}

func (s *FormConfigService) GetByID(id uint) (models.FormConfiguration, error) {
	config, err := s.Repos.FormConfig.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return config, &apperrors.NotFoundError{Resource: "form configuration", ID: id}
	}
	if err != nil {
		return config, apperrors.WrapStorage("get form configuration", err)
	}
	return config, nil
}

// GetActive returns nil when no configuration is active; the empty case
// is part of the contract, not an error.
func (s *FormConfigService) GetActive() (*models.FormConfiguration, error) {
	config, err := s.Repos.FormConfig.GetActive()
	if err != nil {
		return nil, apperrors.WrapStorage("get active form configuration", err)
	}
	return config, nil
}

func (s *FormConfigService) Activate(id uint) error {
	err := s.Repos.FormConfig.Activate(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &apperrors.NotFoundError{Resource: "form configuration", ID: id}
	}
	if err != nil {
		return apperrors.WrapStorage("activate form configuration", err)
	}
	return nil
}

func (s *FormConfigService) Update(id uint, input dto.UpdateFormConfigurationDTO) (models.FormConfiguration, error) {
	config, err := s.GetByID(id)
	if err != nil {
		return config, err
	}

	if input.Name != nil {
		config.Name = *input.Name
	}
	if input.Description != nil {
		config.Description = *input.Description
	}
	if input.Fields != nil {
		if err := validateFieldDefinitions(*input.Fields); err != nil {
			return config, err
		}
		if err := config.SetFieldDefinitions(*input.Fields); err != nil {
			return config, apperrors.WrapStorage("encode fields", err)
		}
	}

	if err := s.Repos.FormConfig.Update(&config); err != nil {
		return config, apperrors.WrapStorage("update form configuration", err)
	}
	return config, nil
}

// Delete removes a configuration. The active configuration is never
// deletable. A configuration referenced by existing requests is
// soft-deleted so their schema snapshots keep a traceable origin;
// unreferenced configurations are removed outright.
func (s *FormConfigService) Delete(id uint) error {
	config, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if config.IsActive {
		return &apperrors.ConflictError{
			Resource: "form configuration",
			ID:       id,
			Reason:   "cannot delete the active configuration; activate another first",
		}
	}

	count, err := s.Repos.Request.CountByFormConfiguration(id)
	if err != nil {
		return apperrors.WrapStorage("count referencing requests", err)
	}

	if count > 0 {
		err = s.Repos.FormConfig.SoftDelete(id)
	} else {
		err = s.Repos.FormConfig.Delete(id)
	}
	if err != nil {
		return apperrors.WrapStorage("delete form configuration", err)
	}
	return nil
}
