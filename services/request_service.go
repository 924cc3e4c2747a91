package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/events"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/types"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RequestService struct {
	Repos       *repositories.Repos
	Hub         *events.Hub
	Suggestions *SuggestionService
}

func NewRequestService(repos *repositories.Repos, hub *events.Hub, suggestions *SuggestionService) *RequestService {
	return &RequestService{
		Repos:       repos,
		Hub:         hub,
		Suggestions: suggestions,
	}
}

// validateValues checks submitted values against the field definitions:
// required fields present and non-empty, select/radio values among the
// declared options, no values for fields the schema does not define.
// content-block fields carry no submitted value.
func validateValues(defs []models.FieldDefinition, values map[string]string) error {
	verr := &apperrors.ValidationError{}

	byName := map[string]models.FieldDefinition{}
	for _, def := range defs {
		if def.Type == models.FieldTypeContentBlock {
			continue
		}
		byName[def.Name] = def
	}

	for name := range values {
		if _, ok := byName[name]; !ok {
			verr.Add(name, "field is not defined by the form configuration")
		}
	}

	for name, def := range byName {
		value, present := values[name]
		if def.Required && (!present || value == "") {
			verr.Add(name, "required field is missing")
			continue
		}
		if !present || value == "" {
			continue
		}
		if def.Type.HasOptions() {
			found := false
			for _, opt := range def.Options {
				if opt == value {
					found = true
					break
				}
			}
			if !found {
				verr.Add(name, "value is not one of the declared options")
			}
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

// pickTitle lifts a display title out of the submitted values: a field
// literally named title wins, then the first text field with a value.
func pickTitle(defs []models.FieldDefinition, values map[string]string) string {
	if v := values["title"]; v != "" {
		return v
	}
	for _, def := range defs {
		if def.Type == models.FieldTypeText && values[def.Name] != "" {
			return values[def.Name]
		}
	}
	return ""
}

func pickDescription(defs []models.FieldDefinition, values map[string]string) string {
	if v := values["description"]; v != "" {
		return v
	}
	for _, def := range defs {
		if def.Type == models.FieldTypeTextarea && values[def.Name] != "" {
			return values[def.Name]
		}
	}
	return ""
}

// Submit validates the input against the referenced configuration
// (defaulting to the active one), freezes its field definitions onto the
// new request, and records the submission in the audit trail.
func (s *RequestService) Submit(actor *types.Claims, input dto.SubmitRequestDTO) (*models.NamingRequest, error) {
	var config *models.FormConfiguration
	if input.FormConfigurationID != 0 {
		found, err := s.Repos.FormConfig.GetByID(input.FormConfigurationID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "form configuration", ID: input.FormConfigurationID}
		}
		if err != nil {
			return nil, apperrors.WrapStorage("get form configuration", err)
		}
		config = &found
	} else {
		active, err := s.Repos.FormConfig.GetActive()
		if err != nil {
			return nil, apperrors.WrapStorage("get active form configuration", err)
		}
		if active == nil {
			return nil, &apperrors.ConflictError{
				Resource: "form configuration",
				Reason:   "no active form configuration accepts submissions",
			}
		}
		config = active
	}

	defs, err := config.FieldDefinitions()
	if err != nil {
		return nil, apperrors.WrapStorage("decode field definitions", err)
	}
	if err := validateValues(defs, input.Values); err != nil {
		return nil, err
	}

	valueData, err := json.Marshal(input.Values)
	if err != nil {
		return nil, apperrors.WrapStorage("encode values", err)
	}

	now := time.Now()
	req := &models.NamingRequest{
		RequestorID:         actor.UserID,
		RequestorName:       actor.FullName,
		FormConfigurationID: config.ID,
		Schema:              config.Fields,
		Values:              datatypes.JSON(valueData),
		Title:               pickTitle(defs, input.Values),
		Description:         pickDescription(defs, input.Values),
		Status:              models.StatusSubmitted,
		SubmittedAt:         now,
	}
	if req.RequestorName == "" {
		req.RequestorName = actor.Username
	}

	if err := s.Repos.Request.Create(req); err != nil {
		return nil, apperrors.WrapStorage("create request", err)
	}

	s.audit(req.ID, actor, models.AuditActionSubmit, "", models.StatusSubmitted, "")
	s.Hub.Publish(events.EventSubmitted, req)

	// Advisory AI hints: never block or fail the submission.
	if s.Suggestions != nil {
		for _, def := range defs {
			if def.AISuggest && input.Values[def.Name] != "" {
				s.Suggestions.SuggestAsync(req.ID, def, input.Values[def.Name])
			}
		}
	}

	return req, nil
}

func (s *RequestService) GetByID(id uint) (models.NamingRequest, error) {
	req, err := s.Repos.Request.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, &apperrors.NotFoundError{Resource: "request", ID: id}
	}
	if err != nil {
		return req, apperrors.WrapStorage("get request", err)
	}
	return req, nil
}

// Transition moves a request along one lifecycle edge. The status change
// is guarded against the loaded status, so a concurrent transition makes
// this one fail instead of double-applying. Reaching approved writes the
// directory projection in the same transaction.
func (s *RequestService) Transition(id uint, target models.RequestStatus, actor *types.Claims, notes string) (models.NamingRequest, error) {
	req, err := s.GetByID(id)
	if err != nil {
		return req, err
	}

	if !target.IsValid() {
		return req, apperrors.NewValidationError("status", "unknown status "+string(target))
	}
	from := req.Status
	if !from.CanTransitionTo(target) {
		return req, &apperrors.InvalidTransitionError{RequestID: id, From: from, To: target}
	}

	now := time.Now()
	req.Status = target
	switch target {
	case models.StatusFinalReview:
		req.ReviewedAt = &now
	case models.StatusApproved:
		req.ApprovedAt = &now
	case models.StatusRejected:
		req.RejectedAt = &now
	}

	update := repositories.TransitionUpdate{
		Request: &req,
		From:    from,
		Audit: &models.RequestAudit{
			RequestID:  id,
			ActorID:    actor.UserID,
			ActorName:  actor.FullName,
			Action:     models.AuditActionTransition,
			FromStatus: from,
			ToStatus:   target,
			Notes:      notes,
		},
	}
	if target == models.StatusApproved {
		projection, err := s.buildProjection(&req, now)
		if err != nil {
			return req, err
		}
		update.Projection = projection
	}

	applied, err := s.Repos.Request.Transition(update)
	if err != nil {
		return req, apperrors.WrapStorage("transition request", err)
	}
	if !applied {
		// Lost a race; report the edge against the status that won.
		current, getErr := s.GetByID(id)
		if getErr != nil {
			return req, getErr
		}
		return current, &apperrors.InvalidTransitionError{RequestID: id, From: current.Status, To: target}
	}

	s.Hub.Publish(events.EventTransitioned, req)
	return req, nil
}

// buildProjection denormalizes an approved request into its immutable
// directory record.
func (s *RequestService) buildProjection(req *models.NamingRequest, approvedAt time.Time) (*models.ApprovedName, error) {
	values, err := req.ValueMap()
	if err != nil {
		return nil, apperrors.WrapStorage("decode values", err)
	}

	name := req.Title
	if v := values["approved_name"]; v != "" {
		name = v
	}
	contact := values["contact_person"]
	if contact == "" {
		contact = req.RequestorName
	}

	requestID := req.ID
	return &models.ApprovedName{
		ApprovedName:  name,
		Description:   req.Description,
		ServiceLine:   values["service_line"],
		IPR:           values["ipr"],
		Category:      values["category"],
		Class:         values["class"],
		ContactPerson: contact,
		ApprovalDate:  approvedAt,
		Source:        models.ApprovedNameSourceWorkflow,
		RequestID:     &requestID,
	}, nil
}

func (s *RequestService) AuditTrail(id uint) ([]models.RequestAudit, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}
	entries, err := s.Repos.Audit.ListByRequestID(id)
	if err != nil {
		return nil, apperrors.WrapStorage("list audit trail", err)
	}
	return entries, nil
}

func (s *RequestService) audit(requestID uint, actor *types.Claims, action string, from, to models.RequestStatus, notes string) {
	entry := &models.RequestAudit{
		RequestID:  requestID,
		ActorID:    actor.UserID,
		ActorName:  actor.FullName,
		Action:     action,
		FromStatus: from,
		ToStatus:   to,
		Notes:      notes,
	}
	if err := s.Repos.Audit.Create(entry); err != nil {
		log.Printf("[audit] failed to record %s for request %d: %v", action, requestID, err)
	}
}
