package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linskybing/naming-go/models"
)

// FieldError is one field-level violation inside a ValidationError.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports bad input. The caller can fix the named fields
// and resubmit.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add appends a field violation and returns the receiver for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// InvalidTransitionError reports an illegal lifecycle edge.
type InvalidTransitionError struct {
	RequestID uint                 `json:"request_id"`
	From      models.RequestStatus `json:"from"`
	To        models.RequestStatus `json:"to"`
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("request %d: transition %s -> %s is not allowed", e.RequestID, e.From, e.To)
}

// AlreadyClaimedError reports a lost claim race. The current reviewer is
// included so the caller can refresh its view.
type AlreadyClaimedError struct {
	RequestID    uint   `json:"request_id"`
	ReviewerID   uint   `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name"`
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("request %d is already claimed by %s", e.RequestID, e.ReviewerName)
}

type NotFoundError struct {
	Resource string `json:"resource"`
	ID       uint   `json:"id"`
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ConflictError reports an operation rejected by current state, e.g.
// deleting the active form configuration.
type ConflictError struct {
	Resource string `json:"resource"`
	ID       uint   `json:"id"`
	Reason   string `json:"reason"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Resource, e.ID, e.Reason)
}

// StorageError wraps an infrastructure failure. Never retried here; the
// caller owns any retry policy.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
