package models

// RequestStatus is a naming request's position in the review lifecycle.
type RequestStatus string

const (
	StatusSubmitted   RequestStatus = "submitted"
	StatusUnderReview RequestStatus = "under_review"
	StatusFinalReview RequestStatus = "final_review"
	StatusApproved    RequestStatus = "approved"
	StatusRejected    RequestStatus = "rejected"
	StatusOnHold      RequestStatus = "on_hold"
	StatusCanceled    RequestStatus = "canceled"
)

var validStatuses = map[RequestStatus]bool{
	StatusSubmitted:   true,
	StatusUnderReview: true,
	StatusFinalReview: true,
	StatusApproved:    true,
	StatusRejected:    true,
	StatusOnHold:      true,
	StatusCanceled:    true,
}

var terminalStatuses = map[RequestStatus]bool{
	StatusApproved: true,
	StatusRejected: true,
	StatusCanceled: true,
}

// transitions holds the forward edges of the lifecycle. on_hold and
// canceled are reachable from every non-terminal status and are handled
// in CanTransitionTo rather than listed per source.
var transitions = map[RequestStatus][]RequestStatus{
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusFinalReview},
	StatusFinalReview: {StatusApproved, StatusRejected},
	StatusOnHold:      {StatusUnderReview},
}

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	return validStatuses[s]
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s RequestStatus) IsTerminal() bool {
	return terminalStatuses[s]
}

// CanTransitionTo reports whether target is a legal next status.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if target == StatusOnHold || target == StatusCanceled {
		return target != s
	}
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
