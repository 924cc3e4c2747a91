package services

import (
	"errors"
	"log"
	"time"

	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/events"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/types"
	"gorm.io/gorm"
)

// ClaimService serializes reviewer assignment. The claim itself is a
// single conditional update in the store, so two reviewers racing for the
// same request cannot both win regardless of how many server instances
// are running.
type ClaimService struct {
	Repos *repositories.Repos
	Hub   *events.Hub
}

func NewClaimService(repos *repositories.Repos, hub *events.Hub) *ClaimService {
	return &ClaimService{Repos: repos, Hub: hub}
}

func (s *ClaimService) Claim(requestID uint, actor *types.Claims) (models.NamingRequest, error) {
	req, err := s.Repos.Request.GetByID(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, &apperrors.NotFoundError{Resource: "request", ID: requestID}
	}
	if err != nil {
		return req, apperrors.WrapStorage("get request", err)
	}

	reviewerName := actor.FullName
	if reviewerName == "" {
		reviewerName = actor.Username
	}

	claimed, err := s.Repos.Request.Claim(requestID, actor.UserID, reviewerName, time.Now())
	if err != nil {
		return req, apperrors.WrapStorage("claim request", err)
	}
	if !claimed {
		current, getErr := s.Repos.Request.GetByID(requestID)
		if getErr != nil {
			return req, apperrors.WrapStorage("get request", getErr)
		}
		claimErr := &apperrors.AlreadyClaimedError{RequestID: requestID}
		if current.ReviewerID != nil {
			claimErr.ReviewerID = *current.ReviewerID
		}
		if current.ReviewerName != nil {
			claimErr.ReviewerName = *current.ReviewerName
		}
		return current, claimErr
	}

	req, err = s.Repos.Request.GetByID(requestID)
	if err != nil {
		return req, apperrors.WrapStorage("get request", err)
	}

	s.audit(requestID, actor, models.AuditActionClaim, "claimed by "+reviewerName)
	s.Hub.Publish(events.EventClaimed, req)
	return req, nil
}

// Unclaim releases the reviewer assignment. Admin-only; used for
// reassignment when a reviewer is unavailable.
func (s *ClaimService) Unclaim(requestID uint, actor *types.Claims) (models.NamingRequest, error) {
	req, err := s.Repos.Request.GetByID(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return req, &apperrors.NotFoundError{Resource: "request", ID: requestID}
	}
	if err != nil {
		return req, apperrors.WrapStorage("get request", err)
	}

	if err := s.Repos.Request.Unclaim(requestID); err != nil {
		return req, apperrors.WrapStorage("unclaim request", err)
	}

	req.ReviewerID = nil
	req.ReviewerName = nil
	req.ClaimedAt = nil

	s.audit(requestID, actor, models.AuditActionUnclaim, "")
	s.Hub.Publish(events.EventUnclaimed, req)
	return req, nil
}

func (s *ClaimService) audit(requestID uint, actor *types.Claims, action, notes string) {
	entry := &models.RequestAudit{
		RequestID: requestID,
		ActorID:   actor.UserID,
		ActorName: actor.FullName,
		Action:    action,
		Notes:     notes,
	}
	if err := s.Repos.Audit.Create(entry); err != nil {
		log.Printf("[audit] failed to record %s for request %d: %v", action, requestID, err)
	}
}
