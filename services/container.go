package services

import (
	"github.com/linskybing/naming-go/config"
	"github.com/linskybing/naming-go/events"
	"github.com/linskybing/naming-go/repositories"
)

type Services struct {
	User         *UserService
	FormConfig   *FormConfigService
	Request      *RequestService
	Claim        *ClaimService
	ReviewQuery  *ReviewQueryService
	ApprovedName *ApprovedNameService
	Suggestion   *SuggestionService
	Hub          *events.Hub
}

func New(repos *repositories.Repos) *Services {
	hub := events.NewHub()
	suggestion := NewSuggestionService(repos, config.SuggestionEndpoint, config.SuggestionTimeout)
	return &Services{
		User:         NewUserService(repos),
		FormConfig:   NewFormConfigService(repos),
		Request:      NewRequestService(repos, hub, suggestion),
		Claim:        NewClaimService(repos, hub),
		ReviewQuery:  NewReviewQueryService(repos),
		ApprovedName: NewApprovedNameService(repos),
		Suggestion:   suggestion,
		Hub:          hub,
	}
}
