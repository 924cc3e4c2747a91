package handlers

import (
	"github.com/linskybing/naming-go/services"
)

type Handlers struct {
	User         *UserHandler
	FormConfig   *FormConfigHandler
	Request      *RequestHandler
	ApprovedName *ApprovedNameHandler
}

func New(svc *services.Services) *Handlers {
	return &Handlers{
		User:         NewUserHandler(svc.User),
		FormConfig:   NewFormConfigHandler(svc.FormConfig),
		Request:      NewRequestHandler(svc.Request, svc.Claim, svc.ReviewQuery),
		ApprovedName: NewApprovedNameHandler(svc.ApprovedName),
	}
}
