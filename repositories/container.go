package repositories

type Repos struct {
	User         UserRepo
	FormConfig   FormConfigRepo
	Request      RequestRepo
	ApprovedName ApprovedNameRepo
	Audit        AuditRepo
}

func New() *Repos {
	return &Repos{
		User:         &DBUserRepo{},
		FormConfig:   &DBFormConfigRepo{},
		Request:      &DBRequestRepo{},
		ApprovedName: &DBApprovedNameRepo{},
		Audit:        &DBAuditRepo{},
	}
}
