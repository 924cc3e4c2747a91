package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
)

type ApprovedNameService struct {
	Repos *repositories.Repos
}

func NewApprovedNameService(repos *repositories.Repos) *ApprovedNameService {
	return &ApprovedNameService{Repos: repos}
}

func (s *ApprovedNameService) Search(input dto.ApprovedSearchDTO) ([]models.ApprovedName, error) {
	records, err := s.Repos.ApprovedName.Search(repositories.ApprovedSearchParams{
		Keyword:     input.Keyword,
		ServiceLine: input.ServiceLine,
		IPR:         input.IPR,
		Category:    input.Category,
		Class:       input.Class,
	})
	if err != nil {
		return nil, apperrors.WrapStorage("search approved names", err)
	}
	return records, nil
}

func (s *ApprovedNameService) FacetValues(facet string) ([]string, error) {
	values, err := s.Repos.ApprovedName.FacetValues(facet)
	if err != nil {
		return nil, apperrors.NewValidationError("facet", err.Error())
	}
	return values, nil
}

// LegacyEntry is one row of the external spreadsheet import.
type LegacyEntry struct {
	ApprovedName  string `yaml:"approved_name"`
	Description   string `yaml:"description"`
	ServiceLine   string `yaml:"service_line"`
	IPR           string `yaml:"ipr"`
	Category      string `yaml:"category"`
	Class         string `yaml:"class"`
	ContactPerson string `yaml:"contact_person"`
	ApprovalDate  string `yaml:"approval_date"` // YYYY-MM-DD
}

// ImportLegacy bulk-loads legacy approved names. All rows share one batch
// id so an import can be traced (or cleaned up) as a unit. Rows land in
// the same table as workflow approvals and search treats them uniformly.
func (s *ApprovedNameService) ImportLegacy(entries []LegacyEntry) (string, int, error) {
	batchID := uuid.New().String()

	records := make([]models.ApprovedName, 0, len(entries))
	verr := &apperrors.ValidationError{}
	for _, entry := range entries {
		if entry.ApprovedName == "" {
			verr.Add("approved_name", "row missing approved_name")
			continue
		}
		approvalDate := time.Now()
		if entry.ApprovalDate != "" {
			parsed, err := time.Parse("2006-01-02", entry.ApprovalDate)
			if err != nil {
				verr.Add("approval_date", "row "+entry.ApprovedName+": invalid date "+entry.ApprovalDate)
				continue
			}
			approvalDate = parsed
		}
		records = append(records, models.ApprovedName{
			ApprovedName:  entry.ApprovedName,
			Description:   entry.Description,
			ServiceLine:   entry.ServiceLine,
			IPR:           entry.IPR,
			Category:      entry.Category,
			Class:         entry.Class,
			ContactPerson: entry.ContactPerson,
			ApprovalDate:  approvalDate,
			Source:        models.ApprovedNameSourceLegacy,
			ImportBatchID: batchID,
		})
	}
	if verr.HasErrors() {
		return "", 0, verr
	}

	if err := s.Repos.ApprovedName.CreateBatch(records); err != nil {
		return "", 0, apperrors.WrapStorage("import legacy approved names", err)
	}
	return batchID, len(records), nil
}
