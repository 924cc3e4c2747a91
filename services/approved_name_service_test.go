package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --------------------- Setup ---------------------
func setupApprovedNameServiceMocks(t *testing.T) (*ApprovedNameService, *mock_repositories.MockApprovedNameRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockApproved := mock_repositories.NewMockApprovedNameRepo(ctrl)
	repos := &repositories.Repos{ApprovedName: mockApproved}
	svc := NewApprovedNameService(repos)
	return svc, mockApproved
}

// --------------------- Search ---------------------
func TestSearchApprovedNames_PassesFilters(t *testing.T) {
	svc, mockApproved := setupApprovedNameServiceMocks(t)

	mockApproved.EXPECT().Search(gomock.Any()).DoAndReturn(func(p repositories.ApprovedSearchParams) ([]models.ApprovedName, error) {
		assert.Equal(t, "acme cloud", p.Keyword)
		assert.Equal(t, "cloud", p.ServiceLine)
		return []models.ApprovedName{{ApprovedName: "Acme Cloud Gateway"}}, nil
	})

	results, err := svc.Search(dto.ApprovedSearchDTO{Keyword: "acme cloud", ServiceLine: "cloud"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

// --------------------- ImportLegacy ---------------------
func TestImportLegacy_Success(t *testing.T) {
	svc, mockApproved := setupApprovedNameServiceMocks(t)

	mockApproved.EXPECT().CreateBatch(gomock.Any()).DoAndReturn(func(records []models.ApprovedName) error {
		require.Len(t, records, 2)
		assert.Equal(t, models.ApprovedNameSourceLegacy, records[0].Source)
		assert.Equal(t, records[0].ImportBatchID, records[1].ImportBatchID)
		assert.Equal(t, "2019-03-14", records[0].ApprovalDate.Format("2006-01-02"))
		return nil
	})

	batchID, count, err := svc.ImportLegacy([]LegacyEntry{
		{ApprovedName: "Orion Mesh", ServiceLine: "cloud", ApprovalDate: "2019-03-14"},
		{ApprovedName: "Vega Relay", ServiceLine: "edge"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, batchID)
	assert.Equal(t, 2, count)
}

func TestImportLegacy_MissingName(t *testing.T) {
	svc, _ := setupApprovedNameServiceMocks(t)

	_, _, err := svc.ImportLegacy([]LegacyEntry{
		{Description: "a row without a name"},
	})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestImportLegacy_BadDate(t *testing.T) {
	svc, _ := setupApprovedNameServiceMocks(t)

	_, _, err := svc.ImportLegacy([]LegacyEntry{
		{ApprovedName: "Orion Mesh", ApprovalDate: "14/03/2019"},
	})

	var verr *apperrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}
