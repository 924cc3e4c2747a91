package repositories

import (
	"testing"
	"time"

	"github.com/linskybing/naming-go/internal/testutils"
	"github.com/linskybing/naming-go/models"
	"github.com/stretchr/testify/require"
)

func seedApprovedName(t *testing.T, name, description, serviceLine, contact string) {
	t.Helper()
	repo := &DBApprovedNameRepo{}
	require.NoError(t, repo.Create(&models.ApprovedName{
		ApprovedName:  name,
		Description:   description,
		ServiceLine:   serviceLine,
		ContactPerson: contact,
		ApprovalDate:  time.Now(),
		Source:        models.ApprovedNameSourceLegacy,
	}))
}

func TestApprovedNameRepo_MultiKeywordSearch(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBApprovedNameRepo{}

	seedApprovedName(t, "Acme Gateway", "cloud ingress for acme", "cloud", "Rita Wu")
	seedApprovedName(t, "Acme Ledger", "billing records", "finance", "Ken Chou")
	seedApprovedName(t, "Orion Cloud", "storage mesh", "cloud", "Mei Lin")

	// Every token must match somewhere, so "acme cloud" excludes rows
	// matching only one of the two.
	results, err := repo.Search(ApprovedSearchParams{Keyword: "acme cloud"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Acme Gateway", results[0].ApprovedName)

	results, err = repo.Search(ApprovedSearchParams{Keyword: "acme"})
	require.NoError(t, err)
	require.Len(t, results, 2)
}

func TestApprovedNameRepo_FacetFilterCombinesWithKeyword(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBApprovedNameRepo{}

	seedApprovedName(t, "Acme Gateway", "ingress", "cloud", "Rita Wu")
	seedApprovedName(t, "Acme Relay", "messaging", "edge", "Rita Wu")

	results, err := repo.Search(ApprovedSearchParams{Keyword: "acme", ServiceLine: "edge"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "Acme Relay", results[0].ApprovedName)
}

func TestApprovedNameRepo_FacetValuesDistinctSorted(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBApprovedNameRepo{}

	seedApprovedName(t, "A", "", "edge", "")
	seedApprovedName(t, "B", "", "cloud", "")
	seedApprovedName(t, "C", "", "cloud", "")
	seedApprovedName(t, "D", "", "", "")

	values, err := repo.FacetValues("service_line")
	require.NoError(t, err)
	require.Equal(t, []string{"cloud", "edge"}, values)
}

func TestApprovedNameRepo_UnknownFacetRejected(t *testing.T) {
	_, err := (&DBApprovedNameRepo{}).FacetValues("contact_person")
	require.Error(t, err)
}

func TestApprovedNameRepo_CreateBatchEmptyIsNoop(t *testing.T) {
	testutils.TruncateAll(testDB)
	require.NoError(t, (&DBApprovedNameRepo{}).CreateBatch(nil))
}
