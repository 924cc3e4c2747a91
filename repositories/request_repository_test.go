package repositories

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/linskybing/naming-go/internal/testutils"
	"github.com/linskybing/naming-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func seedRequest(t *testing.T, configID uint, title string, status models.RequestStatus, submittedAt time.Time) *models.NamingRequest {
	t.Helper()
	values, err := json.Marshal(map[string]string{"requested_name": title, "service_line": "cloud"})
	require.NoError(t, err)

	req := &models.NamingRequest{
		RequestorID:         1,
		RequestorName:       "Rita Wu",
		FormConfigurationID: configID,
		Schema:              datatypes.JSON(`[]`),
		Values:              datatypes.JSON(values),
		Title:               title,
		Status:              status,
		SubmittedAt:         submittedAt,
	}
	repo := &DBRequestRepo{}
	require.NoError(t, repo.Create(req))
	return req
}

func TestRequestRepo_ClaimRaceSingleWinner(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBRequestRepo{}

	config := seedConfig(t, "intake")
	req := seedRequest(t, config.ID, "Aurora", models.StatusSubmitted, time.Now())

	const reviewers = 8
	var wg sync.WaitGroup
	wins := make(chan uint, reviewers)

	for i := 1; i <= reviewers; i++ {
		wg.Add(1)
		go func(reviewerID uint) {
			defer wg.Done()
			ok, err := repo.Claim(req.ID, reviewerID, fmt.Sprintf("reviewer-%d", reviewerID), time.Now())
			require.NoError(t, err)
			if ok {
				wins <- reviewerID
			}
		}(uint(i))
	}
	wg.Wait()
	close(wins)

	var winners []uint
	for id := range wins {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1)

	stored, err := repo.GetByID(req.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ReviewerID)
	require.Equal(t, winners[0], *stored.ReviewerID)
	require.NotNil(t, stored.ClaimedAt)
}

func TestRequestRepo_UnclaimClearsReviewer(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBRequestRepo{}

	config := seedConfig(t, "intake")
	req := seedRequest(t, config.ID, "Aurora", models.StatusSubmitted, time.Now())

	ok, err := repo.Claim(req.ID, 5, "Mei Lin", time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, repo.Unclaim(req.ID))

	stored, err := repo.GetByID(req.ID)
	require.NoError(t, err)
	require.Nil(t, stored.ReviewerID)
	require.Nil(t, stored.ClaimedAt)

	// Released, so a different reviewer can claim again.
	ok, err = repo.Claim(req.ID, 6, "Ken Chou", time.Now())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRequestRepo_TransitionGuardRejectsStaleCaller(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBRequestRepo{}

	config := seedConfig(t, "intake")
	req := seedRequest(t, config.ID, "Aurora", models.StatusFinalReview, time.Now())

	now := time.Now()
	requestID := req.ID

	approve := *req
	approve.Status = models.StatusApproved
	approve.ApprovedAt = &now
	applied, err := repo.Transition(TransitionUpdate{
		Request: &approve,
		From:    models.StatusFinalReview,
		Projection: &models.ApprovedName{
			ApprovedName: "Aurora",
			ApprovalDate: now,
			Source:       models.ApprovedNameSourceWorkflow,
			RequestID:    &requestID,
		},
		Audit: &models.RequestAudit{
			RequestID:  requestID,
			ActorID:    5,
			ActorName:  "Mei Lin",
			Action:     models.AuditActionTransition,
			FromStatus: models.StatusFinalReview,
			ToStatus:   models.StatusApproved,
		},
	})
	require.NoError(t, err)
	require.True(t, applied)

	// A second caller still holding the final_review snapshot loses.
	reject := *req
	reject.Status = models.StatusRejected
	reject.RejectedAt = &now
	applied, err = repo.Transition(TransitionUpdate{
		Request: &reject,
		From:    models.StatusFinalReview,
		Audit: &models.RequestAudit{
			RequestID:  requestID,
			Action:     models.AuditActionTransition,
			FromStatus: models.StatusFinalReview,
			ToStatus:   models.StatusRejected,
		},
	})
	require.NoError(t, err)
	require.False(t, applied)

	stored, err := repo.GetByID(requestID)
	require.NoError(t, err)
	require.Equal(t, models.StatusApproved, stored.Status)

	// Exactly one projection and one transition audit row.
	approvedRepo := &DBApprovedNameRepo{}
	projection, err := approvedRepo.GetByRequestID(requestID)
	require.NoError(t, err)
	require.Equal(t, "Aurora", projection.ApprovedName)

	var auditCount int64
	require.NoError(t, testDB.Model(&models.RequestAudit{}).Where("request_id = ?", requestID).Count(&auditCount).Error)
	require.Equal(t, int64(1), auditCount)
}

func TestRequestRepo_QueryPaginationAndDefaultSort(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBRequestRepo{}

	config := seedConfig(t, "intake")
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 25; i++ {
		seedRequest(t, config.ID, fmt.Sprintf("req-%02d", i), models.StatusSubmitted, base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.Query(RequestQueryParams{SortBy: "submitted_at", SortDesc: true, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, page1, 10)
	require.Equal(t, "req-24", page1[0].Title)

	page3, total, err := repo.Query(RequestQueryParams{SortBy: "submitted_at", SortDesc: true, Page: 3, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(25), total)
	require.Len(t, page3, 5)
	require.Equal(t, "req-00", page3[4].Title)
}

func TestRequestRepo_QueryFilters(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBRequestRepo{}

	config := seedConfig(t, "intake")
	seedRequest(t, config.ID, "Aurora Gateway", models.StatusSubmitted, time.Now())
	seedRequest(t, config.ID, "Vega Relay", models.StatusUnderReview, time.Now())
	seedRequest(t, config.ID, "Orion Mesh", models.StatusUnderReview, time.Now())

	status := models.StatusUnderReview
	items, total, err := repo.Query(RequestQueryParams{Status: &status, Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, items, 2)

	items, total, err = repo.Query(RequestQueryParams{Search: "aurora", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, "Aurora Gateway", items[0].Title)
}

func TestRequestRepo_Metrics(t *testing.T) {
	testutils.TruncateAll(testDB)
	repo := &DBRequestRepo{}

	config := seedConfig(t, "intake")
	submitted := time.Now().Add(-48 * time.Hour)
	approved := seedRequest(t, config.ID, "Aurora", models.StatusApproved, submitted)
	approvedAt := submitted.Add(48 * time.Hour)
	require.NoError(t, testDB.Model(approved).Update("approved_at", approvedAt).Error)
	seedRequest(t, config.ID, "Vega", models.StatusSubmitted, time.Now())

	metrics, err := repo.Metrics()
	require.NoError(t, err)
	require.Equal(t, int64(2), metrics.TotalRequests)
	require.InDelta(t, 2.0, metrics.AvgApprovalDays, 0.01)
}
