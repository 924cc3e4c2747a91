package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/events"
	"github.com/linskybing/naming-go/models"
	"github.com/linskybing/naming-go/repositories"
	"github.com/linskybing/naming-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupClaimServiceMocks(t *testing.T) (*ClaimService, *mock_repositories.MockRequestRepo, *mock_repositories.MockAuditRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock_repositories.NewMockRequestRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	repos := &repositories.Repos{
		Request: mockRequest,
		Audit:   mockAudit,
	}
	svc := NewClaimService(repos, events.NewHub())
	return svc, mockRequest, mockAudit
}

// --------------------- Claim ---------------------
func TestClaimRequest_Success(t *testing.T) {
	svc, mockRequest, mockAudit := setupClaimServiceMocks(t)

	unclaimed := storedRequest(t, models.StatusSubmitted)
	mockRequest.EXPECT().GetByID(uint(11)).Return(unclaimed, nil)
	mockRequest.EXPECT().Claim(uint(11), uint(21), "Ken Chou", gomock.Any()).Return(true, nil)

	claimed := unclaimed
	reviewerID := uint(21)
	reviewerName := "Ken Chou"
	claimed.ReviewerID = &reviewerID
	claimed.ReviewerName = &reviewerName
	mockRequest.EXPECT().GetByID(uint(11)).Return(claimed, nil)
	mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Claim(11, reviewer())
	require.NoError(t, err)
	require.NotNil(t, req.ReviewerID)
	assert.Equal(t, uint(21), *req.ReviewerID)
}

func TestClaimRequest_AlreadyClaimed(t *testing.T) {
	svc, mockRequest, _ := setupClaimServiceMocks(t)

	mockRequest.EXPECT().GetByID(uint(11)).Return(storedRequest(t, models.StatusSubmitted), nil)
	mockRequest.EXPECT().Claim(uint(11), uint(21), "Ken Chou", gomock.Any()).Return(false, nil)

	winner := storedRequest(t, models.StatusUnderReview)
	winnerID := uint(30)
	winnerName := "Mei Lin"
	winner.ReviewerID = &winnerID
	winner.ReviewerName = &winnerName
	mockRequest.EXPECT().GetByID(uint(11)).Return(winner, nil)

	_, err := svc.Claim(11, reviewer())

	var claimErr *apperrors.AlreadyClaimedError
	require.ErrorAs(t, err, &claimErr)
	assert.Equal(t, uint(30), claimErr.ReviewerID)
	assert.Equal(t, "Mei Lin", claimErr.ReviewerName)
}

func TestClaimRequest_NotFound(t *testing.T) {
	svc, mockRequest, _ := setupClaimServiceMocks(t)
	mockRequest.EXPECT().GetByID(uint(404)).Return(models.NamingRequest{}, gorm.ErrRecordNotFound)

	_, err := svc.Claim(404, reviewer())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestClaimRequest_UsernameFallback(t *testing.T) {
	svc, mockRequest, mockAudit := setupClaimServiceMocks(t)

	actor := reviewer()
	actor.FullName = ""

	mockRequest.EXPECT().GetByID(uint(11)).Return(storedRequest(t, models.StatusSubmitted), nil)
	mockRequest.EXPECT().Claim(uint(11), uint(21), "ken", gomock.Any()).Return(true, nil)
	mockRequest.EXPECT().GetByID(uint(11)).Return(storedRequest(t, models.StatusSubmitted), nil)
	mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

	_, err := svc.Claim(11, actor)
	assert.NoError(t, err)
}

// --------------------- Unclaim ---------------------
func TestUnclaimRequest_Success(t *testing.T) {
	svc, mockRequest, mockAudit := setupClaimServiceMocks(t)

	claimed := storedRequest(t, models.StatusUnderReview)
	reviewerID := uint(21)
	claimed.ReviewerID = &reviewerID

	mockRequest.EXPECT().GetByID(uint(11)).Return(claimed, nil)
	mockRequest.EXPECT().Unclaim(uint(11)).Return(nil)
	mockAudit.EXPECT().Create(gomock.Any()).Return(nil)

	req, err := svc.Unclaim(11, reviewer())
	require.NoError(t, err)
	assert.Nil(t, req.ReviewerID)
	assert.Nil(t, req.ClaimedAt)
}

func TestUnclaimRequest_NotFound(t *testing.T) {
	svc, mockRequest, _ := setupClaimServiceMocks(t)
	mockRequest.EXPECT().GetByID(uint(404)).Return(models.NamingRequest{}, gorm.ErrRecordNotFound)

	_, err := svc.Unclaim(404, reviewer())
	assert.True(t, apperrors.IsNotFound(err))
}
