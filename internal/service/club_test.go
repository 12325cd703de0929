package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/service/ports/mocks"
)

func TestClubService_Create_Success(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	clubRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *domain.Club) bool {
		return c.ClubName == "Chess Club" && c.Status == domain.ClubStatusPending
	})).Return(nil)

	club, err := svc.Create(context.Background(), domain.CreateClubInput{
		ClubName:      "Chess Club",
		Category:      "games",
		MembershipFee: 25,
		ManagerEmail:  "manager@sphere.com",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ClubStatusPending, club.Status)
	assert.Equal(t, "manager@sphere.com", club.ManagerEmail)
}

func TestClubService_Create_MissingName(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	_, err := svc.Create(context.Background(), domain.CreateClubInput{MembershipFee: 10})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClubService_Create_NegativeFee(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	_, err := svc.Create(context.Background(), domain.CreateClubInput{
		ClubName:      "Chess Club",
		MembershipFee: -1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClubService_SetStatus_Approved(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	clubRepo.EXPECT().UpdateStatus(mock.Anything, "club1", domain.ClubStatusApproved).Return(nil)

	err := svc.SetStatus(context.Background(), "club1", domain.ClubStatusApproved)

	require.NoError(t, err)
}

func TestClubService_SetStatus_InvalidStatus(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	err := svc.SetStatus(context.Background(), "club1", domain.ClubStatusPending)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClubService_SetStatus_NotFound(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	clubRepo.EXPECT().UpdateStatus(mock.Anything, "missing", domain.ClubStatusRejected).
		Return(domain.ErrClubNotFound)

	err := svc.SetStatus(context.Background(), "missing", domain.ClubStatusRejected)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClubNotFound)
}

func TestClubService_List_Success(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	clubs := []*domain.Club{{ClubName: "Chess Club"}}
	clubRepo.EXPECT().List(mock.Anything, domain.ClubFilter{Category: "games"}).Return(clubs, nil)

	result, err := svc.List(context.Background(), domain.ClubFilter{Category: "games"})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestClubService_ListMemberships_Success(t *testing.T) {
	clubRepo := mocks.NewMockClubRepo(t)
	membershipRepo := mocks.NewMockMembershipRepo(t)

	svc := NewClubService(clubRepo, membershipRepo)

	grants := []*domain.MembershipGrant{{TransactionID: "pi_1", ClubID: "club1"}}
	membershipRepo.EXPECT().ListByBuyer(mock.Anything, "member@sphere.com").Return(grants, nil)

	result, err := svc.ListMemberships(context.Background(), "member@sphere.com")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
