package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/service/ports"
)

type ClubService struct {
	clubs       ports.ClubRepo
	memberships ports.MembershipRepo
}

func NewClubService(clubs ports.ClubRepo, memberships ports.MembershipRepo) *ClubService {
	return &ClubService{
		clubs:       clubs,
		memberships: memberships,
	}
}

func (s *ClubService) Create(ctx context.Context, input domain.CreateClubInput) (*domain.Club, error) {
	if input.ClubName == "" {
		return nil, fmt.Errorf("%w: club name is required", domain.ErrValidation)
	}
	if input.MembershipFee < 0 {
		return nil, fmt.Errorf("%w: membership fee must not be negative", domain.ErrValidation)
	}

	club := &domain.Club{
		ClubName:      input.ClubName,
		Category:      input.Category,
		Description:   input.Description,
		BannerImage:   input.BannerImage,
		MembershipFee: input.MembershipFee,
		ManagerEmail:  input.ManagerEmail,
		Status:        domain.ClubStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	return club, nil
}

func (s *ClubService) GetByID(ctx context.Context, id string) (*domain.Club, error) {
	return s.clubs.GetByID(ctx, id)
}

func (s *ClubService) List(ctx context.Context, filter domain.ClubFilter) ([]*domain.Club, error) {
	return s.clubs.List(ctx, filter)
}

// SetStatus is the admin approval step; only approved clubs show up in
// public listings.
func (s *ClubService) SetStatus(ctx context.Context, id string, status domain.ClubStatus) error {
	if status != domain.ClubStatusApproved && status != domain.ClubStatusRejected {
		return fmt.Errorf("%w: status must be approved or rejected", domain.ErrValidation)
	}

	if err := s.clubs.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update club status: %w", err)
	}
	return nil
}

func (s *ClubService) ListMemberships(ctx context.Context, buyerEmail string) ([]*domain.MembershipGrant, error) {
	return s.memberships.ListByBuyer(ctx, buyerEmail)
}
