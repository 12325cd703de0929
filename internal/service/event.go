package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
	"github.com/rakibhassannayem/clubSphere-server/internal/service/ports"
)

type EventService struct {
	events        ports.EventRepo
	clubs         ports.ClubRepo
	registrations ports.RegistrationRepo
}

func NewEventService(events ports.EventRepo, clubs ports.ClubRepo, registrations ports.RegistrationRepo) *EventService {
	return &EventService{
		events:        events,
		clubs:         clubs,
		registrations: registrations,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.EventDate.Before(time.Now()) {
		return nil, fmt.Errorf("%w: event_date must be in the future", domain.ErrValidation)
	}
	if input.EventFee < 0 {
		return nil, fmt.Errorf("%w: event fee must not be negative", domain.ErrValidation)
	}

	club, err := s.clubs.GetByID(ctx, input.ClubID)
	if err != nil {
		return nil, fmt.Errorf("check club: %w", err)
	}

	event := &domain.Event{
		ClubID:       input.ClubID,
		ClubName:     club.ClubName,
		Title:        input.Title,
		Description:  input.Description,
		BannerImage:  input.BannerImage,
		Location:     input.Location,
		EventDate:    input.EventDate,
		EventFee:     input.EventFee,
		ManagerEmail: input.ManagerEmail,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, clubID string) ([]*domain.Event, error) {
	return s.events.List(ctx, clubID)
}

func (s *EventService) ListRegistrations(ctx context.Context, eventID string) ([]*domain.RegistrationGrant, error) {
	return s.registrations.ListByEvent(ctx, eventID)
}
