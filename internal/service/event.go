package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/service/ports"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/shortid"
)

// Limited events must leave room for the organizer plus at least one
// other attendee.
const minAttendeeLimit = 2

type EventService struct {
	repo     ports.EventRepo
	rsvpRepo ports.RsvpRepo
}

func NewEventService(repo ports.EventRepo, rsvpRepo ports.RsvpRepo) *EventService {
	return &EventService{
		repo:     repo,
		rsvpRepo: rsvpRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user identity is required", domain.ErrValidation)
	}

	normalized, err := validateEventFields(
		input.Name, input.Date, input.Time, input.Location,
		input.Type, input.AttendeeLimit,
	)
	if err != nil {
		return nil, err
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPublic
	}
	if visibility != domain.VisibilityPublic && visibility != domain.VisibilityPrivate {
		return nil, fmt.Errorf("%w: visibility must be public or private", domain.ErrValidation)
	}

	id, err := shortid.New()
	if err != nil {
		return nil, fmt.Errorf("generate event id: %w", err)
	}

	event := &domain.Event{
		ID:            id,
		Name:          strings.TrimSpace(input.Name),
		Date:          input.Date,
		Time:          normalized,
		Location:      strings.TrimSpace(input.Location),
		Type:          input.Type,
		AttendeeLimit: input.AttendeeLimit,
		Visibility:    visibility,
		UserID:        input.UserID,
	}
	if event.Type == domain.EventTypeUnlimited {
		event.AttendeeLimit = nil
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.rsvpRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}

	details.Rsvps = make([]domain.Rsvp, len(rsvps))
	for i, rv := range rsvps {
		details.Rsvps[i] = *rv
	}

	return details, nil
}

func (s *EventService) Discover(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListPublic(ctx)
}

func (s *EventService) ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error) {
	return s.repo.ListByOwner(ctx, userID)
}

func (s *EventService) Update(ctx context.Context, id, userID string, input domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.UserID != userID {
		return nil, fmt.Errorf("%w: only the owner can edit this event", domain.ErrForbidden)
	}

	normalized, err := validateEventFields(
		input.Name, input.Date, input.Time, input.Location,
		input.Type, input.AttendeeLimit,
	)
	if err != nil {
		return nil, err
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = event.Visibility
	}
	if visibility != domain.VisibilityPublic && visibility != domain.VisibilityPrivate {
		return nil, fmt.Errorf("%w: visibility must be public or private", domain.ErrValidation)
	}

	event.Name = strings.TrimSpace(input.Name)
	event.Date = input.Date
	event.Time = normalized
	event.Location = strings.TrimSpace(input.Location)
	event.Type = input.Type
	event.AttendeeLimit = input.AttendeeLimit
	event.Visibility = visibility
	if event.Type == domain.EventTypeUnlimited {
		event.AttendeeLimit = nil
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id, userID string) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if event.UserID != userID {
		return fmt.Errorf("%w: only the owner can delete this event", domain.ErrForbidden)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return nil
}

// validateEventFields checks the shared create/edit rules and returns
// the time-of-day normalized to HH:MM:SS.
func validateEventFields(name, date, timeOfDay, location string, typ domain.EventType, limit *int) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(location) == "" {
		return "", fmt.Errorf("%w: location is required", domain.ErrValidation)
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(today) {
		return "", fmt.Errorf("%w: date cannot be in the past", domain.ErrValidation)
	}

	normalized := timeOfDay
	if _, err := time.Parse("15:04:05", timeOfDay); err != nil {
		if _, err := time.Parse("15:04", timeOfDay); err != nil {
			return "", fmt.Errorf("%w: time must be HH:MM or HH:MM:SS", domain.ErrValidation)
		}
		normalized = timeOfDay + ":00"
	}

	switch typ {
	case domain.EventTypeLimited:
		if limit == nil || *limit < minAttendeeLimit {
			return "", fmt.Errorf("%w: attendee_limit must be at least %d for limited events", domain.ErrValidation, minAttendeeLimit)
		}
	case domain.EventTypeUnlimited:
	default:
		return "", fmt.Errorf("%w: type must be limited or unlimited", domain.ErrValidation)
	}

	return normalized, nil
}
