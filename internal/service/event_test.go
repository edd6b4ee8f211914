package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/service/ports/mocks"
)

func intPtr(v int) *int { return &v }

func validCreateInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Name:          "Board Game Night",
		Date:          "2100-01-01",
		Time:          "19:30",
		Location:      "Community Hall",
		Type:          domain.EventTypeLimited,
		AttendeeLimit: intPtr(12),
		Visibility:    domain.VisibilityPublic,
		UserID:        "u1",
	}
}

func TestEventService_CreateEvent_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Len(t, event.ID, 8)
	assert.Equal(t, "Board Game Night", event.Name)
	assert.Equal(t, "19:30:00", event.Time, "time-of-day normalized to HH:MM:SS")
	assert.Equal(t, domain.VisibilityPublic, event.Visibility)
	require.NotNil(t, event.AttendeeLimit)
	assert.Equal(t, 12, *event.AttendeeLimit)
}

func TestEventService_CreateEvent_DefaultsToPublic(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	input.Visibility = ""

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityPublic, event.Visibility)
}

func TestEventService_CreateEvent_UnlimitedDropsLimit(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	input.Type = domain.EventTypeUnlimited
	input.AttendeeLimit = intPtr(50)

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.Nil(t, event.AttendeeLimit)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"missing identity", func(in *domain.CreateEventInput) { in.UserID = "" }},
		{"blank name", func(in *domain.CreateEventInput) { in.Name = "   " }},
		{"blank location", func(in *domain.CreateEventInput) { in.Location = "" }},
		{"bad date format", func(in *domain.CreateEventInput) { in.Date = "01/01/2100" }},
		{"past date", func(in *domain.CreateEventInput) { in.Date = "2020-01-01" }},
		{"bad time", func(in *domain.CreateEventInput) { in.Time = "7pm" }},
		{"unknown type", func(in *domain.CreateEventInput) { in.Type = "vip" }},
		{"limited without limit", func(in *domain.CreateEventInput) { in.AttendeeLimit = nil }},
		{"limit below minimum", func(in *domain.CreateEventInput) { in.AttendeeLimit = intPtr(1) }},
		{"unknown visibility", func(in *domain.CreateEventInput) { in.Visibility = "secret" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockEventRepo(t)
			rsvpRepo := mocks.NewMockRsvpRepo(t)
			svc := NewEventService(repo, rsvpRepo)

			input := validCreateInput()
			tt.mutate(&input)

			_, err := svc.CreateEvent(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_GetDetails_FillsRsvps(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	details := &domain.EventDetails{
		Event:         domain.Event{ID: "e1", Name: "Picnic"},
		AttendeeCount: 2,
	}
	rsvps := []*domain.Rsvp{
		{ID: "r1", EventID: "e1", Name: "Alice"},
		{ID: "r2", EventID: "e1", Name: "Alice's Guest #1"},
	}

	repo.EXPECT().GetDetails(mock.Anything, "e1").Return(details, nil)
	rsvpRepo.EXPECT().ListByEvent(mock.Anything, "e1").Return(rsvps, nil)

	got, err := svc.GetDetails(context.Background(), "e1")

	require.NoError(t, err)
	require.Len(t, got.Rsvps, 2)
	assert.Equal(t, "Alice", got.Rsvps[0].Name)
	assert.Equal(t, "Alice's Guest #1", got.Rsvps[1].Name)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Update_OwnerOnly(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", UserID: "owner"}, nil)

	_, err := svc.Update(context.Background(), "e1", "intruder", domain.UpdateEventInput{
		Name:     "Hijacked",
		Date:     "2100-01-01",
		Time:     "10:00",
		Location: "Elsewhere",
		Type:     domain.EventTypeUnlimited,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Update_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	existing := &domain.Event{
		ID:         "e1",
		Name:       "Picnic",
		UserID:     "owner",
		Visibility: domain.VisibilityPrivate,
	}
	repo.EXPECT().GetByID(mock.Anything, "e1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Update(context.Background(), "e1", "owner", domain.UpdateEventInput{
		Name:     "Evening Picnic",
		Date:     "2100-05-01",
		Time:     "18:00",
		Location: "Riverside",
		Type:     domain.EventTypeUnlimited,
	})

	require.NoError(t, err)
	assert.Equal(t, "Evening Picnic", event.Name)
	assert.Equal(t, "18:00:00", event.Time)
	// Omitted visibility keeps the stored value.
	assert.Equal(t, domain.VisibilityPrivate, event.Visibility)
}

func TestEventService_Delete_OwnerOnly(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", UserID: "owner"}, nil)

	err := svc.Delete(context.Background(), "e1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1", UserID: "owner"}, nil)
	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "e1", "owner"))
}

func TestEventService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Discover_DelegatesToRepo(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	rsvpRepo := mocks.NewMockRsvpRepo(t)
	svc := NewEventService(repo, rsvpRepo)

	events := []*domain.Event{
		{ID: "e1", Visibility: domain.VisibilityPublic},
		{ID: "e2", Visibility: domain.VisibilityPublic},
	}
	repo.EXPECT().ListPublic(mock.Anything).Return(events, nil)

	got, err := svc.Discover(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
