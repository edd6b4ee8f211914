package dto

import (
	"time"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

type EventResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Location      string `json:"location"`
	Type          string `json:"type"`
	AttendeeLimit *int   `json:"attendee_limit,omitempty"`
	Visibility    string `json:"visibility"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type EventDetailsResponse struct {
	Event          EventResponse  `json:"event"`
	AttendeeCount  int            `json:"attendee_count"`
	AvailableSpots *int           `json:"available_spots,omitempty"`
	Rsvps          []RsvpResponse `json:"rsvps"`
}

type RsvpResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}

type RegisterResponse struct {
	Accepted []RsvpResponse `json:"accepted"`
}

type CalendarLinksResponse struct {
	Google  string `json:"google"`
	Outlook string `json:"outlook"`
	ICal    string `json:"ical"`
}

type HealthResponse struct {
	OK       bool   `json:"ok"`
	Attempts int    `json:"attempts"`
	Error    string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error          string `json:"error"`
	RemainingSpots *int   `json:"remaining_spots,omitempty"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Name:          e.Name,
		Date:          e.Date,
		Time:          e.Time,
		Location:      e.Location,
		Type:          string(e.Type),
		AttendeeLimit: e.AttendeeLimit,
		Visibility:    string(e.Visibility),
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	rsvps := make([]RsvpResponse, 0, len(d.Rsvps))
	for _, rv := range d.Rsvps {
		rsvps = append(rsvps, ToRsvpResponse(&rv))
	}

	return EventDetailsResponse{
		Event:          ToEventResponse(&d.Event),
		AttendeeCount:  d.AttendeeCount,
		AvailableSpots: d.AvailableSpots,
		Rsvps:          rsvps,
	}
}

func ToRsvpResponse(rv *domain.Rsvp) RsvpResponse {
	return RsvpResponse{
		ID:        rv.ID,
		EventID:   rv.EventID,
		Name:      rv.Name,
		UserID:    rv.UserID,
		CreatedAt: rv.CreatedAt.Format(time.RFC3339),
	}
}
