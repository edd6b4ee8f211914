package domain

import "time"

type EventType string

const (
	EventTypeLimited   EventType = "limited"
	EventTypeUnlimited EventType = "unlimited"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

type Event struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Date          string     `json:"date"` // YYYY-MM-DD
	Time          string     `json:"time"` // HH:MM:SS
	Location      string     `json:"location"`
	Type          EventType  `json:"type"`
	AttendeeLimit *int       `json:"attendee_limit"`
	Visibility    Visibility `json:"visibility"`
	UserID        string     `json:"user_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type EventDetails struct {
	Event          Event  `json:"event"`
	AttendeeCount  int    `json:"attendee_count"`
	AvailableSpots *int   `json:"available_spots"` // nil for unlimited events
	Rsvps          []Rsvp `json:"rsvps"`
}

type CreateEventInput struct {
	Name          string
	Date          string
	Time          string
	Location      string
	Type          EventType
	AttendeeLimit *int
	Visibility    Visibility
	UserID        string
}

type UpdateEventInput struct {
	Name          string
	Date          string
	Time          string
	Location      string
	Type          EventType
	AttendeeLimit *int
	Visibility    Visibility
}
