package domain

import "time"

type Rsvp struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type RegisterInput struct {
	EventID string
	Name    string
	Guests  int
	UserID  string
}
