package dto

type CreateEventRequest struct {
	Name          string `json:"name" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=limited unlimited"`
	AttendeeLimit *int   `json:"attendee_limit"`
	Visibility    string `json:"visibility" binding:"omitempty,oneof=public private"`
}

type UpdateEventRequest struct {
	Name          string `json:"name" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Location      string `json:"location" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=limited unlimited"`
	AttendeeLimit *int   `json:"attendee_limit"`
	Visibility    string `json:"visibility" binding:"omitempty,oneof=public private"`
}

type RegisterRequest struct {
	Name   string `json:"name" binding:"required"`
	Guests int    `json:"guests" binding:"gte=0"`
}
