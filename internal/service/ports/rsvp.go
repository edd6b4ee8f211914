package ports

import (
	"context"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

type RsvpRepo interface {
	Register(ctx context.Context, eventID string, batch []domain.Rsvp) error
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Rsvp, error)
	Delete(ctx context.Context, id string) error
}
