package ports

import (
	"context"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context) ([]*domain.Event, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
}
