package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
	"github.com/rivera-lanasm/cactoide-rivlanm/internal/service/ports"
)

// Matches the registration form's guest selector upper bound.
const maxGuests = 10

type RsvpService struct {
	rsvpRepo ports.RsvpRepo
	logger   logger.Logger
}

func NewRsvpService(rsvpRepo ports.RsvpRepo, logger logger.Logger) *RsvpService {
	return &RsvpService{
		rsvpRepo: rsvpRepo,
		logger:   logger,
	}
}

// Register admits one registrant plus their guest placeholders as a
// single batch. Capacity and duplicate-name enforcement happen inside
// the repository transaction; only the primary name is checked for
// duplicates, guest rows derive from it.
func (s *RsvpService) Register(ctx context.Context, input domain.RegisterInput) ([]domain.Rsvp, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user identity is required", domain.ErrValidation)
	}
	if input.Guests < 0 {
		return nil, fmt.Errorf("%w: guests must not be negative", domain.ErrValidation)
	}
	if input.Guests > maxGuests {
		return nil, fmt.Errorf("%w: at most %d guests per registration", domain.ErrValidation, maxGuests)
	}

	now := time.Now().UTC()
	batch := make([]domain.Rsvp, 0, input.Guests+1)
	batch = append(batch, domain.Rsvp{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		Name:      name,
		UserID:    input.UserID,
		CreatedAt: now,
	})
	for i := 1; i <= input.Guests; i++ {
		batch = append(batch, domain.Rsvp{
			ID:        uuid.New().String(),
			EventID:   input.EventID,
			Name:      fmt.Sprintf("%s's Guest #%d", name, i),
			UserID:    input.UserID,
			CreatedAt: now,
		})
	}

	if err := s.rsvpRepo.Register(ctx, input.EventID, batch); err != nil {
		return nil, fmt.Errorf("register rsvps: %w", err)
	}

	s.logger.Info("rsvp accepted",
		logger.String("event_id", input.EventID),
		logger.String("name", name),
		logger.Int("attendees", len(batch)),
	)

	return batch, nil
}

// Withdraw deletes an rsvp by id. Possession of the id is the only
// credential; there is deliberately no ownership check (any attendee
// row can be removed by whoever holds its id).
func (s *RsvpService) Withdraw(ctx context.Context, id string) error {
	if err := s.rsvpRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("withdraw rsvp: %w", err)
	}

	s.logger.Info("rsvp withdrawn",
		logger.String("rsvp_id", id),
	)

	return nil
}
