package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

type RsvpRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRsvpRepo(db *dbpg.DB) *RsvpRepository {
	return &RsvpRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Register admits a whole batch (registrant plus guest rows) or none
// of it. The event row is locked for the duration of the transaction
// so concurrent registrations against the same event serialize and
// cannot jointly overshoot the capacity.
func (r *RsvpRepository) Register(ctx context.Context, eventID string, batch []domain.Rsvp) error {
	if len(batch) == 0 {
		return fmt.Errorf("%w: empty rsvp batch", domain.ErrValidation)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT type, attendee_limit FROM events WHERE id = $1 FOR UPDATE`
	var eventType domain.EventType
	var limit sql.NullInt64
	if err = tx.QueryRowContext(ctx, lockQuery, eventID).Scan(&eventType, &limit); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	var existing int
	countQuery := `SELECT COUNT(*) FROM rsvps WHERE event_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, eventID).Scan(&existing); err != nil {
		return fmt.Errorf("count rsvps: %w", err)
	}

	if eventType == domain.EventTypeLimited && limit.Valid {
		if existing+len(batch) > int(limit.Int64) {
			remaining := int(limit.Int64) - existing
			if remaining < 0 {
				remaining = 0
			}
			return &domain.CapacityError{Requested: len(batch), Remaining: remaining}
		}
	}

	dupQuery := `SELECT EXISTS (
					SELECT 1 FROM rsvps
					WHERE event_id = $1 AND lower(btrim(name)) = lower(btrim($2)))`
	var taken bool
	if err = tx.QueryRowContext(ctx, dupQuery, eventID, batch[0].Name).Scan(&taken); err != nil {
		return fmt.Errorf("check duplicate name: %w", err)
	}
	if taken {
		return domain.ErrDuplicateName
	}

	insertQuery := `INSERT INTO rsvps (id, event_id, name, user_id, created_at)
					VALUES ($1, $2, $3, $4, $5)`
	for _, rv := range batch {
		if _, err = tx.ExecContext(
			ctx, insertQuery,
			rv.ID, rv.EventID, rv.Name, rv.UserID, rv.CreatedAt,
		); err != nil {
			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domain.ErrDuplicateName
			}
			return fmt.Errorf("insert rsvp: %w", err)
		}
	}

	return tx.Commit()
}

func (r *RsvpRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Rsvp, error) {
	query := `SELECT id, event_id, name, user_id, created_at
			  FROM rsvps
			  WHERE event_id = $1
			  ORDER BY created_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer rows.Close()

	var res []*domain.Rsvp
	for rows.Next() {
		var rv domain.Rsvp
		if err = rows.Scan(&rv.ID, &rv.EventID, &rv.Name, &rv.UserID, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}

func (r *RsvpRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM rsvps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete rsvp: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rsvp rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRsvpNotFound
	}

	return nil
}
