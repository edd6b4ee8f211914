package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

const eventColumns = `id, name, to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI:SS'),
			location, type, attendee_limit, visibility, user_id, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, date, time, location, type, attendee_limit, visibility, user_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Date, e.Time, e.Location,
		e.Type, e.AttendeeLimit, e.Visibility, e.UserID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	e.CreatedAt = now
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $2, date = $3, time = $4, location = $5,
			      type = $6, attendee_limit = $7, visibility = $8, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Date, e.Time, e.Location,
		e.Type, e.AttendeeLimit, e.Visibility,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes the event; the rsvps FK cascades so all attendee
// rows go with it in the same statement.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListPublic(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE visibility = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, domain.VisibilityPublic)
}

func (r *EventRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	query := `
		SELECT
			e.id, e.name, to_char(e.date, 'YYYY-MM-DD'), to_char(e.time, 'HH24:MI:SS'),
			e.location, e.type, e.attendee_limit, e.visibility, e.user_id,
			e.created_at, e.updated_at,
			COUNT(r.id) AS attendee_count
		FROM events e
		LEFT JOIN rsvps r ON r.event_id = e.id
		WHERE e.id = $1
		GROUP BY e.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.EventDetails
	var limit sql.NullInt64
	err = row.Scan(
		&d.Event.ID, &d.Event.Name, &d.Event.Date, &d.Event.Time,
		&d.Event.Location, &d.Event.Type, &limit, &d.Event.Visibility,
		&d.Event.UserID, &d.Event.CreatedAt, &d.Event.UpdatedAt,
		&d.AttendeeCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event details: %w", err)
	}

	if limit.Valid {
		l := int(limit.Int64)
		d.Event.AttendeeLimit = &l
		spots := l - d.AttendeeCount
		if spots < 0 {
			spots = 0
		}
		d.AvailableSpots = &spots
	}

	return &d, nil
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var limit sql.NullInt64
	if err := scan(
		&e.ID, &e.Name, &e.Date, &e.Time, &e.Location,
		&e.Type, &limit, &e.Visibility, &e.UserID,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if limit.Valid {
		l := int(limit.Int64)
		e.AttendeeLimit = &l
	}
	return &e, nil
}
