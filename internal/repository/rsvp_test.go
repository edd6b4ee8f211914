package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/rivera-lanasm/cactoide-rivlanm/internal/domain"
)

func newMockRsvpRepo(t *testing.T) (*RsvpRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRsvpRepo(&dbpg.DB{Master: db}), mock
}

func rsvpBatch(eventID string, n int) []domain.Rsvp {
	now := time.Now().UTC()
	batch := make([]domain.Rsvp, 0, n)
	batch = append(batch, domain.Rsvp{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Name:      "Alice",
		UserID:    "u1",
		CreatedAt: now,
	})
	for i := 1; i < n; i++ {
		batch = append(batch, domain.Rsvp{
			ID:        uuid.New().String(),
			EventID:   eventID,
			Name:      fmt.Sprintf("Alice's Guest #%d", i),
			UserID:    "u1",
			CreatedAt: now,
		})
	}
	return batch
}

func expectLock(mock sqlmock.Sqlmock, eventID string, eventType string, limit any) {
	mock.ExpectQuery("FOR UPDATE").
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"type", "attendee_limit"}).AddRow(eventType, limit))
}

func expectCount(mock sqlmock.Sqlmock, eventID string, existing int) {
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(eventID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(existing))
}

func expectDupCheck(mock sqlmock.Sqlmock, taken bool) {
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(taken))
}

func TestRsvpRepository_Register_CommitsWholeBatch(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	batch := rsvpBatch("e1", 3)

	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 5)
	expectCount(mock, "e1", 2)
	expectDupCheck(mock, false)
	mock.ExpectExec("INSERT INTO rsvps").
		WithArgs(batch[0].ID, batch[0].EventID, batch[0].Name, batch[0].UserID, batch[0].CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rsvps").
		WithArgs(batch[1].ID, batch[1].EventID, batch[1].Name, batch[1].UserID, batch[1].CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rsvps").
		WithArgs(batch[2].ID, batch[2].EventID, batch[2].Name, batch[2].UserID, batch[2].CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Register(context.Background(), "e1", batch)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_ExactFillAdmitted(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	// existing + batch == limit fills the event exactly.
	batch := rsvpBatch("e1", 2)

	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 5)
	expectCount(mock, "e1", 3)
	expectDupCheck(mock, false)
	for range batch {
		mock.ExpectExec("INSERT INTO rsvps").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.Register(context.Background(), "e1", batch)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_CapacityExceeded(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 5)
	expectCount(mock, "e1", 4)
	mock.ExpectRollback()

	err := repo.Register(context.Background(), "e1", rsvpBatch("e1", 2))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 2, capErr.Requested)
	assert.Equal(t, 1, capErr.Remaining)

	// No insert reached the store.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_RemainingClampedToZero(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 3)
	expectCount(mock, "e1", 5)
	mock.ExpectRollback()

	err := repo.Register(context.Background(), "e1", rsvpBatch("e1", 1))

	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, 0, capErr.Remaining)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_UnlimitedSkipsCapacityCheck(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	batch := rsvpBatch("e1", 2)

	mock.ExpectBegin()
	expectLock(mock, "e1", "unlimited", nil)
	expectCount(mock, "e1", 1000)
	expectDupCheck(mock, false)
	for range batch {
		mock.ExpectExec("INSERT INTO rsvps").WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	err := repo.Register(context.Background(), "e1", batch)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_EventNotFound(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").
		WithArgs("missing0").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Register(context.Background(), "missing0", rsvpBatch("missing0", 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_DuplicateNamePrecheck(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 5)
	expectCount(mock, "e1", 1)
	expectDupCheck(mock, true)
	mock.ExpectRollback()

	err := repo.Register(context.Background(), "e1", rsvpBatch("e1", 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_UniqueIndexBackstop(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	// A concurrent transaction slipped the same name in after the
	// precheck; the unique index violation must surface as the same
	// duplicate-name error.
	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 5)
	expectCount(mock, "e1", 1)
	expectDupCheck(mock, false)
	mock.ExpectExec("INSERT INTO rsvps").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Register(context.Background(), "e1", rsvpBatch("e1", 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_PartialBatchRollsBack(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectBegin()
	expectLock(mock, "e1", "limited", 10)
	expectCount(mock, "e1", 0)
	expectDupCheck(mock, false)
	mock.ExpectExec("INSERT INTO rsvps").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO rsvps").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Register(context.Background(), "e1", rsvpBatch("e1", 3))

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateName)

	// The transaction never commits, so the registrant row that did
	// insert is discarded along with the failed guest row.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Register_EmptyBatch(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	err := repo.Register(context.Background(), "e1", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_ListByEvent_OrderedByCreation(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("ORDER BY created_at ASC").
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "name", "user_id", "created_at"}).
			AddRow("r1", "e1", "Alice", "u1", now).
			AddRow("r2", "e1", "Alice's Guest #1", "u1", now))

	rsvps, err := repo.ListByEvent(context.Background(), "e1")

	require.NoError(t, err)
	require.Len(t, rsvps, 2)
	assert.Equal(t, "Alice", rsvps[0].Name)
	assert.Equal(t, "Alice's Guest #1", rsvps[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Delete_Success(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectExec("DELETE FROM rsvps").
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "r1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRsvpRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRsvpRepo(t)

	mock.ExpectExec("DELETE FROM rsvps").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRsvpNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
