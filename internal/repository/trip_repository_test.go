package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

var tripColumns = []string{"id", "start_date", "end_date", "dates", "adults_only", "lodging_booked", "childcare_confirmed", "notes", "updated_at"}

func TestGetTrip(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTripRepo(conn)
	query := regexp.QuoteMeta(`SELECT id, start_date, end_date, dates, adults_only, lodging_booked, childcare_confirmed, notes, updated_at FROM trip WHERE id = $1;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.DefaultSingletonID).
			WillReturnRows(pgxmock.NewRows(tripColumns).
				AddRow(entity.DefaultSingletonID, "2026-06-12", "2026-06-14", "", true, true, false, "anniversary", time.Now()))
		trip, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.True(t, trip.LodgingBooked)
		assert.Equal(t, "2026-06-12", trip.StartDate)
	})
	t.Run("missing singleton", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.DefaultSingletonID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.Get(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrTripMissing)
	})
}

func TestEnsureDefaultTrip(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTripRepo(conn)
	query := `INSERT INTO trip`
	ctx := context.Background()
	t.Run("created or already present", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.DefaultSingletonID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.EnsureDefault(ctx))
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.DefaultSingletonID).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.EnsureDefault(ctx))
	})
}

func TestUpdateTrip(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTripRepo(conn)
	trip := entity.TripState{
		StartDate:     "2026-06-12",
		EndDate:       "2026-06-14",
		AdultsOnly:    true,
		LodgingBooked: true,
		Notes:         "cabin weekend",
	}
	query := `INSERT INTO trip`
	ctx := context.Background()
	conn.ExpectExec(query).
		WithArgs(entity.DefaultSingletonID, trip.StartDate, trip.EndDate, trip.Dates, trip.AdultsOnly, trip.LodgingBooked, trip.ChildcareConfirmed, trip.Notes).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Update(ctx, &trip))
}

func TestTripHistory(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewTripRepo(conn)
	snapshot := entity.TripState{
		ID:            entity.DefaultSingletonID,
		StartDate:     "2026-06-12",
		EndDate:       "2026-06-14",
		AdultsOnly:    true,
		LodgingBooked: true,
	}
	raw, err := sonic.ConfigDefault.Marshal(snapshot)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	t.Run("appended", func(t *testing.T) {
		h := entity.TripHistoryEntry{
			ID:       uuid.New(),
			TripID:   entity.DefaultSingletonID,
			Snapshot: snapshot,
		}
		conn.ExpectExec(`INSERT INTO trip_history`).
			WithArgs(h.ID, h.TripID, raw).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.AppendHistory(ctx, &h))
	})
	t.Run("listed newest first with decoded snapshot", func(t *testing.T) {
		query := regexp.QuoteMeta(`SELECT id, trip_id, created_at, snapshot FROM trip_history WHERE trip_id = $1 ORDER BY created_at DESC LIMIT $2;`)
		conn.ExpectQuery(query).
			WithArgs(entity.DefaultSingletonID, 25).
			WillReturnRows(pgxmock.NewRows([]string{"id", "trip_id", "created_at", "snapshot"}).
				AddRow(uuid.New(), entity.DefaultSingletonID, time.Now(), raw))
		history, err := repo.GetHistory(ctx, 25)
		assert.NoError(t, err)
		assert.Len(t, history, 1)
		assert.Equal(t, snapshot.StartDate, history[0].Snapshot.StartDate)
		assert.True(t, history[0].Snapshot.LodgingBooked)
	})
	t.Run("all history deleted", func(t *testing.T) {
		conn.ExpectExec(regexp.QuoteMeta(`DELETE FROM trip_history;`)).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		n, err := repo.DeleteAllHistory(ctx)
		assert.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})
}
