package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

var mortgageColumns = []string{"id", "day", "kind", "amount", "note", "created_at"}

func TestCreateMortgageEvent(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMortgageEventsRepo(conn)
	ev := entity.MortgageEvent{
		ID:     uuid.New(),
		Day:    "2026-04-01",
		Kind:   entity.MortgageKindPrincipalPayment,
		Amount: 500,
		Note:   "extra payment",
	}
	query := regexp.QuoteMeta(`INSERT INTO mortgage_events (id, day, kind, amount, note, created_at) VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING created_at;`)
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(ev.ID, ev.Day, ev.Kind, ev.Amount, ev.Note).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		err := repo.Create(ctx, &ev)
		assert.NoError(t, err)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(ev.ID, ev.Day, ev.Kind, ev.Amount, ev.Note).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &ev)
		assert.Error(t, err)
	})
}

func TestGetLatestMortgageEventByKind(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMortgageEventsRepo(conn)
	query := regexp.QuoteMeta(`SELECT id, day, kind, amount, note, created_at FROM mortgage_events WHERE kind = $1 ORDER BY day DESC, created_at DESC LIMIT 1;`)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.MortgageKindBalanceCheck).
			WillReturnRows(pgxmock.NewRows(mortgageColumns).
				AddRow(uuid.New(), "2026-04-15", entity.MortgageKindBalanceCheck, 312000.0, "", time.Now()))
		ev, err := repo.GetLatestByKind(ctx, entity.MortgageKindBalanceCheck)
		assert.NoError(t, err)
		assert.Equal(t, 312000.0, ev.Amount)
	})
	t.Run("none is nil without error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.MortgageKindBalanceCheck).
			WillReturnError(pgx.ErrNoRows)
		ev, err := repo.GetLatestByKind(ctx, entity.MortgageKindBalanceCheck)
		assert.NoError(t, err)
		assert.Nil(t, ev)
	})
}

func TestSumMortgageAmountByKindAndRange(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMortgageEventsRepo(conn)
	query := regexp.QuoteMeta(`SELECT COALESCE(SUM(amount), 0) FROM mortgage_events WHERE kind = $1 AND day >= $2 AND day <= $3;`)
	ctx := context.Background()
	t.Run("summed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.MortgageKindPrincipalPayment, "2026-01-01", "2026-04-30").
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(1500.0))
		sum, err := repo.SumAmountByKindAndRange(ctx, entity.MortgageKindPrincipalPayment, "2026-01-01", "2026-04-30")
		assert.NoError(t, err)
		assert.Equal(t, 1500.0, sum)
	})
	t.Run("empty range sums to zero", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.MortgageKindPrincipalPayment, "2027-01-01", "2027-01-31").
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0))
		sum, err := repo.SumAmountByKindAndRange(ctx, entity.MortgageKindPrincipalPayment, "2027-01-01", "2027-01-31")
		assert.NoError(t, err)
		assert.Zero(t, sum)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(entity.MortgageKindPrincipalPayment, "2026-01-01", "2026-04-30").
			WillReturnError(errors.New("db error"))
		_, err := repo.SumAmountByKindAndRange(ctx, entity.MortgageKindPrincipalPayment, "2026-01-01", "2026-04-30")
		assert.Error(t, err)
	})
}

func TestCountMortgageEventsByDateRange(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMortgageEventsRepo(conn)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM mortgage_events WHERE day >= $1 AND day <= $2;`)
	conn.ExpectQuery(query).
		WithArgs("2026-04-05", "2026-04-11").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	count, err := repo.CountByDateRange(context.Background(), "2026-04-05", "2026-04-11")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}
