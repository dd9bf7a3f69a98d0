package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type MortgageEventsRepository struct {
	conn PgConnection
}

func NewMortgageEventsRepo(conn PgConnection) *MortgageEventsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for mortgageEventsRepo: " + err.Error())
	}
	return &MortgageEventsRepository{
		conn: conn,
	}
}

func (mer *MortgageEventsRepository) Create(ctx context.Context, ev *entity.MortgageEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	row := mer.conn.QueryRow(
		ctx,
		`INSERT INTO mortgage_events (id, day, kind, amount, note, created_at) VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING created_at;`,
		ev.ID,
		ev.Day,
		ev.Kind,
		ev.Amount,
		ev.Note,
	)
	if err := row.Scan(&ev.CreatedAt); err != nil {
		return errors.New("creating mortgage event error: " + err.Error())
	}
	return nil
}

func (mer *MortgageEventsRepository) GetByDateRange(ctx context.Context, from, to string) ([]entity.MortgageEvent, error) {
	rows, err := mer.conn.Query(
		ctx,
		`SELECT id, day, kind, amount, note, created_at FROM mortgage_events WHERE day >= $1 AND day <= $2 ORDER BY day ASC;`,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting mortgage events for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.MortgageEvent, 0)
	for rows.Next() {
		ev := entity.MortgageEvent{}
		err = rows.Scan(&ev.ID, &ev.Day, &ev.Kind, &ev.Amount, &ev.Note, &ev.CreatedAt)
		if err != nil {
			return nil, errors.New("mortgage event row parsing error: " + err.Error())
		}
		result = append(result, ev)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected mortgage event rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (mer *MortgageEventsRepository) GetLatestByKind(ctx context.Context, kind string) (*entity.MortgageEvent, error) {
	row := mer.conn.QueryRow(
		ctx,
		`SELECT id, day, kind, amount, note, created_at FROM mortgage_events WHERE kind = $1 ORDER BY day DESC, created_at DESC LIMIT 1;`,
		kind,
	)
	ev := entity.MortgageEvent{}
	err := row.Scan(&ev.ID, &ev.Day, &ev.Kind, &ev.Amount, &ev.Note, &ev.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, errors.New("getting latest mortgage event error: " + err.Error())
	}
	return &ev, nil
}

func (mer *MortgageEventsRepository) SumAmountByKindAndRange(ctx context.Context, kind, from, to string) (float64, error) {
	row := mer.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM mortgage_events WHERE kind = $1 AND day >= $2 AND day <= $3;`,
		kind,
		from,
		to,
	)
	var sum float64
	if err := row.Scan(&sum); err != nil {
		return 0, errors.New("summing mortgage amounts error: " + err.Error())
	}
	return sum, nil
}

func (mer *MortgageEventsRepository) CountByDateRange(ctx context.Context, from, to string) (int, error) {
	row := mer.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM mortgage_events WHERE day >= $1 AND day <= $2;`,
		from,
		to,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting mortgage events: " + err.Error())
	}
	return count, nil
}

func (mer *MortgageEventsRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := mer.conn.Exec(ctx, `DELETE FROM mortgage_events;`)
	if err != nil {
		return 0, errors.New("deleting mortgage events error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
