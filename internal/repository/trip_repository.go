package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type TripRepository struct {
	conn PgConnection
}

func NewTripRepo(conn PgConnection) *TripRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for tripRepo: " + err.Error())
	}
	return &TripRepository{
		conn: conn,
	}
}

func (tr *TripRepository) EnsureDefault(ctx context.Context) error {
	_, err := tr.conn.Exec(
		ctx,
		`INSERT INTO trip (id, start_date, end_date, dates, adults_only, lodging_booked, childcare_confirmed, notes, updated_at)
		VALUES ($1, '', '', '', TRUE, FALSE, FALSE, '', NOW())
		ON CONFLICT (id) DO NOTHING;`,
		entity.DefaultSingletonID,
	)
	if err != nil {
		return errors.New("ensuring default trip error: " + err.Error())
	}
	return nil
}

func (tr *TripRepository) Get(ctx context.Context) (*entity.TripState, error) {
	row := tr.conn.QueryRow(
		ctx,
		`SELECT id, start_date, end_date, dates, adults_only, lodging_booked, childcare_confirmed, notes, updated_at FROM trip WHERE id = $1;`,
		entity.DefaultSingletonID,
	)
	trip := entity.TripState{}
	err := row.Scan(&trip.ID, &trip.StartDate, &trip.EndDate, &trip.Dates, &trip.AdultsOnly, &trip.LodgingBooked, &trip.ChildcareConfirmed, &trip.Notes, &trip.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errorvalues.ErrTripMissing
		}
		return nil, errors.New("getting trip error: " + err.Error())
	}
	return &trip, nil
}

func (tr *TripRepository) Update(ctx context.Context, trip *entity.TripState) error {
	_, err := tr.conn.Exec(
		ctx,
		`INSERT INTO trip (id, start_date, end_date, dates, adults_only, lodging_booked, childcare_confirmed, notes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (id) DO UPDATE SET
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			dates = EXCLUDED.dates,
			adults_only = EXCLUDED.adults_only,
			lodging_booked = EXCLUDED.lodging_booked,
			childcare_confirmed = EXCLUDED.childcare_confirmed,
			notes = EXCLUDED.notes,
			updated_at = NOW();`,
		entity.DefaultSingletonID,
		trip.StartDate,
		trip.EndDate,
		trip.Dates,
		trip.AdultsOnly,
		trip.LodgingBooked,
		trip.ChildcareConfirmed,
		trip.Notes,
	)
	if err != nil {
		return errors.New("updating trip error: " + err.Error())
	}
	return nil
}

func (tr *TripRepository) ResetDefault(ctx context.Context) error {
	_, err := tr.conn.Exec(
		ctx,
		`INSERT INTO trip (id, start_date, end_date, dates, adults_only, lodging_booked, childcare_confirmed, notes, updated_at)
		VALUES ($1, '', '', '', TRUE, FALSE, FALSE, '', NOW())
		ON CONFLICT (id) DO UPDATE SET
			start_date = '',
			end_date = '',
			dates = '',
			adults_only = TRUE,
			lodging_booked = FALSE,
			childcare_confirmed = FALSE,
			notes = '',
			updated_at = NOW();`,
		entity.DefaultSingletonID,
	)
	if err != nil {
		return errors.New("resetting trip error: " + err.Error())
	}
	return nil
}

func (tr *TripRepository) AppendHistory(ctx context.Context, h *entity.TripHistoryEntry) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	snapshot, err := sonic.ConfigDefault.Marshal(h.Snapshot)
	if err != nil {
		return errors.New("marshalling trip snapshot error: " + err.Error())
	}
	_, err = tr.conn.Exec(
		ctx,
		`INSERT INTO trip_history (id, trip_id, created_at, snapshot) VALUES ($1, $2, NOW(), $3);`,
		h.ID,
		h.TripID,
		snapshot,
	)
	if err != nil {
		return errors.New("appending trip history error: " + err.Error())
	}
	return nil
}

func (tr *TripRepository) GetHistory(ctx context.Context, limit int) ([]entity.TripHistoryEntry, error) {
	rows, err := tr.conn.Query(
		ctx,
		`SELECT id, trip_id, created_at, snapshot FROM trip_history WHERE trip_id = $1 ORDER BY created_at DESC LIMIT $2;`,
		entity.DefaultSingletonID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting trip history error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.TripHistoryEntry, 0)
	for rows.Next() {
		h := entity.TripHistoryEntry{}
		var snapshot []byte
		err = rows.Scan(&h.ID, &h.TripID, &h.CreatedAt, &snapshot)
		if err != nil {
			return nil, errors.New("trip history row parsing error: " + err.Error())
		}
		if err = sonic.ConfigDefault.Unmarshal(snapshot, &h.Snapshot); err != nil {
			return nil, errors.New("unmarshalling trip snapshot error: " + err.Error())
		}
		result = append(result, h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected trip history rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (tr *TripRepository) DeleteAllHistory(ctx context.Context) (int64, error) {
	ct, err := tr.conn.Exec(ctx, `DELETE FROM trip_history;`)
	if err != nil {
		return 0, errors.New("deleting trip history error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
