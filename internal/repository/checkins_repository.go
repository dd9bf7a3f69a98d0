package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type CheckinsRepository struct {
	conn PgConnection
}

func NewCheckinsRepo(conn PgConnection) *CheckinsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkinsRepo: " + err.Error())
	}
	return &CheckinsRepository{
		conn: conn,
	}
}

func (cr *CheckinsRepository) Upsert(ctx context.Context, checkin *entity.CheckIn) (*entity.CheckIn, error) {
	if checkin.ID == uuid.Nil {
		checkin.ID = uuid.New()
	}
	row := cr.conn.QueryRow(
		ctx,
		`INSERT INTO checkins (id, day, wakeup_5am, workout, video_captured, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (day) DO UPDATE SET
			wakeup_5am = EXCLUDED.wakeup_5am,
			workout = EXCLUDED.workout,
			video_captured = EXCLUDED.video_captured,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING id, day, wakeup_5am, workout, video_captured, notes, created_at, updated_at;`,
		checkin.ID,
		checkin.Day,
		checkin.Wakeup5AM,
		checkin.Workout,
		checkin.VideoCaptured,
		checkin.Notes,
	)
	stored := entity.CheckIn{}
	err := row.Scan(&stored.ID, &stored.Day, &stored.Wakeup5AM, &stored.Workout, &stored.VideoCaptured, &stored.Notes, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, errors.New("upserting checkin error: " + err.Error())
	}
	return &stored, nil
}

func (cr *CheckinsRepository) GetByDay(ctx context.Context, day string) (*entity.CheckIn, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT id, day, wakeup_5am, workout, video_captured, notes, created_at, updated_at FROM checkins WHERE day = $1;`,
		day,
	)
	checkin := entity.CheckIn{}
	err := row.Scan(&checkin.ID, &checkin.Day, &checkin.Wakeup5AM, &checkin.Workout, &checkin.VideoCaptured, &checkin.Notes, &checkin.CreatedAt, &checkin.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, errors.New("getting checkin by day error: " + err.Error())
	}
	return &checkin, nil
}

func (cr *CheckinsRepository) GetByDateRange(ctx context.Context, from, to string) ([]entity.CheckIn, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, day, wakeup_5am, workout, video_captured, notes, created_at, updated_at
		FROM checkins WHERE day >= $1 AND day <= $2 ORDER BY day ASC;`,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting checkins for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.CheckIn, 0)
	for rows.Next() {
		checkin := entity.CheckIn{}
		err = rows.Scan(&checkin.ID, &checkin.Day, &checkin.Wakeup5AM, &checkin.Workout, &checkin.VideoCaptured, &checkin.Notes, &checkin.CreatedAt, &checkin.UpdatedAt)
		if err != nil {
			return nil, errors.New("checkin row parsing error: " + err.Error())
		}
		result = append(result, checkin)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected checkin rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CheckinsRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM checkins;`)
	if err != nil {
		return 0, errors.New("deleting checkins error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
