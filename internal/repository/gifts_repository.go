package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type GiftsRepository struct {
	conn PgConnection
}

func NewGiftsRepo(conn PgConnection) *GiftsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for giftsRepo: " + err.Error())
	}
	return &GiftsRepository{
		conn: conn,
	}
}

func (gr *GiftsRepository) Create(ctx context.Context, g *entity.GiftEntry) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	row := gr.conn.QueryRow(
		ctx,
		`INSERT INTO gifts (id, day, description, amount, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at;`,
		g.ID,
		g.Day,
		g.Description,
		g.Amount,
	)
	if err := row.Scan(&g.CreatedAt); err != nil {
		return errors.New("creating gift error: " + err.Error())
	}
	return nil
}

// Gift listings are newest first.
func (gr *GiftsRepository) GetByDateRange(ctx context.Context, from, to string) ([]entity.GiftEntry, error) {
	rows, err := gr.conn.Query(
		ctx,
		`SELECT id, day, description, amount, created_at FROM gifts WHERE day >= $1 AND day <= $2 ORDER BY day DESC;`,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting gifts for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.GiftEntry, 0)
	for rows.Next() {
		g := entity.GiftEntry{}
		err = rows.Scan(&g.ID, &g.Day, &g.Description, &g.Amount, &g.CreatedAt)
		if err != nil {
			return nil, errors.New("gift row parsing error: " + err.Error())
		}
		result = append(result, g)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected gift rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (gr *GiftsRepository) CountByDateRange(ctx context.Context, from, to string) (int, error) {
	row := gr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM gifts WHERE day >= $1 AND day <= $2;`,
		from,
		to,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting gifts: " + err.Error())
	}
	return count, nil
}

func (gr *GiftsRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := gr.conn.Exec(ctx, `DELETE FROM gifts;`)
	if err != nil {
		return 0, errors.New("deleting gifts error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
