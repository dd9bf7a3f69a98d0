package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type PhotosRepository struct {
	conn PgConnection
}

func NewPhotosRepo(conn PgConnection) *PhotosRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for photosRepo: " + err.Error())
	}
	return &PhotosRepository{
		conn: conn,
	}
}

func (pr *PhotosRepository) Create(ctx context.Context, p *entity.PhotoEntry) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := pr.conn.QueryRow(
		ctx,
		`INSERT INTO photos (id, day, filename, url, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at;`,
		p.ID,
		p.Day,
		p.Filename,
		p.URL,
	)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return errors.New("creating photo entry error: " + err.Error())
	}
	return nil
}

func (pr *PhotosRepository) GetByDateRange(ctx context.Context, from, to string) ([]entity.PhotoEntry, error) {
	rows, err := pr.conn.Query(
		ctx,
		`SELECT id, day, filename, url, created_at FROM photos WHERE day >= $1 AND day <= $2 ORDER BY day ASC;`,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting photos for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.PhotoEntry, 0)
	for rows.Next() {
		p := entity.PhotoEntry{}
		err = rows.Scan(&p.ID, &p.Day, &p.Filename, &p.URL, &p.CreatedAt)
		if err != nil {
			return nil, errors.New("photo row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected photo rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (pr *PhotosRepository) CountByDateRange(ctx context.Context, from, to string) (int, error) {
	row := pr.conn.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM photos WHERE day >= $1 AND day <= $2;`,
		from,
		to,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting photos: " + err.Error())
	}
	return count, nil
}

func (pr *PhotosRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM photos;`)
	if err != nil {
		return 0, errors.New("deleting photos error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
