package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type MetricsRepository struct {
	conn PgConnection
}

func NewMetricsRepo(conn PgConnection) *MetricsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for metricsRepo: " + err.Error())
	}
	return &MetricsRepository{
		conn: conn,
	}
}

func (mr *MetricsRepository) Create(ctx context.Context, m *entity.MetricEntry) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	row := mr.conn.QueryRow(
		ctx,
		`INSERT INTO metrics (id, day, kind, value, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at;`,
		m.ID,
		m.Day,
		m.Kind,
		m.Value,
	)
	if err := row.Scan(&m.CreatedAt); err != nil {
		return errors.New("creating metric error: " + err.Error())
	}
	return nil
}

func (mr *MetricsRepository) GetByDateRange(ctx context.Context, from, to string) ([]entity.MetricEntry, error) {
	rows, err := mr.conn.Query(
		ctx,
		`SELECT id, day, kind, value, created_at FROM metrics WHERE day >= $1 AND day <= $2 ORDER BY day ASC;`,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting metrics for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.MetricEntry, 0)
	for rows.Next() {
		m := entity.MetricEntry{}
		err = rows.Scan(&m.ID, &m.Day, &m.Kind, &m.Value, &m.CreatedAt)
		if err != nil {
			return nil, errors.New("metric row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected metric rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (mr *MetricsRepository) GetLatestByKinds(ctx context.Context, kinds []string) (*entity.MetricEntry, error) {
	row := mr.conn.QueryRow(
		ctx,
		`SELECT id, day, kind, value, created_at FROM metrics WHERE kind = ANY($1) ORDER BY day DESC, created_at DESC LIMIT 1;`,
		kinds,
	)
	m := entity.MetricEntry{}
	err := row.Scan(&m.ID, &m.Day, &m.Kind, &m.Value, &m.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, errors.New("getting latest metric error: " + err.Error())
	}
	return &m, nil
}

func (mr *MetricsRepository) DeleteAll(ctx context.Context) (int64, error) {
	ct, err := mr.conn.Exec(ctx, `DELETE FROM metrics;`)
	if err != nil {
		return 0, errors.New("deleting metrics error: " + err.Error())
	}
	return ct.RowsAffected(), nil
}
