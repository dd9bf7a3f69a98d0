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

var metricColumns = []string{"id", "day", "kind", "value", "created_at"}

func TestCreateMetric(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMetricsRepo(conn)
	m := entity.MetricEntry{
		ID:    uuid.New(),
		Day:   "2026-02-10",
		Kind:  entity.MetricKindWeight,
		Value: 185.5,
	}
	query := regexp.QuoteMeta(`INSERT INTO metrics (id, day, kind, value, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING created_at;`)
	ctx := context.Background()
	t.Run("created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(m.ID, m.Day, m.Kind, m.Value).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))
		err := repo.Create(ctx, &m)
		assert.NoError(t, err)
		assert.False(t, m.CreatedAt.IsZero())
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(m.ID, m.Day, m.Kind, m.Value).
			WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &m)
		assert.Error(t, err)
	})
}

func TestGetLatestMetricByKinds(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMetricsRepo(conn)
	query := regexp.QuoteMeta(`SELECT id, day, kind, value, created_at FROM metrics WHERE kind = ANY($1) ORDER BY day DESC, created_at DESC LIMIT 1;`)
	ctx := context.Background()
	kinds := []string{entity.MetricKindBodyFat, entity.MetricKindWaist}
	t.Run("found newest across kinds", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(kinds).
			WillReturnRows(pgxmock.NewRows(metricColumns).
				AddRow(uuid.New(), "2026-02-12", entity.MetricKindBodyFat, 21.5, time.Now()))
		m, err := repo.GetLatestByKinds(ctx, kinds)
		assert.NoError(t, err)
		assert.Equal(t, entity.MetricKindBodyFat, m.Kind)
		assert.Equal(t, 21.5, m.Value)
	})
	t.Run("none is nil without error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(kinds).
			WillReturnError(pgx.ErrNoRows)
		m, err := repo.GetLatestByKinds(ctx, kinds)
		assert.NoError(t, err)
		assert.Nil(t, m)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(kinds).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetLatestByKinds(ctx, kinds)
		assert.Error(t, err)
	})
}

func TestGetMetricsByDateRange(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMetricsRepo(conn)
	query := regexp.QuoteMeta(`SELECT id, day, kind, value, created_at FROM metrics WHERE day >= $1 AND day <= $2 ORDER BY day ASC;`)
	ctx := context.Background()
	t.Run("listed", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs("2026-02-01", "2026-02-28").
			WillReturnRows(pgxmock.NewRows(metricColumns).
				AddRow(uuid.New(), "2026-02-03", entity.MetricKindWeight, 186.0, time.Now()).
				AddRow(uuid.New(), "2026-02-10", entity.MetricKindWeight, 185.5, time.Now()))
		result, err := repo.GetByDateRange(ctx, "2026-02-01", "2026-02-28")
		assert.NoError(t, err)
		assert.Len(t, result, 2)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs("2026-02-01", "2026-02-28").
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByDateRange(ctx, "2026-02-01", "2026-02-28")
		assert.Error(t, err)
	})
}

func TestDeleteAllMetrics(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewMetricsRepo(conn)
	query := regexp.QuoteMeta(`DELETE FROM metrics;`)
	conn.ExpectExec(query).WillReturnResult(pgxmock.NewResult("DELETE", 7))
	n, err := repo.DeleteAll(context.Background())
	assert.NoError(t, err)
	assert.EqualValues(t, 7, n)
}
