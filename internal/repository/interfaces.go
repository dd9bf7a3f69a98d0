package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

// Day arguments throughout are ISO calendar dates (YYYY-MM-DD), validated at
// the service boundary. ISO dates order lexicographically, so range scans
// compare them directly.

type CheckinsRepositoryI interface {
	// Inserts a check-in for its day, or overwrites the habit fields for an
	// existing day keeping created_at. Returns the stored record.
	Upsert(ctx context.Context, checkin *entity.CheckIn) (*entity.CheckIn, error)
	// Looks up the check-in for one day. Returns nil without error when the
	// day has no record.
	GetByDay(ctx context.Context, day string) (*entity.CheckIn, error)
	// Lists check-ins with from <= day <= to, ascending by day
	GetByDateRange(ctx context.Context, from, to string) ([]entity.CheckIn, error)
	// Removes every check-in, reporting how many were deleted
	DeleteAll(ctx context.Context) (int64, error)
}

type MetricsRepositoryI interface {
	// Appends a measurement (multiple entries per day allowed)
	Create(ctx context.Context, m *entity.MetricEntry) error
	// Lists measurements in the range, ascending by day
	GetByDateRange(ctx context.Context, from, to string) ([]entity.MetricEntry, error)
	// Returns the newest measurement whose kind is in kinds, nil when none
	GetLatestByKinds(ctx context.Context, kinds []string) (*entity.MetricEntry, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type PhotosRepositoryI interface {
	Create(ctx context.Context, p *entity.PhotoEntry) error
	GetByDateRange(ctx context.Context, from, to string) ([]entity.PhotoEntry, error)
	CountByDateRange(ctx context.Context, from, to string) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type MortgageEventsRepositoryI interface {
	Create(ctx context.Context, ev *entity.MortgageEvent) error
	GetByDateRange(ctx context.Context, from, to string) ([]entity.MortgageEvent, error)
	// Returns the newest event of the given kind by day, nil when none
	GetLatestByKind(ctx context.Context, kind string) (*entity.MortgageEvent, error)
	// Sums amounts of the given kind with from <= day <= to
	SumAmountByKindAndRange(ctx context.Context, kind, from, to string) (float64, error)
	CountByDateRange(ctx context.Context, from, to string) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type GiftsRepositoryI interface {
	Create(ctx context.Context, g *entity.GiftEntry) error
	// Lists gifts in the range, descending by day
	GetByDateRange(ctx context.Context, from, to string) ([]entity.GiftEntry, error)
	CountByDateRange(ctx context.Context, from, to string) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type TripRepositoryI interface {
	// Creates the singleton row with default values unless it already exists.
	// Racing first-access initializations converge on one row.
	EnsureDefault(ctx context.Context) error
	// Returns the live trip state; ErrTripMissing when the singleton is absent
	Get(ctx context.Context) (*entity.TripState, error)
	// Overwrites the singleton in place (upsert by fixed id)
	Update(ctx context.Context, trip *entity.TripState) error
	// Puts the singleton back to default values
	ResetDefault(ctx context.Context) error
	// Archives a full prior snapshot; immutable once written
	AppendHistory(ctx context.Context, h *entity.TripHistoryEntry) error
	// Lists snapshots newest first
	GetHistory(ctx context.Context, limit int) ([]entity.TripHistoryEntry, error)
	DeleteAllHistory(ctx context.Context) (int64, error)
}

type SettingsRepositoryI interface {
	EnsureDefault(ctx context.Context) error
	// Returns the singleton settings; ErrSettingsMissing when absent
	Get(ctx context.Context) (*entity.Settings, error)
	// Overwrites the singleton (upsert by fixed id)
	Update(ctx context.Context, s *entity.Settings) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
