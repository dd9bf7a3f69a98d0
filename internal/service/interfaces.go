package service

import (
	"context"
	"io"
	"time"

	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

type CheckInUpsertRequest struct {
	Day           string `json:"day"`
	Wakeup5AM     bool   `json:"wakeup_5am"`
	Workout       bool   `json:"workout"`
	VideoCaptured bool   `json:"video_captured"`
	Notes         string `json:"notes"`
}

type WeightEntryRequest struct {
	Day       string  `json:"day"`
	WeightLbs float64 `json:"weight_lbs"`
}

type BodyFatEntryRequest struct {
	Day        string  `json:"day"`
	BodyFatPct float64 `json:"body_fat_pct"`
}

// WaistEntryRequest is the deprecated measurement payload; its value is stored
// under the body_fat metric kind.
type WaistEntryRequest struct {
	Day     string  `json:"day"`
	WaistIn float64 `json:"waist_in"`
}

type PrincipalPaymentRequest struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

type BalanceCheckRequest struct {
	Day              string  `json:"day"`
	PrincipalBalance float64 `json:"principal_balance"`
	Note             string  `json:"note"`
}

type TripUpdateRequest struct {
	StartDate          string `json:"start_date" validate:"dayiso"`
	EndDate            string `json:"end_date" validate:"dayiso"`
	Dates              string `json:"dates"`
	AdultsOnly         bool   `json:"adults_only"`
	LodgingBooked      bool   `json:"lodging_booked"`
	ChildcareConfirmed bool   `json:"childcare_confirmed"`
	Notes              string `json:"notes"`
}

type GiftCreateRequest struct {
	Day         string  `json:"day"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type SettingsUpdateRequest struct {
	SendgridAPIKey         string `json:"sendgrid_api_key"`
	SendgridSenderEmail    string `json:"sendgrid_sender_email" validate:"omitempty,email"`
	ReminderRecipientEmail string `json:"reminder_recipient_email" validate:"omitempty,email"`
	WeeklyReviewDay        string `json:"weekly_review_day" validate:"omitempty,oneof=Sun Mon Tue Wed Thu Fri Sat"`
	WeeklyReviewHourLocal  int    `json:"weekly_review_hour_local" validate:"gte=0,lte=23"`
	MonthlyGiftDay         int    `json:"monthly_gift_day" validate:"gte=0,lte=31"`
	EmailEnabled           bool   `json:"email_enabled"`
}

// MetricsView is the combined fitness read: range metrics, range photos and
// the newest measurements over all time.
type MetricsView struct {
	Metrics []entity.MetricEntry `json:"metrics"`
	Photos  []entity.PhotoEntry  `json:"photos"`
	Latest  LatestMetrics        `json:"latest"`
}

type LatestMetrics struct {
	WeightLbs  *float64 `json:"weight_lbs"`
	BodyFatPct *float64 `json:"body_fat_pct"`
}

type MortgageSummary struct {
	MortgageStartPrincipal  float64          `json:"mortgage_start_principal"`
	MortgageTargetPrincipal float64          `json:"mortgage_target_principal"`
	LatestPrincipalBalance  *float64         `json:"latest_principal_balance"`
	PrincipalPaidExtraYTD   float64          `json:"principal_paid_extra_ytd"`
	PrincipalPaidExtraMonth float64          `json:"principal_paid_extra_month"`
	Progress                MortgageProgress `json:"progress"`
}

type MortgageProgress struct {
	TargetDelta  float64 `json:"target_delta"`
	PaidExtraYTD float64 `json:"paid_extra_ytd"`
}

type Summary struct {
	Today                   string            `json:"today"`
	CurrentWakeupStreak     int               `json:"current_wakeup_streak"`
	CurrentWorkoutStreak    int               `json:"current_workout_streak"`
	WeekWakeupCount         int               `json:"week_wakeup_count"`
	WeekWorkoutCount        int               `json:"week_workout_count"`
	WeekVideoCount          int               `json:"week_video_count"`
	LatestWeightLbs         *float64          `json:"latest_weight_lbs"`
	LatestBodyFatPct        *float64          `json:"latest_body_fat_pct"`
	MortgageTargetPrincipal float64           `json:"mortgage_target_principal"`
	MortgageStartPrincipal  float64           `json:"mortgage_start_principal"`
	LatestPrincipalBalance  *float64          `json:"latest_principal_balance"`
	PrincipalPaidExtraYTD   float64           `json:"principal_paid_extra_ytd"`
	PrincipalPaidExtraMonth float64           `json:"principal_paid_extra_month"`
	TripLodgingBooked       bool              `json:"trip_lodging_booked"`
	TripChildcareConfirmed  bool              `json:"trip_childcare_confirmed"`
	GiftsThisMonth          int               `json:"gifts_this_month"`
	Reminders               []entity.Reminder `json:"reminders"`
}

type WeeklyReview struct {
	WeekStart              string `json:"week_start"`
	WeekEnd                string `json:"week_end"`
	WakeupsGE4             bool   `json:"wakeups_ge_4"`
	WorkoutsCompleted5     bool   `json:"workouts_completed_5"`
	CapturedAtLeast1Video  bool   `json:"captured_at_least_1_video"`
	MortgageActionTaken    bool   `json:"mortgage_action_taken"`
	RelationshipActionTaken bool  `json:"relationship_action_taken"`
}

// ResetReport itemizes what the administrative reset removed.
type ResetReport struct {
	OK      bool             `json:"ok"`
	Deleted map[string]int64 `json:"deleted"`
	Note    string           `json:"note"`
}

type CheckinServiceI interface {
	// Creates or overwrites the check-in for req.Day, preserving created_at
	Upsert(ctx context.Context, req *CheckInUpsertRequest) (*entity.CheckIn, error)
	// Lists check-ins for start..end ascending; rejects end < start
	ListRange(ctx context.Context, start, end string) ([]entity.CheckIn, error)
}

type FitnessServiceI interface {
	AddWeight(ctx context.Context, req *WeightEntryRequest) (*entity.MetricEntry, error)
	AddBodyFat(ctx context.Context, req *BodyFatEntryRequest) (*entity.MetricEntry, error)
	// Deprecated alias: stores the value as a body_fat measurement
	AddWaist(ctx context.Context, req *WaistEntryRequest) (*entity.MetricEntry, error)
	// Validates, stores the file under a server-generated name and records it
	SavePhoto(ctx context.Context, day, filename string, size int64, file io.Reader) (*entity.PhotoEntry, error)
	Metrics(ctx context.Context, start, end string) (*MetricsView, error)
}

type MortgageServiceI interface {
	AddPrincipalPayment(ctx context.Context, req *PrincipalPaymentRequest) (*entity.MortgageEvent, error)
	AddBalanceCheck(ctx context.Context, req *BalanceCheckRequest) (*entity.MortgageEvent, error)
	ListEvents(ctx context.Context, start, end string) ([]entity.MortgageEvent, error)
	Summary(ctx context.Context, today time.Time) (*MortgageSummary, error)
}

type RelationshipServiceI interface {
	GetTrip(ctx context.Context) (*entity.TripState, error)
	// Overwrites the trip singleton and archives the prior state; rejects
	// unparsable dates and end < start with no write and no history entry
	UpdateTrip(ctx context.Context, req *TripUpdateRequest) (*entity.TripState, error)
	TripHistory(ctx context.Context, limit int) ([]entity.TripHistoryEntry, error)
	AddGift(ctx context.Context, req *GiftCreateRequest) (*entity.GiftEntry, error)
	// Lists one calendar month of gifts, newest first; rejects month outside 1..12
	GiftsForMonth(ctx context.Context, year, month int) ([]entity.GiftEntry, error)
}

type SettingsServiceI interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, req *SettingsUpdateRequest) (*entity.Settings, error)
}

type SummaryServiceI interface {
	BuildSummary(ctx context.Context, today time.Time) (*Summary, error)
	WeeklyReview(ctx context.Context, anchor time.Time) (*WeeklyReview, error)
}

type AdminServiceI interface {
	// Clears the five user-data collections plus trip history and resets the
	// trip singleton; settings and uploaded files on disk are kept
	Reset(ctx context.Context) (*ResetReport, error)
}

// FileStore abstracts where uploaded photo bytes land.
type FileStore interface {
	Save(name string, r io.Reader) error
}
