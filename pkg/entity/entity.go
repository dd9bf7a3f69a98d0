package entity

import (
	"time"

	"github.com/google/uuid"
)

// Metric kinds. "waist" is the legacy name for body fat measurements and is
// never written by current code, only normalized away on reads.
const (
	MetricKindWeight  = "weight"
	MetricKindBodyFat = "body_fat"
	MetricKindWaist   = "waist"
)

// Mortgage event kinds.
const (
	MortgageKindPrincipalPayment = "principal_payment"
	MortgageKindBalanceCheck     = "balance_check"
)

// DefaultSingletonID keys the trip and settings singleton rows.
const DefaultSingletonID = "default"

// CheckIn is the one-per-day record of the three tracked daily habits.
// Day is always an ISO calendar date, YYYY-MM-DD.
type CheckIn struct {
	ID            uuid.UUID `json:"id"`
	Day           string    `json:"day"`
	Wakeup5AM     bool      `json:"wakeup_5am"`
	Workout       bool      `json:"workout"`
	VideoCaptured bool      `json:"video_captured"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type MetricEntry struct {
	ID        uuid.UUID `json:"id"`
	Day       string    `json:"day"`
	Kind      string    `json:"kind"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

type PhotoEntry struct {
	ID        uuid.UUID `json:"id"`
	Day       string    `json:"day"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type MortgageEvent struct {
	ID        uuid.UUID `json:"id"`
	Day       string    `json:"day"`
	Kind      string    `json:"kind"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

type GiftEntry struct {
	ID          uuid.UUID `json:"id"`
	Day         string    `json:"day"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// TripState is the single live vacation-planning record. StartDate/EndDate are
// ISO dates when set; Dates is the legacy free-text field kept for old clients.
type TripState struct {
	ID                 string    `json:"id"`
	StartDate          string    `json:"start_date"`
	EndDate            string    `json:"end_date"`
	Dates              string    `json:"dates"`
	AdultsOnly         bool      `json:"adults_only"`
	LodgingBooked      bool      `json:"lodging_booked"`
	ChildcareConfirmed bool      `json:"childcare_confirmed"`
	Notes              string    `json:"notes"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TripHistoryEntry archives the full prior TripState on every trip update.
type TripHistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	TripID    string    `json:"trip_id"`
	CreatedAt time.Time `json:"created_at"`
	Snapshot  TripState `json:"snapshot"`
}

// Settings is the singleton notification configuration. The API credential is
// stored but never serialized into responses.
type Settings struct {
	ID                     string    `json:"id"`
	SendgridAPIKey         string    `json:"-"`
	SendgridSenderEmail    string    `json:"sendgrid_sender_email"`
	ReminderRecipientEmail string    `json:"reminder_recipient_email"`
	WeeklyReviewDay        string    `json:"weekly_review_day"`
	WeeklyReviewHourLocal  int       `json:"weekly_review_hour_local"`
	MonthlyGiftDay         int       `json:"monthly_gift_day"`
	EmailEnabled           bool      `json:"email_enabled"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Reminder is an advisory notice surfaced in the dashboard summary.
type Reminder struct {
	ID       string `json:"id"`
	Area     string `json:"area"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}
