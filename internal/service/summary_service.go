package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
	"github.com/zell311-rgb/Emergent-Personal/internal/repository"
	"github.com/zell311-rgb/Emergent-Personal/pkg/entity"
)

// streakLookback bounds the backward walk when counting consecutive days.
const streakLookback = 120

type SummaryService struct {
	checkins repository.CheckinsRepositoryI
	metrics  repository.MetricsRepositoryI
	photos   repository.PhotosRepositoryI
	mortgage MortgageServiceI
	events   repository.MortgageEventsRepositoryI
	gifts    repository.GiftsRepositoryI
	trip     repository.TripRepositoryI
}

func NewSummaryService(
	checkinsRepo repository.CheckinsRepositoryI,
	metricsRepo repository.MetricsRepositoryI,
	photosRepo repository.PhotosRepositoryI,
	mortgageService MortgageServiceI,
	eventsRepo repository.MortgageEventsRepositoryI,
	giftsRepo repository.GiftsRepositoryI,
	tripRepo repository.TripRepositoryI,
) *SummaryService {
	if checkinsRepo == nil || metricsRepo == nil || photosRepo == nil || mortgageService == nil || eventsRepo == nil || giftsRepo == nil || tripRepo == nil {
		log.Fatal("on summary service provided nil dependencies")
	}
	return &SummaryService{
		checkins: checkinsRepo,
		metrics:  metricsRepo,
		photos:   photosRepo,
		mortgage: mortgageService,
		events:   eventsRepo,
		gifts:    giftsRepo,
		trip:     tripRepo,
	}
}

// currentStreak counts consecutive qualifying days walking backward from
// today. A missing record or a false value stops the walk, so a gap on today
// itself yields 0.
func currentStreak(byDay map[string]entity.CheckIn, today time.Time, field func(entity.CheckIn) bool) int {
	streak := 0
	for i := 0; i < streakLookback; i++ {
		checkin, ok := byDay[FormatDay(today.AddDate(0, 0, -i))]
		if !ok || !field(checkin) {
			break
		}
		streak++
	}
	return streak
}

func (ss *SummaryService) BuildSummary(ctx context.Context, today time.Time) (*Summary, error) {
	weekStart, weekEnd := WeekBounds(today)

	weekCheckins, err := ss.checkins.GetByDateRange(ctx, FormatDay(weekStart), FormatDay(weekEnd))
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}

	summary := Summary{
		Today:     FormatDay(today),
		Reminders: make([]entity.Reminder, 0),
	}
	for _, c := range weekCheckins {
		if c.Wakeup5AM {
			summary.WeekWakeupCount++
		}
		if c.Workout {
			summary.WeekWorkoutCount++
		}
		if c.VideoCaptured {
			summary.WeekVideoCount++
		}
	}

	// One range read covers the whole streak window; the walk itself stays
	// day-by-day over the resulting map.
	lookbackStart := today.AddDate(0, 0, -(streakLookback - 1))
	recent, err := ss.checkins.GetByDateRange(ctx, FormatDay(lookbackStart), FormatDay(today))
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	byDay := make(map[string]entity.CheckIn, len(recent))
	for _, c := range recent {
		byDay[c.Day] = c
	}
	summary.CurrentWakeupStreak = currentStreak(byDay, today, func(c entity.CheckIn) bool { return c.Wakeup5AM })
	summary.CurrentWorkoutStreak = currentStreak(byDay, today, func(c entity.CheckIn) bool { return c.Workout })

	latestWeight, err := ss.metrics.GetLatestByKinds(ctx, []string{entity.MetricKindWeight})
	if err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	if latestWeight != nil {
		summary.LatestWeightLbs = &latestWeight.Value
	}
	latestBodyFat, err := ss.metrics.GetLatestByKinds(ctx, []string{entity.MetricKindBodyFat, entity.MetricKindWaist})
	if err != nil {
		return nil, errors.New("metrics repository error: " + err.Error())
	}
	if latestBodyFat != nil {
		summary.LatestBodyFatPct = &latestBodyFat.Value
	}

	mortgage, err := ss.mortgage.Summary(ctx, today)
	if err != nil {
		return nil, err
	}
	summary.MortgageStartPrincipal = mortgage.MortgageStartPrincipal
	summary.MortgageTargetPrincipal = mortgage.MortgageTargetPrincipal
	summary.LatestPrincipalBalance = mortgage.LatestPrincipalBalance
	summary.PrincipalPaidExtraYTD = mortgage.PrincipalPaidExtraYTD
	summary.PrincipalPaidExtraMonth = mortgage.PrincipalPaidExtraMonth

	trip, err := ss.trip.Get(ctx)
	if err != nil && !errors.Is(err, errorvalues.ErrTripMissing) {
		return nil, errors.New("trip repository error: " + err.Error())
	}
	if trip != nil {
		summary.TripLodgingBooked = trip.LodgingBooked
		summary.TripChildcareConfirmed = trip.ChildcareConfirmed
	}

	monthStart, _ := monthBounds(today)
	giftsThisMonth, err := ss.gifts.CountByDateRange(ctx, FormatDay(monthStart), FormatDay(today))
	if err != nil {
		return nil, errors.New("gifts repository error: " + err.Error())
	}
	summary.GiftsThisMonth = giftsThisMonth

	photosThisMonth, err := ss.photos.CountByDateRange(ctx, FormatDay(monthStart), FormatDay(today))
	if err != nil {
		return nil, errors.New("photos repository error: " + err.Error())
	}

	latestBalance, err := ss.events.GetLatestByKind(ctx, entity.MortgageKindBalanceCheck)
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}

	summary.Reminders = buildReminders(today, latestWeight, latestBodyFat, latestBalance, photosThisMonth, giftsThisMonth)
	return &summary, nil
}

// buildReminders runs the independent threshold checks. Every check fires on
// its own; none suppresses another. Overdue cases are warnings, never-logged
// cases informational. The stale-measurement check compares against the
// latest body-fat entry, legacy waist rows included.
func buildReminders(today time.Time, latestWeight, latestBodyFat *entity.MetricEntry, latestBalance *entity.MortgageEvent, photosThisMonth, giftsThisMonth int) []entity.Reminder {
	reminders := make([]entity.Reminder, 0)

	if latestWeight != nil {
		if day, err := ParseDay(latestWeight.Day); err == nil && daysBetween(day, today) >= 7 {
			reminders = append(reminders, entity.Reminder{
				ID:       "weight-overdue",
				Area:     "Fitness",
				Message:  "Weight check-in overdue (aim weekly).",
				Severity: "warning",
			})
		}
	} else {
		reminders = append(reminders, entity.Reminder{
			ID:       "weight-missing",
			Area:     "Fitness",
			Message:  "No weight logged yet (weekly).",
			Severity: "info",
		})
	}

	if latestBodyFat != nil {
		if day, err := ParseDay(latestBodyFat.Day); err == nil && daysBetween(day, today) >= 14 {
			reminders = append(reminders, entity.Reminder{
				ID:       "waist-overdue",
				Area:     "Fitness",
				Message:  "Waist measurement overdue (every 2 weeks).",
				Severity: "warning",
			})
		}
	} else {
		reminders = append(reminders, entity.Reminder{
			ID:       "waist-missing",
			Area:     "Fitness",
			Message:  "No waist measurement logged yet (every 2 weeks).",
			Severity: "info",
		})
	}

	if photosThisMonth == 0 {
		reminders = append(reminders, entity.Reminder{
			ID:       "photo-missing",
			Area:     "Fitness",
			Message:  "No progress photo logged yet this month.",
			Severity: "info",
		})
	}

	if giftsThisMonth == 0 {
		reminders = append(reminders, entity.Reminder{
			ID:       "gift-missing",
			Area:     "Relationship",
			Message:  "No gift/gesture logged this month yet.",
			Severity: "info",
		})
	}

	if latestBalance != nil {
		if day, err := ParseDay(latestBalance.Day); err == nil && daysBetween(day, today) >= 30 {
			reminders = append(reminders, entity.Reminder{
				ID:       "mortgage-balance-overdue",
				Area:     "Mortgage",
				Message:  "Mortgage principal balance check overdue (monthly).",
				Severity: "warning",
			})
		}
	} else {
		reminders = append(reminders, entity.Reminder{
			ID:       "mortgage-balance-missing",
			Area:     "Mortgage",
			Message:  "Log your first mortgage principal balance check.",
			Severity: "info",
		})
	}

	return reminders
}

// daysBetween counts whole calendar days, ignoring any time-of-day on either
// side.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func (ss *SummaryService) WeeklyReview(ctx context.Context, anchor time.Time) (*WeeklyReview, error) {
	weekStart, weekEnd := WeekBounds(anchor)

	checkins, err := ss.checkins.GetByDateRange(ctx, FormatDay(weekStart), FormatDay(weekEnd))
	if err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}
	wakeups, workouts, videos := 0, 0, 0
	for _, c := range checkins {
		if c.Wakeup5AM {
			wakeups++
		}
		if c.Workout {
			workouts++
		}
		if c.VideoCaptured {
			videos++
		}
	}

	mortgageActions, err := ss.events.CountByDateRange(ctx, FormatDay(weekStart), FormatDay(weekEnd))
	if err != nil {
		return nil, errors.New("mortgage events repository error: " + err.Error())
	}
	relationshipActions, err := ss.gifts.CountByDateRange(ctx, FormatDay(weekStart), FormatDay(weekEnd))
	if err != nil {
		return nil, errors.New("gifts repository error: " + err.Error())
	}

	return &WeeklyReview{
		WeekStart:               FormatDay(weekStart),
		WeekEnd:                 FormatDay(weekEnd),
		WakeupsGE4:              wakeups >= 4,
		WorkoutsCompleted5:      workouts >= 5,
		CapturedAtLeast1Video:   videos >= 1,
		MortgageActionTaken:     mortgageActions >= 1,
		RelationshipActionTaken: relationshipActions >= 1,
	}, nil
}
