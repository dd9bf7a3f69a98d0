package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/zell311-rgb/Emergent-Personal/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("dayiso", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			_, err := time.Parse(time.DateOnly, value)
			return err == nil
		})
	})
}

// ParseDay accepts only ISO calendar dates. The returned error quotes the
// offending literal.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, &errorvalues.InvalidDateError{Value: s}
	}
	return d, nil
}

func FormatDay(d time.Time) string {
	return d.Format(time.DateOnly)
}

// checkRange rejects values outside [min, max]; boundaries are accepted.
func checkRange(v, min, max float64, field string) error {
	if v < min || v > max {
		return &errorvalues.OutOfRangeError{Field: field}
	}
	return nil
}

// parseRange validates a start/end pair for range reads.
func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := ParseDay(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDay(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidRange
	}
	return from, to, nil
}

// WeekBounds returns the Sunday-start week containing anchor: week start is
// the most recent Sunday (anchor itself on Sundays), week end is start+6.
func WeekBounds(anchor time.Time) (time.Time, time.Time) {
	daysSinceSunday := int(anchor.Weekday())
	start := anchor.AddDate(0, 0, -daysSinceSunday)
	return start, start.AddDate(0, 0, 6)
}

// monthBounds returns the first day of today's calendar month and today.
func monthBounds(today time.Time) (time.Time, time.Time) {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	return start, today
}
