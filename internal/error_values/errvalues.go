package errorvalues

import "errors"

var (
	ErrInvalidRange        = errors.New("end must be >= start")
	ErrTripDatesOrder      = errors.New("end_date must be >= start_date")
	ErrEmptyDescription    = errors.New("description required")
	ErrNegativeAmount      = errors.New("amount must be >= 0")
	ErrInvalidMonth        = errors.New("month must be 1-12")
	ErrMissingFilename     = errors.New("missing filename")
	ErrUnsupportedFileType = errors.New("supported types: .jpg, .jpeg, .png, .webp")
	ErrFileTooLarge        = errors.New("file too large (max 10MB)")
	ErrBadConfirm          = errors.New("confirm must be 'RESET'")
	ErrTripMissing         = errors.New("trip state missing")
	ErrSettingsMissing     = errors.New("settings missing")
)

// InvalidDateError keeps the offending literal so rejections can name it.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return "invalid date format: " + e.Value + ". Use YYYY-MM-DD"
}

// OutOfRangeError rejects a numeric input, identifying the field.
type OutOfRangeError struct {
	Field string
}

func (e *OutOfRangeError) Error() string {
	return e.Field + " out of range"
}

// ValidationError carries a human-readable reason for a rejected request body.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
