package calendar

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Sentinels for errors.Is checks.
var (
	ErrInvalidDate = errors.New(config.ErrInvalidDate)
	ErrParse       = errors.New(config.ErrParse)
)

// InvalidDateError reports a Date that cannot be anchored to a native value.
type InvalidDateError struct {
	Date   Date
	Kind   Kind
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s: %s %s: %s", config.ErrInvalidDate, e.Kind, e.Date, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}

// ParseError reports text that does not strictly match a layout.
type ParseError struct {
	Text   string
	Layout string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %q as %q: %s", config.ErrParse, e.Text, e.Layout, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
