package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// MonthValue is reported to OnMonthChange.
type MonthValue struct {
	Value int
	Name  string
}

// MonthNamer resolves localized month names. *locale.Localizer satisfies it.
type MonthNamer interface {
	MonthName(lang string, month int) (string, bool)
}

// Options configures a Controller.
type Options struct {
	// Language selects the calendar: "fa" is Jalaali, anything else Gregorian.
	Language string `validate:"required"`

	// Value is the controlled value; DefaultValue seeds an uncontrolled picker.
	Value        *time.Time `validate:"-"`
	DefaultValue *time.Time `validate:"-"`

	// Layout overrides the calendar default layout (e.g. "jMM/jDD/jYYYY").
	Layout string `validate:"omitempty,datelayout"`

	OnChange      func(value *time.Time, formatted string) `validate:"-"`
	OnDayChange   func(day int)                             `validate:"-"`
	OnMonthChange func(MonthValue)                          `validate:"-"`
	OnYearChange  func(year int)                            `validate:"-"`

	// DisabledDates reports days that must never be committed.
	DisabledDates func(candidate time.Time) bool `validate:"-"`

	MonthNames MonthNamer   `validate:"-"`
	Logger     *slog.Logger `validate:"-"`
}

var optionsValidator = newOptionsValidator()

func newOptionsValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation(config.TagDateLayout, func(fl validator.FieldLevel) bool {
		return calendar.CheckLayout(fl.Field().String()) == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

func validateOptions(s any) error {
	if err := optionsValidator.Struct(s); err != nil {
		return fmt.Errorf("%s: %w", config.ErrOptions, err)
	}
	return nil
}
