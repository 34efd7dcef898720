package calendar

import (
	"slices"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	"golang.org/x/text/language"
)

// CalendarSystem is the calendar-aware adapter the picker engine depends on.
// Implementations are stateless and safe for concurrent use.
type CalendarSystem interface {
	Kind() Kind

	// Year and Month extract calendar fields from a native value.
	Year(t time.Time) int
	Month(t time.Time) int

	// ToDate maps a native value to a Date; Day is the value's day of month.
	ToDate(t time.Time) Date
	// ToTime is the inverse of ToDate. It fails with *InvalidDateError when
	// d has no day or is not a valid triple in this calendar.
	ToTime(d Date) (time.Time, error)

	DaysInMonth(year, month int) int
	Valid(d Date) bool

	// Format renders t with layout, or DefaultLayout when layout is empty.
	Format(t time.Time, layout string) string
	// Parse strictly parses text with layout, or DefaultLayout when empty.
	Parse(text, layout string) (time.Time, error)
	// FormatNamed and ParseNamed take the names of the MMMM and jMMMM
	// tokens from names.
	FormatNamed(t time.Time, layout string, names MonthNames) string
	ParseNamed(text, layout string, names MonthNames) (time.Time, error)
	DefaultLayout() string

	CurrentYear(now time.Time) int
	CurrentMonth(now time.Time) int
	IsWeekend(d Date) bool
	WeekStart() time.Weekday
}

// weekendDays is the per-calendar weekend table.
var weekendDays = map[Kind][]time.Weekday{
	KindGregorian: {time.Saturday, time.Sunday},
	KindJalaali:   {time.Friday},
}

// WeekendDays returns the weekend days of the given calendar kind.
func WeekendDays(k Kind) []time.Weekday {
	return slices.Clone(weekendDays[k])
}

// ForLanguage resolves the calendar of a locale: Persian selects Jalaali,
// any other language (or an unparsable one) selects Gregorian.
func ForLanguage(lang string) CalendarSystem {
	if IsJalaaliLanguage(lang) {
		return Jalaali{}
	}
	return Gregorian{}
}

// IsJalaaliLanguage reports whether lang resolves to the Jalaali calendar.
func IsJalaaliLanguage(lang string) bool {
	if lang == config.LangPersian {
		return true
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	base, conf := tag.Base()
	return conf == language.Exact && base.String() == config.LangPersian
}

// For returns the system of a calendar kind.
func For(k Kind) CalendarSystem {
	if k == KindJalaali {
		return Jalaali{}
	}
	return Gregorian{}
}

func isWeekend(sys CalendarSystem, d Date) bool {
	t, err := sys.ToTime(d)
	if err != nil {
		return false
	}
	return slices.Contains(weekendDays[sys.Kind()], t.Weekday())
}

func checkDate(sys CalendarSystem, d Date) error {
	switch {
	case !d.HasDay():
		return &InvalidDateError{Date: d, Kind: sys.Kind(), Reason: config.ErrDayUnset}
	case !sys.Valid(d):
		return &InvalidDateError{Date: d, Kind: sys.Kind(), Reason: config.ErrDateOutOfRange}
	}
	return nil
}

func validDate(sys CalendarSystem, d Date) bool {
	if d.Year < 1 || d.Month < 1 || d.Month > config.MonthsPerYear {
		return false
	}
	return d.Day >= 1 && d.Day <= sys.DaysInMonth(d.Year, d.Month)
}
