package calendar

import (
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Gregorian is the proleptic Gregorian calendar backed by the time package.
type Gregorian struct{}

var _ CalendarSystem = Gregorian{}

func (Gregorian) Kind() Kind { return KindGregorian }

func (Gregorian) Year(t time.Time) int { return t.Year() }

func (Gregorian) Month(t time.Time) int { return int(t.Month()) }

func (Gregorian) ToDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Day: d, Month: int(m), Year: y}
}

func (g Gregorian) ToTime(d Date) (time.Time, error) {
	if err := checkDate(g, d); err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC), nil
}

// DaysInMonth relies on time.Date normalising day 0 to the last day of the
// previous month.
func (Gregorian) DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (g Gregorian) Valid(d Date) bool { return validDate(g, d) }

func (Gregorian) DefaultLayout() string { return config.LayoutGregorian }

func (g Gregorian) Format(t time.Time, layout string) string {
	return g.FormatNamed(t, layout, nil)
}

func (g Gregorian) FormatNamed(t time.Time, layout string, names MonthNames) string {
	if layout == "" {
		layout = g.DefaultLayout()
	}
	return formatLayout(t, layout, names)
}

func (g Gregorian) Parse(text, layout string) (time.Time, error) {
	return g.ParseNamed(text, layout, nil)
}

func (g Gregorian) ParseNamed(text, layout string, names MonthNames) (time.Time, error) {
	if layout == "" {
		layout = g.DefaultLayout()
	}
	return parseLayout(text, layout, names)
}

func (Gregorian) CurrentYear(now time.Time) int { return now.Year() }

func (Gregorian) CurrentMonth(now time.Time) int { return int(now.Month()) }

func (g Gregorian) IsWeekend(d Date) bool { return isWeekend(g, d) }

func (Gregorian) WeekStart() time.Weekday { return time.Sunday }
