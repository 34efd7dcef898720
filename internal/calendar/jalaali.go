package calendar

import (
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	ptime "github.com/yaa110/go-persian-calendar"
)

// Jalaali is the solar Hijri calendar. Both conversion directions count
// days from Nowruz 1404 over the 33-year leap rule that go-persian-calendar
// exposes, so a date and its native value always agree. Fields are read in
// the location of the native value.
type Jalaali struct{}

var _ CalendarSystem = Jalaali{}

// nowruz1404 is 1 Farvardin 1404.
var nowruz1404 = time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC)

func (Jalaali) Kind() Kind { return KindJalaali }

func (j Jalaali) Year(t time.Time) int { return j.ToDate(t).Year }

func (j Jalaali) Month(t time.Time) int { return j.ToDate(t).Month }

func (Jalaali) ToDate(t time.Time) Date {
	y, m, d := t.Date()
	civil := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(floorDiv(civil.Unix()-nowruz1404.Unix(), secondsPerDay))
	return jalaaliFromDayNumber(jalaaliDayNumber(1404, 1, 1) + days)
}

func (j Jalaali) ToTime(d Date) (time.Time, error) {
	if err := checkDate(j, d); err != nil {
		return time.Time{}, err
	}
	return jalaaliToTime(d.Year, d.Month, d.Day), nil
}

// DaysInMonth: the first six months have 31 days, the next five 30, and
// Esfand 29 or 30 depending on the leap year.
func (j Jalaali) DaysInMonth(year, month int) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	case j.IsLeap(year):
		return 30
	default:
		return 29
	}
}

func (Jalaali) IsLeap(year int) bool {
	return ptime.Date(year, ptime.Farvardin, 1, 0, 0, 0, 0, time.UTC).IsLeap()
}

func (j Jalaali) Valid(d Date) bool { return validDate(j, d) }

func (Jalaali) DefaultLayout() string { return config.LayoutJalaali }

func (j Jalaali) Format(t time.Time, layout string) string {
	return j.FormatNamed(t, layout, nil)
}

func (j Jalaali) FormatNamed(t time.Time, layout string, names MonthNames) string {
	if layout == "" {
		layout = j.DefaultLayout()
	}
	return formatLayout(t, layout, names)
}

func (j Jalaali) Parse(text, layout string) (time.Time, error) {
	return j.ParseNamed(text, layout, nil)
}

func (j Jalaali) ParseNamed(text, layout string, names MonthNames) (time.Time, error) {
	if layout == "" {
		layout = j.DefaultLayout()
	}
	return parseLayout(text, layout, names)
}

func (j Jalaali) CurrentYear(now time.Time) int { return j.Year(now) }

func (j Jalaali) CurrentMonth(now time.Time) int { return j.Month(now) }

func (j Jalaali) IsWeekend(d Date) bool { return isWeekend(j, d) }

func (Jalaali) WeekStart() time.Weekday { return time.Saturday }

func jalaaliToTime(year, month, day int) time.Time {
	return nowruz1404.AddDate(0, 0, jalaaliDayNumber(year, month, day)-jalaaliDayNumber(1404, 1, 1))
}

const (
	secondsPerDay = 24 * 60 * 60
	leapCycle     = 33
	leapsPerCycle = 8
	daysPerCycle  = leapCycle*365 + leapsPerCycle
)

// jalaaliDayNumber counts days from 1 Farvardin of year 1, which is day 0.
func jalaaliDayNumber(year, month, day int) int {
	return 365*(year-1) + leapsBefore(year) + dayOfYear(month, day)
}

// leapPrefix[i] counts the leap years among the first i years of a cycle.
var leapPrefix = func() (prefix [leapCycle + 1]int) {
	for y := 1; y <= leapCycle; y++ {
		prefix[y] = prefix[y-1]
		if (Jalaali{}).IsLeap(y) {
			prefix[y]++
		}
	}
	return prefix
}()

// leapsBefore counts the leap years in [1, year). The leap rule repeats
// every 33 years.
func leapsBefore(year int) int {
	cycles := int(floorDiv(int64(year-1), leapCycle))
	return cycles*leapsPerCycle + leapPrefix[year-1-cycles*leapCycle]
}

// dayOfYear is zero based.
func dayOfYear(month, day int) int {
	if month <= 7 {
		return (month-1)*31 + day - 1
	}
	return (month-1)*30 + 6 + day - 1
}

func jalaaliFromDayNumber(n int) Date {
	year := int(floorDiv(int64(n)*leapCycle, daysPerCycle)) + 1
	for jalaaliDayNumber(year+1, 1, 1) <= n {
		year++
	}
	for jalaaliDayNumber(year, 1, 1) > n {
		year--
	}

	doy := n - jalaaliDayNumber(year, 1, 1)
	if doy < 6*31 {
		return Date{Day: doy%31 + 1, Month: doy/31 + 1, Year: year}
	}
	doy -= 6 * 31
	return Date{Day: doy%30 + 1, Month: doy/30 + 7, Year: year}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
