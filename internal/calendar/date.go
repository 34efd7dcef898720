// Package calendar adapts the Gregorian and Jalaali calendars behind one
// CalendarSystem interface. Native values are time.Time at midnight UTC;
// Date is the calendar-relative {Day, Month, Year} triple the picker works on.
package calendar

import (
	"cmp"
	"fmt"
)

// Kind identifies a calendar system.
type Kind int

const (
	KindGregorian Kind = iota
	KindJalaali
)

func (k Kind) String() string {
	if k == KindJalaali {
		return "jalaali"
	}
	return "gregorian"
}

// Date is a day in a calendar system. Day == 0 denotes a month/year cursor
// with no concrete day selected. Dates are values; every transition yields a
// new one.
type Date struct {
	Day   int
	Month int
	Year  int
}

// HasDay reports whether a concrete day is selected.
func (d Date) HasDay() bool {
	return d.Day != 0
}

// WithDay returns a copy of d with the given day.
func (d Date) WithDay(day int) Date {
	d.Day = day
	return d
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Compare orders two dates of the same calendar system chronologically.
func Compare(a, b Date) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Month, b.Month); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// ShiftMonth moves (year, month) by delta months, carrying into the year.
func ShiftMonth(year, month, delta int) (int, int) {
	m := month - 1 + delta
	y := year + m/12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	return y, m + 1
}
