package engine

import "github.com/tartampluch/go-datepicker/internal/calendar"

// Step is the unit of a header navigation.
type Step int

const (
	StepMonth Step = iota
	StepYear
)

// ResolveDayOnStep decides which day survives a navigation from -> to.
//
// A month step keeps the cached day only while the cache sits in the month
// being left; a year step keeps it only when the cache already lives in the
// destination year. A kept day that does not exist in the destination month
// is dropped.
func ResolveDayOnStep(sys calendar.CalendarSystem, step Step, cache, from, to calendar.Date) int {
	var keep bool
	switch step {
	case StepMonth:
		keep = cache.Month == from.Month
	case StepYear:
		keep = cache.Year == to.Year
	}
	if !keep || !cache.HasDay() {
		return 0
	}
	if !sys.Valid(to.WithDay(cache.Day)) {
		return 0
	}
	return cache.Day
}
