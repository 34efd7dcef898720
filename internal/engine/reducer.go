package engine

import (
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Reduce is the pure date transition function. It never mutates state and
// trusts the payload: validity and day resets are decided by the caller.
func Reduce(state calendar.Date, a Action) calendar.Date {
	p := a.Payload
	switch a.Kind {
	case ActionDate:
		return p

	case ActionDay:
		state.Day = p.Day
		if p.Month != 0 {
			state.Month = p.Month
		}
		if p.Year != 0 {
			state.Year = p.Year
		}
		return state

	case ActionMonth:
		state.Month = p.Month
		if p.Year != 0 {
			state.Year = p.Year
		}
		state.Day = p.Day
		return state

	case ActionYear:
		state.Year = p.Year
		state.Day = p.Day
		return state

	// Month steps wrap the month only; the year in the payload already
	// carries across December/Farvardin boundaries.
	case ActionMonthPlus:
		return calendar.Date{Day: p.Day, Month: p.Month%config.MonthsPerYear + 1, Year: p.Year}

	case ActionMonthMinus:
		return calendar.Date{Day: p.Day, Month: (p.Month+config.MonthsPerYear-2)%config.MonthsPerYear + 1, Year: p.Year}

	case ActionYearPlus:
		return calendar.Date{Day: p.Day, Month: p.Month, Year: p.Year + 1}

	case ActionYearMinus:
		return calendar.Date{Day: p.Day, Month: p.Month, Year: p.Year - 1}
	}
	return state
}
