package engine

import (
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Cell is one slot of the month grid.
type Cell struct {
	ID              int
	Date            calendar.Date
	NotCurrentMonth bool
}

// Grid lays out a month as 6 weeks of 7 days starting on the calendar's
// week start. Leading cells come from the previous month and trailing cells
// from the next one.
func Grid(sys calendar.CalendarSystem, year, month int) []Cell {
	first, err := sys.ToTime(calendar.Date{Day: 1, Month: month, Year: year})
	if err != nil {
		return nil
	}
	lead := (int(first.Weekday()) - int(sys.WeekStart()) + config.DaysPerWeek) % config.DaysPerWeek

	cells := make([]Cell, 0, config.GridCells)
	py, pm := calendar.ShiftMonth(year, month, -1)
	prevDays := sys.DaysInMonth(py, pm)
	for i := lead; i > 0; i-- {
		cells = append(cells, Cell{Date: calendar.Date{Day: prevDays - i + 1, Month: pm, Year: py}, NotCurrentMonth: true})
	}
	for d := 1; d <= sys.DaysInMonth(year, month); d++ {
		cells = append(cells, Cell{Date: calendar.Date{Day: d, Month: month, Year: year}})
	}
	ny, nm := calendar.ShiftMonth(year, month, 1)
	for d := 1; len(cells) < config.GridCells; d++ {
		cells = append(cells, Cell{Date: calendar.Date{Day: d, Month: nm, Year: ny}, NotCurrentMonth: true})
	}

	for i := range cells {
		cells[i].ID = i
	}
	return cells
}

// Weeks splits a grid into its rows, one week each.
func Weeks(cells []Cell) [][]Cell {
	if len(cells) != config.GridCells {
		return nil
	}
	weeks := make([][]Cell, config.GridWeeks)
	for w := range weeks {
		weeks[w] = cells[w*config.DaysPerWeek : (w+1)*config.DaysPerWeek]
	}
	return weeks
}
