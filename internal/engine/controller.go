// Package engine holds the picker state machine: the pure date reducer, the
// controller that owns one picker's state, and the range coordinator that
// pairs two controllers.
package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// ControllerState is everything a picker displays. Handlers replace it
// wholesale; it is never patched field by field from outside.
type ControllerState struct {
	Date        calendar.Date // reducer state
	Cache       calendar.Date // last touched day, for highlighting
	Input       string        // raw text typed by the user
	Placeholder string
	Offset      int // Date.Year minus the current year, drives the decade view
}

// Controller drives a single picker. It is not safe for concurrent use; the
// UI event loop serialises calls. Callbacks run synchronously after the
// state has been replaced.
type Controller struct {
	opts  Options
	sys   calendar.CalendarSystem
	clock Clock
	names MonthNamer
	log   *slog.Logger
	state ControllerState
}

// NewController validates opts and builds the initial state from Value,
// DefaultValue or the clock's today.
func NewController(opts Options, clock Clock) (*Controller, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = RealClock{}
	}

	sys := calendar.ForLanguage(opts.Language)
	c := &Controller{
		opts:  opts,
		sys:   sys,
		clock: clock,
		names: opts.MonthNames,
		log:   opts.Logger,
	}
	if c.names == nil {
		c.names = locale.Default()
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.log = c.log.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCalendar, sys.Kind().String(),
	)

	anchor := clock.Now()
	seed := opts.Value
	if seed == nil {
		seed = opts.DefaultValue
	}
	if seed != nil {
		anchor = *seed
	}

	initial := calendar.Date{Month: sys.Month(anchor), Year: sys.Year(anchor)}
	c.state = ControllerState{Date: initial, Cache: initial}
	if seed != nil {
		c.state.Cache = sys.ToDate(*seed)
		c.state.Input = sys.FormatNamed(*seed, opts.Layout, c.layoutNames)
	}
	c.recentre()

	c.log.Debug(config.MsgPickerBuilt,
		config.LogKeyLang, opts.Language,
		config.LogKeyLayout, c.Layout(),
		config.LogKeyDate, initial.String(),
	)
	return c, nil
}

// -----------------------------------------------------------------------------
// Event Handlers
// -----------------------------------------------------------------------------

// DateChange commits d, or clears the selection when d is nil. A disabled
// or invalid day is rejected without any transition and false is returned.
func (c *Controller) DateChange(d *calendar.Date) bool {
	next := c.state

	if d == nil {
		next.Date = Reduce(c.state.Date, Action{Kind: ActionDay, Payload: c.state.Date.WithDay(0)})
		next.Cache = c.state.Cache.WithDay(0)
		next.Placeholder = ""
		c.state = next

		c.log.Debug(config.MsgDateCleared)
		if c.opts.OnChange != nil {
			c.opts.OnChange(nil, "")
		}
		return true
	}

	if !c.acceptable(*d) {
		return false
	}

	next.Date = Reduce(c.state.Date, Action{Kind: ActionDate, Payload: *d})
	next.Cache = *d
	c.state = next

	if !d.HasDay() {
		return true
	}
	t, err := c.sys.ToTime(*d)
	if err != nil {
		c.log.Error(config.ErrInvalidDate, config.LogKeyError, err)
		return true
	}
	formatted := c.sys.FormatNamed(t, c.opts.Layout, c.layoutNames)
	c.log.Debug(config.MsgDateCommitted, config.LogKeyDate, formatted)
	if c.opts.OnChange != nil {
		c.opts.OnChange(&t, formatted)
	}
	return true
}

// DayChange moves the cursor to d. It returns false, leaving the state
// untouched, when d is disabled.
func (c *Controller) DayChange(d calendar.Date) bool {
	if !c.acceptable(d) {
		return false
	}

	next := c.state
	next.Date = Reduce(c.state.Date, Action{Kind: ActionDay, Payload: d})
	next.Cache = d
	if d.HasDay() {
		next.Input = ""
	}
	c.state = next
	if d.HasDay() {
		c.recentre()
	}

	if d.HasDay() && c.opts.OnDayChange != nil {
		c.opts.OnDayChange(d.Day)
	}
	return true
}

// SelectDay is a day tap in the grid: the cursor moves and the day is
// committed.
func (c *Controller) SelectDay(d calendar.Date) bool {
	if !c.DayChange(d) {
		return false
	}
	return c.DateChange(&d)
}

// MonthChange jumps to d.Month (and d.Year when set). The day is taken
// from d as is.
func (c *Controller) MonthChange(d calendar.Date) {
	next := c.state
	next.Date = Reduce(c.state.Date, Action{Kind: ActionMonth, Payload: d})
	c.state = next

	if c.opts.OnMonthChange != nil {
		c.opts.OnMonthChange(MonthValue{Value: d.Month, Name: c.monthName(d.Month)})
	}
}

// YearChange jumps to d.Year with d.Day.
func (c *Controller) YearChange(d calendar.Date) {
	next := c.state
	next.Date = Reduce(c.state.Date, Action{Kind: ActionYear, Payload: d})
	c.state = next

	if c.opts.OnYearChange != nil {
		c.opts.OnYearChange(d.Year)
	}
}

// PickMonth jumps to month of the current year from the months view. The
// cached day survives only if the cache lives in that month.
func (c *Controller) PickMonth(month int) {
	to := calendar.Date{Month: month, Year: c.state.Date.Year}
	to.Day = c.cachedDayIn(to)
	c.MonthChange(to)
}

// PickYear jumps to year from the years view, keeping the month.
func (c *Controller) PickYear(year int) {
	to := calendar.Date{Month: c.state.Date.Month, Year: year}
	to.Day = c.cachedDayIn(to)
	c.YearChange(to)
}

func (c *Controller) IncreaseMonth() { c.stepMonth(ActionMonthPlus, 1) }
func (c *Controller) DecreaseMonth() { c.stepMonth(ActionMonthMinus, -1) }
func (c *Controller) IncreaseYear() { c.stepYear(ActionYearPlus, 1) }
func (c *Controller) DecreaseYear() { c.stepYear(ActionYearMinus, -1) }

func (c *Controller) stepMonth(kind ActionKind, delta int) {
	from := c.state.Date
	y, m := calendar.ShiftMonth(from.Year, from.Month, delta)
	to := calendar.Date{Month: m, Year: y}

	// The reducer wraps the month; the payload carries the year.
	payload := calendar.Date{
		Day:   ResolveDayOnStep(c.sys, StepMonth, c.state.Cache, from, to),
		Month: from.Month,
		Year:  y,
	}

	next := c.state
	next.Date = Reduce(from, Action{Kind: kind, Payload: payload})
	c.state = next
}

func (c *Controller) stepYear(kind ActionKind, delta int) {
	from := c.state.Date
	to := calendar.Date{Month: from.Month, Year: from.Year + delta}

	payload := calendar.Date{
		Day:   ResolveDayOnStep(c.sys, StepYear, c.state.Cache, from, to),
		Month: from.Month,
		Year:  from.Year,
	}

	next := c.state
	next.Date = Reduce(from, Action{Kind: kind, Payload: payload})
	c.state = next
}

// ChangeInput handles a keystroke in the text field. The raw text is kept
// as typed; a strict parse either commits the date (date, month then year
// callbacks) or clears the selection. Parse failures are never returned.
func (c *Controller) ChangeInput(text string) {
	next := c.state
	next.Input = text
	c.state = next

	t, err := c.sys.ParseNamed(text, c.opts.Layout, c.layoutNames)
	switch {
	case err != nil:
		c.log.Debug(config.MsgParseRejected,
			config.LogKeyInput, text,
			config.LogKeyError, err,
		)
		c.DateChange(nil)
	default:
		d := c.sys.ToDate(t)
		if c.DateChange(&d) {
			c.MonthChange(d)
			c.YearChange(d)
		} else {
			c.DateChange(nil)
		}
	}

	c.recentre()
}

// Clear drops the selection and the typed text.
func (c *Controller) Clear() {
	c.DateChange(nil)
	next := c.state
	next.Input = ""
	c.state = next
	c.recentre()
}

// SetPlaceholder shows d formatted as the input hint, or nothing for nil or
// a day-less date.
func (c *Controller) SetPlaceholder(d *calendar.Date) {
	next := c.state
	next.Placeholder = ""
	if d != nil && d.HasDay() {
		next.Placeholder = c.format(*d)
	}
	c.state = next
}

// SetValue synchronises a controlled value into the cache and the input.
// A nil value empties the input.
func (c *Controller) SetValue(v *time.Time) {
	next := c.state
	if v == nil {
		next.Input = ""
	} else {
		next.Cache = c.sys.ToDate(*v)
		next.Input = c.sys.FormatNamed(*v, c.opts.Layout, c.layoutNames)
	}
	c.state = next
	c.recentre()
}

func (c *Controller) SetOffset(offset int) {
	next := c.state
	next.Offset = offset
	c.state = next
}

func (c *Controller) IncreaseDecade() { c.SetOffset(c.state.Offset + config.DecadeSpan) }
func (c *Controller) DecreaseDecade() { c.SetOffset(c.state.Offset - config.DecadeSpan) }

// PressDecadeArrow steps the decade window the way the given header arrow
// points.
func (c *Controller) PressDecadeArrow(a Arrow) {
	if a.Direction(c.IsJalaali()) > 0 {
		c.IncreaseDecade()
		return
	}
	c.DecreaseDecade()
}

// PressMonthArrow steps the month the way the given header arrow points.
func (c *Controller) PressMonthArrow(a Arrow) {
	if a.Direction(c.IsJalaali()) > 0 {
		c.IncreaseMonth()
		return
	}
	c.DecreaseMonth()
}

// -----------------------------------------------------------------------------
// Derived Values
// -----------------------------------------------------------------------------

func (c *Controller) State() ControllerState { return c.state }
func (c *Controller) Date() calendar.Date { return c.state.Date }
func (c *Controller) Cache() calendar.Date { return c.state.Cache }
func (c *Controller) Placeholder() string { return c.state.Placeholder }
func (c *Controller) Offset() int { return c.state.Offset }
func (c *Controller) System() calendar.CalendarSystem { return c.sys }
func (c *Controller) Language() string { return c.opts.Language }
func (c *Controller) IsJalaali() bool { return c.sys.Kind() == calendar.KindJalaali }

// Layout is the effective layout of the input field.
func (c *Controller) Layout() string {
	if c.opts.Layout != "" {
		return c.opts.Layout
	}
	return c.sys.DefaultLayout()
}

// DateValue is the formatted committed date, empty while no day is set.
func (c *Controller) DateValue() string {
	if !c.state.Date.HasDay() {
		return ""
	}
	return c.format(c.state.Date)
}

// InputValue is what the text field shows: typed text wins over the
// formatted date until it is cleared.
func (c *Controller) InputValue() string {
	if c.state.Input != "" {
		return c.state.Input
	}
	return c.DateValue()
}

// Value returns the committed native value, or nil.
func (c *Controller) Value() *time.Time {
	if !c.state.Date.HasDay() {
		return nil
	}
	t, err := c.sys.ToTime(c.state.Date)
	if err != nil {
		return nil
	}
	return &t
}

// Days is the grid of the month under the cursor.
func (c *Controller) Days() []Cell {
	return Grid(c.sys, c.state.Date.Year, c.state.Date.Month)
}

// Months lists the twelve months with their localized names.
func (c *Controller) Months() []MonthValue {
	months := make([]MonthValue, 0, config.MonthsPerYear)
	for m := 1; m <= config.MonthsPerYear; m++ {
		months = append(months, MonthValue{Value: m, Name: c.monthName(m)})
	}
	return months
}

// Decade is the year window selected by the offset.
func (c *Controller) Decade() Decade {
	return DecadeOf(c.sys.CurrentYear(c.clock.Now()) + c.state.Offset)
}

// IsDisabled reports whether d may not be committed. Invalid days are
// always disabled.
func (c *Controller) IsDisabled(d calendar.Date) bool {
	t, err := c.sys.ToTime(d)
	if err != nil {
		return true
	}
	return c.opts.DisabledDates != nil && c.opts.DisabledDates(t)
}

// IsHighlighted reports whether d is the cached day.
func (c *Controller) IsHighlighted(d calendar.Date) bool {
	return d.HasDay() && d == c.state.Cache
}

func (c *Controller) IsWeekend(d calendar.Date) bool {
	return c.sys.IsWeekend(d)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func (c *Controller) acceptable(d calendar.Date) bool {
	if !d.HasDay() {
		return true
	}
	if c.IsDisabled(d) {
		c.log.Debug(config.MsgDayDisabled, config.LogKeyDate, d.String())
		return false
	}
	return true
}

func (c *Controller) format(d calendar.Date) string {
	t, err := c.sys.ToTime(d)
	if err != nil {
		c.log.Error(config.ErrInvalidDate, config.LogKeyError, err)
		return ""
	}
	return c.sys.FormatNamed(t, c.opts.Layout, c.layoutNames)
}

func (c *Controller) cachedDayIn(to calendar.Date) int {
	cache := c.state.Cache
	if cache.Month == to.Month && cache.Year == to.Year {
		return cache.Day
	}
	return 0
}

func (c *Controller) monthName(month int) string {
	if name, ok := c.names.MonthName(c.opts.Language, month); ok {
		return name
	}
	return config.MonthPlaceholder
}

// layoutNames feeds the month name tokens of the picker's own calendar from
// the name table.
func (c *Controller) layoutNames(k calendar.Kind, month int) (string, bool) {
	if k != c.sys.Kind() {
		return "", false
	}
	return c.names.MonthName(c.opts.Language, month)
}

// recentre moves the decade window onto the cursor year. It runs whenever
// the input text changes.
func (c *Controller) recentre() {
	next := c.state
	next.Offset = next.Date.Year - c.sys.CurrentYear(c.clock.Now())
	c.state = next
}
