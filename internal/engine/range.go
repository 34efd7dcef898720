package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// RangePair is the day pair of a range picker.
type RangePair struct {
	Start calendar.Date
	End   calendar.Date
}

// Ordered reports whether Start is not after End. Pairs with an open end
// are always ordered.
func (p RangePair) Ordered() bool {
	if !p.Start.HasDay() || !p.End.HasDay() {
		return true
	}
	return calendar.Compare(p.Start, p.End) <= 0
}

// RangeOptions configures a Range. DisabledDates and Layout are shared by
// both ends.
type RangeOptions struct {
	Language string `validate:"required"`
	Layout   string `validate:"omitempty,datelayout"`

	DefaultStart *time.Time `validate:"-"`
	DefaultEnd   *time.Time `validate:"-"`

	DisabledDates func(candidate time.Time) bool `validate:"-"`
	// OnChange fires whenever either end commits or clears.
	OnChange func(start, end *time.Time) `validate:"-"`

	// The cursor callbacks are shared by both ends.
	OnDayChange   func(day int)    `validate:"-"`
	OnMonthChange func(MonthValue) `validate:"-"`
	OnYearChange  func(year int)   `validate:"-"`

	MonthNames MonthNamer   `validate:"-"`
	Logger     *slog.Logger `validate:"-"`
}

// Range coordinates a start and an end controller. On top of the caller
// predicate each end refuses days that would put the pair out of order;
// a pair that is already out of order is reported, never swapped.
type Range struct {
	Start *Controller
	End   *Controller

	opts RangeOptions
	log  *slog.Logger
}

// NewRange builds both ends of a range picker.
func NewRange(opts RangeOptions, clock Clock) (*Range, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	r := &Range{opts: opts, log: opts.Logger}
	if r.log == nil {
		r.log = slog.Default()
	}
	r.log = r.log.With(config.LogKeyComponent, config.CompEngine)

	base := Options{
		Language:      opts.Language,
		Layout:        opts.Layout,
		OnDayChange:   opts.OnDayChange,
		OnMonthChange: opts.OnMonthChange,
		OnYearChange:  opts.OnYearChange,
		MonthNames:    opts.MonthNames,
		Logger:        opts.Logger,
		OnChange:      func(*time.Time, string) { r.changed() },
	}

	startOpts := base
	startOpts.DefaultValue = opts.DefaultStart
	startOpts.DisabledDates = func(t time.Time) bool {
		if r.callerDisabled(t) {
			return true
		}
		end := r.End.Value()
		return end != nil && t.After(*end)
	}

	endOpts := base
	endOpts.DefaultValue = opts.DefaultEnd
	endOpts.DisabledDates = func(t time.Time) bool {
		if r.callerDisabled(t) {
			return true
		}
		start := r.Start.Value()
		return start != nil && t.Before(*start)
	}

	var err error
	if r.Start, err = NewController(startOpts, clock); err != nil {
		return nil, err
	}
	if r.End, err = NewController(endOpts, clock); err != nil {
		return nil, err
	}
	return r, nil
}

// Pair returns the committed days of both ends.
func (r *Range) Pair() RangePair {
	return RangePair{Start: r.Start.Date(), End: r.End.Date()}
}

// Values returns the committed native values; either may be nil.
func (r *Range) Values() (start, end *time.Time) {
	return r.Start.Value(), r.End.Value()
}

// Clear empties both ends.
func (r *Range) Clear() {
	r.Start.Clear()
	r.End.Clear()
}

func (r *Range) callerDisabled(t time.Time) bool {
	return r.opts.DisabledDates != nil && r.opts.DisabledDates(t)
}

func (r *Range) changed() {
	start, end := r.Values()
	r.log.Debug(config.MsgRangeChanged,
		config.LogKeyStart, r.Start.DateValue(),
		config.LogKeyEnd, r.End.DateValue(),
	)
	if r.opts.OnChange != nil {
		r.opts.OnChange(start, end)
	}
}
