package calendar_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/calendar"
)

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// -----------------------------------------------------------------------------
// Locale Resolution
// -----------------------------------------------------------------------------

func TestForLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want calendar.Kind
	}{
		{"fa", calendar.KindJalaali},
		{"fa-IR", calendar.KindJalaali},
		{"en", calendar.KindGregorian},
		{"en-US", calendar.KindGregorian},
		{"fr", calendar.KindGregorian},
		{"", calendar.KindGregorian},
		{"not a tag!", calendar.KindGregorian},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.ForLanguage(tt.lang).Kind())
		})
	}
}

// -----------------------------------------------------------------------------
// Conversions
// -----------------------------------------------------------------------------

func TestJalaali_Conversions(t *testing.T) {
	j := calendar.Jalaali{}

	tests := []struct {
		name   string
		native time.Time
		date   calendar.Date
	}{
		{"Mehr 10, 1402", utcDate(2023, time.October, 2), calendar.Date{Day: 10, Month: 7, Year: 1402}},
		{"Nowruz 1403", utcDate(2024, time.March, 20), calendar.Date{Day: 1, Month: 1, Year: 1403}},
		{"Leap Esfand 30, 1403", utcDate(2025, time.March, 20), calendar.Date{Day: 30, Month: 12, Year: 1403}},
		{"Nowruz 1404", utcDate(2025, time.March, 21), calendar.Date{Day: 1, Month: 1, Year: 1404}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.date, j.ToDate(tt.native))
			assert.Equal(t, tt.date.Year, j.Year(tt.native))
			assert.Equal(t, tt.date.Month, j.Month(tt.native))

			back, err := j.ToTime(tt.date)
			require.NoError(t, err)
			assert.True(t, tt.native.Equal(back), "expected %s, got %s", tt.native, back)
		})
	}
}

func TestJalaali_Nowruz(t *testing.T) {
	j := calendar.Jalaali{}

	tests := []struct {
		year   int
		nowruz time.Time
	}{
		{1300, utcDate(1921, time.March, 21)},
		{1354, utcDate(1975, time.March, 21)},
		{1399, utcDate(2020, time.March, 20)},
		{1400, utcDate(2021, time.March, 21)},
		{1403, utcDate(2024, time.March, 20)},
		{1404, utcDate(2025, time.March, 21)},
		{1405, utcDate(2026, time.March, 21)},
	}

	for _, tt := range tests {
		back, err := j.ToTime(calendar.Date{Day: 1, Month: 1, Year: tt.year})
		require.NoError(t, err)
		assert.Equal(t, tt.nowruz, back, "Nowruz %d", tt.year)

		eve := tt.nowruz.AddDate(0, 0, -1)
		want := calendar.Date{Day: j.DaysInMonth(tt.year-1, 12), Month: 12, Year: tt.year - 1}
		assert.Equal(t, want, j.ToDate(eve), "Eve of Nowruz %d", tt.year)
	}
}

// TestJalaali_ConversionsAgree walks every day of two centuries: each valid
// date maps to a native value that maps back to it, consecutive days are one
// native day apart, and nothing past the end of a month is accepted.
func TestJalaali_ConversionsAgree(t *testing.T) {
	j := calendar.Jalaali{}
	prev, err := j.ToTime(calendar.Date{Day: 29, Month: 12, Year: 1299})
	require.NoError(t, err)

	for year := 1300; year <= 1500; year++ {
		for month := 1; month <= 12; month++ {
			days := j.DaysInMonth(year, month)
			for day := 1; day <= days; day++ {
				d := calendar.Date{Day: day, Month: month, Year: year}
				native, err := j.ToTime(d)
				require.NoError(t, err, d.String())
				require.Equal(t, d, j.ToDate(native), d.String())
				require.Equal(t, prev.AddDate(0, 0, 1), native, d.String())
				prev = native
			}
			over := calendar.Date{Day: days + 1, Month: month, Year: year}
			_, err := j.ToTime(over)
			require.Error(t, err, over.String())
		}
	}
}

func TestGregorian_Conversions(t *testing.T) {
	g := calendar.Gregorian{}
	native := utcDate(2024, time.February, 29)

	assert.Equal(t, calendar.Date{Day: 29, Month: 2, Year: 2024}, g.ToDate(native))

	back, err := g.ToTime(calendar.Date{Day: 29, Month: 2, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, native, back)
}

func TestToTime_InvalidDate(t *testing.T) {
	tests := []struct {
		name string
		sys  calendar.CalendarSystem
		date calendar.Date
	}{
		{"Day zero", calendar.Jalaali{}, calendar.Date{Day: 0, Month: 7, Year: 1402}},
		{"Mehr 31", calendar.Jalaali{}, calendar.Date{Day: 31, Month: 7, Year: 1402}},
		{"Non-leap Esfand 30", calendar.Jalaali{}, calendar.Date{Day: 30, Month: 12, Year: 1402}},
		{"Month 13", calendar.Jalaali{}, calendar.Date{Day: 1, Month: 13, Year: 1402}},
		{"Feb 29 non-leap", calendar.Gregorian{}, calendar.Date{Day: 29, Month: 2, Year: 2023}},
		{"April 31", calendar.Gregorian{}, calendar.Date{Day: 31, Month: 4, Year: 2024}},
		{"Year zero", calendar.Gregorian{}, calendar.Date{Day: 1, Month: 1, Year: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sys.ToTime(tt.date)
			require.Error(t, err)
			assert.True(t, errors.Is(err, calendar.ErrInvalidDate))

			var invalid *calendar.InvalidDateError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.date, invalid.Date)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	j := calendar.Jalaali{}
	g := calendar.Gregorian{}

	assert.Equal(t, 31, j.DaysInMonth(1402, 1))
	assert.Equal(t, 31, j.DaysInMonth(1402, 6))
	assert.Equal(t, 30, j.DaysInMonth(1402, 7))
	assert.Equal(t, 29, j.DaysInMonth(1402, 12))
	assert.Equal(t, 30, j.DaysInMonth(1403, 12))
	assert.True(t, j.IsLeap(1403))
	assert.False(t, j.IsLeap(1402))
	assert.False(t, j.IsLeap(1404))
	assert.True(t, j.IsLeap(1399))
	assert.Equal(t, 29, j.DaysInMonth(1404, 12))

	assert.Equal(t, 29, g.DaysInMonth(2024, 2))
	assert.Equal(t, 28, g.DaysInMonth(2023, 2))
	assert.Equal(t, 31, g.DaysInMonth(2023, 12))
	assert.Equal(t, 30, g.DaysInMonth(2023, 11))
}

// -----------------------------------------------------------------------------
// Weekend Table
// -----------------------------------------------------------------------------

func TestWeekendTable(t *testing.T) {
	assert.Equal(t, []time.Weekday{time.Friday}, calendar.WeekendDays(calendar.KindJalaali))
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, calendar.WeekendDays(calendar.KindGregorian))

	j := calendar.Jalaali{}
	// 1402/07/14 is Friday 2023-10-06, 1402/07/15 is Saturday.
	assert.True(t, j.IsWeekend(calendar.Date{Day: 14, Month: 7, Year: 1402}))
	assert.False(t, j.IsWeekend(calendar.Date{Day: 15, Month: 7, Year: 1402}))

	g := calendar.Gregorian{}
	assert.True(t, g.IsWeekend(calendar.Date{Day: 7, Month: 10, Year: 2023}))
	assert.True(t, g.IsWeekend(calendar.Date{Day: 8, Month: 10, Year: 2023}))
	assert.False(t, g.IsWeekend(calendar.Date{Day: 6, Month: 10, Year: 2023}))

	assert.False(t, g.IsWeekend(calendar.Date{Day: 0, Month: 10, Year: 2023}), "A cursor without day is never a weekend")
}

func TestWeekendDays_ReturnsCopy(t *testing.T) {
	days := calendar.WeekendDays(calendar.KindJalaali)
	days[0] = time.Monday
	assert.Equal(t, []time.Weekday{time.Friday}, calendar.WeekendDays(calendar.KindJalaali))
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func TestCompare(t *testing.T) {
	a := calendar.Date{Day: 10, Month: 7, Year: 1402}
	assert.Equal(t, 0, calendar.Compare(a, a))
	assert.Equal(t, -1, calendar.Compare(a, calendar.Date{Day: 11, Month: 7, Year: 1402}))
	assert.Equal(t, 1, calendar.Compare(a, calendar.Date{Day: 30, Month: 6, Year: 1402}))
	assert.Equal(t, -1, calendar.Compare(a, calendar.Date{Day: 1, Month: 1, Year: 1403}))
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		year, month, delta int
		wantY, wantM       int
	}{
		{1402, 7, 1, 1402, 8},
		{1402, 12, 1, 1403, 1},
		{1402, 1, -1, 1401, 12},
		{1402, 1, -13, 1400, 12},
		{1402, 6, 18, 1403, 12},
		{1402, 5, 0, 1402, 5},
	}

	for _, tt := range tests {
		y, m := calendar.ShiftMonth(tt.year, tt.month, tt.delta)
		assert.Equal(t, tt.wantY, y, "year for %d/%d%+d", tt.year, tt.month, tt.delta)
		assert.Equal(t, tt.wantM, m, "month for %d/%d%+d", tt.year, tt.month, tt.delta)
	}
}
