package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/export"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockPublisher records published selections using testify/mock.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(sel export.Selection) error {
	args := m.Called(sel)
	return args.Error(0)
}

// last returns the most recently published selection.
func (m *MockPublisher) last(t *testing.T) export.Selection {
	t.Helper()
	require.NotEmpty(t, m.Calls, "Nothing was published")
	return m.Calls[len(m.Calls)-1].Arguments.Get(0).(export.Selection)
}

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// 2023-10-02 is 1402/07/10 in the Jalaali calendar.
var fixedNow = time.Date(2023, time.October, 2, 0, 0, 0, 0, time.UTC)

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app with mocked dependencies and
// a built main window.
func setupTestApp(t *testing.T, lang string) (*PickerApp, *MockPublisher) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	app := NewPickerApp(a, ctx, nil, config.Settings{Language: lang, Port: config.DefaultPort})
	pub := new(MockPublisher)
	pub.On("Publish", mock.Anything).Return(nil)
	app.Feed = pub
	app.Clock = MockClock{CurrentTime: fixedNow}

	app.ShowMainWindow()
	require.NotNil(t, app.Single)
	require.NotNil(t, app.Range)
	return app, pub
}

// dayButton finds the current-month button labelled day in p's grid.
func dayButton(t *testing.T, p *Picker, day string) *DayButton {
	t.Helper()
	grid := p.body.Objects[0].(*fyne.Container)
	for _, obj := range grid.Objects {
		if b, ok := obj.(*DayButton); ok && b.Text == day && b.Importance != widget.LowImportance {
			return b
		}
	}
	t.Fatalf("No button for day %s", day)
	return nil
}

func firstLabel(t *testing.T, p *Picker) string {
	t.Helper()
	grid := p.body.Objects[0].(*fyne.Container)
	l, ok := grid.Objects[0].(*widget.Label)
	require.True(t, ok)
	return l.Text
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)
	assert.Equal(t, "Clear", app.GetMsg(config.TKeyBtnClear))
	assert.False(t, app.Single.Ctrl.IsJalaali())

	app.Preferences.SetString(config.PrefLanguage, config.LangPersian)
	app.rebuild()

	assert.Equal(t, "پاک کردن", app.GetMsg(config.TKeyBtnClear))
	assert.True(t, app.Single.Ctrl.IsJalaali())
	assert.True(t, app.Range.Range.End.IsJalaali())
}

func TestLocalization_WeekdayHeaderMirrored(t *testing.T) {
	en, _ := setupTestApp(t, config.LangEnglish)
	assert.Equal(t, "Su", firstLabel(t, en.Single))

	fa, _ := setupTestApp(t, config.LangPersian)
	assert.Equal(t, "ج", firstLabel(t, fa.Single), "The Saturday-first row reads right to left")
}

// -----------------------------------------------------------------------------
// Picker Tests
// -----------------------------------------------------------------------------

func TestPicker_TapDayPublishes(t *testing.T) {
	app, pub := setupTestApp(t, config.LangPersian)

	test.Tap(dayButton(t, app.Single, "15"))

	assert.Equal(t, "1402/07/15", app.Single.Entry.Text)
	assert.Equal(t, "1402/07/15", app.Single.Ctrl.DateValue())

	sel := pub.last(t)
	require.NotNil(t, sel.Start)
	assert.Equal(t, time.Date(2023, time.October, 7, 0, 0, 0, 0, time.UTC), *sel.Start)
	assert.Nil(t, sel.End)
	assert.Equal(t, "1402/07/15", sel.Description)
	assert.Equal(t, app.GetMsg(config.TKeyEvtSummary), sel.Summary)
}

func TestPicker_TypingCommits(t *testing.T) {
	app, pub := setupTestApp(t, config.LangEnglish)
	p := app.Single

	test.Type(p.Entry, "2024/02/29")

	assert.Equal(t, "2024/02/29", p.Entry.Text, "Typed text is never rewritten")
	assert.Equal(t, 29, p.Ctrl.Date().Day)
	assert.Equal(t, "February 2024", p.title.Text)

	sel := pub.last(t)
	require.NotNil(t, sel.Start)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), *sel.Start)
}

func TestPicker_InvalidTypingClears(t *testing.T) {
	app, pub := setupTestApp(t, config.LangEnglish)
	p := app.Single

	test.Type(p.Entry, "2023/02/30")

	assert.Equal(t, "2023/02/30", p.Entry.Text)
	assert.Nil(t, p.Ctrl.Value())
	assert.True(t, pub.last(t).Empty())
}

func TestPicker_Clear(t *testing.T) {
	app, pub := setupTestApp(t, config.LangEnglish)
	p := app.Single
	test.Tap(dayButton(t, p, "10"))
	require.NotNil(t, p.Ctrl.Value())

	test.Tap(p.btnClear)

	assert.Empty(t, p.Entry.Text)
	assert.Nil(t, p.Ctrl.Value())
	assert.True(t, pub.last(t).Empty())
}

func TestPicker_HoverPreview(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)
	p := app.Single
	b := dayButton(t, p, "20")

	b.MouseIn(&desktop.MouseEvent{})
	assert.Equal(t, "2023/10/20", p.Entry.PlaceHolder)

	b.MouseOut()
	assert.Equal(t, config.LayoutGregorian, p.Entry.PlaceHolder)
}

func TestPicker_NavigationSyncsEntry(t *testing.T) {
	app, _ := setupTestApp(t, config.LangPersian)
	p := app.Single
	test.Tap(dayButton(t, p, "10"))
	require.Equal(t, "1402/07/10", p.Entry.Text)

	// Under RTL the left arrow points forward.
	p.press(engine.ArrowLeft)
	assert.Equal(t, "1402/08/10", p.Ctrl.InputValue())
	assert.Equal(t, "1402/08/10", p.Entry.Text)

	p.mode = modeMonths
	p.press(engine.ArrowLeft)
	assert.Empty(t, p.Ctrl.InputValue())
	assert.Empty(t, p.Entry.Text)
	assert.Equal(t, 1403, p.Ctrl.Date().Year)
}

func TestPicker_PickMonthSyncsEntry(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)
	p := app.Single
	test.Tap(dayButton(t, p, "10"))
	p.press(engine.ArrowRight)
	require.Equal(t, "2023/11/10", p.Entry.Text)

	// November holds no cached day, so the day is dropped.
	test.Tap(p.title)
	grid := p.body.Objects[0].(*fyne.Container)
	test.Tap(grid.Objects[10].(*widget.Button))

	assert.Equal(t, modeDays, p.mode)
	assert.Empty(t, p.Ctrl.InputValue())
	assert.Empty(t, p.Entry.Text)
}

func TestPicker_MonthNameLayout(t *testing.T) {
	app, pub := setupTestApp(t, config.LangPersian)
	app.Preferences.SetString(config.PrefLayout, "jD jMMMM jYYYY")
	app.rebuild()
	p := app.Single

	test.Type(p.Entry, "12 مهر 1402")
	assert.Equal(t, 12, p.Ctrl.Date().Day)

	sel := pub.last(t)
	require.NotNil(t, sel.Start)
	assert.Equal(t, time.Date(2023, time.October, 4, 0, 0, 0, 0, time.UTC), *sel.Start)
	assert.Equal(t, "12 مهر 1402", sel.Description)
}

func TestPicker_ModeCycle(t *testing.T) {
	tests := []struct {
		name       string
		lang       string
		days       string
		months     string
		years      string
		nextDecade string
	}{
		{"Gregorian", config.LangEnglish, "October 2023", "2023", "2020-2029", "2030-2039"},
		{"Jalaali", config.LangPersian, "مهر 1402", "1402", "1409-1400", "1419-1410"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupTestApp(t, tt.lang)
			p := app.Single
			assert.Equal(t, tt.days, p.title.Text)

			test.Tap(p.title)
			assert.Equal(t, modeMonths, p.mode)
			assert.Equal(t, tt.months, p.title.Text)

			test.Tap(p.title)
			assert.Equal(t, modeYears, p.mode)
			assert.Equal(t, tt.years, p.title.Text)

			// The visual arrow pointing forward differs under RTL.
			forward := engine.ArrowRight
			if p.Ctrl.IsJalaali() {
				forward = engine.ArrowLeft
			}
			p.press(forward)
			assert.Equal(t, tt.nextDecade, p.title.Text)

			test.Tap(p.title)
			assert.Equal(t, modeDays, p.mode)
		})
	}
}

func TestPicker_PickYearThenMonth(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)
	p := app.Single
	p.mode = modeYears
	p.refreshView()

	grid := p.body.Objects[0].(*fyne.Container)
	for _, obj := range grid.Objects {
		if b := obj.(*widget.Button); b.Text == "2025" {
			test.Tap(b)
		}
	}
	assert.Equal(t, modeMonths, p.mode)
	assert.Equal(t, 2025, p.Ctrl.Date().Year)

	grid = p.body.Objects[0].(*fyne.Container)
	test.Tap(grid.Objects[2].(*widget.Button))
	assert.Equal(t, modeDays, p.mode)
	assert.Equal(t, "March 2025", p.title.Text)
}

// -----------------------------------------------------------------------------
// Range Tests
// -----------------------------------------------------------------------------

func TestRangePicker_CrossRefresh(t *testing.T) {
	app, pub := setupTestApp(t, config.LangEnglish)
	rp := app.Range

	assert.False(t, dayButton(t, rp.End, "5").Disabled())

	test.Tap(dayButton(t, rp.Start, "10"))
	assert.True(t, dayButton(t, rp.End, "5").Disabled(), "End refreshes once the start commits")

	test.Tap(dayButton(t, rp.End, "12"))
	assert.True(t, dayButton(t, rp.Start, "20").Disabled())

	sel := pub.last(t)
	require.NotNil(t, sel.Start)
	require.NotNil(t, sel.End)
	assert.Equal(t, "2023/10/10 - 2023/10/12", sel.Description)
}

// -----------------------------------------------------------------------------
// Settings Tests
// -----------------------------------------------------------------------------

func TestSettings_Validation(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)

	tests := []struct {
		name    string
		port    string
		layout  string
		wantErr string
	}{
		{"Valid", "8080", "", ""},
		{"Valid custom layout", "8080", "DD.MM.YYYY", ""},
		{"Port required", "", "", "Port is required"},
		{"Port out of range", "70000", "", "Port must be between 1 and 65535"},
		{"Layout without day", "8080", "YYYY-MM", "Format needs a year, a month and a day of one calendar"},
		{"Mixed layout", "8080", "jYYYY/MM/DD", "Format needs a year, a month and a day of one calendar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw := app.newSettingsWidgets()
			sw.entryPort.SetText(tt.port)
			sw.layoutEntry.SetText(tt.layout)

			err := sw.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestSettings_SaveRebuilds(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)

	sw := app.newSettingsWidgets()
	sw.langSelect.SetSelected(config.LangPersian)
	sw.layoutEntry.SetText("jDD-jMM-jYYYY")
	sw.entryPort.SetText("9000")
	app.saveSettings(sw)

	assert.Equal(t, config.LangPersian, app.Preferences.String(config.PrefLanguage))
	assert.Equal(t, "9000", app.Preferences.String(config.PrefServerPort))
	assert.True(t, app.Single.Ctrl.IsJalaali())
	assert.Equal(t, "jDD-jMM-jYYYY", app.Single.Ctrl.Layout())

	test.Tap(dayButton(t, app.Single, "15"))
	assert.Equal(t, "15-07-1402", app.Single.Entry.Text)
}

func TestSettings_WindowSingleton(t *testing.T) {
	app, _ := setupTestApp(t, config.LangEnglish)

	app.ShowSettingsWindow()
	first := app.settingsWindow
	require.NotNil(t, first)

	app.ShowSettingsWindow()
	assert.Same(t, first, app.settingsWindow)

	first.Close()
	assert.Nil(t, app.settingsWindow)
}
