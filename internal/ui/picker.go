package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/calendar"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// viewMode selects what the picker body shows.
type viewMode int

const (
	modeDays viewMode = iota
	modeMonths
	modeYears
)

// Picker renders one engine.Controller: a text input, a navigation header
// and a day, month or year grid.
type Picker struct {
	Ctrl   *engine.Controller
	Entry  *FilteredEntry
	Locale *locale.Localizer

	// OnCommit runs after any action that may have changed the committed
	// value, once the picker itself has been refreshed.
	OnCommit func()

	mode     viewMode
	title    *widget.Button
	body     *fyne.Container
	btnClear *widget.Button
	content  fyne.CanvasObject
	syncing  bool
}

// NewPicker builds the widgets for ctrl. clearLabel is the translated text
// of the clear button.
func NewPicker(ctrl *engine.Controller, loc *locale.Localizer, clearLabel string) *Picker {
	p := &Picker{Ctrl: ctrl, Locale: loc}

	if calendar.HasMonthNames(ctrl.Layout()) {
		p.Entry = NewNamedDateEntry()
	} else {
		p.Entry = NewDateEntry()
	}
	p.Entry.OnChanged = func(text string) {
		if p.syncing {
			return
		}
		p.Ctrl.ChangeInput(text)
		p.refreshView()
		p.committed()
	}

	p.btnClear = widget.NewButtonWithIcon(clearLabel, theme.ContentClearIcon(), p.clear)
	p.title = widget.NewButton("", p.cycleMode)

	left := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), func() { p.press(engine.ArrowLeft) })
	right := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), func() { p.press(engine.ArrowRight) })
	header := container.NewBorder(nil, nil, left, right, p.title)

	p.body = container.NewStack()
	top := container.NewVBox(container.NewBorder(nil, nil, nil, p.btnClear, p.Entry), header)
	p.content = container.NewBorder(top, nil, nil, nil, p.body)

	p.Refresh()
	return p
}

// Content is the root object to place in a window.
func (p *Picker) Content() fyne.CanvasObject {
	return p.content
}

// Refresh redraws the picker from the controller state, including the
// input text.
func (p *Picker) Refresh() {
	if p.Entry.Text != p.Ctrl.InputValue() {
		p.syncing = true
		p.Entry.SetText(p.Ctrl.InputValue())
		p.syncing = false
	}
	p.refreshView()
}

// refreshView redraws everything but the input text, which must not be
// rewritten while the user types.
func (p *Picker) refreshView() {
	p.Entry.SetPlaceHolder(p.placeholder())
	p.title.SetText(p.titleText())

	var grid fyne.CanvasObject
	switch p.mode {
	case modeMonths:
		grid = p.monthsView()
	case modeYears:
		grid = p.yearsView()
	default:
		grid = p.daysView()
	}
	p.body.Objects = []fyne.CanvasObject{grid}
	p.body.Refresh()
}

func (p *Picker) placeholder() string {
	if ph := p.Ctrl.Placeholder(); ph != "" {
		return ph
	}
	return p.Ctrl.Layout()
}

func (p *Picker) titleText() string {
	d := p.Ctrl.Date()
	switch p.mode {
	case modeMonths:
		return strconv.Itoa(d.Year)
	case modeYears:
		return p.Ctrl.Decade().Label(p.Ctrl.IsJalaali())
	}
	return fmt.Sprintf(config.FormatTitle, p.Ctrl.Months()[d.Month-1].Name, d.Year)
}

// cycleMode walks days -> months -> years -> days.
func (p *Picker) cycleMode() {
	p.mode = (p.mode + 1) % (modeYears + 1)
	p.refreshView()
}

func (p *Picker) press(a engine.Arrow) {
	switch p.mode {
	case modeYears:
		p.Ctrl.PressDecadeArrow(a)
	case modeMonths:
		if a.Direction(p.Ctrl.IsJalaali()) > 0 {
			p.Ctrl.IncreaseYear()
		} else {
			p.Ctrl.DecreaseYear()
		}
	default:
		p.Ctrl.PressMonthArrow(a)
	}
	// Stepping may move or drop the committed day.
	p.Refresh()
}

func (p *Picker) clear() {
	p.Ctrl.Clear()
	p.Refresh()
	p.committed()
}

func (p *Picker) committed() {
	if p.OnCommit != nil {
		p.OnCommit()
	}
}

// daysView lays out the weekday labels and the 6x7 day grid. Rows are
// mirrored for right-to-left calendars.
func (p *Picker) daysView() fyne.CanvasObject {
	sys := p.Ctrl.System()
	rtl := p.Ctrl.IsJalaali()

	var objects []fyne.CanvasObject
	for _, label := range mirrorRow(p.Locale.WeekdayLabels(p.Ctrl.Language(), sys.WeekStart()), rtl) {
		l := widget.NewLabel(label)
		l.Alignment = fyne.TextAlignCenter
		objects = append(objects, l)
	}

	for _, week := range engine.Weeks(p.Ctrl.Days()) {
		for _, cell := range mirrorRow(week, rtl) {
			objects = append(objects, p.dayButton(cell))
		}
	}
	return container.NewGridWithColumns(config.DaysPerWeek, objects...)
}

func (p *Picker) dayButton(cell engine.Cell) *DayButton {
	d := cell.Date
	b := NewDayButton(strconv.Itoa(d.Day),
		func() {
			if p.Ctrl.SelectDay(d) {
				p.Refresh()
				p.committed()
			}
		},
		func(in bool) {
			if in {
				p.Ctrl.SetPlaceholder(&d)
			} else {
				p.Ctrl.SetPlaceholder(nil)
			}
			p.Entry.SetPlaceHolder(p.placeholder())
		},
	)

	switch {
	case cell.NotCurrentMonth:
		b.Importance = widget.LowImportance
	case p.Ctrl.IsHighlighted(d):
		b.Importance = widget.HighImportance
	case p.Ctrl.IsWeekend(d):
		b.Importance = widget.WarningImportance
	}
	if cell.NotCurrentMonth || p.Ctrl.IsDisabled(d) {
		b.Disable()
	}
	return b
}

func (p *Picker) monthsView() fyne.CanvasObject {
	current := p.Ctrl.Date().Month
	var objects []fyne.CanvasObject
	for _, m := range p.Ctrl.Months() {
		month := m.Value
		b := widget.NewButton(m.Name, func() {
			p.Ctrl.PickMonth(month)
			p.mode = modeDays
			p.Refresh()
		})
		if month == current {
			b.Importance = widget.HighImportance
		}
		objects = append(objects, b)
	}
	return container.NewGridWithColumns(config.PickerColumns, objects...)
}

func (p *Picker) yearsView() fyne.CanvasObject {
	current := p.Ctrl.Date().Year
	var objects []fyne.CanvasObject
	for _, y := range p.Ctrl.Decade().Years() {
		year := y
		b := widget.NewButton(strconv.Itoa(year), func() {
			p.Ctrl.PickYear(year)
			p.mode = modeMonths
			p.Refresh()
		})
		if year == current {
			b.Importance = widget.HighImportance
		}
		objects = append(objects, b)
	}
	return container.NewGridWithColumns(config.PickerColumns, objects...)
}

func mirrorRow[T any](row []T, rtl bool) []T {
	out := append([]T(nil), row...)
	if rtl {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
