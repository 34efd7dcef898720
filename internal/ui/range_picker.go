package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/engine"
	"github.com/tartampluch/go-datepicker/internal/locale"
)

// RangePicker shows both ends of an engine.Range side by side. A commit on
// one end redraws the other, whose disabled days depend on it.
type RangePicker struct {
	Range *engine.Range
	Start *Picker
	End   *Picker

	content fyne.CanvasObject
}

func NewRangePicker(r *engine.Range, loc *locale.Localizer, startLabel, endLabel, clearLabel string) *RangePicker {
	rp := &RangePicker{
		Range: r,
		Start: NewPicker(r.Start, loc, clearLabel),
		End:   NewPicker(r.End, loc, clearLabel),
	}
	rp.Start.OnCommit = rp.End.Refresh
	rp.End.OnCommit = rp.Start.Refresh

	rp.content = container.NewGridWithColumns(config.LayoutColumnsDouble,
		widget.NewCard(startLabel, "", rp.Start.Content()),
		widget.NewCard(endLabel, "", rp.End.Content()),
	)
	return rp
}

func (rp *RangePicker) Content() fyne.CanvasObject {
	return rp.content
}

func (rp *RangePicker) Refresh() {
	rp.Start.Refresh()
	rp.End.Refresh()
}
