package ui

import (
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// DayButton is a grid button reporting pointer hover, used to preview the
// hovered day in the input placeholder.
type DayButton struct {
	widget.Button
	OnHover func(in bool)
}

func NewDayButton(label string, tapped func(), hover func(in bool)) *DayButton {
	b := &DayButton{OnHover: hover}
	b.Text = label
	b.OnTapped = tapped
	b.ExtendBaseWidget(b)
	return b
}

func (b *DayButton) MouseIn(e *desktop.MouseEvent) {
	b.Button.MouseIn(e)
	if b.OnHover != nil {
		b.OnHover(true)
	}
}

func (b *DayButton) MouseOut() {
	b.Button.MouseOut()
	if b.OnHover != nil {
		b.OnHover(false)
	}
}
