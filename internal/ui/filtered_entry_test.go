package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datepicker/internal/ui"
)

func TestFilteredEntry_TypedRune(t *testing.T) {
	tests := []struct {
		name        string
		input       rune
		numeric     bool
		dateAllowed bool
	}{
		{"Digit_Zero", '0', true, true},
		{"Digit_Nine", '9', true, true},
		{"Letter_a", 'a', false, false},
		{"Letter_Z", 'Z', false, false},
		{"Symbol_Slash", '/', false, true},
		{"Symbol_Dash", '-', false, true},
		{"Symbol_Dot", '.', false, true},
		{"Symbol_Space", ' ', false, true},
		{"Symbol_Colon", ':', false, false},
	}

	numeric := ui.NewNumericalEntry()
	date := ui.NewDateEntry()
	w := test.NewWindow(numeric)
	defer w.Close()
	w2 := test.NewWindow(date)
	defer w2.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			numeric.SetText("")
			date.SetText("")

			test.Type(numeric, string(tt.input))
			test.Type(date, string(tt.input))

			if tt.numeric {
				assert.Equal(t, string(tt.input), numeric.Text)
			} else {
				assert.Empty(t, numeric.Text)
			}
			if tt.dateAllowed {
				assert.Equal(t, string(tt.input), date.Text)
			} else {
				assert.Empty(t, date.Text)
			}
		})
	}
}

func TestFilteredEntry_Keyboard(t *testing.T) {
	assert.Equal(t, mobile.NumberKeyboard, ui.NewNumericalEntry().Keyboard())
	assert.Equal(t, mobile.NumberKeyboard, ui.NewDateEntry().Keyboard())
	assert.Equal(t, mobile.DefaultKeyboard, ui.NewNamedDateEntry().Keyboard())
}

func TestFilteredEntry_NamedDate(t *testing.T) {
	entry := ui.NewNamedDateEntry()
	w := test.NewWindow(entry)
	defer w.Close()

	test.Type(entry, "10 مهر: 1402")
	assert.Equal(t, "10 مهر 1402", entry.Text)
}

// SetText bypasses TypedRune; validation happens separately.
func TestFilteredEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry()
	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)
}
