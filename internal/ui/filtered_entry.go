package ui

import (
	"strings"
	"unicode"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// FilteredEntry is an Entry that drops typed runes rejected by accept.
// It embeds widget.Entry to inherit all standard behavior.
type FilteredEntry struct {
	widget.Entry
	accept   func(rune) bool
	keyboard mobile.KeyboardType
}

// NewNumericalEntry creates an entry accepting digits only.
func NewNumericalEntry() *FilteredEntry {
	return newFilteredEntry(isDigit, mobile.NumberKeyboard)
}

// NewDateEntry creates an entry accepting digits and the usual date
// separators.
func NewDateEntry() *FilteredEntry {
	return newFilteredEntry(isDateRune, mobile.NumberKeyboard)
}

// NewNamedDateEntry also accepts letters, for layouts that spell the month.
func NewNamedDateEntry() *FilteredEntry {
	return newFilteredEntry(func(r rune) bool {
		return isDateRune(r) || unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
	}, mobile.DefaultKeyboard)
}

func newFilteredEntry(accept func(rune) bool, keyboard mobile.KeyboardType) *FilteredEntry {
	entry := &FilteredEntry{accept: accept, keyboard: keyboard}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune forwards r to the Entry only when it is accepted.
// Pasted text bypasses this filter; the Validator or the strict parser
// handles that case.
func (e *FilteredEntry) TypedRune(r rune) {
	if e.accept(r) {
		e.Entry.TypedRune(r)
	}
}

// Keyboard picks the mobile keyboard: a numeric keypad unless letters are
// expected.
func (e *FilteredEntry) Keyboard() mobile.KeyboardType {
	return e.keyboard
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDateRune(r rune) bool {
	return isDigit(r) || strings.ContainsRune(config.DateEntrySeparators, r)
}
