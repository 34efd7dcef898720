package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tartampluch/go-datepicker/internal/config"
	ptime "github.com/yaa110/go-persian-calendar"
)

// Layouts use moment-style tokens. Unprefixed tokens address Gregorian
// fields and "j"-prefixed tokens Jalaali fields, so the layout itself picks
// the calendar a value is read in. Text inside [...] is literal, as is any
// rune that does not start a token.

// MonthNames resolves the name a MMMM or jMMMM token shows for month of
// calendar k. A nil table, or a miss, falls back to the calendar's own
// names: English for Gregorian, Persian for Jalaali.
type MonthNames func(k Kind, month int) (string, bool)

func (names MonthNames) lookup(k Kind, month int) string {
	if names != nil {
		if name, ok := names(k, month); ok {
			return name
		}
	}
	if k == KindJalaali {
		return ptime.Month(month).String()
	}
	return time.Month(month).String()
}

type field int

const (
	fieldYear field = iota
	fieldMonth
	fieldDay
	fieldCount
)

type token struct {
	text    string
	field   field
	kind    Kind
	width   int // 4 or 2 = exact digit count, 1 = one or two digits
	twoYear bool
	name    bool
}

// tokens is ordered so that no token is shadowed by one of its prefixes.
var tokens = []token{
	{text: "jYYYY", field: fieldYear, kind: KindJalaali, width: 4},
	{text: "jYY", field: fieldYear, kind: KindJalaali, width: 2, twoYear: true},
	{text: "jMMMM", field: fieldMonth, kind: KindJalaali, name: true},
	{text: "jMM", field: fieldMonth, kind: KindJalaali, width: 2},
	{text: "jM", field: fieldMonth, kind: KindJalaali, width: 1},
	{text: "jDD", field: fieldDay, kind: KindJalaali, width: 2},
	{text: "jD", field: fieldDay, kind: KindJalaali, width: 1},
	{text: "YYYY", field: fieldYear, kind: KindGregorian, width: 4},
	{text: "YY", field: fieldYear, kind: KindGregorian, width: 2, twoYear: true},
	{text: "MMMM", field: fieldMonth, kind: KindGregorian, name: true},
	{text: "MM", field: fieldMonth, kind: KindGregorian, width: 2},
	{text: "M", field: fieldMonth, kind: KindGregorian, width: 1},
	{text: "DD", field: fieldDay, kind: KindGregorian, width: 2},
	{text: "D", field: fieldDay, kind: KindGregorian, width: 1},
}

type element struct {
	tok *token
	lit string
}

// compile splits a layout into tokens and literals. On an unterminated
// bracket it still returns the remainder as a literal along with an error.
func compile(layout string) ([]element, error) {
	var els []element
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			els = append(els, element{lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(layout); {
		rest := layout[i:]
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				lit.WriteString(rest[1:])
				flush()
				return els, fmt.Errorf("%s: %q", config.ErrLayoutBracket, layout)
			}
			lit.WriteString(rest[1:end])
			i += end + 1
			continue
		}
		if tok := matchToken(rest); tok != nil {
			flush()
			els = append(els, element{tok: tok})
			i += len(tok.text)
			continue
		}
		_, size := utf8.DecodeRuneInString(rest)
		lit.WriteString(rest[:size])
		i += size
	}
	flush()
	return els, nil
}

func matchToken(s string) *token {
	for i := range tokens {
		if strings.HasPrefix(s, tokens[i].text) {
			return &tokens[i]
		}
	}
	return nil
}

// CheckLayout reports whether layout can round-trip a date: it must compile,
// address a single calendar and carry a year, a month and a day token.
func CheckLayout(layout string) error {
	if layout == "" {
		return fmt.Errorf("%s", config.ErrLayoutEmpty)
	}
	els, err := compile(layout)
	if err != nil {
		return err
	}
	_, err = layoutKind(els)
	return err
}

func layoutKind(els []element) (Kind, error) {
	var seen [fieldCount]bool
	kind, known := KindGregorian, false
	for _, el := range els {
		if el.tok == nil {
			continue
		}
		if known && el.tok.kind != kind {
			return kind, fmt.Errorf("%s", config.ErrLayoutMixed)
		}
		kind, known = el.tok.kind, true
		seen[el.tok.field] = true
	}
	for _, ok := range seen {
		if !ok {
			return kind, fmt.Errorf("%s", config.ErrLayoutField)
		}
	}
	return kind, nil
}

func formatLayout(t time.Time, layout string, names MonthNames) string {
	els, _ := compile(layout)

	var b strings.Builder
	for _, el := range els {
		if el.tok == nil {
			b.WriteString(el.lit)
			continue
		}
		d := For(el.tok.kind).ToDate(t)
		v := [fieldCount]int{d.Year, d.Month, d.Day}[el.tok.field]
		switch {
		case el.tok.name:
			b.WriteString(names.lookup(el.tok.kind, v))
		case el.tok.twoYear:
			fmt.Fprintf(&b, "%02d", v%100)
		case el.tok.width == 4:
			fmt.Fprintf(&b, "%04d", v)
		case el.tok.width == 2:
			fmt.Fprintf(&b, "%02d", v)
		default:
			fmt.Fprintf(&b, "%d", v)
		}
	}
	return b.String()
}

func parseLayout(text, layout string, names MonthNames) (time.Time, error) {
	fail := func(reason string, err error) (time.Time, error) {
		return time.Time{}, &ParseError{Text: text, Layout: layout, Reason: reason, Err: err}
	}

	els, err := compile(layout)
	if err != nil {
		return fail(config.ErrLayoutBracket, nil)
	}
	kind, err := layoutKind(els)
	if err != nil {
		return fail(err.Error(), nil)
	}

	var vals [fieldCount]int
	var twoYear bool
	pos := 0
	for _, el := range els {
		rest := text[pos:]
		if el.tok == nil {
			if !strings.HasPrefix(rest, el.lit) {
				return fail(config.ErrLayoutLiteral, nil)
			}
			pos += len(el.lit)
			continue
		}
		if el.tok.name {
			m, n := readMonthName(rest, el.tok.kind, names)
			if n == 0 {
				return fail(config.ErrLayoutMonthName, nil)
			}
			vals[fieldMonth] = m
			pos += n
			continue
		}
		v, n := readDigits(rest, el.tok.width)
		if n == 0 {
			return fail(config.ErrLayoutDigits, nil)
		}
		vals[el.tok.field] = v
		twoYear = twoYear || (el.tok.field == fieldYear && el.tok.twoYear)
		pos += n
	}
	if pos != len(text) {
		return fail(config.ErrLayoutTrailing, nil)
	}

	if twoYear {
		vals[fieldYear] = expandTwoDigitYear(kind, vals[fieldYear])
	}
	d := Date{Day: vals[fieldDay], Month: vals[fieldMonth], Year: vals[fieldYear]}
	t, err := For(kind).ToTime(d)
	if err != nil {
		return fail(config.ErrDateOutOfRange, err)
	}
	return t, nil
}

// readDigits consumes exactly width ASCII digits, or one to two digits when
// width is 1. It returns the value and the number of bytes consumed.
func readDigits(s string, width int) (int, int) {
	limit := width
	if width == 1 {
		limit = 2
	}
	v, n := 0, 0
	for n < limit && n < len(s) && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int(s[n]-'0')
		n++
	}
	if width > 1 && n != width {
		return 0, 0
	}
	return v, n
}

// readMonthName matches the longest month name of calendar k that prefixes
// s. It returns the month and the number of bytes consumed.
func readMonthName(s string, k Kind, names MonthNames) (int, int) {
	month, size := 0, 0
	for m := 1; m <= config.MonthsPerYear; m++ {
		name := names.lookup(k, m)
		if len(name) > size && strings.HasPrefix(s, name) {
			month, size = m, len(name)
		}
	}
	return month, size
}

// HasMonthNames reports whether layout renders a month by name.
func HasMonthNames(layout string) bool {
	els, _ := compile(layout)
	for _, el := range els {
		if el.tok != nil && el.tok.name {
			return true
		}
	}
	return false
}

func expandTwoDigitYear(k Kind, yy int) int {
	if k == KindJalaali {
		if yy > config.JalaaliYYPivot {
			return 1300 + yy
		}
		return 1400 + yy
	}
	if yy > config.GregorianYYPivot {
		return 1900 + yy
	}
	return 2000 + yy
}
