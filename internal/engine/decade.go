package engine

import (
	"fmt"

	"github.com/tartampluch/go-datepicker/internal/config"
)

// Decade is the ten-year window shown by the year view.
type Decade struct {
	Lower int
	Upper int
}

// DecadeOf returns the window containing year.
func DecadeOf(year int) Decade {
	r := year % config.DecadeSpan
	if r < 0 {
		r += config.DecadeSpan
	}
	lower := year - r
	return Decade{Lower: lower, Upper: lower + config.DecadeSpan - 1}
}

// Years lists the window in ascending order.
func (d Decade) Years() []int {
	years := make([]int, 0, config.DecadeSpan)
	for y := d.Lower; y <= d.Upper; y++ {
		years = append(years, y)
	}
	return years
}

func (d Decade) Contains(year int) bool {
	return year >= d.Lower && year <= d.Upper
}

// Label renders the window the way the header reads it: right to left for
// Jalaali.
func (d Decade) Label(isJalaali bool) string {
	if isJalaali {
		return fmt.Sprintf("%d-%d", d.Upper, d.Lower)
	}
	return fmt.Sprintf("%d-%d", d.Lower, d.Upper)
}

// Arrow is a header navigation icon.
type Arrow int

const (
	ArrowLeft Arrow = iota
	ArrowRight
)

// Direction returns +1 when the arrow moves forward in time and -1 when it
// moves back. Headers are mirrored under the right-to-left Jalaali layout.
func (a Arrow) Direction(isJalaali bool) int {
	forward := a == ArrowRight
	if isJalaali {
		forward = !forward
	}
	if forward {
		return 1
	}
	return -1
}
