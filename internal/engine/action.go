package engine

import "github.com/tartampluch/go-datepicker/internal/calendar"

// ActionKind tags a reducer transition.
type ActionKind int

const (
	ActionDate ActionKind = iota
	ActionDay
	ActionMonth
	ActionYear
	ActionMonthPlus
	ActionMonthMinus
	ActionYearPlus
	ActionYearMinus
)

var actionNames = [...]string{
	ActionDate:       "DATE",
	ActionDay:        "DAY",
	ActionMonth:      "MONTH",
	ActionYear:       "YEAR",
	ActionMonthPlus:  "MONTH_PLUS",
	ActionMonthMinus: "MONTH_MINUS",
	ActionYearPlus:   "YEAR_PLUS",
	ActionYearMinus:  "YEAR_MINUS",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return "UNKNOWN"
	}
	return actionNames[k]
}

// Action is a tagged transition request. Payloads of stepping actions are
// pre-resolved by the controller: carry applied and day decided.
type Action struct {
	Kind    ActionKind
	Payload calendar.Date
}
