// Package export turns a committed date or range into an iCalendar feed.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/go-datepicker/internal/config"
)

// Selection is what the pickers committed. Either bound may be nil; a
// single picker only sets Start.
type Selection struct {
	Start *time.Time
	End   *time.Time

	Summary string
	// Description carries the dates as shown in the picker's own calendar.
	Description string
}

// Empty reports whether nothing is committed.
func (s Selection) Empty() bool {
	return s.Start == nil && s.End == nil
}

// bounds returns the first and last selected day, in chronological order.
func (s Selection) bounds() (time.Time, time.Time) {
	first, last := s.Start, s.End
	if first == nil {
		first = last
	}
	if last == nil {
		last = first
	}
	if last.Before(*first) {
		first, last = last, first
	}
	return *first, *last
}

// Encode renders sel as a VCALENDAR holding one all-day VEVENT. DTEND is
// exclusive, so a range ends the day after its last selected day. An empty
// selection yields the stub calendar.
func Encode(sel Selection, now time.Time) ([]byte, error) {
	if sel.Empty() {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	first, last := sel.bounds()

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, eventUID(first, last))

	summary := sel.Summary
	if summary == "" {
		summary = config.FallbackSummary
	}
	event.Props.SetText(config.PropSummary, summary)
	if sel.Description != "" {
		event.Props.SetText(config.PropDescription, sel.Description)
	}

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())
	event.Props.Set(dtStampProp)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(first)
	event.Props.Set(dtStartProp)

	dtEndProp := ical.NewProp(config.PropDTEnd)
	dtEndProp.SetDate(last.AddDate(0, 0, 1))
	event.Props.Set(dtEndProp)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyStart, first.Format(config.DateFormatICS),
		config.LogKeyEnd, last.Format(config.DateFormatICS),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

// eventUID is stable for a given pair of days so clients update the event
// instead of duplicating it.
func eventUID(first, last time.Time) string {
	input := fmt.Sprintf(config.FormatUIDInput,
		first.Format(config.DateFormatICS),
		last.Format(config.DateFormatICS),
		config.UIDSalt,
	)
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(input))
	return fmt.Sprintf(config.FormatUID, id.String(), config.ICalDomain)
}
