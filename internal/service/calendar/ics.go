// Package calendar produces iCalendar payloads from flyers. The transform
// is pure: it reads only the flyer's fields and performs no I/O.
package calendar

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"github.com/thepole/flyerboard-backend/internal/domain"
)

// BuildICS renders a flyer as a single all-day VEVENT calendar payload.
// A flyer without an event date cannot be exported and yields a
// validation error.
func BuildICS(f *domain.Flyer) (string, error) {
	if f.EventDate == nil {
		return "", domain.NewValidationError("event_date", "flyer has no event date")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//The Pole//Flyer Board//EN")

	event := cal.AddEvent(fmt.Sprintf("flyer-%s@thepole.events", f.ID))
	// DTSTAMP from the flyer itself keeps the transform deterministic.
	event.SetDtStampTime(f.CreatedAt)
	event.SetAllDayStartAt(*f.EventDate)
	event.SetAllDayEndAt(f.EventDate.AddDate(0, 0, 1))
	event.SetSummary(f.Title)
	if f.Description != nil {
		event.SetDescription(*f.Description)
	}
	event.SetLocation(eventLocation(f))

	return cal.Serialize(), nil
}

func eventLocation(f *domain.Flyer) string {
	if f.LocationAddress != nil && *f.LocationAddress != "" {
		return fmt.Sprintf("%s, %s, %s", *f.LocationAddress, f.LocationCity, f.LocationState)
	}
	return fmt.Sprintf("%s, %s", f.LocationCity, f.LocationState)
}
