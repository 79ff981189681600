package ical

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"tfi-timeline/internal/event"
)

// Export renders the given event sequence as an iCalendar document so the
// feed can be pulled into any external calendar app. Birthday and
// anniversary categories are emitted with a yearly recurrence rule.
func Export(events []event.Event) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//TFI Timeline//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(time.Now())
		ve.SetAllDayStartAt(e.Date)
		ve.SetAllDayEndAt(e.Date.AddDate(0, 0, 1))
		ve.SetSummary(e.Title)
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.Link != "" {
			ve.SetURL(e.Link)
		}
		ve.SetProperty(ics.ComponentProperty("CATEGORIES"), string(e.Category))

		if e.Category.IsRecurring() {
			rule, err := yearlyRule(e.Date)
			if err != nil {
				return "", fmt.Errorf("build recurrence for %s: %w", e.ID, err)
			}
			ve.AddRrule(rule)
		}
	}

	return cal.Serialize(), nil
}

func yearlyRule(start time.Time) (string, error) {
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.YEARLY,
		Dtstart: start,
	})
	if err != nil {
		return "", err
	}
	// RRuleString omits the DTSTART line; the event carries its own start.
	return r.OrigOptions.RRuleString(), nil
}
