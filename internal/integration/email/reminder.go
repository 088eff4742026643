package email

import (
	"fmt"
	"strings"

	"github.com/ledgerline/backend/internal/domain/entity"
)

var eventTypeLabels = map[entity.CorporateEventType]string{
	entity.EventTypeTaxDeadline: "Tax deadline",
	entity.EventTypeFiling:      "Filing",
	entity.EventTypeRenewal:     "Renewal",
	entity.EventTypeMeeting:     "Meeting",
	entity.EventTypeGeneral:     "Reminder",
}

// reminderSubject builds the subject line for an event reminder.
func reminderSubject(e *entity.CorporateEvent) string {
	label := eventTypeLabels[e.EventType]
	if label == "" {
		label = "Reminder"
	}
	return fmt.Sprintf("%s: %s on %s", label, e.Title, e.EventDate.Format("Jan 2, 2006"))
}

// reminderHTML builds the HTML body for an event reminder.
func reminderHTML(e *entity.CorporateEvent) string {
	var b strings.Builder
	b.WriteString("<h2>Upcoming corporate event</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>%s</strong> is due on <strong>%s</strong>.</p>",
		e.Title, e.EventDate.Format("Monday, January 2, 2006")))
	if e.Description != "" {
		b.WriteString(fmt.Sprintf("<p>%s</p>", e.Description))
	}
	b.WriteString(fmt.Sprintf("<p>Type: %s</p>", eventTypeLabels[e.EventType]))
	return b.String()
}

// reminderText builds the plain-text body for an event reminder.
func reminderText(e *entity.CorporateEvent) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s is due on %s.\n", e.Title, e.EventDate.Format("Monday, January 2, 2006")))
	if e.Description != "" {
		b.WriteString(e.Description + "\n")
	}
	return b.String()
}
