package entity

import (
	"time"

	"github.com/google/uuid"
)

// CorporateEventType classifies a corporate calendar event.
type CorporateEventType string

const (
	EventTypeTaxDeadline CorporateEventType = "tax_deadline"
	EventTypeFiling      CorporateEventType = "filing"
	EventTypeRenewal     CorporateEventType = "renewal"
	EventTypeMeeting     CorporateEventType = "meeting"
	EventTypeGeneral     CorporateEventType = "general"
)

// CorporateEvent represents a dated corporate obligation (tax deadline,
// filing, renewal, meeting). When IsReminder is set, a reminder email is sent
// ReminderDays before EventDate; RemindedAt guards against duplicates.
type CorporateEvent struct {
	ID           uuid.UUID
	UserID       string
	Title        string
	Description  string
	EventDate    time.Time
	EventType    CorporateEventType
	IsReminder   bool
	ReminderDays int
	RemindedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCorporateEvent creates a new CorporateEvent entity.
func NewCorporateEvent(
	userID string,
	title string,
	description string,
	eventDate time.Time,
	eventType CorporateEventType,
	isReminder bool,
	reminderDays int,
) *CorporateEvent {
	now := time.Now().UTC()

	return &CorporateEvent{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Description:  description,
		EventDate:    eventDate,
		EventType:    eventType,
		IsReminder:   isReminder,
		ReminderDays: reminderDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ValidCorporateEventType reports whether t is a supported event type.
func ValidCorporateEventType(t CorporateEventType) bool {
	switch t {
	case EventTypeTaxDeadline, EventTypeFiling, EventTypeRenewal, EventTypeMeeting, EventTypeGeneral:
		return true
	}
	return false
}
