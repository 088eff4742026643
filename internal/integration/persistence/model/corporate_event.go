package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// CorporateEventModel represents the corporate_events table.
type CorporateEventModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       string     `gorm:"type:varchar(255);not null;index"`
	Title        string     `gorm:"type:varchar(255);not null"`
	Description  string     `gorm:"type:text"`
	EventDate    time.Time  `gorm:"type:date;not null;index"`
	EventType    string     `gorm:"type:varchar(20);not null"`
	IsReminder   bool       `gorm:"not null;default:false;index"`
	ReminderDays int        `gorm:"not null;default:0"`
	RemindedAt   *time.Time `gorm:"type:timestamp"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CorporateEventModel.
func (CorporateEventModel) TableName() string {
	return "corporate_events"
}

// ToEntity converts a CorporateEventModel to a domain entity.
func (m *CorporateEventModel) ToEntity() *entity.CorporateEvent {
	return &entity.CorporateEvent{
		ID:           m.ID,
		UserID:       m.UserID,
		Title:        m.Title,
		Description:  m.Description,
		EventDate:    m.EventDate,
		EventType:    entity.CorporateEventType(m.EventType),
		IsReminder:   m.IsReminder,
		ReminderDays: m.ReminderDays,
		RemindedAt:   m.RemindedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CorporateEventFromEntity creates a model from a domain entity.
func CorporateEventFromEntity(e *entity.CorporateEvent) *CorporateEventModel {
	return &CorporateEventModel{
		ID:           e.ID,
		UserID:       e.UserID,
		Title:        e.Title,
		Description:  e.Description,
		EventDate:    e.EventDate,
		EventType:    string(e.EventType),
		IsReminder:   e.IsReminder,
		ReminderDays: e.ReminderDays,
		RemindedAt:   e.RemindedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
