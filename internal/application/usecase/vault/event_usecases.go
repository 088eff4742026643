package vault

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// ListEventsInput represents the input for listing corporate events.
type ListEventsInput struct {
	UserID string
}

// ListEventsOutput represents the output of listing corporate events,
// ordered by event date ascending.
type ListEventsOutput struct {
	Events []*entity.CorporateEvent
}

// ListEventsUseCase handles corporate calendar listing.
type ListEventsUseCase struct {
	eventRepo adapter.CorporateEventRepository
}

// NewListEventsUseCase creates a new ListEventsUseCase instance.
func NewListEventsUseCase(eventRepo adapter.CorporateEventRepository) *ListEventsUseCase {
	return &ListEventsUseCase{
		eventRepo: eventRepo,
	}
}

// Execute performs the corporate event listing.
func (uc *ListEventsUseCase) Execute(ctx context.Context, input ListEventsInput) (*ListEventsOutput, error) {
	events, err := uc.eventRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return &ListEventsOutput{Events: events}, nil
}

// CreateEventInput represents the input for corporate event creation.
type CreateEventInput struct {
	UserID       string
	Title        string
	Description  string
	EventDate    time.Time
	EventType    entity.CorporateEventType
	IsReminder   bool
	ReminderDays int
}

// CreateEventOutput represents the output of corporate event creation.
type CreateEventOutput struct {
	Event *entity.CorporateEvent
}

// CreateEventUseCase handles corporate event creation.
type CreateEventUseCase struct {
	eventRepo adapter.CorporateEventRepository
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(eventRepo adapter.CorporateEventRepository) *CreateEventUseCase {
	return &CreateEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute performs the corporate event creation.
func (uc *CreateEventUseCase) Execute(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error) {
	if err := validateEventFields(input.Title, input.EventType); err != nil {
		return nil, err
	}

	eventType := input.EventType
	if eventType == "" {
		eventType = entity.EventTypeGeneral
	}

	e := entity.NewCorporateEvent(
		input.UserID,
		input.Title,
		input.Description,
		input.EventDate,
		eventType,
		input.IsReminder,
		input.ReminderDays,
	)

	if err := uc.eventRepo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return &CreateEventOutput{Event: e}, nil
}

// UpdateEventInput represents the input for updating a corporate event.
// Nil pointers leave the corresponding field unchanged. Changing the event
// date or reminder settings re-arms the reminder.
type UpdateEventInput struct {
	UserID       string
	ID           uuid.UUID
	Title        *string
	Description  *string
	EventDate    *time.Time
	EventType    *entity.CorporateEventType
	IsReminder   *bool
	ReminderDays *int
}

// UpdateEventOutput represents the output of a corporate event update.
type UpdateEventOutput struct {
	Event *entity.CorporateEvent
}

// UpdateEventUseCase handles corporate event updates.
type UpdateEventUseCase struct {
	eventRepo adapter.CorporateEventRepository
}

// NewUpdateEventUseCase creates a new UpdateEventUseCase instance.
func NewUpdateEventUseCase(eventRepo adapter.CorporateEventRepository) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute performs the corporate event update.
func (uc *UpdateEventUseCase) Execute(ctx context.Context, input UpdateEventInput) (*UpdateEventOutput, error) {
	e, err := uc.eventRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEventNotFound) {
			return nil, domainerror.NewVaultError(
				domainerror.ErrCodeEventNotFound,
				"corporate event not found",
				domainerror.ErrEventNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	rearm := false

	if input.Title != nil {
		e.Title = *input.Title
	}
	if input.Description != nil {
		e.Description = *input.Description
	}
	if input.EventDate != nil && !input.EventDate.Equal(e.EventDate) {
		e.EventDate = *input.EventDate
		rearm = true
	}
	if input.EventType != nil {
		e.EventType = *input.EventType
	}
	if input.IsReminder != nil && *input.IsReminder != e.IsReminder {
		e.IsReminder = *input.IsReminder
		rearm = true
	}
	if input.ReminderDays != nil && *input.ReminderDays != e.ReminderDays {
		e.ReminderDays = *input.ReminderDays
		rearm = true
	}

	if err := validateEventFields(e.Title, e.EventType); err != nil {
		return nil, err
	}

	if rearm {
		e.RemindedAt = nil
	}
	e.UpdatedAt = time.Now().UTC()

	if err := uc.eventRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &UpdateEventOutput{Event: e}, nil
}

// DeleteEventInput represents the input for corporate event deletion.
type DeleteEventInput struct {
	UserID string
	ID     uuid.UUID
}

// DeleteEventUseCase handles corporate event deletion.
type DeleteEventUseCase struct {
	eventRepo adapter.CorporateEventRepository
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase instance.
func NewDeleteEventUseCase(eventRepo adapter.CorporateEventRepository) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		eventRepo: eventRepo,
	}
}

// Execute performs the corporate event deletion.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, input DeleteEventInput) error {
	if err := uc.eventRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrEventNotFound) {
			return domainerror.NewVaultError(
				domainerror.ErrCodeEventNotFound,
				"corporate event not found",
				domainerror.ErrEventNotFound,
			)
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func validateEventFields(title string, eventType entity.CorporateEventType) error {
	if title == "" {
		return domainerror.NewVaultError(
			domainerror.ErrCodeMissingEventTitle,
			"event title is required",
			domainerror.ErrMissingEventTitle,
		)
	}
	if eventType != "" && !entity.ValidCorporateEventType(eventType) {
		return domainerror.NewVaultError(
			domainerror.ErrCodeInvalidEventType,
			"event type must be: tax_deadline, filing, renewal, meeting, or general",
			domainerror.ErrInvalidEventType,
		)
	}
	return nil
}
