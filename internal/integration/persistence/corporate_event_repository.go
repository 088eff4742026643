package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
)

// corporateEventRepository implements the adapter.CorporateEventRepository interface.
type corporateEventRepository struct {
	db *gorm.DB
}

// NewCorporateEventRepository creates a new corporate event repository instance.
func NewCorporateEventRepository(db *gorm.DB) adapter.CorporateEventRepository {
	return &corporateEventRepository{
		db: db,
	}
}

// Create creates a new corporate event in the database.
func (r *corporateEventRepository) Create(ctx context.Context, e *entity.CorporateEvent) error {
	m := model.CorporateEventFromEntity(e)
	if result := r.db.WithContext(ctx).Create(m); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all corporate events for an owner, soonest first.
func (r *corporateEventRepository) FindByUser(ctx context.Context, userID string) ([]*entity.CorporateEvent, error) {
	var models []model.CorporateEventModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("event_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	events := make([]*entity.CorporateEvent, len(models))
	for i, m := range models {
		events[i] = m.ToEntity()
	}
	return events, nil
}

// FindByID retrieves a corporate event by ID, scoped to the owner.
func (r *corporateEventRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.CorporateEvent, error) {
	var m model.CorporateEventModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEventNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update updates an existing corporate event.
func (r *corporateEventRepository) Update(ctx context.Context, e *entity.CorporateEvent) error {
	m := model.CorporateEventFromEntity(e)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Save(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEventNotFound
	}
	return nil
}

// Delete removes a corporate event, scoped to the owner.
func (r *corporateEventRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CorporateEventModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEventNotFound
	}
	return nil
}

// FindDueReminders returns upcoming reminder events whose reminder window has
// opened and which have not been reminded yet. The lead-day comparison is
// done in Go to stay portable across database engines.
func (r *corporateEventRepository) FindDueReminders(ctx context.Context, now time.Time) ([]*entity.CorporateEvent, error) {
	var models []model.CorporateEventModel
	result := r.db.WithContext(ctx).
		Where("is_reminder = ? AND reminded_at IS NULL AND event_date >= ?", true, now.Truncate(24*time.Hour)).
		Order("event_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	due := make([]*entity.CorporateEvent, 0, len(models))
	for _, m := range models {
		e := m.ToEntity()
		windowOpens := e.EventDate.AddDate(0, 0, -e.ReminderDays)
		if !now.Before(windowOpens) {
			due = append(due, e)
		}
	}
	return due, nil
}

// MarkReminded stamps the event so the reminder is not sent twice.
func (r *corporateEventRepository) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.CorporateEventModel{}).
		Where("id = ?", id).
		Update("reminded_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEventNotFound
	}
	return nil
}
