// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring transaction repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// Create creates a new recurring transaction in the database.
func (r *recurringRepository) Create(ctx context.Context, tx *entity.RecurringTransaction) error {
	m := model.RecurringTransactionFromEntity(tx)
	if result := r.db.WithContext(ctx).Create(m); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all recurring transactions for a given owner.
func (r *recurringRepository) FindByUser(ctx context.Context, userID string) ([]*entity.RecurringTransaction, error) {
	var models []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.RecurringTransaction, len(models))
	for i, m := range models {
		txs[i] = m.ToEntity()
	}
	return txs, nil
}

// FindActiveByUser retrieves the active subset used for projection.
func (r *recurringRepository) FindActiveByUser(ctx context.Context, userID string) ([]*entity.RecurringTransaction, error) {
	var models []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_date ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.RecurringTransaction, len(models))
	for i, m := range models {
		txs[i] = m.ToEntity()
	}
	return txs, nil
}

// FindByID retrieves a recurring transaction by ID, scoped to the owner.
func (r *recurringRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.RecurringTransaction, error) {
	var m model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update updates an existing recurring transaction.
func (r *recurringRepository) Update(ctx context.Context, tx *entity.RecurringTransaction) error {
	m := model.RecurringTransactionFromEntity(tx)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Save(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}

// Delete removes a recurring transaction, scoped to the owner.
func (r *recurringRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.RecurringTransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringNotFound
	}
	return nil
}
