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

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new manual transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new manual transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, tx *entity.ManualTransaction) error {
	m := model.ManualTransactionFromEntity(tx)
	if result := r.db.WithContext(ctx).Create(m); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByFilter retrieves manual transactions matching the filter, newest first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.ManualTransaction, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ManualTransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date <= ?", filter.EndDate)
	}

	var models []model.ManualTransactionModel
	result := query.
		Order("transaction_date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	txs := make([]*entity.ManualTransaction, len(models))
	for i, m := range models {
		txs[i] = m.ToEntity()
	}
	return txs, nil
}

// FindByID retrieves a manual transaction by ID, scoped to the owner.
func (r *transactionRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.ManualTransaction, error) {
	var m model.ManualTransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update updates an existing manual transaction.
func (r *transactionRepository) Update(ctx context.Context, tx *entity.ManualTransaction) error {
	m := model.ManualTransactionFromEntity(tx)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Save(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a manual transaction, scoped to the owner.
func (r *transactionRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ManualTransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
