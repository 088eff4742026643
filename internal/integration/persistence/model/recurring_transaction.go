// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table.
// Amount is stored in minor currency units.
type RecurringTransactionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    string     `gorm:"type:varchar(255);not null;index"`
	Name      string     `gorm:"type:varchar(255);not null"`
	Amount    int64      `gorm:"not null"`
	Kind      string     `gorm:"type:varchar(10);not null"`
	Frequency string     `gorm:"type:varchar(10);not null"`
	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"`
	Category  string     `gorm:"type:varchar(100)"`
	Currency  string     `gorm:"type:varchar(3);not null"`
	IsActive  bool       `gorm:"not null;default:true;index"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Kind:      entity.RecurringKind(m.Kind),
		Frequency: entity.Frequency(m.Frequency),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Category:  m.Category,
		Currency:  m.Currency,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a model from a domain entity.
func RecurringTransactionFromEntity(tx *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Name:      tx.Name,
		Amount:    tx.Amount,
		Kind:      string(tx.Kind),
		Frequency: string(tx.Frequency),
		StartDate: tx.StartDate,
		EndDate:   tx.EndDate,
		Category:  tx.Category,
		Currency:  tx.Currency,
		IsActive:  tx.IsActive,
		CreatedAt: tx.CreatedAt,
		UpdatedAt: tx.UpdatedAt,
	}
}
