package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// ManualTransactionModel represents the manual_transactions table.
// Amount is stored in minor currency units.
type ManualTransactionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          string    `gorm:"type:varchar(255);not null;index"`
	Amount          int64     `gorm:"not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	Type            string    `gorm:"type:varchar(10);not null;index"`
	Category        string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:varchar(255)"`
	TransactionDate time.Time `gorm:"type:date;not null;index"`
	Notes           string    `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the ManualTransactionModel.
func (ManualTransactionModel) TableName() string {
	return "manual_transactions"
}

// ToEntity converts a ManualTransactionModel to a domain entity.
func (m *ManualTransactionModel) ToEntity() *entity.ManualTransaction {
	return &entity.ManualTransaction{
		ID:              m.ID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Type:            entity.ManualTransactionType(m.Type),
		Category:        m.Category,
		Description:     m.Description,
		TransactionDate: m.TransactionDate,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ManualTransactionFromEntity creates a model from a domain entity.
func ManualTransactionFromEntity(tx *entity.ManualTransaction) *ManualTransactionModel {
	return &ManualTransactionModel{
		ID:              tx.ID,
		UserID:          tx.UserID,
		Amount:          tx.Amount,
		Currency:        tx.Currency,
		Type:            string(tx.Type),
		Category:        tx.Category,
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate,
		Notes:           tx.Notes,
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}
