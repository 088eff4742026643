package entity

import (
	"time"

	"github.com/google/uuid"
)

// ManualTransactionType represents the type of a manually entered transaction.
type ManualTransactionType string

const (
	ManualTypeIncome     ManualTransactionType = "income"
	ManualTypeExpense    ManualTransactionType = "expense"
	ManualTypeAdjustment ManualTransactionType = "adjustment"
	ManualTypeRoyalty    ManualTransactionType = "royalty"
	ManualTypeTransfer   ManualTransactionType = "transfer"
)

// ManualTransaction represents a manually entered bookkeeping record.
// Amount is in minor currency units and always non-negative; the Type tag
// determines its effect on totals.
type ManualTransaction struct {
	ID              uuid.UUID
	UserID          string
	Amount          int64
	Currency        string
	Type            ManualTransactionType
	Category        string
	Description     string
	TransactionDate time.Time
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewManualTransaction creates a new ManualTransaction entity.
func NewManualTransaction(
	userID string,
	amount int64,
	currency string,
	txType ManualTransactionType,
	category string,
	description string,
	transactionDate time.Time,
	notes string,
) *ManualTransaction {
	now := time.Now().UTC()

	return &ManualTransaction{
		ID:              uuid.New(),
		UserID:          userID,
		Amount:          amount,
		Currency:        currency,
		Type:            txType,
		Category:        category,
		Description:     description,
		TransactionDate: transactionDate,
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ValidManualTransactionType reports whether t is a supported type.
func ValidManualTransactionType(t ManualTransactionType) bool {
	switch t {
	case ManualTypeIncome, ManualTypeExpense, ManualTypeAdjustment, ManualTypeRoyalty, ManualTypeTransfer:
		return true
	}
	return false
}
