// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecurringKind represents the direction of a recurring transaction.
type RecurringKind string

const (
	RecurringKindIncome  RecurringKind = "income"
	RecurringKindExpense RecurringKind = "expense"
)

// Frequency represents how often a recurring transaction fires.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// RecurringTransaction represents a periodic income or expense rule.
// Amounts are stored in minor currency units (cents). StartDate is the first
// possible occurrence; EndDate, when set, is an inclusive upper bound.
type RecurringTransaction struct {
	ID        uuid.UUID
	UserID    string
	Name      string
	Amount    int64
	Kind      RecurringKind
	Frequency Frequency
	StartDate time.Time
	EndDate   *time.Time
	Category  string
	Currency  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(
	userID string,
	name string,
	amount int64,
	kind RecurringKind,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
	category string,
	currency string,
	isActive bool,
) *RecurringTransaction {
	now := time.Now().UTC()

	return &RecurringTransaction{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		Kind:      kind,
		Frequency: frequency,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  category,
		Currency:  currency,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ValidFrequency reports whether f is one of the five supported frequencies.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// ValidRecurringKind reports whether k is a supported recurring kind.
func ValidRecurringKind(k RecurringKind) bool {
	return k == RecurringKindIncome || k == RecurringKindExpense
}
