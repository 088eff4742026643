package entity

import "time"

// LedgerEventKind tags the effect of a ledger event on totals.
type LedgerEventKind string

const (
	LedgerKindIncome  LedgerEventKind = "income"
	LedgerKindRoyalty LedgerEventKind = "royalty"
	LedgerKindExpense LedgerEventKind = "expense"
)

// LedgerEventSource identifies where a ledger event came from.
type LedgerEventSource string

const (
	LedgerSourceProcessor LedgerEventSource = "processor"
	LedgerSourceManual    LedgerEventSource = "manual"
)

// LedgerEvent is the common shape fed to aggregation: a dated monetary event
// from either the payment processor or a manual bookkeeping entry.
// AmountMinor is always non-negative; Kind determines its sign in totals.
// FeeMinor is carried on processor-sourced events only.
type LedgerEvent struct {
	OccurredAt  time.Time
	AmountMinor int64
	FeeMinor    int64
	Currency    string
	Kind        LedgerEventKind
	Category    string
	Source      LedgerEventSource
	Description string
}

// LedgerEventsFromCharges converts settled processor charges into ledger
// events. Anything not in a succeeded state is skipped.
func LedgerEventsFromCharges(charges []Charge) []LedgerEvent {
	events := make([]LedgerEvent, 0, len(charges))
	for _, c := range charges {
		if c.Status != ChargeStatusSucceeded {
			continue
		}
		events = append(events, LedgerEvent{
			OccurredAt:  time.Unix(c.Created, 0).UTC(),
			AmountMinor: c.Amount,
			FeeMinor:    c.FeeMinor,
			Currency:    c.Currency,
			Kind:        LedgerKindIncome,
			Category:    "Payments",
			Source:      LedgerSourceProcessor,
			Description: c.Description,
		})
	}
	return events
}

// LedgerEventsFromTransactions converts manual book entries into ledger
// events. Adjustments and transfers move money between views without
// changing the pictured totals, so they are excluded.
func LedgerEventsFromTransactions(transactions []*ManualTransaction) []LedgerEvent {
	events := make([]LedgerEvent, 0, len(transactions))
	for _, tx := range transactions {
		var kind LedgerEventKind
		switch tx.Type {
		case ManualTypeIncome:
			kind = LedgerKindIncome
		case ManualTypeRoyalty:
			kind = LedgerKindRoyalty
		case ManualTypeExpense:
			kind = LedgerKindExpense
		default:
			continue
		}
		events = append(events, LedgerEvent{
			OccurredAt:  tx.TransactionDate,
			AmountMinor: tx.Amount,
			Currency:    tx.Currency,
			Kind:        kind,
			Category:    tx.Category,
			Source:      LedgerSourceManual,
			Description: tx.Description,
		})
	}
	return events
}
