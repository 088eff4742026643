package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// ProjectTotalsInput represents the input for projecting recurring totals
// across a window.
type ProjectTotalsInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

// RuleProjection is the per-rule contribution to the window totals.
type RuleProjection struct {
	Transaction *RecurringOutput `json:"transaction"`
	Occurrences int              `json:"occurrences"`
	Total       int64            `json:"total"`
}

// ProjectTotalsOutput represents the projected totals for the window.
// Totals are minor units.
type ProjectTotalsOutput struct {
	TotalIncome  int64            `json:"total_income"`
	TotalExpense int64            `json:"total_expense"`
	Net          int64            `json:"net"`
	Rules        []RuleProjection `json:"rules"`
}

// ProjectTotalsUseCase computes how much the owner's active recurring rules
// contribute to a period: occurrence count times amount, split by kind.
type ProjectTotalsUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewProjectTotalsUseCase creates a new ProjectTotalsUseCase instance.
func NewProjectTotalsUseCase(recurringRepo adapter.RecurringRepository) *ProjectTotalsUseCase {
	return &ProjectTotalsUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute projects every active rule across the window and sums contributions.
func (uc *ProjectTotalsUseCase) Execute(ctx context.Context, input ProjectTotalsInput) (*ProjectTotalsOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidWindow,
			"window end must not be before window start",
			domainerror.ErrInvalidWindow,
		)
	}

	rules, err := uc.recurringRepo.FindActiveByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recurring transactions: %w", err)
	}

	window := entity.DateWindow{Start: input.StartDate, End: input.EndDate}
	out := &ProjectTotalsOutput{Rules: make([]RuleProjection, 0, len(rules))}

	for _, rule := range rules {
		occurrences := CountOccurrences(rule, window)
		total := rule.Amount * int64(occurrences)

		switch rule.Kind {
		case entity.RecurringKindIncome:
			out.TotalIncome += total
		case entity.RecurringKindExpense:
			out.TotalExpense += total
		}

		out.Rules = append(out.Rules, RuleProjection{
			Transaction: toOutput(rule),
			Occurrences: occurrences,
			Total:       total,
		})
	}

	out.Net = out.TotalIncome - out.TotalExpense
	return out, nil
}
