package dto

import (
	"time"

	"github.com/ledgerline/backend/internal/application/usecase/recurring"
)

// CreateRecurringRequest represents the request body for recurring rule creation.
type CreateRecurringRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Amount    int64   `json:"amount" binding:"required,min=0"`
	Kind      string  `json:"kind" binding:"required,oneof=income expense"`
	Frequency string  `json:"frequency" binding:"required,oneof=daily weekly biweekly monthly yearly"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   *string `json:"end_date,omitempty"`
	Category  string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Currency  string  `json:"currency,omitempty" binding:"omitempty,len=3"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UpdateRecurringRequest represents the request body for recurring rule update.
type UpdateRecurringRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Amount       *int64  `json:"amount,omitempty" binding:"omitempty,min=0"`
	Kind         *string `json:"kind,omitempty" binding:"omitempty,oneof=income expense"`
	Frequency    *string `json:"frequency,omitempty" binding:"omitempty,oneof=daily weekly biweekly monthly yearly"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	ClearEndDate bool    `json:"clear_end_date,omitempty"`
	Category     *string `json:"category,omitempty" binding:"omitempty,max=100"`
	Currency     *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// RecurringResponse represents a recurring rule in API responses.
type RecurringResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	Kind      string    `json:"kind"`
	Frequency string    `json:"frequency"`
	StartDate string    `json:"start_date"`
	EndDate   *string   `json:"end_date,omitempty"`
	Category  string    `json:"category"`
	Currency  string    `json:"currency"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecurringListResponse represents a recurring rule listing.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring"`
}

// RuleProjectionResponse represents one rule's projection over a window.
type RuleProjectionResponse struct {
	Rule        RecurringResponse `json:"rule"`
	Occurrences int               `json:"occurrences"`
	Total       int64             `json:"total"`
}

// ProjectionResponse represents projected recurring totals over a window.
type ProjectionResponse struct {
	StartDate    string                   `json:"start_date"`
	EndDate      string                   `json:"end_date"`
	TotalIncome  int64                    `json:"total_income"`
	TotalExpense int64                    `json:"total_expense"`
	Net          int64                    `json:"net"`
	Rules        []RuleProjectionResponse `json:"rules"`
}

// ToProjectionResponse converts a projection output to a response DTO.
func ToProjectionResponse(startDate, endDate string, out *recurring.ProjectTotalsOutput) ProjectionResponse {
	resp := ProjectionResponse{
		StartDate:    startDate,
		EndDate:      endDate,
		TotalIncome:  out.TotalIncome,
		TotalExpense: out.TotalExpense,
		Net:          out.Net,
		Rules:        make([]RuleProjectionResponse, 0, len(out.Rules)),
	}
	for _, r := range out.Rules {
		resp.Rules = append(resp.Rules, RuleProjectionResponse{
			Rule:        ToRecurringResponse(r.Transaction),
			Occurrences: r.Occurrences,
			Total:       r.Total,
		})
	}
	return resp
}

// ToRecurringResponse converts a use case output to a response DTO.
func ToRecurringResponse(out *recurring.RecurringOutput) RecurringResponse {
	resp := RecurringResponse{
		ID:        out.ID.String(),
		Name:      out.Name,
		Amount:    out.Amount,
		Kind:      string(out.Kind),
		Frequency: string(out.Frequency),
		StartDate: out.StartDate.Format("2006-01-02"),
		Category:  out.Category,
		Currency:  out.Currency,
		IsActive:  out.IsActive,
		CreatedAt: out.CreatedAt,
		UpdatedAt: out.UpdatedAt,
	}
	if out.EndDate != nil {
		end := out.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
