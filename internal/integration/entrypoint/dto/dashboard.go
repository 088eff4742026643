package dto

import (
	"github.com/ledgerline/backend/internal/application/usecase/dashboard"
	"github.com/ledgerline/backend/internal/domain/entity"
)

// PeriodBucketResponse represents one trend chart bucket in API responses.
type PeriodBucketResponse struct {
	Period  string `json:"period"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
	Fees    int64  `json:"fees"`
	Net     int64  `json:"net"`
}

// TrendsResponse represents the revenue trend query result.
type TrendsResponse struct {
	Granularity string                 `json:"granularity"`
	Buckets     []PeriodBucketResponse `json:"buckets"`
}

// CategoryTotalResponse represents one category breakdown row.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

// CategoryBreakdownResponse represents the category breakdown query result.
type CategoryBreakdownResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// SummaryResponse represents the processor summary in API responses.
// Amounts are minor units and timestamps unix seconds, as the processor
// reports them.
type SummaryResponse struct {
	Balance             *entity.Balance             `json:"balance"`
	Charges             []entity.Charge             `json:"charges"`
	Payouts             []entity.Payout             `json:"payouts"`
	BalanceTransactions []entity.BalanceTransaction `json:"balance_transactions"`
	Cached              bool                        `json:"cached"`
}

// ToTrendsResponse converts bucket aggregation output to a response DTO.
func ToTrendsResponse(granularity dashboard.Granularity, buckets []dashboard.PeriodBucket) TrendsResponse {
	resp := TrendsResponse{
		Granularity: string(granularity),
		Buckets:     make([]PeriodBucketResponse, 0, len(buckets)),
	}
	for _, b := range buckets {
		resp.Buckets = append(resp.Buckets, PeriodBucketResponse{
			Period:  b.Key,
			Income:  b.Income,
			Expense: b.Expense,
			Fees:    b.Fees,
			Net:     b.Net,
		})
	}
	return resp
}

// ToCategoryBreakdownResponse converts category totals to a response DTO.
func ToCategoryBreakdownResponse(totals []dashboard.CategoryTotal) CategoryBreakdownResponse {
	resp := CategoryBreakdownResponse{
		Categories: make([]CategoryTotalResponse, 0, len(totals)),
	}
	for _, t := range totals {
		resp.Categories = append(resp.Categories, CategoryTotalResponse{
			Category: t.Category,
			Total:    t.Total,
		})
	}
	return resp
}

// ToSummaryResponse converts a summary output to a response DTO.
func ToSummaryResponse(out *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Balance:             out.Summary.Balance,
		Charges:             out.Summary.Charges,
		Payouts:             out.Summary.Payouts,
		BalanceTransactions: out.Summary.BalanceTransactions,
		Cached:              out.Cached,
	}
}
