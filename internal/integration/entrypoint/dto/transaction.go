package dto

import (
	"time"

	"github.com/ledgerline/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for manual transaction creation.
type CreateTransactionRequest struct {
	Amount      int64  `json:"amount" binding:"min=0"`
	Currency    string `json:"currency,omitempty" binding:"omitempty,len=3"`
	Type        string `json:"type" binding:"required,oneof=income expense adjustment royalty transfer"`
	Category    string `json:"category" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string `json:"date" binding:"required"`
	Notes       string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateTransactionRequest represents the request body for manual transaction update.
type UpdateTransactionRequest struct {
	Amount      *int64  `json:"amount,omitempty" binding:"omitempty,min=0"`
	Currency    *string `json:"currency,omitempty" binding:"omitempty,len=3"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=income expense adjustment royalty transfer"`
	Category    *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        *string `json:"date,omitempty"`
	Notes       *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// TransactionResponse represents a manual transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents a manual transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a use case output to a response DTO.
func ToTransactionResponse(out *transaction.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:          out.ID,
		Amount:      out.Amount,
		Currency:    out.Currency,
		Type:        string(out.Type),
		Category:    out.Category,
		Description: out.Description,
		Date:        out.TransactionDate.Format("2006-01-02"),
		Notes:       out.Notes,
		CreatedAt:   out.CreatedAt,
		UpdatedAt:   out.UpdatedAt,
	}
}

// ToTransactionListResponse converts a listing output to a response DTO.
func ToTransactionListResponse(out *transaction.ListTransactionsOutput) TransactionListResponse {
	resp := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(out.Transactions)),
	}
	for _, tx := range out.Transactions {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(tx))
	}
	return resp
}
