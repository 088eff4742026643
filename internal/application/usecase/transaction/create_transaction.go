package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for manual transaction creation.
type CreateTransactionInput struct {
	UserID          string
	Amount          int64
	Currency        string
	Type            entity.ManualTransactionType
	Category        string
	Description     string
	TransactionDate time.Time
	Notes           string
}

// CreateTransactionOutput represents the output of manual transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles manual transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the manual transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Amount, input.Type, input.Category, input.TransactionDate); err != nil {
		return nil, err
	}

	currency := input.Currency
	if currency == "" {
		currency = "CAD"
	}

	tx := entity.NewManualTransaction(
		input.UserID,
		input.Amount,
		currency,
		input.Type,
		input.Category,
		input.Description,
		input.TransactionDate,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toOutput(tx)}, nil
}
