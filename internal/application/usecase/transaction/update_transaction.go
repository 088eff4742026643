package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a manual
// transaction. Nil pointers leave the corresponding field unchanged.
type UpdateTransactionInput struct {
	UserID          string
	ID              uuid.UUID
	Amount          *int64
	Currency        *string
	Type            *entity.ManualTransactionType
	Category        *string
	Description     *string
	TransactionDate *time.Time
	Notes           *string
}

// UpdateTransactionOutput represents the output of a manual transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles manual transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the manual transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if input.Amount != nil {
		tx.Amount = *input.Amount
	}
	if input.Currency != nil {
		tx.Currency = *input.Currency
	}
	if input.Type != nil {
		tx.Type = *input.Type
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Description != nil {
		tx.Description = *input.Description
	}
	if input.TransactionDate != nil {
		tx.TransactionDate = *input.TransactionDate
	}
	if input.Notes != nil {
		tx.Notes = *input.Notes
	}

	if err := validateTransactionFields(tx.Amount, tx.Type, tx.Category, tx.TransactionDate); err != nil {
		return nil, err
	}

	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toOutput(tx)}, nil
}
