package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/adapter"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for manual transaction deletion.
type DeleteTransactionInput struct {
	UserID string
	ID     uuid.UUID
}

// DeleteTransactionUseCase handles manual transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the manual transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if err := uc.transactionRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
