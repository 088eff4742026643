package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/application/adapter"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for deleting a recurring transaction.
type DeleteRecurringInput struct {
	UserID string
	ID     uuid.UUID
}

// DeleteRecurringUseCase handles recurring transaction deletion.
type DeleteRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the recurring transaction deletion.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) error {
	if err := uc.recurringRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotFound) {
			return domainerror.NewRecurringError(
				domainerror.ErrCodeRecurringNotFound,
				"recurring transaction not found",
				domainerror.ErrRecurringNotFound,
			)
		}
		return fmt.Errorf("failed to delete recurring transaction: %w", err)
	}
	return nil
}
