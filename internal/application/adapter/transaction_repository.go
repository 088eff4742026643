package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// TransactionFilter narrows a manual transaction listing. Nil date bounds
// mean unbounded on that side.
type TransactionFilter struct {
	UserID    string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRepository defines the interface for manual transaction persistence.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.ManualTransaction) error
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.ManualTransaction, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.ManualTransaction, error)
	Update(ctx context.Context, tx *entity.ManualTransaction) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
