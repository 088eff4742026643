// Package adapter defines interfaces for external dependencies (repositories, services).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// RecurringRepository defines the interface for recurring transaction persistence.
// All reads and writes are scoped to a single owner.
type RecurringRepository interface {
	Create(ctx context.Context, tx *entity.RecurringTransaction) error
	FindByUser(ctx context.Context, userID string) ([]*entity.RecurringTransaction, error)
	FindActiveByUser(ctx context.Context, userID string) ([]*entity.RecurringTransaction, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.RecurringTransaction, error)
	Update(ctx context.Context, tx *entity.RecurringTransaction) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}
