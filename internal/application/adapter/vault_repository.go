package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// BusinessEntityRepository persists the single business entity record per owner.
type BusinessEntityRepository interface {
	FindByUser(ctx context.Context, userID string) (*entity.BusinessEntity, error)
	Upsert(ctx context.Context, be *entity.BusinessEntity) error
}

// DomainRepository defines the interface for domain record persistence.
// Listings are ordered by expiration date ascending, nulls last.
type DomainRepository interface {
	Create(ctx context.Context, d *entity.DomainRecord) error
	FindByUser(ctx context.Context, userID string) ([]*entity.DomainRecord, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.DomainRecord, error)
	Update(ctx context.Context, d *entity.DomainRecord) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// CorporateEventRepository defines the interface for corporate event persistence.
type CorporateEventRepository interface {
	Create(ctx context.Context, e *entity.CorporateEvent) error
	FindByUser(ctx context.Context, userID string) ([]*entity.CorporateEvent, error)
	FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.CorporateEvent, error)
	Update(ctx context.Context, e *entity.CorporateEvent) error
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// FindDueReminders returns events whose reminder window has opened as of
	// now and which have not yet been reminded.
	FindDueReminders(ctx context.Context, now time.Time) ([]*entity.CorporateEvent, error)
	// MarkReminded records that a reminder was sent for the event.
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}
