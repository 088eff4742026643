package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
)

// domainRepository implements the adapter.DomainRepository interface.
type domainRepository struct {
	db *gorm.DB
}

// NewDomainRepository creates a new domain record repository instance.
func NewDomainRepository(db *gorm.DB) adapter.DomainRepository {
	return &domainRepository{
		db: db,
	}
}

// Create creates a new domain record in the database.
func (r *domainRepository) Create(ctx context.Context, d *entity.DomainRecord) error {
	m := model.DomainRecordFromEntity(d)
	if result := r.db.WithContext(ctx).Create(m); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all domain records for an owner, soonest-expiring
// first with undated domains last.
func (r *domainRepository) FindByUser(ctx context.Context, userID string) ([]*entity.DomainRecord, error) {
	var models []model.DomainRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("expiration_date IS NULL, expiration_date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	domains := make([]*entity.DomainRecord, len(models))
	for i, m := range models {
		domains[i] = m.ToEntity()
	}
	return domains, nil
}

// FindByID retrieves a domain record by ID, scoped to the owner.
func (r *domainRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*entity.DomainRecord, error) {
	var m model.DomainRecordModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDomainNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Update updates an existing domain record.
func (r *domainRepository) Update(ctx context.Context, d *entity.DomainRecord) error {
	m := model.DomainRecordFromEntity(d)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", m.ID, m.UserID).
		Save(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDomainNotFound
	}
	return nil
}

// Delete removes a domain record, scoped to the owner.
func (r *domainRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.DomainRecordModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDomainNotFound
	}
	return nil
}
