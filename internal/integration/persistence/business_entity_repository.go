package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ledgerline/backend/internal/application/adapter"
	"github.com/ledgerline/backend/internal/domain/entity"
	domainerror "github.com/ledgerline/backend/internal/domain/error"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
)

// businessEntityRepository implements the adapter.BusinessEntityRepository interface.
type businessEntityRepository struct {
	db *gorm.DB
}

// NewBusinessEntityRepository creates a new business entity repository instance.
func NewBusinessEntityRepository(db *gorm.DB) adapter.BusinessEntityRepository {
	return &businessEntityRepository{
		db: db,
	}
}

// FindByUser retrieves the business entity profile for an owner.
func (r *businessEntityRepository) FindByUser(ctx context.Context, userID string) (*entity.BusinessEntity, error) {
	var m model.BusinessEntityModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBusinessEntityNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// Upsert creates or replaces the business entity profile. The user_id unique
// index resolves the conflict, keeping one row per owner.
func (r *businessEntityRepository) Upsert(ctx context.Context, be *entity.BusinessEntity) error {
	m := model.BusinessEntityFromEntity(be)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(m)
	return result.Error
}
