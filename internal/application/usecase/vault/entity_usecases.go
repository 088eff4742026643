// Package vault contains use cases for the corporate records vault: the
// business entity profile, domain portfolio, and corporate calendar.
package vault

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

// GetBusinessEntityInput represents the input for fetching the entity profile.
type GetBusinessEntityInput struct {
	UserID string
}

// GetBusinessEntityOutput represents the output of fetching the entity
// profile. Entity is nil when nothing has been saved yet.
type GetBusinessEntityOutput struct {
	Entity *entity.BusinessEntity
}

// GetBusinessEntityUseCase handles reading the business entity profile.
type GetBusinessEntityUseCase struct {
	entityRepo adapter.BusinessEntityRepository
}

// NewGetBusinessEntityUseCase creates a new GetBusinessEntityUseCase instance.
func NewGetBusinessEntityUseCase(entityRepo adapter.BusinessEntityRepository) *GetBusinessEntityUseCase {
	return &GetBusinessEntityUseCase{
		entityRepo: entityRepo,
	}
}

// Execute fetches the profile. A missing record is not an error here: the
// vault screen renders an empty form in that case.
func (uc *GetBusinessEntityUseCase) Execute(ctx context.Context, input GetBusinessEntityInput) (*GetBusinessEntityOutput, error) {
	be, err := uc.entityRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBusinessEntityNotFound) {
			return &GetBusinessEntityOutput{}, nil
		}
		return nil, fmt.Errorf("failed to find business entity: %w", err)
	}
	return &GetBusinessEntityOutput{Entity: be}, nil
}

// UpsertBusinessEntityInput represents the input for saving the entity
// profile. The full record is replaced on every save.
type UpsertBusinessEntityInput struct {
	UserID                 string
	CompanyName            string
	EntityType             string
	StateOfIncorporation   string
	IncorporationDate      *time.Time
	FiscalYearEnd          string
	BusinessID             string
	IRSEin                 string
	RegisteredAgentName    string
	RegisteredAgentAddress string
	RegisteredAgentPhone   string
}

// UpsertBusinessEntityOutput represents the output of saving the profile.
type UpsertBusinessEntityOutput struct {
	Entity *entity.BusinessEntity
}

// UpsertBusinessEntityUseCase handles creating or replacing the business
// entity profile. One record per owner; no separate create and update paths.
type UpsertBusinessEntityUseCase struct {
	entityRepo adapter.BusinessEntityRepository
}

// NewUpsertBusinessEntityUseCase creates a new UpsertBusinessEntityUseCase instance.
func NewUpsertBusinessEntityUseCase(entityRepo adapter.BusinessEntityRepository) *UpsertBusinessEntityUseCase {
	return &UpsertBusinessEntityUseCase{
		entityRepo: entityRepo,
	}
}

// Execute performs the profile upsert.
func (uc *UpsertBusinessEntityUseCase) Execute(ctx context.Context, input UpsertBusinessEntityInput) (*UpsertBusinessEntityOutput, error) {
	if input.CompanyName == "" {
		return nil, domainerror.NewVaultError(
			domainerror.ErrCodeMissingCompanyName,
			"company name is required",
			domainerror.ErrMissingCompanyName,
		)
	}

	now := time.Now().UTC()

	existing, err := uc.entityRepo.FindByUser(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrBusinessEntityNotFound) {
		return nil, fmt.Errorf("failed to find business entity: %w", err)
	}

	be := &entity.BusinessEntity{
		ID:                     uuid.New(),
		UserID:                 input.UserID,
		CompanyName:            input.CompanyName,
		EntityType:             input.EntityType,
		StateOfIncorporation:   input.StateOfIncorporation,
		IncorporationDate:      input.IncorporationDate,
		FiscalYearEnd:          input.FiscalYearEnd,
		BusinessID:             input.BusinessID,
		IRSEin:                 input.IRSEin,
		RegisteredAgentName:    input.RegisteredAgentName,
		RegisteredAgentAddress: input.RegisteredAgentAddress,
		RegisteredAgentPhone:   input.RegisteredAgentPhone,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if existing != nil {
		be.ID = existing.ID
		be.CreatedAt = existing.CreatedAt
	}

	if err := uc.entityRepo.Upsert(ctx, be); err != nil {
		return nil, fmt.Errorf("failed to upsert business entity: %w", err)
	}

	return &UpsertBusinessEntityOutput{Entity: be}, nil
}
