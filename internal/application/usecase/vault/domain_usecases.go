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

// ListDomainsInput represents the input for listing domain records.
type ListDomainsInput struct {
	UserID string
}

// ListDomainsOutput represents the output of listing domain records,
// ordered soonest-expiring first.
type ListDomainsOutput struct {
	Domains []*entity.DomainRecord
}

// ListDomainsUseCase handles domain portfolio listing.
type ListDomainsUseCase struct {
	domainRepo adapter.DomainRepository
}

// NewListDomainsUseCase creates a new ListDomainsUseCase instance.
func NewListDomainsUseCase(domainRepo adapter.DomainRepository) *ListDomainsUseCase {
	return &ListDomainsUseCase{
		domainRepo: domainRepo,
	}
}

// Execute performs the domain listing.
func (uc *ListDomainsUseCase) Execute(ctx context.Context, input ListDomainsInput) (*ListDomainsOutput, error) {
	domains, err := uc.domainRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return &ListDomainsOutput{Domains: domains}, nil
}

// AddDomainInput represents the input for domain record creation.
type AddDomainInput struct {
	UserID         string
	DomainName     string
	Registrar      string
	ExpirationDate *time.Time
	AutoRenew      bool
	PrimaryUse     string
	Notes          string
}

// AddDomainOutput represents the output of domain record creation.
type AddDomainOutput struct {
	Domain *entity.DomainRecord
}

// AddDomainUseCase handles domain record creation.
type AddDomainUseCase struct {
	domainRepo adapter.DomainRepository
}

// NewAddDomainUseCase creates a new AddDomainUseCase instance.
func NewAddDomainUseCase(domainRepo adapter.DomainRepository) *AddDomainUseCase {
	return &AddDomainUseCase{
		domainRepo: domainRepo,
	}
}

// Execute performs the domain record creation.
func (uc *AddDomainUseCase) Execute(ctx context.Context, input AddDomainInput) (*AddDomainOutput, error) {
	if input.DomainName == "" {
		return nil, domainerror.NewVaultError(
			domainerror.ErrCodeMissingDomainName,
			"domain name is required",
			domainerror.ErrMissingDomainName,
		)
	}

	d := entity.NewDomainRecord(
		input.UserID,
		input.DomainName,
		input.Registrar,
		input.ExpirationDate,
		input.AutoRenew,
		input.PrimaryUse,
		input.Notes,
	)

	if err := uc.domainRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create domain: %w", err)
	}

	return &AddDomainOutput{Domain: d}, nil
}

// UpdateDomainInput represents the input for updating a domain record.
// Nil pointers leave the corresponding field unchanged; ClearExpiration
// removes an existing expiration date.
type UpdateDomainInput struct {
	UserID          string
	ID              uuid.UUID
	DomainName      *string
	Registrar       *string
	ExpirationDate  *time.Time
	ClearExpiration bool
	AutoRenew       *bool
	PrimaryUse      *string
	Notes           *string
}

// UpdateDomainOutput represents the output of a domain record update.
type UpdateDomainOutput struct {
	Domain *entity.DomainRecord
}

// UpdateDomainUseCase handles domain record updates.
type UpdateDomainUseCase struct {
	domainRepo adapter.DomainRepository
}

// NewUpdateDomainUseCase creates a new UpdateDomainUseCase instance.
func NewUpdateDomainUseCase(domainRepo adapter.DomainRepository) *UpdateDomainUseCase {
	return &UpdateDomainUseCase{
		domainRepo: domainRepo,
	}
}

// Execute performs the domain record update.
func (uc *UpdateDomainUseCase) Execute(ctx context.Context, input UpdateDomainInput) (*UpdateDomainOutput, error) {
	d, err := uc.domainRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDomainNotFound) {
			return nil, domainerror.NewVaultError(
				domainerror.ErrCodeDomainNotFound,
				"domain not found",
				domainerror.ErrDomainNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find domain: %w", err)
	}

	if input.DomainName != nil {
		if *input.DomainName == "" {
			return nil, domainerror.NewVaultError(
				domainerror.ErrCodeMissingDomainName,
				"domain name is required",
				domainerror.ErrMissingDomainName,
			)
		}
		d.DomainName = *input.DomainName
	}
	if input.Registrar != nil {
		d.Registrar = *input.Registrar
	}
	if input.ClearExpiration {
		d.ExpirationDate = nil
	} else if input.ExpirationDate != nil {
		d.ExpirationDate = input.ExpirationDate
	}
	if input.AutoRenew != nil {
		d.AutoRenew = *input.AutoRenew
	}
	if input.PrimaryUse != nil {
		d.PrimaryUse = *input.PrimaryUse
	}
	if input.Notes != nil {
		d.Notes = *input.Notes
	}

	d.UpdatedAt = time.Now().UTC()

	if err := uc.domainRepo.Update(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to update domain: %w", err)
	}

	return &UpdateDomainOutput{Domain: d}, nil
}

// DeleteDomainInput represents the input for domain record deletion.
type DeleteDomainInput struct {
	UserID string
	ID     uuid.UUID
}

// DeleteDomainUseCase handles domain record deletion.
type DeleteDomainUseCase struct {
	domainRepo adapter.DomainRepository
}

// NewDeleteDomainUseCase creates a new DeleteDomainUseCase instance.
func NewDeleteDomainUseCase(domainRepo adapter.DomainRepository) *DeleteDomainUseCase {
	return &DeleteDomainUseCase{
		domainRepo: domainRepo,
	}
}

// Execute performs the domain record deletion.
func (uc *DeleteDomainUseCase) Execute(ctx context.Context, input DeleteDomainInput) error {
	if err := uc.domainRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrDomainNotFound) {
			return domainerror.NewVaultError(
				domainerror.ErrCodeDomainNotFound,
				"domain not found",
				domainerror.ErrDomainNotFound,
			)
		}
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	return nil
}
