package entity

import (
	"time"

	"github.com/google/uuid"
)

// DomainRecord represents a registered internet domain held by the business.
type DomainRecord struct {
	ID             uuid.UUID
	UserID         string
	DomainName     string
	Registrar      string
	ExpirationDate *time.Time
	AutoRenew      bool
	PrimaryUse     string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewDomainRecord creates a new DomainRecord entity.
func NewDomainRecord(
	userID string,
	domainName string,
	registrar string,
	expirationDate *time.Time,
	autoRenew bool,
	primaryUse string,
	notes string,
) *DomainRecord {
	now := time.Now().UTC()

	return &DomainRecord{
		ID:             uuid.New(),
		UserID:         userID,
		DomainName:     domainName,
		Registrar:      registrar,
		ExpirationDate: expirationDate,
		AutoRenew:      autoRenew,
		PrimaryUse:     primaryUse,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
