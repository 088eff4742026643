package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessEntity represents the corporation's registration record.
// Exactly one exists per owner; create and update collapse into an upsert.
type BusinessEntity struct {
	ID                     uuid.UUID
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
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
