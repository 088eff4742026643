package dto

import (
	"time"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// UpsertBusinessEntityRequest represents the request body for saving the
// business entity profile.
type UpsertBusinessEntityRequest struct {
	CompanyName            string  `json:"company_name" binding:"required,max=255"`
	EntityType             string  `json:"entity_type,omitempty" binding:"omitempty,max=100"`
	StateOfIncorporation   string  `json:"state_of_incorporation,omitempty" binding:"omitempty,max=100"`
	IncorporationDate      *string `json:"incorporation_date,omitempty"`
	FiscalYearEnd          string  `json:"fiscal_year_end,omitempty" binding:"omitempty,max=20"`
	BusinessID             string  `json:"business_id,omitempty" binding:"omitempty,max=100"`
	IRSEin                 string  `json:"irs_ein,omitempty" binding:"omitempty,max=20"`
	RegisteredAgentName    string  `json:"registered_agent_name,omitempty" binding:"omitempty,max=255"`
	RegisteredAgentAddress string  `json:"registered_agent_address,omitempty"`
	RegisteredAgentPhone   string  `json:"registered_agent_phone,omitempty" binding:"omitempty,max=50"`
}

// BusinessEntityResponse represents the business entity profile in API responses.
type BusinessEntityResponse struct {
	ID                     string    `json:"id"`
	CompanyName            string    `json:"company_name"`
	EntityType             string    `json:"entity_type"`
	StateOfIncorporation   string    `json:"state_of_incorporation"`
	IncorporationDate      *string   `json:"incorporation_date,omitempty"`
	FiscalYearEnd          string    `json:"fiscal_year_end"`
	BusinessID             string    `json:"business_id"`
	IRSEin                 string    `json:"irs_ein"`
	RegisteredAgentName    string    `json:"registered_agent_name"`
	RegisteredAgentAddress string    `json:"registered_agent_address"`
	RegisteredAgentPhone   string    `json:"registered_agent_phone"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// AddDomainRequest represents the request body for domain record creation.
type AddDomainRequest struct {
	DomainName     string  `json:"domain_name" binding:"required,max=255"`
	Registrar      string  `json:"registrar,omitempty" binding:"omitempty,max=100"`
	ExpirationDate *string `json:"expiration_date,omitempty"`
	AutoRenew      bool    `json:"auto_renew,omitempty"`
	PrimaryUse     string  `json:"primary_use,omitempty" binding:"omitempty,max=100"`
	Notes          string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateDomainRequest represents the request body for domain record update.
type UpdateDomainRequest struct {
	DomainName      *string `json:"domain_name,omitempty" binding:"omitempty,min=1,max=255"`
	Registrar       *string `json:"registrar,omitempty" binding:"omitempty,max=100"`
	ExpirationDate  *string `json:"expiration_date,omitempty"`
	ClearExpiration bool    `json:"clear_expiration,omitempty"`
	AutoRenew       *bool   `json:"auto_renew,omitempty"`
	PrimaryUse      *string `json:"primary_use,omitempty" binding:"omitempty,max=100"`
	Notes           *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// DomainResponse represents a domain record in API responses.
type DomainResponse struct {
	ID             string    `json:"id"`
	DomainName     string    `json:"domain_name"`
	Registrar      string    `json:"registrar"`
	ExpirationDate *string   `json:"expiration_date,omitempty"`
	AutoRenew      bool      `json:"auto_renew"`
	PrimaryUse     string    `json:"primary_use"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DomainListResponse represents a domain portfolio listing.
type DomainListResponse struct {
	Domains []DomainResponse `json:"domains"`
}

// CreateEventRequest represents the request body for corporate event creation.
type CreateEventRequest struct {
	Title        string `json:"title" binding:"required,max=255"`
	Description  string `json:"description,omitempty" binding:"omitempty,max=1000"`
	EventDate    string `json:"event_date" binding:"required"`
	EventType    string `json:"event_type,omitempty" binding:"omitempty,oneof=tax_deadline filing renewal meeting general"`
	IsReminder   bool   `json:"is_reminder,omitempty"`
	ReminderDays int    `json:"reminder_days,omitempty" binding:"omitempty,min=0,max=365"`
}

// UpdateEventRequest represents the request body for corporate event update.
type UpdateEventRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description  *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	EventDate    *string `json:"event_date,omitempty"`
	EventType    *string `json:"event_type,omitempty" binding:"omitempty,oneof=tax_deadline filing renewal meeting general"`
	IsReminder   *bool   `json:"is_reminder,omitempty"`
	ReminderDays *int    `json:"reminder_days,omitempty" binding:"omitempty,min=0,max=365"`
}

// EventResponse represents a corporate event in API responses.
type EventResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	EventDate    string     `json:"event_date"`
	EventType    string     `json:"event_type"`
	IsReminder   bool       `json:"is_reminder"`
	ReminderDays int        `json:"reminder_days"`
	RemindedAt   *time.Time `json:"reminded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EventListResponse represents a corporate calendar listing.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ToBusinessEntityResponse converts a domain entity to a response DTO.
func ToBusinessEntityResponse(be *entity.BusinessEntity) BusinessEntityResponse {
	resp := BusinessEntityResponse{
		ID:                     be.ID.String(),
		CompanyName:            be.CompanyName,
		EntityType:             be.EntityType,
		StateOfIncorporation:   be.StateOfIncorporation,
		FiscalYearEnd:          be.FiscalYearEnd,
		BusinessID:             be.BusinessID,
		IRSEin:                 be.IRSEin,
		RegisteredAgentName:    be.RegisteredAgentName,
		RegisteredAgentAddress: be.RegisteredAgentAddress,
		RegisteredAgentPhone:   be.RegisteredAgentPhone,
		CreatedAt:              be.CreatedAt,
		UpdatedAt:              be.UpdatedAt,
	}
	if be.IncorporationDate != nil {
		d := be.IncorporationDate.Format("2006-01-02")
		resp.IncorporationDate = &d
	}
	return resp
}

// ToDomainResponse converts a domain record entity to a response DTO.
func ToDomainResponse(d *entity.DomainRecord) DomainResponse {
	resp := DomainResponse{
		ID:         d.ID.String(),
		DomainName: d.DomainName,
		Registrar:  d.Registrar,
		AutoRenew:  d.AutoRenew,
		PrimaryUse: d.PrimaryUse,
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.ExpirationDate != nil {
		exp := d.ExpirationDate.Format("2006-01-02")
		resp.ExpirationDate = &exp
	}
	return resp
}

// ToEventResponse converts a corporate event entity to a response DTO.
func ToEventResponse(e *entity.CorporateEvent) EventResponse {
	return EventResponse{
		ID:           e.ID.String(),
		Title:        e.Title,
		Description:  e.Description,
		EventDate:    e.EventDate.Format("2006-01-02"),
		EventType:    string(e.EventType),
		IsReminder:   e.IsReminder,
		ReminderDays: e.ReminderDays,
		RemindedAt:   e.RemindedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
