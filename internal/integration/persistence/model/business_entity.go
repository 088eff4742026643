package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// BusinessEntityModel represents the business_entities table. The unique
// index on user_id enforces one profile per owner.
type BusinessEntityModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID                 string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	CompanyName            string     `gorm:"type:varchar(255);not null"`
	EntityType             string     `gorm:"type:varchar(100)"`
	StateOfIncorporation   string     `gorm:"type:varchar(100)"`
	IncorporationDate      *time.Time `gorm:"type:date"`
	FiscalYearEnd          string     `gorm:"type:varchar(20)"`
	BusinessID             string     `gorm:"type:varchar(100)"`
	IRSEin                 string     `gorm:"type:varchar(20)"`
	RegisteredAgentName    string     `gorm:"type:varchar(255)"`
	RegisteredAgentAddress string     `gorm:"type:text"`
	RegisteredAgentPhone   string     `gorm:"type:varchar(50)"`
	CreatedAt              time.Time  `gorm:"not null"`
	UpdatedAt              time.Time  `gorm:"not null"`
}

// TableName returns the table name for the BusinessEntityModel.
func (BusinessEntityModel) TableName() string {
	return "business_entities"
}

// ToEntity converts a BusinessEntityModel to a domain entity.
func (m *BusinessEntityModel) ToEntity() *entity.BusinessEntity {
	return &entity.BusinessEntity{
		ID:                     m.ID,
		UserID:                 m.UserID,
		CompanyName:            m.CompanyName,
		EntityType:             m.EntityType,
		StateOfIncorporation:   m.StateOfIncorporation,
		IncorporationDate:      m.IncorporationDate,
		FiscalYearEnd:          m.FiscalYearEnd,
		BusinessID:             m.BusinessID,
		IRSEin:                 m.IRSEin,
		RegisteredAgentName:    m.RegisteredAgentName,
		RegisteredAgentAddress: m.RegisteredAgentAddress,
		RegisteredAgentPhone:   m.RegisteredAgentPhone,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// BusinessEntityFromEntity creates a model from a domain entity.
func BusinessEntityFromEntity(be *entity.BusinessEntity) *BusinessEntityModel {
	return &BusinessEntityModel{
		ID:                     be.ID,
		UserID:                 be.UserID,
		CompanyName:            be.CompanyName,
		EntityType:             be.EntityType,
		StateOfIncorporation:   be.StateOfIncorporation,
		IncorporationDate:      be.IncorporationDate,
		FiscalYearEnd:          be.FiscalYearEnd,
		BusinessID:             be.BusinessID,
		IRSEin:                 be.IRSEin,
		RegisteredAgentName:    be.RegisteredAgentName,
		RegisteredAgentAddress: be.RegisteredAgentAddress,
		RegisteredAgentPhone:   be.RegisteredAgentPhone,
		CreatedAt:              be.CreatedAt,
		UpdatedAt:              be.UpdatedAt,
	}
}
