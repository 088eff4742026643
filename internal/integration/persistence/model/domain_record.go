package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
)

// DomainRecordModel represents the domain_records table.
type DomainRecordModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         string     `gorm:"type:varchar(255);not null;index"`
	DomainName     string     `gorm:"type:varchar(255);not null"`
	Registrar      string     `gorm:"type:varchar(100)"`
	ExpirationDate *time.Time `gorm:"type:date;index"`
	AutoRenew      bool       `gorm:"not null;default:false"`
	PrimaryUse     string     `gorm:"type:varchar(100)"`
	Notes          string     `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for the DomainRecordModel.
func (DomainRecordModel) TableName() string {
	return "domain_records"
}

// ToEntity converts a DomainRecordModel to a domain entity.
func (m *DomainRecordModel) ToEntity() *entity.DomainRecord {
	return &entity.DomainRecord{
		ID:             m.ID,
		UserID:         m.UserID,
		DomainName:     m.DomainName,
		Registrar:      m.Registrar,
		ExpirationDate: m.ExpirationDate,
		AutoRenew:      m.AutoRenew,
		PrimaryUse:     m.PrimaryUse,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// DomainRecordFromEntity creates a model from a domain entity.
func DomainRecordFromEntity(d *entity.DomainRecord) *DomainRecordModel {
	return &DomainRecordModel{
		ID:             d.ID,
		UserID:         d.UserID,
		DomainName:     d.DomainName,
		Registrar:      d.Registrar,
		ExpirationDate: d.ExpirationDate,
		AutoRenew:      d.AutoRenew,
		PrimaryUse:     d.PrimaryUse,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
