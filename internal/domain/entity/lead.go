package entity

import (
	"time"

	"github.com/sellstack/pipeline-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Lead represents an unqualified prospect, the source of a conversion
type Lead struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Salutation    *string         `gorm:"size:20" json:"salutation,omitempty"`
	FirstName     *string         `gorm:"size:100" json:"first_name,omitempty"`
	LastName      string          `gorm:"size:100;not null" json:"last_name"`
	Company       string          `gorm:"size:255" json:"company"`
	Title         *string         `gorm:"size:150" json:"title,omitempty"`
	Email         *string         `gorm:"size:255" json:"email,omitempty"`
	Phone         *string         `gorm:"size:50" json:"phone,omitempty"`
	Website       *string         `gorm:"size:255" json:"website,omitempty"`
	Street        *string         `gorm:"size:255" json:"street,omitempty"`
	City          *string         `gorm:"size:100" json:"city,omitempty"`
	StateProvince *string         `gorm:"size:100;column:state_province" json:"state_province,omitempty"`
	ZipPostalCode *string         `gorm:"size:20;column:zip_postal_code" json:"zip_postal_code,omitempty"`
	Country       *string         `gorm:"size:100" json:"country,omitempty"`
	AnnualRevenue *float64        `json:"annual_revenue,omitempty"`
	Status        enum.LeadStatus `gorm:"size:50;not null;default:New" json:"status"`
	Owner         *string         `gorm:"size:255;column:lead_owner" json:"lead_owner,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
