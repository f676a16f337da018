package entity

import (
	"time"

	"gorm.io/gorm"
)

// Account represents an organization record, the target of a conversion
type Account struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	Name                 string         `gorm:"size:255;not null" json:"name"`
	Website              *string        `gorm:"size:255" json:"website,omitempty"`
	Phone                *string        `gorm:"size:50" json:"phone,omitempty"`
	BillingStreet        *string        `gorm:"size:255" json:"billing_street,omitempty"`
	BillingCity          *string        `gorm:"size:100" json:"billing_city,omitempty"`
	BillingStateProvince *string        `gorm:"size:100;column:billing_state_province" json:"billing_state_province,omitempty"`
	BillingZipPostalCode *string        `gorm:"size:20;column:billing_zip_postal_code" json:"billing_zip_postal_code,omitempty"`
	BillingCountry       *string        `gorm:"size:100" json:"billing_country,omitempty"`
	Owner                *string        `gorm:"size:255;column:account_owner" json:"account_owner,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Contacts      []Contact     `gorm:"foreignKey:AccountID" json:"-"`
	Opportunities []Opportunity `gorm:"foreignKey:AccountID" json:"-"`
}

// TableName returns the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}
