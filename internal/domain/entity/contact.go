package entity

import (
	"time"

	"gorm.io/gorm"
)

// Contact represents a person record bound to exactly one Account.
// Email is unique across all contacts.
type Contact struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	AccountID            uint           `gorm:"not null;index" json:"account_id"`
	Salutation           *string        `gorm:"size:20" json:"salutation,omitempty"`
	FirstName            *string        `gorm:"size:100" json:"first_name,omitempty"`
	LastName             string         `gorm:"size:100;not null" json:"last_name"`
	Email                *string        `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Phone                *string        `gorm:"size:50" json:"phone,omitempty"`
	Title                *string        `gorm:"size:150" json:"title,omitempty"`
	MailingStreet        *string        `gorm:"size:255" json:"mailing_street,omitempty"`
	MailingCity          *string        `gorm:"size:100" json:"mailing_city,omitempty"`
	MailingStateProvince *string        `gorm:"size:100;column:mailing_state_province" json:"mailing_state_province,omitempty"`
	MailingZipPostalCode *string        `gorm:"size:20;column:mailing_zip_postal_code" json:"mailing_zip_postal_code,omitempty"`
	MailingCountry       *string        `gorm:"size:100" json:"mailing_country,omitempty"`
	Owner                *string        `gorm:"size:255;column:contact_owner" json:"contact_owner,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// TableName returns the table name for the Contact model
func (Contact) TableName() string {
	return "contacts"
}
