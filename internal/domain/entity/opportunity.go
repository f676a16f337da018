package entity

import (
	"time"

	"github.com/sellstack/pipeline-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Opportunity represents a sales deal bound to exactly one Account
type Opportunity struct {
	ID               uint                  `gorm:"primaryKey" json:"id"`
	AccountID        uint                  `gorm:"not null;index" json:"account_id"`
	Name             string                `gorm:"size:255;not null" json:"name"`
	Stage            enum.OpportunityStage `gorm:"size:50;not null;default:Qualification" json:"stage"`
	Amount           *float64              `json:"amount,omitempty"`
	CloseDate        *time.Time            `json:"close_date,omitempty"`
	ForecastCategory enum.ForecastCategory `gorm:"size:50;not null;default:Pipeline" json:"forecast_category"`
	Owner            *string               `gorm:"size:255;column:opportunity_owner" json:"opportunity_owner,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	DeletedAt        gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// TableName returns the table name for the Opportunity model
func (Opportunity) TableName() string {
	return "opportunities"
}
