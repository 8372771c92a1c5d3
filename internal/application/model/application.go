// Package model provides domain models and DTOs for the application module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application states. pending is the only non-terminal state.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Application is a request to join a team. One pending application per
// (team, user) at a time; approved and rejected rows stay for history.
type Application struct {
	ID            string    `gorm:"primaryKey;column:id;type:uuid"          json:"id"`
	TeamID        string    `gorm:"column:team_id;type:uuid;not null;index" json:"team_id"`
	UserID        string    `gorm:"column:user_id;type:uuid;not null"       json:"user_id"`
	PreferredRole string    `gorm:"column:preferred_role;type:varchar(50);not null" json:"preferred_role"`
	Experience    string    `gorm:"column:experience;type:text"             json:"experience"`
	Message       string    `gorm:"column:message;type:text"                json:"message"`
	ContactInfo   string    `gorm:"column:contact_info;type:varchar(10);not null" json:"contact_info"`
	Status        string    `gorm:"column:status;type:varchar(10);not null;default:pending" json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"              json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"              json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Application) TableName() string {
	return "team_applications"
}

// BeforeCreate assigns the identifier so the same model works on SQLite in tests.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
