// Package model provides domain models and DTOs for the event module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is an announcement shown on the dashboard feed. Pure CRUD.
type Event struct {
	ID               string     `gorm:"primaryKey;column:id;type:uuid"         json:"id"`
	Title            string     `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Description      string     `gorm:"column:description;type:text;not null"  json:"description"`
	EventDate        *time.Time `gorm:"column:event_date"                      json:"event_date,omitempty"`
	EventType        *string    `gorm:"column:event_type;type:varchar(50)"     json:"event_type,omitempty"`
	Venue            *string    `gorm:"column:venue;type:varchar(255)"         json:"venue,omitempty"`
	MaxSize          *int       `gorm:"column:max_size"                        json:"max_size,omitempty"`
	RegistrationLink *string    `gorm:"column:registration_link"               json:"registration_link,omitempty"`
	BrochureURL      *string    `gorm:"column:brochure_url"                    json:"brochure_url,omitempty"`
	CreatedBy        string     `gorm:"column:created_by;type:uuid;not null"   json:"created_by"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null"             json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "events"
}

// BeforeCreate assigns the identifier so the same model works on SQLite in tests.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
