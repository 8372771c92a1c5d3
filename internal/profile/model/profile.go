// Package model provides domain models and DTOs for the profile module.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fireteam/teamfinder/pkg/sqltypes"
)

// Experience levels accepted on a profile.
const (
	ExperienceBeginner     = "Beginner"
	ExperienceIntermediate = "Intermediate"
	ExperienceAdvanced     = "Advanced"
)

// Profile is a user's public card. One row per user; never hard-deleted.
type Profile struct {
	ID              string              `gorm:"primaryKey;column:id;type:uuid"                json:"id"`
	UserID          string              `gorm:"column:user_id;type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName     string              `gorm:"column:display_name;type:varchar(100);not null" json:"display_name"`
	University      string              `gorm:"column:university;type:varchar(255);not null"  json:"university"`
	Interests       sqltypes.StringList `gorm:"column:interests;type:text"                    json:"interests"`
	ExperienceLevel string              `gorm:"column:experience_level;type:varchar(20);not null" json:"experience_level"`
	IsMentor        bool                `gorm:"column:is_mentor;not null;default:false"       json:"is_mentor"`
	AvatarURL       *string             `gorm:"column:avatar_url"                             json:"avatar_url,omitempty"`
	CreatedAt       time.Time           `gorm:"column:created_at;not null"                    json:"created_at"`
	UpdatedAt       time.Time           `gorm:"column:updated_at;not null"                    json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns the identifier so the same model works on SQLite in tests.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
