package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an authenticated account. Profile data lives in the profiles table;
// this row only anchors identity.
type User struct {
	ID          string     `gorm:"primaryKey;column:id;type:uuid"           json:"id"`
	Email       string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"               json:"created_at"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"                     json:"last_login_at,omitempty"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier so the same model works on SQLite in tests.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
