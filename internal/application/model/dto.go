package model

import (
	"time"

	"github.com/fireteam/teamfinder/pkg/sqltypes"
)

// ApplyRequest submits an application to a team. contact_info is a 10-digit
// phone number with no leading zero.
type ApplyRequest struct {
	PreferredRole string `json:"preferred_role" binding:"required,max=50"`
	Experience    string `json:"experience"`
	Message       string `json:"message"`
	ContactInfo   string `json:"contact_info" binding:"required,contact10"`
}

// ApplicantView is one application joined with the applicant's profile,
// as the team owner reviews it.
type ApplicantView struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	PreferredRole   string              `json:"preferred_role"`
	Experience      string              `json:"experience"`
	Message         string              `json:"message"`
	ContactInfo     string              `json:"contact_info"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	DisplayName     string              `json:"display_name"`
	University      string              `json:"university"`
	Interests       sqltypes.StringList `json:"interests"`
	ExperienceLevel string              `json:"experience_level"`
	AvatarURL       *string             `json:"avatar_url,omitempty"`
}

// MineView is one of the caller's own applications with the team it targets.
type MineView struct {
	ID            string    `json:"id"`
	TeamID        string    `json:"team_id"`
	TeamName      string    `json:"team_name"`
	PreferredRole string    `json:"preferred_role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
