package model

import "time"

// CreateTeamRequest opens a new team.
type CreateTeamRequest struct {
	Name               string   `json:"name" binding:"required,max=100"`
	Description        string   `json:"description" binding:"required"`
	EventType          string   `json:"event_type" binding:"required,oneof=hackathon ctf competition project"`
	TechStack          []string `json:"tech_stack"`
	RolesNeeded        []string `json:"roles_needed"`
	MaxMembers         int      `json:"max_members" binding:"required,min=1"`
	IsBeginnerFriendly bool     `json:"is_beginner_friendly"`
	HasMentor          bool     `json:"has_mentor"`
	GroupLink          string   `json:"group_link"`
}

// ListFilter narrows the team listing. Tag filters match if the team shares
// at least one entry with the requested set.
type ListFilter struct {
	EventType        string
	BeginnerFriendly *bool
	TechStack        []string
	RolesNeeded      []string
}

// MemberResponse is one row of a team's member list, with the denormalized
// profile fields clients render next to it.
type MemberResponse struct {
	UserID          string    `json:"user_id"`
	Role            string    `json:"role"`
	JoinedAt        time.Time `json:"joined_at"`
	DisplayName     string    `json:"display_name"`
	ExperienceLevel string    `json:"experience_level"`
	AvatarURL       *string   `json:"avatar_url,omitempty"`
}
