// Package model provides aggregate read models for the dashboard module.
package model

import "time"

// OwnedTeam is one of the caller's teams annotated with the counts the
// dashboard renders next to it.
type OwnedTeam struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	EventType    string    `json:"event_type"`
	MaxMembers   int       `json:"max_members"`
	InviteCode   string    `json:"invite_code"`
	CreatedAt    time.Time `json:"created_at"`
	MemberCount  int64     `json:"member_count"`
	PendingCount int64     `json:"pending_count"`
}

// JoinedTeam is a team the caller belongs to but does not own.
type JoinedTeam struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EventType string    `json:"event_type"`
	JoinedAt  time.Time `json:"joined_at"`
}

// Summary carries the dashboard's headline counters.
type Summary struct {
	OwnedTeams          int   `json:"owned_teams"`
	JoinedTeams         int   `json:"joined_teams"`
	PendingApplications int64 `json:"pending_applications"`
}

// DashboardResponse is the single payload behind GET /dashboard.
type DashboardResponse struct {
	Owned   []OwnedTeam  `json:"owned"`
	Joined  []JoinedTeam `json:"joined"`
	Summary Summary      `json:"summary"`
}
