package model

import "errors"

var (
	// ErrTeamNotFound indicates the team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotTeamOwner indicates the caller does not own the team.
	ErrNotTeamOwner = errors.New("only the team owner may do this")
	// ErrAlreadyMember indicates the user already has a membership row.
	ErrAlreadyMember = errors.New("user is already a member of this team")
	// ErrNotMember indicates the user has no membership in the team.
	ErrNotMember = errors.New("user is not a member of this team")
	// ErrOwnerCannotLeave indicates the owner tried to leave instead of deleting.
	ErrOwnerCannotLeave = errors.New("owners must delete the team instead of leaving")
	// ErrInviteCodeTaken indicates a generated invite code collided.
	ErrInviteCodeTaken = errors.New("invite code already in use")
	// ErrTeamFull indicates the team has no open slots.
	ErrTeamFull = errors.New("team is full")
)
