package model

// UpsertProfileRequest creates or replaces the caller's profile.
type UpsertProfileRequest struct {
	DisplayName     string   `json:"display_name" binding:"required,max=100"`
	University      string   `json:"university" binding:"required,max=255"`
	Interests       []string `json:"interests"`
	ExperienceLevel string   `json:"experience_level" binding:"required,oneof=Beginner Intermediate Advanced"`
	IsMentor        bool     `json:"is_mentor"`
}

// AvatarResponse is returned after a successful avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}
