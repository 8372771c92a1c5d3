// Package model provides domain models and DTOs for the auth module.
package model

// RequestCodeRequest asks for a one-time code to be emailed.
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeRequest exchanges an emailed code for a session token.
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

// SessionResponse is returned after a successful login.
type SessionResponse struct {
	Token      string `json:"token"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	HasProfile bool   `json:"has_profile"`
}
