package model

// CreateEventRequest creates an announcement. Posted as a multipart form so a
// brochure image can ride along; event_date is RFC 3339 when present.
type CreateEventRequest struct {
	Title            string `form:"title" binding:"required,max=200"`
	Description      string `form:"description" binding:"required"`
	EventDate        string `form:"event_date"`
	EventType        string `form:"event_type"`
	Venue            string `form:"venue"`
	MaxSize          int    `form:"max_size"`
	RegistrationLink string `form:"registration_link"`
}
