package model

import "time"

// Item represents an item owned by a user.
type Item struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	OwnerID     int64     `json:"owner_id"`
	ImageMime   string    `json:"image_mime,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Item lifecycle statuses. Transitions are unconstrained: any status may
// move to any other, including itself.
const (
	StatusNew      = "NEW"
	StatusApproved = "APPROVED"
	StatusEOL      = "EOL"
)

// ValidStatus reports whether s is a known item status.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusApproved || s == StatusEOL
}
