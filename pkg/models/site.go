package models

import "time"

// Site is a physical location (data center, campus, branch office).
// Latitude/Longitude default to 0 when the upstream record carries none.
type Site struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Status      DeviceStatus `json:"status"`
	Description string       `json:"description,omitempty"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
