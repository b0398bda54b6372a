package dto

import "time"

// Pointers so a present-but-zero coordinate (equator, prime meridian) is not
// rejected by the required rule.
type LocationUpdateRequest struct {
	Latitude  *float64   `json:"latitude" binding:"required,latitude"`
	Longitude *float64   `json:"longitude" binding:"required,longitude"`
	Timestamp *time.Time `json:"timestamp"`
}
