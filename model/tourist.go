package model

import "time"

// Location is a point report from a tourist device.
type Location struct {
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type EmergencyContact struct {
	Name         string `bson:"name" json:"name"`
	Phone        string `bson:"phone" json:"phone"`
	Relationship string `bson:"relationship" json:"relationship"`
}

type Waypoint struct {
	Name      string    `bson:"name" json:"name"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	PlannedAt time.Time `bson:"planned_at" json:"planned_at"`
}

// TouristProfile is created exactly once per tourist user at registration.
// CurrentLocation stays nil until the first verified location update.
type TouristProfile struct {
	ProfileID             string             `bson:"profile_id" json:"id"`
	UserID                string             `bson:"user_id" json:"user_id"`
	DigitalID             string             `bson:"digital_id" json:"digital_id"`
	SafetyScore           int                `bson:"safety_score" json:"safety_score"`
	CurrentLocation       *Location          `bson:"current_location,omitempty" json:"current_location,omitempty"`
	PlannedItinerary      []Waypoint         `bson:"planned_itinerary" json:"planned_itinerary"`
	FamilyTrackingEnabled bool               `bson:"family_tracking_enabled" json:"family_tracking_enabled"`
	EmergencyContacts     []EmergencyContact `bson:"emergency_contacts" json:"emergency_contacts"`
	IntegrityHash         string             `bson:"integrity_hash" json:"integrity_hash"`
	TripStartDate         *time.Time         `bson:"trip_start_date,omitempty" json:"trip_start_date,omitempty"`
	TripEndDate           *time.Time         `bson:"trip_end_date,omitempty" json:"trip_end_date,omitempty"`
	CreatedAt             time.Time          `bson:"created_at" json:"created_at"`
}
