package model

import "time"

// Alert types
const (
	AlertTypePanic    = "panic"
	AlertTypeGeoFence = "geo_fence"
	AlertTypeAnomaly  = "anomaly"
	AlertTypeMissing  = "missing"
)

// Alert statuses. Active is the initial state, resolved is terminal.
// Investigating is only ever set by external workflows.
const (
	AlertStatusActive        = "active"
	AlertStatusInvestigating = "investigating"
	AlertStatusResolved      = "resolved"
)

// Alert is append-only history; resolution mutates status, resolved_at and
// authority_id atomically and nothing else.
type Alert struct {
	AlertID     string     `bson:"alert_id" json:"id"`
	TouristID   string     `bson:"tourist_id" json:"tourist_id"`
	AlertType   string     `bson:"alert_type" json:"alert_type"`
	Message     string     `bson:"message" json:"message"`
	Location    Location   `bson:"location" json:"location"`
	Status      string     `bson:"status" json:"status"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	ResolvedAt  *time.Time `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	AuthorityID string     `bson:"authority_id,omitempty" json:"authority_id,omitempty"`
}
