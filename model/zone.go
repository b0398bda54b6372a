package model

import "time"

// Zone risk levels
const (
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// HighRiskZone is a circular geofence owned by authorities and read by every
// tourist location update.
type HighRiskZone struct {
	ZoneID       string    `bson:"zone_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	CenterLat    float64   `bson:"center_lat" json:"center_lat"`
	CenterLng    float64   `bson:"center_lng" json:"center_lng"`
	RadiusMeters float64   `bson:"radius_meters" json:"radius_meters"`
	RiskLevel    string    `bson:"risk_level" json:"risk_level"`
	Description  string    `bson:"description" json:"description"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
