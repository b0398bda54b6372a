package model

// DashboardView is the read-only composite served to authorities. Collections
// are always non-nil so an empty world serializes as empty lists.
type DashboardView struct {
	TouristCount     int               `json:"tourists"`
	ActiveAlertCount int               `json:"active_alerts"`
	TouristLocations []*TouristProfile `json:"tourist_locations"`
	RecentAlerts     []*Alert          `json:"recent_alerts"`
	HighRiskZones    []*HighRiskZone   `json:"high_risk_zones"`
}
