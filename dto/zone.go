package dto

type CreateZoneRequest struct {
	Name         string  `json:"name" binding:"required"`
	CenterLat    float64 `json:"center_lat" binding:"latitude"`
	CenterLng    float64 `json:"center_lng" binding:"longitude"`
	RadiusMeters float64 `json:"radius_meters" binding:"required,gt=0"`
	RiskLevel    string  `json:"risk_level" binding:"required,oneof=low medium high critical"`
	Description  string  `json:"description"`
}
