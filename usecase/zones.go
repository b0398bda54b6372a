package usecase

import (
	"context"
	"log"
	"time"

	"main/dto"
	"main/model"
	"main/repository"
	"main/utils"
)

// ZoneService manages the authority-owned high-risk zone set.
type ZoneService struct {
	Zones repository.ZoneStore
}

func (s *ZoneService) List(ctx context.Context) ([]*model.HighRiskZone, error) {
	zones, err := s.Zones.ListAll(ctx)
	if err != nil {
		log.Printf("zone list failed: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "zone store unavailable")
	}
	return zones, nil
}

func (s *ZoneService) Create(ctx context.Context, req *dto.CreateZoneRequest) (*model.HighRiskZone, error) {
	zone := &model.HighRiskZone{
		ZoneID:       utils.GenerateID(),
		Name:         req.Name,
		CenterLat:    req.CenterLat,
		CenterLng:    req.CenterLng,
		RadiusMeters: req.RadiusMeters,
		RiskLevel:    req.RiskLevel,
		Description:  req.Description,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Zones.Put(ctx, zone); err != nil {
		log.Printf("zone insert failed: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "zone store unavailable")
	}

	return zone, nil
}
