package usecase

import (
	"context"
	"log"

	"main/model"
	"main/repository"
	"main/services"
)

// DashboardService composes tourist positions, active alerts and zones into
// the single read view authorities poll. Purely derived, no mutation.
type DashboardService struct {
	Profiles repository.ProfileStore
	Alerts   *AlertService
	Zones    repository.ZoneStore
	Cache    *services.DashboardCache
}

// Build assembles the dashboard view. An empty world yields zero counts and
// empty collections, never an error. The Redis cache, when configured,
// shortcuts repeated polls; cache failures degrade to a direct read.
func (s *DashboardService) Build(ctx context.Context) (*model.DashboardView, error) {
	if cached := s.Cache.Get(ctx); cached != nil {
		return cached, nil
	}

	profiles, err := s.Profiles.ListWithLocation(ctx)
	if err != nil {
		log.Printf("profile list failed building dashboard: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "profile store unavailable")
	}

	alerts, err := s.Alerts.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	zones, err := s.Zones.ListAll(ctx)
	if err != nil {
		log.Printf("zone list failed building dashboard: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "zone store unavailable")
	}

	view := &model.DashboardView{
		TouristCount:     len(profiles),
		ActiveAlertCount: len(alerts),
		TouristLocations: profiles,
		RecentAlerts:     alerts,
		HighRiskZones:    zones,
	}

	if err := s.Cache.Set(ctx, view); err != nil {
		log.Printf("dashboard cache write failed: %v", err)
	}

	return view, nil
}
