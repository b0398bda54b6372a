package usecase

import (
	"context"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

func newDashboardFixture() (*DashboardService, *repository.MemoryProfileStore, *repository.MemoryZoneStore, *AlertService) {
	profiles := repository.NewMemoryProfileStore()
	zones := repository.NewMemoryZoneStore()
	alertService := &AlertService{Alerts: repository.NewMemoryAlertStore(), Profiles: profiles}
	dashboard := &DashboardService{
		Profiles: profiles,
		Alerts:   alertService,
		Zones:    zones,
		// Cache deliberately nil: disabled caching must be transparent.
	}
	return dashboard, profiles, zones, alertService
}

func TestBuildDashboard(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyWorld", func(t *testing.T) {
		dashboard, _, _, _ := newDashboardFixture()

		view, err := dashboard.Build(ctx)
		if err != nil {
			t.Fatal("empty world must not error:", err)
		}
		if view.TouristCount != 0 || view.ActiveAlertCount != 0 {
			t.Fatalf("expected zero counts, got %+v", view)
		}
		if view.TouristLocations == nil || view.RecentAlerts == nil || view.HighRiskZones == nil {
			t.Fatal("collections must be empty, not nil")
		}
	})

	t.Run("CountsOnlyLocatedTourists", func(t *testing.T) {
		dashboard, profiles, _, _ := newDashboardFixture()

		located := &model.TouristProfile{
			ProfileID: utils.GenerateID(),
			UserID:    "tourist-located",
			CurrentLocation: &model.Location{
				Latitude: 28.61, Longitude: 77.21, Timestamp: time.Now().UTC(),
			},
		}
		unlocated := &model.TouristProfile{
			ProfileID: utils.GenerateID(),
			UserID:    "tourist-unlocated",
		}
		if err := profiles.Put(ctx, located); err != nil {
			t.Fatal(err)
		}
		if err := profiles.Put(ctx, unlocated); err != nil {
			t.Fatal(err)
		}

		view, err := dashboard.Build(ctx)
		if err != nil {
			t.Fatal("build failed:", err)
		}
		if view.TouristCount != 1 {
			t.Fatalf("only located tourists count, got %d", view.TouristCount)
		}
		if len(view.TouristLocations) != 1 || view.TouristLocations[0].UserID != "tourist-located" {
			t.Fatal("dashboard must list exactly the located profiles")
		}
	})

	t.Run("ActiveAlertsAndZones", func(t *testing.T) {
		dashboard, _, zones, alertService := newDashboardFixture()

		zone := &model.HighRiskZone{
			ZoneID:       utils.GenerateID(),
			Name:         "Yamuna River Bank",
			CenterLat:    28.6562,
			CenterLng:    77.2410,
			RadiusMeters: 800,
			RiskLevel:    model.RiskCritical,
		}
		if err := zones.Put(ctx, zone); err != nil {
			t.Fatal(err)
		}

		first, err := alertService.CreateGeofenceAlert(ctx, "tourist-1", zone, &model.Location{
			Latitude: 28.6562, Longitude: 77.2410, Timestamp: time.Now().UTC(),
		})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := alertService.CreateGeofenceAlert(ctx, "tourist-2", zone, &model.Location{
			Latitude: 28.6562, Longitude: 77.2410, Timestamp: time.Now().UTC(),
		}); err != nil {
			t.Fatal(err)
		}
		if err := alertService.Resolve(ctx, first.AlertID, "authority-1"); err != nil {
			t.Fatal(err)
		}

		view, err := dashboard.Build(ctx)
		if err != nil {
			t.Fatal("build failed:", err)
		}
		if view.ActiveAlertCount != 1 {
			t.Fatalf("resolved alerts must not count as active, got %d", view.ActiveAlertCount)
		}
		if len(view.HighRiskZones) != 1 {
			t.Fatalf("expected 1 zone, got %d", len(view.HighRiskZones))
		}
	})
}
