package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

func newAlertFixture(t *testing.T) (*AlertService, *repository.MemoryProfileStore, *model.User) {
	t.Helper()

	profiles := repository.NewMemoryProfileStore()
	alerts := repository.NewMemoryAlertStore()

	tourist := &model.User{
		UserID:   utils.GenerateID(),
		FullName: "Asha Verma",
		Role:     model.RoleTourist,
		IsActive: true,
	}
	profile := &model.TouristProfile{
		ProfileID: utils.GenerateID(),
		UserID:    tourist.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := profiles.Put(context.Background(), profile); err != nil {
		t.Fatal("profile setup failed:", err)
	}

	return &AlertService{Alerts: alerts, Profiles: profiles}, profiles, tourist
}

func TestTriggerPanic(t *testing.T) {
	ctx := context.Background()

	t.Run("WithoutLocationFailsPrecondition", func(t *testing.T) {
		svc, _, tourist := newAlertFixture(t)

		_, err := svc.TriggerPanic(ctx, tourist)
		if model.ErrKind(err) != model.ErrKindPreconditionFailed {
			t.Fatalf("expected PRECONDITION_FAILED, got %v", err)
		}
	})

	t.Run("AfterLocationUpdateSucceeds", func(t *testing.T) {
		svc, profiles, tourist := newAlertFixture(t)

		last := &model.Location{Latitude: 28.6507, Longitude: 77.2334, Timestamp: time.Now().UTC()}
		if _, err := profiles.UpdateLocation(ctx, tourist.UserID, last); err != nil {
			t.Fatal("location setup failed:", err)
		}

		alert, err := svc.TriggerPanic(ctx, tourist)
		if err != nil {
			t.Fatal("panic failed:", err)
		}
		if alert.AlertType != model.AlertTypePanic || alert.Status != model.AlertStatusActive {
			t.Fatalf("unexpected alert: %+v", alert)
		}
		if alert.Location.Latitude != last.Latitude || alert.Location.Longitude != last.Longitude {
			t.Fatal("panic alert must carry the last updated position")
		}
		if alert.Message != "PANIC BUTTON pressed by Asha Verma" {
			t.Fatalf("unexpected message: %s", alert.Message)
		}
	})
}

func TestAlertListing(t *testing.T) {
	ctx := context.Background()
	svc, _, tourist := newAlertFixture(t)

	// Insert directly with staggered created_at so the ordering check is
	// meaningful.
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		alert := &model.Alert{
			AlertID:   utils.GenerateID(),
			TouristID: tourist.UserID,
			AlertType: model.AlertTypeGeoFence,
			Message:   "Tourist entered high-risk zone: Riverbank",
			Location:  model.Location{Latitude: 28.6562, Longitude: 77.2410, Timestamp: base},
			Status:    model.AlertStatusActive,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := svc.Alerts.Put(ctx, alert); err != nil {
			t.Fatal("alert setup failed:", err)
		}
	}

	t.Run("ActiveNewestFirst", func(t *testing.T) {
		alerts, err := svc.ListActive(ctx)
		if err != nil {
			t.Fatal("list failed:", err)
		}
		if len(alerts) != 5 {
			t.Fatalf("expected 5 active alerts, got %d", len(alerts))
		}
		for i := 1; i < len(alerts); i++ {
			if alerts[i].CreatedAt.After(alerts[i-1].CreatedAt) {
				t.Fatal("alerts must be ordered created_at descending")
			}
		}
	})

	t.Run("ResolvedDropOutOfActive", func(t *testing.T) {
		all, err := svc.ListAll(ctx)
		if err != nil {
			t.Fatal("list failed:", err)
		}
		if err := svc.Resolve(ctx, all[0].AlertID, "authority-1"); err != nil {
			t.Fatal("resolve failed:", err)
		}

		active, err := svc.ListActive(ctx)
		if err != nil {
			t.Fatal("list failed:", err)
		}
		if len(active) != 4 {
			t.Fatalf("expected 4 active after resolve, got %d", len(active))
		}

		all, err = svc.ListAll(ctx)
		if err != nil {
			t.Fatal("list failed:", err)
		}
		if len(all) != 5 {
			t.Fatal("resolve must not delete history")
		}
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	svc, _, tourist := newAlertFixture(t)

	zone := &model.HighRiskZone{ZoneID: "z1", Name: "Riverbank", RadiusMeters: 800}
	alert, err := svc.CreateGeofenceAlert(ctx, tourist.UserID, zone, &model.Location{
		Latitude: 28.6562, Longitude: 77.2410, Timestamp: time.Now().UTC(),
	})
	if err != nil {
		t.Fatal("alert setup failed:", err)
	}

	t.Run("StampsResolutionFields", func(t *testing.T) {
		if err := svc.Resolve(ctx, alert.AlertID, "authority-1"); err != nil {
			t.Fatal("resolve failed:", err)
		}

		resolved, err := svc.Alerts.GetByID(ctx, alert.AlertID)
		if err != nil {
			t.Fatal("fetch failed:", err)
		}
		if resolved.Status != model.AlertStatusResolved {
			t.Fatalf("expected resolved status, got %s", resolved.Status)
		}
		if resolved.ResolvedAt == nil {
			t.Fatal("resolved_at must be set")
		}
		if resolved.AuthorityID != "authority-1" {
			t.Fatalf("expected resolving authority recorded, got %q", resolved.AuthorityID)
		}
	})

	t.Run("SecondResolveIsNoOp", func(t *testing.T) {
		before, _ := svc.Alerts.GetByID(ctx, alert.AlertID)

		if err := svc.Resolve(ctx, alert.AlertID, "authority-2"); err != nil {
			t.Fatal("repeated resolve must still succeed:", err)
		}

		after, _ := svc.Alerts.GetByID(ctx, alert.AlertID)
		if after.AuthorityID != before.AuthorityID || !after.ResolvedAt.Equal(*before.ResolvedAt) {
			t.Fatal("repeated resolve must leave state unchanged")
		}
	})

	t.Run("UnknownAlertIsNoOp", func(t *testing.T) {
		if err := svc.Resolve(ctx, fmt.Sprintf("missing-%d", time.Now().UnixNano()), "authority-1"); err != nil {
			t.Fatal("resolving an unknown alert must succeed:", err)
		}
	})
}
