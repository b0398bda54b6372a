package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// Read shapes required by the authority views.
const (
	ActiveAlertLimit = 50
	AllAlertLimit    = 100
)

// AlertService owns the alert lifecycle: creation by panic or geofence
// trigger, listing, and the resolve transition.
type AlertService struct {
	Alerts   repository.AlertStore
	Profiles repository.ProfileStore
}

// CreateGeofenceAlert records a zone trigger for the given position. Called
// only by the location tracker; every trigger yields a fresh alert.
func (s *AlertService) CreateGeofenceAlert(ctx context.Context, touristID string, zone *model.HighRiskZone, location *model.Location) (*model.Alert, error) {
	alert := &model.Alert{
		AlertID:   utils.GenerateID(),
		TouristID: touristID,
		AlertType: model.AlertTypeGeoFence,
		Message:   fmt.Sprintf("Tourist entered high-risk zone: %s", zone.Name),
		Location:  *location,
		Status:    model.AlertStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Alerts.Put(ctx, alert); err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "alert store unavailable")
	}

	utils.TrackAlertCreated(model.AlertTypeGeoFence)
	return alert, nil
}

// TriggerPanic raises a panic alert at the tourist's last known position.
// Fails when no location has ever been reported.
func (s *AlertService) TriggerPanic(ctx context.Context, tourist *model.User) (*model.Alert, error) {
	profile, err := s.Profiles.GetByUserID(ctx, tourist.UserID)
	if err != nil {
		log.Printf("profile lookup failed during panic: %v", err)
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "profile store unavailable")
	}
	if profile == nil || profile.CurrentLocation == nil {
		return nil, model.NewAppError(model.ErrKindPreconditionFailed, "location not available")
	}

	alert := &model.Alert{
		AlertID:   utils.GenerateID(),
		TouristID: tourist.UserID,
		AlertType: model.AlertTypePanic,
		Message:   fmt.Sprintf("PANIC BUTTON pressed by %s", tourist.FullName),
		Location:  *profile.CurrentLocation,
		Status:    model.AlertStatusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Alerts.Put(ctx, alert); err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "alert store unavailable")
	}

	utils.TrackAlertCreated(model.AlertTypePanic)
	return alert, nil
}

// ListActive returns active alerts newest first, capped for the dashboard.
func (s *AlertService) ListActive(ctx context.Context) ([]*model.Alert, error) {
	alerts, err := s.Alerts.List(ctx, repository.AlertFilter{Status: model.AlertStatusActive}, ActiveAlertLimit)
	if err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "alert store unavailable")
	}
	return alerts, nil
}

// ListAll returns alerts of any status newest first.
func (s *AlertService) ListAll(ctx context.Context) ([]*model.Alert, error) {
	alerts, err := s.Alerts.List(ctx, repository.AlertFilter{}, AllAlertLimit)
	if err != nil {
		return nil, model.NewAppError(model.ErrKindUpstreamUnavailable, "alert store unavailable")
	}
	return alerts, nil
}

// Resolve stamps status, resolved_at and the resolving authority atomically.
// Resolving a missing or already-resolved alert is a successful no-op.
func (s *AlertService) Resolve(ctx context.Context, alertID, authorityID string) error {
	err := s.Alerts.UpdateStatus(ctx, alertID, model.AlertStatusResolved, time.Now().UTC(), authorityID)
	if err != nil {
		return model.NewAppError(model.ErrKindUpstreamUnavailable, "alert store unavailable")
	}

	utils.AlertsResolvedTotal.Inc()
	return nil
}
