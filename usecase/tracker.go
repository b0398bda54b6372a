package usecase

import (
	"context"
	"log"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// TrackerService owns the current-position state per tourist and runs the
// geofence evaluation on every verified update.
type TrackerService struct {
	Profiles repository.ProfileStore
	Zones    repository.ZoneStore
	Alerts   *AlertService
}

// UpdateLocation overwrites the tourist's current location, then evaluates
// the new position against all zones. The position write is the primary
// effect: zone or alert store failures are logged and never roll it back.
func (s *TrackerService) UpdateLocation(ctx context.Context, tourist *model.User, location *model.Location) error {
	matched, err := s.Profiles.UpdateLocation(ctx, tourist.UserID, location)
	if err != nil {
		log.Printf("location update failed for %s: %v", tourist.UserID, err)
		return model.NewAppError(model.ErrKindUpstreamUnavailable, "profile store unavailable")
	}
	if matched == 0 {
		// Every tourist identity must own a profile; missing here is an
		// inconsistent-state condition, not a crash.
		return model.NewAppError(model.ErrKindNotFound, "tourist profile not found")
	}

	zones, err := s.Zones.ListAll(ctx)
	if err != nil {
		log.Printf("zone fetch failed after location update for %s: %v", tourist.UserID, err)
		return nil
	}

	utils.GeofenceEvaluationsTotal.Inc()
	triggered := services.EvaluateGeofences(location.Latitude, location.Longitude, zones)
	for _, zone := range triggered {
		utils.GeofenceTriggersTotal.Inc()
		if _, err := s.Alerts.CreateGeofenceAlert(ctx, tourist.UserID, zone, location); err != nil {
			log.Printf("geofence alert failed for %s in zone %s: %v", tourist.UserID, zone.ZoneID, err)
		}
	}

	return nil
}
