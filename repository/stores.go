package repository

import (
	"context"
	"time"

	"main/model"
)

// Store contracts for the external collaborators. Absent records come back as
// (nil, nil); errors mean the collaborator itself failed. Both the Mongo
// implementations and the in-memory test double satisfy these.

type UserStore interface {
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Put(ctx context.Context, user *model.User) error
}

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID string) (*model.TouristProfile, error)
	Put(ctx context.Context, profile *model.TouristProfile) error
	// UpdateLocation overwrites current_location for the profile owned by
	// userID. Returns the number of matched profiles.
	UpdateLocation(ctx context.Context, userID string, location *model.Location) (int64, error)
	// ListWithLocation returns every profile with a non-null current_location.
	ListWithLocation(ctx context.Context) ([]*model.TouristProfile, error)
}

type ZoneStore interface {
	ListAll(ctx context.Context) ([]*model.HighRiskZone, error)
	Put(ctx context.Context, zone *model.HighRiskZone) error
}

// AlertFilter narrows alert listings. An empty Status matches everything.
type AlertFilter struct {
	Status string
}

type AlertStore interface {
	Put(ctx context.Context, alert *model.Alert) error
	GetByID(ctx context.Context, alertID string) (*model.Alert, error)
	// List returns alerts matching the filter ordered by created_at descending,
	// capped at limit.
	List(ctx context.Context, filter AlertFilter, limit int64) ([]*model.Alert, error)
	// UpdateStatus transitions an alert that is not already in the target
	// status. A zero match count is not an error (tolerant-idempotent).
	UpdateStatus(ctx context.Context, alertID, status string, resolvedAt time.Time, authorityID string) error
}
