package usecase

import (
	"context"
	"errors"

	"main/model"
)

// failingZoneStore simulates an unreachable zone collaborator.
type failingZoneStore struct{}

func (failingZoneStore) ListAll(ctx context.Context) ([]*model.HighRiskZone, error) {
	return nil, errors.New("zone store unreachable")
}

func (failingZoneStore) Put(ctx context.Context, zone *model.HighRiskZone) error {
	return errors.New("zone store unreachable")
}
