package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"main/model"
)

// In-memory store implementations. These back the tests and any demo run that
// has no Mongo available; they satisfy the same interfaces as the Mongo repos
// with the same per-record atomicity.

type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*model.User // keyed by user_id
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*model.User)}
}

func (s *MemoryUserStore) GetByID(ctx context.Context, userID string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStore) Put(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *user
	s.users[user.UserID] = &copied
	return nil
}

type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]*model.TouristProfile // keyed by user_id
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]*model.TouristProfile)}
}

func (s *MemoryProfileStore) GetByUserID(ctx context.Context, userID string) (*model.TouristProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (s *MemoryProfileStore) Put(ctx context.Context, profile *model.TouristProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *profile
	s.profiles[profile.UserID] = &copied
	return nil
}

func (s *MemoryProfileStore) UpdateLocation(ctx context.Context, userID string, location *model.Location) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return 0, nil
	}
	loc := *location
	profile.CurrentLocation = &loc
	return 1, nil
}

// ListWithLocation returns every profile that has reported a position.
func (s *MemoryProfileStore) ListWithLocation(ctx context.Context) ([]*model.TouristProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := []*model.TouristProfile{}
	for _, profile := range s.profiles {
		if profile.CurrentLocation != nil {
			copied := *profile
			profiles = append(profiles, &copied)
		}
	}
	return profiles, nil
}

type MemoryZoneStore struct {
	mu    sync.RWMutex
	zones []*model.HighRiskZone
}

func NewMemoryZoneStore() *MemoryZoneStore {
	return &MemoryZoneStore{}
}

func (s *MemoryZoneStore) ListAll(ctx context.Context) ([]*model.HighRiskZone, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	zones := make([]*model.HighRiskZone, 0, len(s.zones))
	for _, zone := range s.zones {
		copied := *zone
		zones = append(zones, &copied)
	}
	return zones, nil
}

func (s *MemoryZoneStore) Put(ctx context.Context, zone *model.HighRiskZone) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *zone
	s.zones = append(s.zones, &copied)
	return nil
}

type MemoryAlertStore struct {
	mu     sync.RWMutex
	alerts []*model.Alert
}

func NewMemoryAlertStore() *MemoryAlertStore {
	return &MemoryAlertStore{}
}

func (s *MemoryAlertStore) Put(ctx context.Context, alert *model.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *alert
	s.alerts = append(s.alerts, &copied)
	return nil
}

func (s *MemoryAlertStore) GetByID(ctx context.Context, alertID string) (*model.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, alert := range s.alerts {
		if alert.AlertID == alertID {
			copied := *alert
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *MemoryAlertStore) List(ctx context.Context, filter AlertFilter, limit int64) ([]*model.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []*model.Alert{}
	for _, alert := range s.alerts {
		if filter.Status != "" && alert.Status != filter.Status {
			continue
		}
		copied := *alert
		matched = append(matched, &copied)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}

func (s *MemoryAlertStore) UpdateStatus(ctx context.Context, alertID, status string, resolvedAt time.Time, authorityID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, alert := range s.alerts {
		if alert.AlertID != alertID || alert.Status == status {
			continue
		}
		at := resolvedAt
		alert.Status = status
		alert.ResolvedAt = &at
		alert.AuthorityID = authorityID
		return nil
	}
	// Missing or already in the target status: tolerant no-op.
	return nil
}
