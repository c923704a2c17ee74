package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domainerrors "brandcast/contexts/marketplace/progress-service/domain/errors"
	"brandcast/contexts/marketplace/progress-service/ports"
)

type Seed struct {
	Missions     []ports.Mission
	BrandUsers   map[string]string // brand_id -> user_id
	CreatorUsers map[string]string // creator_id -> user_id
}

// Store implements the progress ports over mutex-guarded maps. Activity
// counts for the backfill job are recorded explicitly via RecordActions.
type Store struct {
	mu           sync.RWMutex
	missions     map[string]ports.Mission
	brandUsers   map[string]string
	creatorUsers map[string]string
	actions      map[string]int
}

func NewStore(seed Seed) *Store {
	s := &Store{
		missions:     make(map[string]ports.Mission, len(seed.Missions)),
		brandUsers:   make(map[string]string, len(seed.BrandUsers)),
		creatorUsers: make(map[string]string, len(seed.CreatorUsers)),
		actions:      make(map[string]int),
	}
	for _, item := range seed.Missions {
		s.missions[item.MissionID] = item
	}
	for brandID, userID := range seed.BrandUsers {
		s.brandUsers[brandID] = userID
	}
	for creatorID, userID := range seed.CreatorUsers {
		s.creatorUsers[creatorID] = userID
	}
	return s
}

func (s *Store) ListActiveMissions(_ context.Context, userID, profileType, targetAction string) ([]ports.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Mission, 0, 4)
	for _, item := range s.missions {
		if item.Status != ports.MissionStatusActive {
			continue
		}
		if item.UserID != userID || item.ProfileType != profileType || item.TargetAction != targetAction {
			continue
		}
		items = append(items, item)
	}
	sortMissions(items)
	return items, nil
}

func (s *Store) ListMissionsByUser(_ context.Context, userID string) ([]ports.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Mission, 0, 8)
	for _, item := range s.missions {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	sortMissions(items)
	return items, nil
}

func (s *Store) ListAllActiveMissions(_ context.Context, limit int) ([]ports.Mission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Mission, 0, limit)
	for _, item := range s.missions {
		if item.Status != ports.MissionStatusActive {
			continue
		}
		items = append(items, item)
	}
	sortMissions(items)
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) UpdateMissionProgress(_ context.Context, mission ports.Mission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.missions[mission.MissionID]; !exists {
		return domainerrors.ErrMissionNotFound
	}
	s.missions[mission.MissionID] = mission
	return nil
}

func (s *Store) UserIDForBrand(_ context.Context, brandID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, found := s.brandUsers[brandID]
	return userID, found, nil
}

func (s *Store) UserIDForCreator(_ context.Context, creatorID string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userID, found := s.creatorUsers[creatorID]
	return userID, found, nil
}

func (s *Store) CountActions(_ context.Context, userID, profileType, targetAction string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.actions[actionKey(userID, profileType, targetAction)], nil
}

// RecordActions sets the observed activity count the backfill recomputes from.
func (s *Store) RecordActions(userID, profileType, targetAction string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.actions[actionKey(userID, profileType, targetAction)] = count
}

// GetMission is a test convenience lookup.
func (s *Store) GetMission(missionID string) (ports.Mission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, found := s.missions[missionID]
	return item, found
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func actionKey(userID, profileType, targetAction string) string {
	return userID + "|" + profileType + "|" + targetAction
}

func sortMissions(items []ports.Mission) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].MissionID < items[j].MissionID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
