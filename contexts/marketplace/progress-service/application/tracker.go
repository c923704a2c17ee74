package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "brandcast/contexts/marketplace/progress-service/domain/errors"
	"brandcast/contexts/marketplace/progress-service/ports"
	"brandcast/internal/shared/events"
)

// Tracker advances mission counters from entity change events. The mapping
// gates strictly on status edges (old ≠ target AND new == target), so a
// notification that merely restates the current state never counts.
type Tracker struct {
	Missions ports.MissionRepository
	Profiles ports.ProfileResolver
	Clock    ports.Clock
	Logger   *slog.Logger
}

// hit is one (profile, action) pair a change event qualifies for.
type hit struct {
	profileType  string
	targetAction string
	profileID    string
}

func (t Tracker) HandleChange(ctx context.Context, event events.ChangeEvent) ([]ports.MissionUpdate, error) {
	logger := ResolveLogger(t.Logger)

	hits, err := qualifyingHits(event)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return []ports.MissionUpdate{}, nil
	}

	now := t.Clock.Now().UTC()
	updates := make([]ports.MissionUpdate, 0, len(hits))
	for _, h := range hits {
		userID, found, err := t.resolveUser(ctx, h)
		if err != nil {
			return nil, err
		}
		if !found {
			logger.Warn("mission progress skipped for unknown profile",
				"event", "mission_profile_unresolved",
				"module", "marketplace/progress-service",
				"layer", "application",
				"profile_type", h.profileType,
				"profile_id", h.profileID,
				"target_action", h.targetAction,
			)
			continue
		}

		missions, err := t.Missions.ListActiveMissions(ctx, userID, h.profileType, h.targetAction)
		if err != nil {
			return nil, err
		}
		for _, mission := range missions {
			progress := mission.CurrentProgress + 1
			if progress > mission.TargetValue {
				progress = mission.TargetValue
			}
			mission.CurrentProgress = progress
			mission.UpdatedAt = now
			complete := progress >= mission.TargetValue
			if complete {
				mission.Status = ports.MissionStatusCompleted
				mission.CompletedAt = &now
			}
			if err := t.Missions.UpdateMissionProgress(ctx, mission); err != nil {
				return nil, err
			}
			updates = append(updates, ports.MissionUpdate{
				MissionID:   mission.MissionID,
				NewProgress: progress,
				IsComplete:  complete,
			})
			logger.Info("mission progress advanced",
				"event", "mission_progress_advanced",
				"module", "marketplace/progress-service",
				"layer", "application",
				"mission_id", mission.MissionID,
				"user_id", userID,
				"target_action", h.targetAction,
				"progress", progress,
				"target_value", mission.TargetValue,
				"completed", complete,
			)
		}
	}
	return updates, nil
}

func (t Tracker) ListMissions(ctx context.Context, userID string) ([]ports.Mission, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return t.Missions.ListMissionsByUser(ctx, userID)
}

func (t Tracker) resolveUser(ctx context.Context, h hit) (string, bool, error) {
	if h.profileType == ports.ProfileBrand {
		return t.Profiles.UserIDForBrand(ctx, h.profileID)
	}
	return t.Profiles.UserIDForCreator(ctx, h.profileID)
}

// qualifyingHits applies the fixed (entity, event, status edge) mapping table.
func qualifyingHits(event events.ChangeEvent) ([]hit, error) {
	switch event.EntityType {
	case events.EntityCampaign:
		if event.EventType != events.TypeCreate {
			return nil, nil
		}
		var snap events.CampaignSnapshot
		if err := json.Unmarshal(event.Data, &snap); err != nil {
			return nil, fmt.Errorf("%w: malformed campaign snapshot: %v", domainerrors.ErrInvalidInput, err)
		}
		return []hit{{ports.ProfileBrand, ports.ActionCreateCampaign, snap.BrandID}}, nil

	case events.EntityApplication:
		var snap events.ApplicationSnapshot
		if err := json.Unmarshal(event.Data, &snap); err != nil {
			return nil, fmt.Errorf("%w: malformed application snapshot: %v", domainerrors.ErrInvalidInput, err)
		}
		switch event.EventType {
		case events.TypeCreate:
			return []hit{{ports.ProfileCreator, ports.ActionApplyCampaign, snap.CreatorID}}, nil
		case events.TypeUpdate:
			var old events.ApplicationSnapshot
			if len(event.OldData) > 0 {
				if err := json.Unmarshal(event.OldData, &old); err != nil {
					return nil, fmt.Errorf("%w: malformed application old snapshot: %v", domainerrors.ErrInvalidInput, err)
				}
			}
			if old.Status != "accepted" && snap.Status == "accepted" {
				return []hit{
					{ports.ProfileBrand, ports.ActionAcceptApplication, snap.BrandID},
					{ports.ProfileCreator, ports.ActionGetAccepted, snap.CreatorID},
				}, nil
			}
		}
		return nil, nil

	case events.EntityDelivery:
		var snap events.DeliverySnapshot
		if err := json.Unmarshal(event.Data, &snap); err != nil {
			return nil, fmt.Errorf("%w: malformed delivery snapshot: %v", domainerrors.ErrInvalidInput, err)
		}
		switch event.EventType {
		case events.TypeCreate:
			// Deliveries are created pending at acceptance time; only a
			// create that already carries submitted content counts.
			if snap.Status == "submitted" {
				return []hit{{ports.ProfileCreator, ports.ActionSubmitDelivery, snap.CreatorID}}, nil
			}
		case events.TypeUpdate:
			var old events.DeliverySnapshot
			if len(event.OldData) > 0 {
				if err := json.Unmarshal(event.OldData, &old); err != nil {
					return nil, fmt.Errorf("%w: malformed delivery old snapshot: %v", domainerrors.ErrInvalidInput, err)
				}
			}
			hits := make([]hit, 0, 1)
			if old.Status != "submitted" && snap.Status == "submitted" {
				hits = append(hits, hit{ports.ProfileCreator, ports.ActionSubmitDelivery, snap.CreatorID})
			}
			if old.Status != "approved" && snap.Status == "approved" {
				hits = append(hits, hit{ports.ProfileBrand, ports.ActionApproveDelivery, snap.BrandID})
			}
			return hits, nil
		}
		return nil, nil
	}
	return nil, nil
}
