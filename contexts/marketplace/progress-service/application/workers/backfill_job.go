package workers

import (
	"context"
	"log/slog"
	"time"

	application "brandcast/contexts/marketplace/progress-service/application"
	"brandcast/contexts/marketplace/progress-service/ports"
)

// BackfillJob recomputes active mission progress from the marketplace records
// themselves and applies the result only when it is strictly greater than the
// stored value. Missed events heal; duplicated events never regress progress.
type BackfillJob struct {
	Missions ports.MissionRepository
	Counter  ports.ActivityCounter
	Clock    ports.Clock
	BatchMax int
	Disabled bool
	Logger   *slog.Logger
}

func (j BackfillJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	if j.Disabled {
		return nil
	}
	limit := j.BatchMax
	if limit <= 0 {
		limit = 500
	}
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}

	missions, err := j.Missions.ListAllActiveMissions(ctx, limit)
	if err != nil {
		logger.Error("mission backfill list failed",
			"event", "mission_backfill_list_failed",
			"module", "marketplace/progress-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	corrected := 0
	for _, mission := range missions {
		observed, err := j.Counter.CountActions(ctx, mission.UserID, mission.ProfileType, mission.TargetAction)
		if err != nil {
			logger.Error("mission backfill count failed",
				"event", "mission_backfill_count_failed",
				"module", "marketplace/progress-service",
				"layer", "worker",
				"mission_id", mission.MissionID,
				"error", err.Error(),
			)
			return err
		}
		if observed <= mission.CurrentProgress {
			continue
		}

		progress := observed
		if progress > mission.TargetValue {
			progress = mission.TargetValue
		}
		mission.CurrentProgress = progress
		mission.UpdatedAt = now
		if progress >= mission.TargetValue {
			mission.Status = ports.MissionStatusCompleted
			mission.CompletedAt = &now
		}
		if err := j.Missions.UpdateMissionProgress(ctx, mission); err != nil {
			logger.Error("mission backfill update failed",
				"event", "mission_backfill_update_failed",
				"module", "marketplace/progress-service",
				"layer", "worker",
				"mission_id", mission.MissionID,
				"error", err.Error(),
			)
			return err
		}
		corrected++
	}

	if corrected > 0 {
		logger.Info("mission backfill cycle completed",
			"event", "mission_backfill_completed",
			"module", "marketplace/progress-service",
			"layer", "worker",
			"scanned", len(missions),
			"corrected", corrected,
		)
	}
	return nil
}
