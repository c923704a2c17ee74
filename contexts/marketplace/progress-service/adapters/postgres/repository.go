package postgresadapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domainerrors "brandcast/contexts/marketplace/progress-service/domain/errors"
	"brandcast/contexts/marketplace/progress-service/ports"
)

// Repository implements the progress ports against postgres. Mission rows are
// owned by this service; profile and activity lookups read the marketplace
// tables the workflow service writes.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListActiveMissions(ctx context.Context, userID, profileType, targetAction string) ([]ports.Mission, error) {
	var rows []missionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND profile_type = ? AND target_action = ? AND status = ?",
			userID, profileType, targetAction, ports.MissionStatusActive).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMissions(rows), nil
}

func (r *Repository) ListMissionsByUser(ctx context.Context, userID string) ([]ports.Mission, error) {
	var rows []missionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMissions(rows), nil
}

func (r *Repository) ListAllActiveMissions(ctx context.Context, limit int) ([]ports.Mission, error) {
	var rows []missionModel
	err := r.db.WithContext(ctx).
		Where("status = ?", ports.MissionStatusActive).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMissions(rows), nil
}

func (r *Repository) UpdateMissionProgress(ctx context.Context, mission ports.Mission) error {
	result := r.db.WithContext(ctx).
		Model(&missionModel{}).
		Where("mission_id = ?", mission.MissionID).
		Updates(map[string]any{
			"current_progress": mission.CurrentProgress,
			"status":           mission.Status,
			"completed_at":     mission.CompletedAt,
			"updated_at":       mission.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMissionNotFound
	}
	return nil
}

func (r *Repository) UserIDForBrand(ctx context.Context, brandID string) (string, bool, error) {
	var userID string
	err := r.db.WithContext(ctx).
		Table("brand_profiles").
		Select("user_id").
		Where("brand_id = ?", brandID).
		Take(&userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

func (r *Repository) UserIDForCreator(ctx context.Context, creatorID string) (string, bool, error) {
	var userID string
	err := r.db.WithContext(ctx).
		Table("creator_profiles").
		Select("user_id").
		Where("creator_id = ?", creatorID).
		Take(&userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return userID, true, nil
}

// CountActions recomputes a mission counter from the marketplace records.
func (r *Repository) CountActions(ctx context.Context, userID, profileType, targetAction string) (int, error) {
	var count int64
	var err error

	switch profileType {
	case ports.ProfileBrand:
		brandID, found, lookupErr := r.brandIDForUser(ctx, userID)
		if lookupErr != nil || !found {
			return 0, lookupErr
		}
		switch targetAction {
		case ports.ActionCreateCampaign:
			err = r.db.WithContext(ctx).Table("campaigns").
				Where("brand_id = ?", brandID).Count(&count).Error
		case ports.ActionAcceptApplication:
			err = r.db.WithContext(ctx).Table("applications").
				Where("brand_id = ? AND status IN ?", brandID, []string{"accepted", "completed"}).
				Count(&count).Error
		case ports.ActionApproveDelivery:
			err = r.db.WithContext(ctx).Table("deliveries").
				Where("brand_id = ? AND approved_at IS NOT NULL", brandID).Count(&count).Error
		default:
			return 0, fmt.Errorf("uncountable brand action %q", targetAction)
		}
	case ports.ProfileCreator:
		creatorID, found, lookupErr := r.creatorIDForUser(ctx, userID)
		if lookupErr != nil || !found {
			return 0, lookupErr
		}
		switch targetAction {
		case ports.ActionApplyCampaign:
			err = r.db.WithContext(ctx).Table("applications").
				Where("creator_id = ?", creatorID).Count(&count).Error
		case ports.ActionGetAccepted:
			err = r.db.WithContext(ctx).Table("applications").
				Where("creator_id = ? AND status IN ?", creatorID, []string{"accepted", "completed"}).
				Count(&count).Error
		case ports.ActionSubmitDelivery:
			err = r.db.WithContext(ctx).Table("deliveries").
				Where("creator_id = ? AND submitted_at IS NOT NULL", creatorID).Count(&count).Error
		default:
			return 0, fmt.Errorf("uncountable creator action %q", targetAction)
		}
	default:
		return 0, fmt.Errorf("unknown profile type %q", profileType)
	}

	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *Repository) brandIDForUser(ctx context.Context, userID string) (string, bool, error) {
	var brandID string
	err := r.db.WithContext(ctx).
		Table("brand_profiles").
		Select("brand_id").
		Where("user_id = ?", userID).
		Take(&brandID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return brandID, true, nil
}

func (r *Repository) creatorIDForUser(ctx context.Context, userID string) (string, bool, error) {
	var creatorID string
	err := r.db.WithContext(ctx).
		Table("creator_profiles").
		Select("creator_id").
		Where("user_id = ?", userID).
		Take(&creatorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return creatorID, true, nil
}

func toMissions(rows []missionModel) []ports.Mission {
	items := make([]ports.Mission, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.Mission{
			MissionID:       row.MissionID,
			UserID:          row.UserID,
			ProfileType:     row.ProfileType,
			TargetAction:    row.TargetAction,
			TargetValue:     row.TargetValue,
			CurrentProgress: row.CurrentProgress,
			Status:          row.Status,
			CompletedAt:     row.CompletedAt,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
	}
	return items
}

// SystemClock is the default runtime clock implementation.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
