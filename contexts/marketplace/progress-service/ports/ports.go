package ports

import (
	"context"
	"time"
)

const (
	ProfileBrand   = "brand"
	ProfileCreator = "creator"
)

// Trackable mission target actions.
const (
	ActionCreateCampaign    = "create_campaign"
	ActionApplyCampaign     = "apply_campaign"
	ActionAcceptApplication = "accept_application"
	ActionGetAccepted       = "get_accepted"
	ActionSubmitDelivery    = "submit_delivery"
	ActionApproveDelivery   = "approve_delivery"
)

const (
	MissionStatusActive    = "active"
	MissionStatusCompleted = "completed"
)

// Mission is an onboarding counter toward a fixed target. CurrentProgress is
// normalized so it never exceeds TargetValue; status moves active→completed
// exactly once, when the target is reached.
type Mission struct {
	MissionID       string
	UserID          string
	ProfileType     string
	TargetAction    string
	TargetValue     int
	CurrentProgress int
	Status          string
	CompletedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type MissionUpdate struct {
	MissionID   string
	NewProgress int
	IsComplete  bool
}

type MissionRepository interface {
	ListActiveMissions(ctx context.Context, userID, profileType, targetAction string) ([]Mission, error)
	ListMissionsByUser(ctx context.Context, userID string) ([]Mission, error)
	ListAllActiveMissions(ctx context.Context, limit int) ([]Mission, error)
	UpdateMissionProgress(ctx context.Context, mission Mission) error
}

// ProfileResolver maps the profile ids carried in change-event snapshots back
// to the owning user account.
type ProfileResolver interface {
	UserIDForBrand(ctx context.Context, brandID string) (string, bool, error)
	UserIDForCreator(ctx context.Context, creatorID string) (string, bool, error)
}

// ActivityCounter recomputes mission progress from first principles, counting
// the marketplace records that match a target action.
type ActivityCounter interface {
	CountActions(ctx context.Context, userID, profileType, targetAction string) (int, error)
}

type Clock interface {
	Now() time.Time
}
