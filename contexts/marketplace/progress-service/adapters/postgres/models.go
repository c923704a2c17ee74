package postgresadapter

import "time"

type missionModel struct {
	MissionID       string     `gorm:"column:mission_id;primaryKey"`
	UserID          string     `gorm:"column:user_id;index:ix_missions_user_action"`
	ProfileType     string     `gorm:"column:profile_type;index:ix_missions_user_action"`
	TargetAction    string     `gorm:"column:target_action;index:ix_missions_user_action"`
	TargetValue     int        `gorm:"column:target_value"`
	CurrentProgress int        `gorm:"column:current_progress"`
	Status          string     `gorm:"column:status;index"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (missionModel) TableName() string { return "missions" }
