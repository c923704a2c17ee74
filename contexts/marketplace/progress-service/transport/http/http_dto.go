package http

import "encoding/json"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NotifyRequest struct {
	EventID    string          `json:"event_id,omitempty"`
	EventType  string          `json:"event_type"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id,omitempty"`
	Data       json.RawMessage `json:"data"`
	OldData    json.RawMessage `json:"old_data,omitempty"`
}

type MissionUpdateDTO struct {
	MissionID   string `json:"mission_id"`
	NewProgress int    `json:"new_progress"`
	IsComplete  bool   `json:"is_complete"`
}

type NotifyResponse struct {
	Updates []MissionUpdateDTO `json:"updates"`
}

type MissionDTO struct {
	MissionID       string `json:"mission_id"`
	UserID          string `json:"user_id"`
	ProfileType     string `json:"profile_type"`
	TargetAction    string `json:"target_action"`
	TargetValue     int    `json:"target_value"`
	CurrentProgress int    `json:"current_progress"`
	Status          string `json:"status"`
	CompletedAt     string `json:"completed_at,omitempty"`
}

type ListMissionsResponse struct {
	Items []MissionDTO `json:"items"`
}
