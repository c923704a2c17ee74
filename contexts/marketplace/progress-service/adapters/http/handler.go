package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "brandcast/contexts/marketplace/progress-service/application"
	domainerrors "brandcast/contexts/marketplace/progress-service/domain/errors"
	"brandcast/contexts/marketplace/progress-service/ports"
	httptransport "brandcast/contexts/marketplace/progress-service/transport/http"
	"brandcast/internal/shared/events"
)

type Handler struct {
	Tracker application.Tracker
	Logger  *slog.Logger
}

func (h Handler) NotifyHandler(ctx context.Context, req httptransport.NotifyRequest) (httptransport.NotifyResponse, error) {
	if strings.TrimSpace(req.EventType) == "" || strings.TrimSpace(req.EntityType) == "" {
		return httptransport.NotifyResponse{}, domainerrors.ErrInvalidInput
	}

	updates, err := h.Tracker.HandleChange(ctx, events.ChangeEvent{
		EventID:    req.EventID,
		EventType:  req.EventType,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		OccurredAt: time.Now().UTC(),
		Data:       req.Data,
		OldData:    req.OldData,
	})
	if err != nil {
		return httptransport.NotifyResponse{}, err
	}

	result := make([]httptransport.MissionUpdateDTO, 0, len(updates))
	for _, update := range updates {
		result = append(result, httptransport.MissionUpdateDTO{
			MissionID:   update.MissionID,
			NewProgress: update.NewProgress,
			IsComplete:  update.IsComplete,
		})
	}
	return httptransport.NotifyResponse{Updates: result}, nil
}

func (h Handler) ListMissionsHandler(ctx context.Context, userID string) (httptransport.ListMissionsResponse, error) {
	items, err := h.Tracker.ListMissions(ctx, userID)
	if err != nil {
		return httptransport.ListMissionsResponse{}, err
	}
	result := make([]httptransport.MissionDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapMission(item))
	}
	return httptransport.ListMissionsResponse{Items: result}, nil
}

func mapMission(item ports.Mission) httptransport.MissionDTO {
	dto := httptransport.MissionDTO{
		MissionID:       item.MissionID,
		UserID:          item.UserID,
		ProfileType:     item.ProfileType,
		TargetAction:    item.TargetAction,
		TargetValue:     item.TargetValue,
		CurrentProgress: item.CurrentProgress,
		Status:          item.Status,
	}
	if item.CompletedAt != nil {
		dto.CompletedAt = item.CompletedAt.Format(time.RFC3339)
	}
	return dto
}
