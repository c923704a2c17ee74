package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandcast/contexts/marketplace/workflow-service/application"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/domain/statemachine"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type SubmitDeliveryCommand struct {
	DeliveryID  string
	ActorUserID string
	ContentURLs []string
	ProofURLs   []string
}

// SubmitDeliveryUseCase marks a pending delivery as submitted and computes
// on_time against the deadline at submission time.
type SubmitDeliveryUseCase struct {
	Deliveries ports.DeliveryRepository
	Profiles   ports.ProfileRepository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (uc SubmitDeliveryUseCase) Execute(ctx context.Context, cmd SubmitDeliveryCommand) (entities.Delivery, error) {
	logger := application.ResolveLogger(uc.Logger)
	if len(cmd.ContentURLs) == 0 {
		return entities.Delivery{}, domainerrors.ErrInvalidInput
	}

	delivery, err := uc.Deliveries.GetDelivery(ctx, strings.TrimSpace(cmd.DeliveryID))
	if err != nil {
		return entities.Delivery{}, err
	}
	creator, err := uc.Profiles.GetCreatorByUser(ctx, strings.TrimSpace(cmd.ActorUserID))
	if err != nil {
		return entities.Delivery{}, domainerrors.ErrForbidden
	}
	if delivery.CreatorID != creator.CreatorID {
		return entities.Delivery{}, domainerrors.ErrForbidden
	}
	if err := statemachine.CheckDelivery(delivery.Status, entities.DeliveryStatusSubmitted); err != nil {
		return entities.Delivery{}, err
	}

	now := uc.Clock.Now().UTC()
	onTime := delivery.OnTimeAt(now)

	delivery.Status = entities.DeliveryStatusSubmitted
	delivery.SubmittedAt = &now
	delivery.OnTime = &onTime
	delivery.ContentURLs = cmd.ContentURLs
	delivery.ProofURLs = cmd.ProofURLs
	delivery.UpdatedAt = now
	if err := uc.Deliveries.UpdateDelivery(ctx, delivery); err != nil {
		return entities.Delivery{}, err
	}

	logger.Info("delivery submitted",
		"event", "delivery_submitted",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"delivery_id", delivery.DeliveryID,
		"on_time", onTime,
	)
	return delivery, nil
}
