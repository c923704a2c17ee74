package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandcast/contexts/marketplace/workflow-service/application"
	"brandcast/contexts/marketplace/workflow-service/application/saga"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/domain/statemachine"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type RaiseDisputeCommand struct {
	DeliveryID  string
	ActorUserID string
	Reason      string
}

type RaiseDisputeResult struct {
	Dispute  entities.Dispute
	Delivery entities.Delivery
}

// RaiseDisputeUseCase contests a submitted delivery: it opens a dispute and
// moves the delivery to in_dispute. Either side of the campaign may raise it.
type RaiseDisputeUseCase struct {
	Disputes   ports.DisputeRepository
	Deliveries ports.DeliveryRepository
	Profiles   ports.ProfileRepository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (uc RaiseDisputeUseCase) Execute(ctx context.Context, cmd RaiseDisputeCommand) (RaiseDisputeResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if strings.TrimSpace(cmd.Reason) == "" {
		return RaiseDisputeResult{}, domainerrors.ErrInvalidInput
	}

	delivery, err := uc.Deliveries.GetDelivery(ctx, strings.TrimSpace(cmd.DeliveryID))
	if err != nil {
		return RaiseDisputeResult{}, err
	}

	actorUserID := strings.TrimSpace(cmd.ActorUserID)
	raisedBy := ""
	if creator, err := uc.Profiles.GetCreatorByUser(ctx, actorUserID); err == nil && creator.CreatorID == delivery.CreatorID {
		raisedBy = creator.CreatorID
	} else if brand, err := uc.Profiles.GetBrandByUser(ctx, actorUserID); err == nil && brand.BrandID == delivery.BrandID {
		raisedBy = brand.BrandID
	}
	if raisedBy == "" {
		return RaiseDisputeResult{}, domainerrors.ErrForbidden
	}

	if err := statemachine.CheckDelivery(delivery.Status, entities.DeliveryStatusInDispute); err != nil {
		return RaiseDisputeResult{}, err
	}

	now := uc.Clock.Now().UTC()

	var (
		createdDispute   entities.Dispute
		disputedDelivery entities.Delivery
	)

	steps := []saga.Step{
		{
			Name: "create_dispute",
			Forward: func(ctx context.Context) (any, error) {
				disputeID, err := uc.IDGen.NewID(ctx)
				if err != nil {
					return nil, err
				}
				createdDispute = entities.Dispute{
					DisputeID:  disputeID,
					DeliveryID: delivery.DeliveryID,
					CampaignID: delivery.CampaignID,
					BrandID:    delivery.BrandID,
					CreatorID:  delivery.CreatorID,
					Status:     entities.DisputeStatusOpen,
					RaisedBy:   raisedBy,
					Reason:     strings.TrimSpace(cmd.Reason),
					CreatedAt:  now,
					UpdatedAt:  now,
				}
				if err := uc.Disputes.CreateDispute(ctx, createdDispute); err != nil {
					return nil, err
				}
				return createdDispute, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.Disputes.DeleteDispute(ctx, createdDispute.DisputeID)
			},
		},
		{
			Name: "mark_delivery_in_dispute",
			Forward: func(ctx context.Context) (any, error) {
				disputedDelivery = delivery
				disputedDelivery.Status = entities.DeliveryStatusInDispute
				disputedDelivery.UpdatedAt = now
				if err := uc.Deliveries.UpdateDelivery(ctx, disputedDelivery); err != nil {
					return nil, err
				}
				return disputedDelivery, nil
			},
		},
	}

	if _, err := saga.Run(ctx, logger, steps); err != nil {
		return RaiseDisputeResult{}, err
	}

	logger.Info("dispute raised",
		"event", "dispute_raised",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"dispute_id", createdDispute.DisputeID,
		"delivery_id", delivery.DeliveryID,
		"raised_by", raisedBy,
	)
	return RaiseDisputeResult{
		Dispute:  createdDispute,
		Delivery: disputedDelivery,
	}, nil
}
