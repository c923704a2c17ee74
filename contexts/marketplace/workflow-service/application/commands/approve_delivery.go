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

type ApproveDeliveryCommand struct {
	DeliveryID  string
	ActorUserID string
}

type ApproveDeliveryResult struct {
	Delivery    entities.Delivery
	Application entities.Application
	Creator     *entities.CreatorProfile
}

// ApproveDeliveryUseCase approves a submitted delivery, completes its
// application and credits the creator's completed-campaign counter. The
// creator credit is skipped, not failed, when no creator profile exists.
type ApproveDeliveryUseCase struct {
	Deliveries   ports.DeliveryRepository
	Applications ports.ApplicationRepository
	Profiles     ports.ProfileRepository
	Clock        ports.Clock
	Logger       *slog.Logger
}

func (uc ApproveDeliveryUseCase) Execute(ctx context.Context, cmd ApproveDeliveryCommand) (ApproveDeliveryResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	delivery, err := uc.Deliveries.GetDelivery(ctx, strings.TrimSpace(cmd.DeliveryID))
	if err != nil {
		return ApproveDeliveryResult{}, err
	}
	brand, err := uc.Profiles.GetBrandByUser(ctx, strings.TrimSpace(cmd.ActorUserID))
	if err != nil {
		return ApproveDeliveryResult{}, domainerrors.ErrForbidden
	}
	if delivery.BrandID != brand.BrandID {
		return ApproveDeliveryResult{}, domainerrors.ErrForbidden
	}
	if err := statemachine.CheckDelivery(delivery.Status, entities.DeliveryStatusApproved); err != nil {
		return ApproveDeliveryResult{}, err
	}

	app, err := uc.Applications.GetApplication(ctx, delivery.ApplicationID)
	if err != nil {
		return ApproveDeliveryResult{}, err
	}
	creator, creatorFound, err := uc.Profiles.GetCreator(ctx, delivery.CreatorID)
	if err != nil {
		return ApproveDeliveryResult{}, err
	}

	now := uc.Clock.Now().UTC()
	onTime := delivery.OnTimeAt(now)

	var (
		approvedDelivery entities.Delivery
		completedApp     entities.Application
		creditedCreator  entities.CreatorProfile
	)

	steps := []saga.Step{
		{
			Name: "approve_delivery",
			Forward: func(ctx context.Context) (any, error) {
				approvedDelivery = delivery
				approvedDelivery.Status = entities.DeliveryStatusApproved
				approvedDelivery.ApprovedAt = &now
				approvedDelivery.ReviewedAt = &now
				approvedDelivery.OnTime = &onTime
				approvedDelivery.UpdatedAt = now
				if err := uc.Deliveries.UpdateDelivery(ctx, approvedDelivery); err != nil {
					return nil, err
				}
				return approvedDelivery, nil
			},
			Compensate: func(ctx context.Context) error {
				reverted := approvedDelivery
				reverted.Status = entities.DeliveryStatusSubmitted
				reverted.ApprovedAt = nil
				reverted.ReviewedAt = nil
				reverted.OnTime = nil
				reverted.UpdatedAt = now
				return uc.Deliveries.UpdateDelivery(ctx, reverted)
			},
		},
		{
			Name: "complete_application",
			Forward: func(ctx context.Context) (any, error) {
				completedApp = app
				completedApp.Status = entities.ApplicationStatusCompleted
				completedApp.UpdatedAt = now
				if err := uc.Applications.UpdateApplication(ctx, completedApp); err != nil {
					return nil, err
				}
				return completedApp, nil
			},
			Compensate: func(ctx context.Context) error {
				reverted := completedApp
				reverted.Status = entities.ApplicationStatusAccepted
				reverted.UpdatedAt = now
				return uc.Applications.UpdateApplication(ctx, reverted)
			},
		},
	}

	// Absence of the creator profile is not an error; the credit step is
	// skipped entirely rather than compensated.
	if creatorFound {
		steps = append(steps, saga.Step{
			Name: "credit_creator",
			Forward: func(ctx context.Context) (any, error) {
				creditedCreator = creator
				creditedCreator.CompletedCampaigns++
				creditedCreator.UpdatedAt = now
				if err := uc.Profiles.UpdateCreator(ctx, creditedCreator); err != nil {
					return nil, err
				}
				return creditedCreator, nil
			},
			Compensate: func(ctx context.Context) error {
				reverted := creditedCreator
				reverted.CompletedCampaigns--
				reverted.UpdatedAt = now
				return uc.Profiles.UpdateCreator(ctx, reverted)
			},
		})
	}

	if _, err := saga.Run(ctx, logger, steps); err != nil {
		return ApproveDeliveryResult{}, err
	}

	result := ApproveDeliveryResult{
		Delivery:    approvedDelivery,
		Application: completedApp,
	}
	if creatorFound {
		result.Creator = &creditedCreator
	}

	logger.Info("delivery approved",
		"event", "delivery_approved",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"delivery_id", approvedDelivery.DeliveryID,
		"application_id", completedApp.ApplicationID,
		"on_time", onTime,
		"creator_credited", creatorFound,
	)
	return result, nil
}
