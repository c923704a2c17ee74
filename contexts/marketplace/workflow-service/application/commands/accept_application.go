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

type AcceptApplicationCommand struct {
	ApplicationID string
	ActorUserID   string
	AgreedRate    *float64
}

type AcceptApplicationResult struct {
	Application entities.Application
	Campaign    entities.Campaign
	Delivery    entities.Delivery
	SlotsFilled int
	SlotsTotal  int
}

// AcceptApplicationUseCase accepts a pending application, consumes one
// campaign slot and creates the delivery, as a single saga. Mission progress
// is not advanced here; the progress tracker observes the resulting change
// events independently.
type AcceptApplicationUseCase struct {
	Applications ports.ApplicationRepository
	Campaigns    ports.CampaignRepository
	Deliveries   ports.DeliveryRepository
	Profiles     ports.ProfileRepository
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func (uc AcceptApplicationUseCase) Execute(ctx context.Context, cmd AcceptApplicationCommand) (AcceptApplicationResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.AgreedRate != nil && *cmd.AgreedRate < 0 {
		return AcceptApplicationResult{}, domainerrors.ErrInvalidInput
	}

	app, err := uc.Applications.GetApplication(ctx, strings.TrimSpace(cmd.ApplicationID))
	if err != nil {
		return AcceptApplicationResult{}, err
	}
	brand, err := uc.Profiles.GetBrandByUser(ctx, strings.TrimSpace(cmd.ActorUserID))
	if err != nil {
		return AcceptApplicationResult{}, domainerrors.ErrForbidden
	}
	campaign, err := uc.Campaigns.GetCampaign(ctx, app.CampaignID)
	if err != nil {
		return AcceptApplicationResult{}, err
	}
	if campaign.BrandID != brand.BrandID {
		return AcceptApplicationResult{}, domainerrors.ErrForbidden
	}
	if err := statemachine.CheckApplication(app.Status, entities.ApplicationStatusAccepted); err != nil {
		return AcceptApplicationResult{}, err
	}
	if !campaign.Accepting() {
		return AcceptApplicationResult{}, domainerrors.ErrCampaignNotAccepting
	}
	if !campaign.SlotsAvailable() {
		return AcceptApplicationResult{}, domainerrors.ErrNoSlots
	}

	now := uc.Clock.Now().UTC()
	rate := cmd.AgreedRate
	if rate == nil {
		rate = app.ProposedRate
	}

	var (
		acceptedApp     entities.Application
		updatedCampaign entities.Campaign
		createdDelivery entities.Delivery
	)

	steps := []saga.Step{
		{
			Name: "accept_application",
			Forward: func(ctx context.Context) (any, error) {
				acceptedApp = app
				acceptedApp.Status = entities.ApplicationStatusAccepted
				acceptedApp.AcceptedAt = &now
				acceptedApp.AgreedRate = rate
				acceptedApp.UpdatedAt = now
				if err := uc.Applications.UpdateApplication(ctx, acceptedApp); err != nil {
					return nil, err
				}
				return acceptedApp, nil
			},
			Compensate: func(ctx context.Context) error {
				reverted := acceptedApp
				reverted.Status = entities.ApplicationStatusPending
				reverted.AcceptedAt = nil
				reverted.AgreedRate = nil
				reverted.UpdatedAt = now
				return uc.Applications.UpdateApplication(ctx, reverted)
			},
		},
		{
			Name: "fill_campaign_slot",
			Forward: func(ctx context.Context) (any, error) {
				current, err := uc.Campaigns.GetCampaign(ctx, campaign.CampaignID)
				if err != nil {
					return nil, err
				}
				current.SlotsFilled++
				current.UpdatedAt = now
				if err := uc.Campaigns.UpdateCampaign(ctx, current); err != nil {
					return nil, err
				}
				updatedCampaign = current
				return current, nil
			},
			Compensate: func(ctx context.Context) error {
				current, err := uc.Campaigns.GetCampaign(ctx, campaign.CampaignID)
				if err != nil {
					return err
				}
				current.SlotsFilled--
				current.UpdatedAt = now
				return uc.Campaigns.UpdateCampaign(ctx, current)
			},
		},
		{
			// Last step: nothing to undo on its own failure, earlier steps unwind.
			Name: "create_delivery",
			Forward: func(ctx context.Context) (any, error) {
				deliveryID, err := uc.IDGen.NewID(ctx)
				if err != nil {
					return nil, err
				}
				createdDelivery = entities.Delivery{
					DeliveryID:    deliveryID,
					ApplicationID: app.ApplicationID,
					CampaignID:    campaign.CampaignID,
					CreatorID:     app.CreatorID,
					BrandID:       campaign.BrandID,
					Status:        entities.DeliveryStatusPending,
					PaymentStatus: entities.PaymentStatusPending,
					Deadline:      campaign.Deadline,
					CreatedAt:     now,
					UpdatedAt:     now,
				}
				if err := uc.Deliveries.CreateDelivery(ctx, createdDelivery); err != nil {
					return nil, err
				}
				return createdDelivery, nil
			},
		},
	}

	if _, err := saga.Run(ctx, logger, steps); err != nil {
		return AcceptApplicationResult{}, err
	}

	logger.Info("application accepted",
		"event", "application_accepted",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"application_id", acceptedApp.ApplicationID,
		"campaign_id", updatedCampaign.CampaignID,
		"delivery_id", createdDelivery.DeliveryID,
		"slots_filled", updatedCampaign.SlotsFilled,
		"slots_total", updatedCampaign.SlotsTotal,
	)
	return AcceptApplicationResult{
		Application: acceptedApp,
		Campaign:    updatedCampaign,
		Delivery:    createdDelivery,
		SlotsFilled: updatedCampaign.SlotsFilled,
		SlotsTotal:  updatedCampaign.SlotsTotal,
	}, nil
}
