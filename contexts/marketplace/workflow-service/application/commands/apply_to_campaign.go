package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brandcast/contexts/marketplace/workflow-service/application"
	"brandcast/contexts/marketplace/workflow-service/application/saga"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type ApplyToCampaignCommand struct {
	CampaignID   string
	ActorUserID  string
	Message      string
	ProposedRate *float64
}

type ApplyToCampaignResult struct {
	Application entities.Application
	Campaign    entities.Campaign
}

// ApplyToCampaignUseCase creates a pending application and bumps the campaign
// application counter. If the counter update fails, the created application is
// deleted so no orphaned pending application remains.
type ApplyToCampaignUseCase struct {
	Applications ports.ApplicationRepository
	Campaigns    ports.CampaignRepository
	Profiles     ports.ProfileRepository
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func (uc ApplyToCampaignUseCase) Execute(ctx context.Context, cmd ApplyToCampaignCommand) (ApplyToCampaignResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	if cmd.ProposedRate != nil && *cmd.ProposedRate < 0 {
		return ApplyToCampaignResult{}, domainerrors.ErrInvalidInput
	}

	creator, err := uc.Profiles.GetCreatorByUser(ctx, strings.TrimSpace(cmd.ActorUserID))
	if err != nil {
		return ApplyToCampaignResult{}, err
	}
	now := uc.Clock.Now().UTC()
	if !creator.Subscribed(now) {
		return ApplyToCampaignResult{}, domainerrors.ErrSubscriptionRequired
	}

	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return ApplyToCampaignResult{}, err
	}
	if campaign.Status != entities.CampaignStatusActive {
		return ApplyToCampaignResult{}, domainerrors.ErrCampaignNotActive
	}
	if _, exists, err := uc.Applications.FindApplication(ctx, campaign.CampaignID, creator.CreatorID); err != nil {
		return ApplyToCampaignResult{}, err
	} else if exists {
		return ApplyToCampaignResult{}, domainerrors.ErrAlreadyApplied
	}

	var (
		createdApp      entities.Application
		updatedCampaign entities.Campaign
	)

	steps := []saga.Step{
		{
			Name: "create_application",
			Forward: func(ctx context.Context) (any, error) {
				applicationID, err := uc.IDGen.NewID(ctx)
				if err != nil {
					return nil, err
				}
				createdApp = entities.Application{
					ApplicationID: applicationID,
					CampaignID:    campaign.CampaignID,
					CreatorID:     creator.CreatorID,
					BrandID:       campaign.BrandID,
					Status:        entities.ApplicationStatusPending,
					Message:       strings.TrimSpace(cmd.Message),
					ProposedRate:  cmd.ProposedRate,
					CreatedAt:     now,
					UpdatedAt:     now,
				}
				if err := uc.Applications.CreateApplication(ctx, createdApp); err != nil {
					return nil, err
				}
				return createdApp, nil
			},
			Compensate: func(ctx context.Context) error {
				return uc.Applications.DeleteApplication(ctx, createdApp.ApplicationID)
			},
		},
		{
			Name: "count_application",
			Forward: func(ctx context.Context) (any, error) {
				current, err := uc.Campaigns.GetCampaign(ctx, campaign.CampaignID)
				if err != nil {
					return nil, err
				}
				current.TotalApplications++
				current.UpdatedAt = now
				if err := uc.Campaigns.UpdateCampaign(ctx, current); err != nil {
					return nil, err
				}
				updatedCampaign = current
				return current, nil
			},
		},
	}

	if _, err := saga.Run(ctx, logger, steps); err != nil {
		return ApplyToCampaignResult{}, err
	}

	logger.Info("application created",
		"event", "application_created",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"application_id", createdApp.ApplicationID,
		"campaign_id", campaign.CampaignID,
		"creator_id", creator.CreatorID,
	)
	return ApplyToCampaignResult{
		Application: createdApp,
		Campaign:    updatedCampaign,
	}, nil
}
