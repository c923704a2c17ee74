package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "brandcast/contexts/marketplace/workflow-service/application"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type CreateCampaignCommand struct {
	ActorUserID string
	Title       string
	SlotsTotal  int
	Deadline    *time.Time
}

type CreateCampaignUseCase struct {
	Campaigns ports.CampaignRepository
	Profiles  ports.ProfileRepository
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)

	brand, err := uc.Profiles.GetBrandByUser(ctx, strings.TrimSpace(cmd.ActorUserID))
	if err != nil {
		return entities.Campaign{}, err
	}

	now := uc.Clock.Now().UTC()
	campaignID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Campaign{}, err
	}

	campaign := entities.Campaign{
		CampaignID: campaignID,
		BrandID:    brand.BrandID,
		Title:      strings.TrimSpace(cmd.Title),
		Status:     entities.CampaignStatusDraft,
		SlotsTotal: cmd.SlotsTotal,
		Deadline:   cmd.Deadline,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if !campaign.ValidateCreate() || campaign.Title == "" {
		return entities.Campaign{}, domainerrors.ErrInvalidInput
	}
	if err := uc.Campaigns.CreateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	logger.Info("campaign created",
		"event", "campaign_created",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"brand_id", brand.BrandID,
		"slots_total", campaign.SlotsTotal,
	)
	return campaign, nil
}
