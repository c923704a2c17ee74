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

type ChangeCampaignStatusCommand struct {
	CampaignID  string
	ActorUserID string
	Target      entities.CampaignStatus
}

// ChangeCampaignStatusUseCase moves a campaign along its transition table.
// This is the only way campaign status changes outside the accept workflow.
type ChangeCampaignStatusUseCase struct {
	Campaigns ports.CampaignRepository
	Profiles  ports.ProfileRepository
	Audit     ports.AuditRecorder
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Logger    *slog.Logger
}

func (uc ChangeCampaignStatusUseCase) Execute(ctx context.Context, cmd ChangeCampaignStatusCommand) (entities.Campaign, error) {
	logger := application.ResolveLogger(uc.Logger)

	campaign, err := uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(cmd.CampaignID))
	if err != nil {
		return entities.Campaign{}, err
	}
	brand, err := uc.Profiles.GetBrandByUser(ctx, strings.TrimSpace(cmd.ActorUserID))
	if err != nil {
		return entities.Campaign{}, domainerrors.ErrForbidden
	}
	if campaign.BrandID != brand.BrandID {
		return entities.Campaign{}, domainerrors.ErrForbidden
	}
	if err := statemachine.CheckCampaign(campaign.Status, cmd.Target); err != nil {
		return entities.Campaign{}, err
	}

	from := campaign.Status
	campaign.Status = cmd.Target
	campaign.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Campaigns.UpdateCampaign(ctx, campaign); err != nil {
		return entities.Campaign{}, err
	}

	if cmd.Target == entities.CampaignStatusCancelled {
		uc.appendCancellationAudit(ctx, logger, campaign, brand)
	}

	logger.Info("campaign status changed",
		"event", "campaign_status_changed",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"campaign_id", campaign.CampaignID,
		"from_status", string(from),
		"to_status", string(cmd.Target),
	)
	return campaign, nil
}

// Cancellation audit is best-effort; the status change itself is already durable.
func (uc ChangeCampaignStatusUseCase) appendCancellationAudit(ctx context.Context, logger *slog.Logger, campaign entities.Campaign, brand entities.BrandProfile) {
	auditID, err := uc.IDGen.NewID(ctx)
	if err == nil {
		err = uc.Audit.AppendAudit(ctx, entities.AuditEntry{
			AuditID:        auditID,
			AdminID:        brand.UserID,
			Action:         entities.AuditActionCampaignCancelled,
			TargetUserID:   brand.UserID,
			TargetEntityID: campaign.CampaignID,
			Details: map[string]string{
				"brand_id": campaign.BrandID,
				"title":    campaign.Title,
			},
			CreatedAt: campaign.UpdatedAt,
		})
	}
	if err != nil {
		logger.Error("campaign cancellation audit append failed",
			"event", "campaign_cancel_audit_failed",
			"module", "marketplace/workflow-service",
			"layer", "application",
			"campaign_id", campaign.CampaignID,
			"error", err.Error(),
		)
	}
}
