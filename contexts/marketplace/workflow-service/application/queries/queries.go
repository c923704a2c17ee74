package queries

import (
	"context"
	"log/slog"
	"strings"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type ListApplicationsQuery struct {
	CampaignID string
	CreatorID  string
	BrandID    string
	Status     string
}

type QueryUseCase struct {
	Campaigns    ports.CampaignRepository
	Applications ports.ApplicationRepository
	Deliveries   ports.DeliveryRepository
	Disputes     ports.DisputeRepository
	Logger       *slog.Logger
}

func (uc QueryUseCase) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	return uc.Campaigns.GetCampaign(ctx, strings.TrimSpace(campaignID))
}

func (uc QueryUseCase) ListApplications(ctx context.Context, query ListApplicationsQuery) ([]entities.Application, error) {
	return uc.Applications.ListApplications(ctx, ports.ApplicationFilter{
		CampaignID: strings.TrimSpace(query.CampaignID),
		CreatorID:  strings.TrimSpace(query.CreatorID),
		BrandID:    strings.TrimSpace(query.BrandID),
		Status:     entities.ApplicationStatus(strings.TrimSpace(query.Status)),
	})
}

func (uc QueryUseCase) GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error) {
	return uc.Deliveries.GetDelivery(ctx, strings.TrimSpace(deliveryID))
}

func (uc QueryUseCase) GetDispute(ctx context.Context, disputeID string) (entities.Dispute, error) {
	return uc.Disputes.GetDispute(ctx, strings.TrimSpace(disputeID))
}
