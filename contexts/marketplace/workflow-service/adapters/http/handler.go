package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"brandcast/contexts/marketplace/workflow-service/application/commands"
	"brandcast/contexts/marketplace/workflow-service/application/queries"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	httptransport "brandcast/contexts/marketplace/workflow-service/transport/http"
)

type Handler struct {
	CreateCampaign       commands.CreateCampaignUseCase
	ChangeCampaignStatus commands.ChangeCampaignStatusUseCase
	ApplyToCampaign      commands.ApplyToCampaignUseCase
	AcceptApplication    commands.AcceptApplicationUseCase
	SubmitDelivery       commands.SubmitDeliveryUseCase
	ApproveDelivery      commands.ApproveDeliveryUseCase
	RaiseDispute         commands.RaiseDisputeUseCase
	ResolveDispute       commands.ResolveDisputeUseCase
	Queries              queries.QueryUseCase
	Logger               *slog.Logger
}

func (h Handler) CreateCampaignHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateCampaignRequest,
) (httptransport.CreateCampaignResponse, error) {
	var deadline *time.Time
	if req.Deadline != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return httptransport.CreateCampaignResponse{}, fmt.Errorf("%w: deadline must be RFC3339", domainerrors.ErrInvalidInput)
		}
		deadline = &parsed
	}
	item, err := h.CreateCampaign.Execute(ctx, commands.CreateCampaignCommand{
		ActorUserID: userID,
		Title:       req.Title,
		SlotsTotal:  req.SlotsTotal,
		Deadline:    deadline,
	})
	if err != nil {
		return httptransport.CreateCampaignResponse{}, err
	}
	return httptransport.CreateCampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) ChangeCampaignStatusHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.ChangeCampaignStatusRequest,
) (httptransport.ChangeCampaignStatusResponse, error) {
	item, err := h.ChangeCampaignStatus.Execute(ctx, commands.ChangeCampaignStatusCommand{
		CampaignID:  campaignID,
		ActorUserID: userID,
		Target:      entities.CampaignStatus(req.Status),
	})
	if err != nil {
		return httptransport.ChangeCampaignStatusResponse{}, err
	}
	return httptransport.ChangeCampaignStatusResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) GetCampaignHandler(ctx context.Context, campaignID string) (httptransport.GetCampaignResponse, error) {
	item, err := h.Queries.GetCampaign(ctx, campaignID)
	if err != nil {
		return httptransport.GetCampaignResponse{}, err
	}
	return httptransport.GetCampaignResponse{Campaign: mapCampaign(item)}, nil
}

func (h Handler) ApplyToCampaignHandler(
	ctx context.Context,
	userID string,
	campaignID string,
	req httptransport.ApplyToCampaignRequest,
) (httptransport.ApplyToCampaignResponse, error) {
	result, err := h.ApplyToCampaign.Execute(ctx, commands.ApplyToCampaignCommand{
		CampaignID:   campaignID,
		ActorUserID:  userID,
		Message:      req.Message,
		ProposedRate: req.ProposedRate,
	})
	if err != nil {
		return httptransport.ApplyToCampaignResponse{}, err
	}
	return httptransport.ApplyToCampaignResponse{
		Application: mapApplication(result.Application),
		Campaign:    mapCampaign(result.Campaign),
	}, nil
}

func (h Handler) AcceptApplicationHandler(
	ctx context.Context,
	userID string,
	applicationID string,
	req httptransport.AcceptApplicationRequest,
) (httptransport.AcceptApplicationResponse, error) {
	result, err := h.AcceptApplication.Execute(ctx, commands.AcceptApplicationCommand{
		ApplicationID: applicationID,
		ActorUserID:   userID,
		AgreedRate:    req.AgreedRate,
	})
	if err != nil {
		return httptransport.AcceptApplicationResponse{}, err
	}
	return httptransport.AcceptApplicationResponse{
		Application: mapApplication(result.Application),
		Campaign:    mapCampaign(result.Campaign),
		Delivery:    mapDelivery(result.Delivery),
		SlotsFilled: result.SlotsFilled,
		SlotsTotal:  result.SlotsTotal,
	}, nil
}

func (h Handler) ListApplicationsHandler(
	ctx context.Context,
	campaignID string,
	creatorID string,
	status string,
) (httptransport.ListApplicationsResponse, error) {
	items, err := h.Queries.ListApplications(ctx, queries.ListApplicationsQuery{
		CampaignID: campaignID,
		CreatorID:  creatorID,
		Status:     status,
	})
	if err != nil {
		return httptransport.ListApplicationsResponse{}, err
	}
	result := make([]httptransport.ApplicationDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapApplication(item))
	}
	return httptransport.ListApplicationsResponse{Items: result}, nil
}

func (h Handler) SubmitDeliveryHandler(
	ctx context.Context,
	userID string,
	deliveryID string,
	req httptransport.SubmitDeliveryRequest,
) (httptransport.SubmitDeliveryResponse, error) {
	item, err := h.SubmitDelivery.Execute(ctx, commands.SubmitDeliveryCommand{
		DeliveryID:  deliveryID,
		ActorUserID: userID,
		ContentURLs: req.ContentURLs,
		ProofURLs:   req.ProofURLs,
	})
	if err != nil {
		return httptransport.SubmitDeliveryResponse{}, err
	}
	return httptransport.SubmitDeliveryResponse{Delivery: mapDelivery(item)}, nil
}

func (h Handler) GetDeliveryHandler(ctx context.Context, deliveryID string) (httptransport.GetDeliveryResponse, error) {
	item, err := h.Queries.GetDelivery(ctx, deliveryID)
	if err != nil {
		return httptransport.GetDeliveryResponse{}, err
	}
	return httptransport.GetDeliveryResponse{Delivery: mapDelivery(item)}, nil
}

func (h Handler) ApproveDeliveryHandler(
	ctx context.Context,
	userID string,
	deliveryID string,
) (httptransport.ApproveDeliveryResponse, error) {
	result, err := h.ApproveDelivery.Execute(ctx, commands.ApproveDeliveryCommand{
		DeliveryID:  deliveryID,
		ActorUserID: userID,
	})
	if err != nil {
		return httptransport.ApproveDeliveryResponse{}, err
	}
	resp := httptransport.ApproveDeliveryResponse{
		Delivery:    mapDelivery(result.Delivery),
		Application: mapApplication(result.Application),
	}
	if result.Creator != nil {
		creator := mapCreator(*result.Creator)
		resp.Creator = &creator
	}
	return resp, nil
}

func (h Handler) RaiseDisputeHandler(
	ctx context.Context,
	userID string,
	deliveryID string,
	req httptransport.RaiseDisputeRequest,
) (httptransport.RaiseDisputeResponse, error) {
	result, err := h.RaiseDispute.Execute(ctx, commands.RaiseDisputeCommand{
		DeliveryID:  deliveryID,
		ActorUserID: userID,
		Reason:      req.Reason,
	})
	if err != nil {
		return httptransport.RaiseDisputeResponse{}, err
	}
	return httptransport.RaiseDisputeResponse{
		Dispute:  mapDispute(result.Dispute),
		Delivery: mapDelivery(result.Delivery),
	}, nil
}

func (h Handler) GetDisputeHandler(ctx context.Context, disputeID string) (httptransport.GetDisputeResponse, error) {
	item, err := h.Queries.GetDispute(ctx, disputeID)
	if err != nil {
		return httptransport.GetDisputeResponse{}, err
	}
	return httptransport.GetDisputeResponse{Dispute: mapDispute(item)}, nil
}

func (h Handler) ResolveDisputeHandler(
	ctx context.Context,
	adminID string,
	disputeID string,
	req httptransport.ResolveDisputeRequest,
) (httptransport.ResolveDisputeResponse, error) {
	result, err := h.ResolveDispute.Execute(ctx, commands.ResolveDisputeCommand{
		DisputeID:      disputeID,
		AdminID:        adminID,
		Resolution:     req.Resolution,
		ResolutionType: entities.DisputeStatus(req.ResolutionType),
	})
	if err != nil {
		return httptransport.ResolveDisputeResponse{}, err
	}
	return httptransport.ResolveDisputeResponse{
		Success: true,
		Dispute: mapDispute(result.Dispute),
	}, nil
}

func mapCampaign(item entities.Campaign) httptransport.CampaignDTO {
	dto := httptransport.CampaignDTO{
		CampaignID:        item.CampaignID,
		BrandID:           item.BrandID,
		Title:             item.Title,
		Status:            string(item.Status),
		SlotsTotal:        item.SlotsTotal,
		SlotsFilled:       item.SlotsFilled,
		TotalApplications: item.TotalApplications,
		CreatedAt:         item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         item.UpdatedAt.Format(time.RFC3339),
	}
	if item.Deadline != nil {
		dto.Deadline = item.Deadline.Format(time.RFC3339)
	}
	return dto
}

func mapApplication(item entities.Application) httptransport.ApplicationDTO {
	dto := httptransport.ApplicationDTO{
		ApplicationID: item.ApplicationID,
		CampaignID:    item.CampaignID,
		CreatorID:     item.CreatorID,
		BrandID:       item.BrandID,
		Status:        string(item.Status),
		Message:       item.Message,
		ProposedRate:  item.ProposedRate,
		AgreedRate:    item.AgreedRate,
		CreatedAt:     item.CreatedAt.Format(time.RFC3339),
	}
	if item.AcceptedAt != nil {
		dto.AcceptedAt = item.AcceptedAt.Format(time.RFC3339)
	}
	return dto
}

func mapDelivery(item entities.Delivery) httptransport.DeliveryDTO {
	dto := httptransport.DeliveryDTO{
		DeliveryID:    item.DeliveryID,
		ApplicationID: item.ApplicationID,
		CampaignID:    item.CampaignID,
		CreatorID:     item.CreatorID,
		BrandID:       item.BrandID,
		Status:        string(item.Status),
		PaymentStatus: string(item.PaymentStatus),
		OnTime:        item.OnTime,
		ContentURLs:   item.ContentURLs,
		ProofURLs:     item.ProofURLs,
	}
	if item.Deadline != nil {
		dto.Deadline = item.Deadline.Format(time.RFC3339)
	}
	if item.SubmittedAt != nil {
		dto.SubmittedAt = item.SubmittedAt.Format(time.RFC3339)
	}
	if item.ApprovedAt != nil {
		dto.ApprovedAt = item.ApprovedAt.Format(time.RFC3339)
	}
	return dto
}

func mapDispute(item entities.Dispute) httptransport.DisputeDTO {
	dto := httptransport.DisputeDTO{
		DisputeID:  item.DisputeID,
		DeliveryID: item.DeliveryID,
		CampaignID: item.CampaignID,
		BrandID:    item.BrandID,
		CreatorID:  item.CreatorID,
		Status:     string(item.Status),
		RaisedBy:   item.RaisedBy,
		Reason:     item.Reason,
		Resolution: item.Resolution,
		ResolvedBy: item.ResolvedBy,
	}
	if item.ResolvedAt != nil {
		dto.ResolvedAt = item.ResolvedAt.Format(time.RFC3339)
	}
	return dto
}

func mapCreator(item entities.CreatorProfile) httptransport.CreatorDTO {
	return httptransport.CreatorDTO{
		CreatorID:          item.CreatorID,
		UserID:             item.UserID,
		SubscriptionStatus: string(item.SubscriptionStatus),
		CompletedCampaigns: item.CompletedCampaigns,
	}
}
