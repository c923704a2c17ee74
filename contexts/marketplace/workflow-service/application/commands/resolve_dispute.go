package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "brandcast/contexts/marketplace/workflow-service/application"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/domain/statemachine"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type ResolveDisputeCommand struct {
	DisputeID      string
	AdminID        string
	Resolution     string
	ResolutionType entities.DisputeStatus
}

type ResolveDisputeResult struct {
	Dispute entities.Dispute
}

// ResolveDisputeUseCase decides a dispute and cascades the outcome onto the
// linked delivery, application and creator.
//
// Unlike the other workflows, the cascade after the dispute record itself is
// forward-only: failures in the audit append or downstream updates are logged
// and do not undo the resolution. This asymmetry is carried over from the
// original admin flow on purpose; admin resolutions are rare and supervised,
// and partial cascades are reconciled manually.
type ResolveDisputeUseCase struct {
	Disputes     ports.DisputeRepository
	Deliveries   ports.DeliveryRepository
	Applications ports.ApplicationRepository
	Profiles     ports.ProfileRepository
	Audit        ports.AuditRecorder
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func (uc ResolveDisputeUseCase) Execute(ctx context.Context, cmd ResolveDisputeCommand) (ResolveDisputeResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	adminID := strings.TrimSpace(cmd.AdminID)
	if adminID == "" {
		return ResolveDisputeResult{}, domainerrors.ErrAdminRequired
	}
	if strings.TrimSpace(cmd.Resolution) == "" {
		return ResolveDisputeResult{}, domainerrors.ErrInvalidInput
	}
	if cmd.ResolutionType != entities.DisputeStatusResolvedCreatorFavor &&
		cmd.ResolutionType != entities.DisputeStatusResolvedBrandFavor {
		return ResolveDisputeResult{}, domainerrors.ErrInvalidInput
	}

	dispute, err := uc.Disputes.GetDispute(ctx, strings.TrimSpace(cmd.DisputeID))
	if err != nil {
		return ResolveDisputeResult{}, err
	}
	if err := statemachine.CheckDispute(dispute.Status, cmd.ResolutionType); err != nil {
		return ResolveDisputeResult{}, err
	}

	now := uc.Clock.Now().UTC()
	creatorFavor := cmd.ResolutionType == entities.DisputeStatusResolvedCreatorFavor

	resolved := dispute
	resolved.Status = cmd.ResolutionType
	resolved.Resolution = strings.TrimSpace(cmd.Resolution)
	resolved.ResolvedBy = adminID
	resolved.ResolvedAt = &now
	resolved.UpdatedAt = now
	if err := uc.Disputes.UpdateDispute(ctx, resolved); err != nil {
		return ResolveDisputeResult{}, err
	}

	uc.appendAudit(ctx, logger, resolved, adminID, now)
	uc.cascadeDelivery(ctx, logger, resolved, creatorFavor, now)
	if creatorFavor {
		uc.cascadeCreatorFavor(ctx, logger, resolved, now)
	}

	logger.Info("dispute resolved",
		"event", "dispute_resolved",
		"module", "marketplace/workflow-service",
		"layer", "application",
		"dispute_id", resolved.DisputeID,
		"resolution_type", string(cmd.ResolutionType),
		"resolved_by", adminID,
	)
	return ResolveDisputeResult{Dispute: resolved}, nil
}

func (uc ResolveDisputeUseCase) appendAudit(ctx context.Context, logger *slog.Logger, dispute entities.Dispute, adminID string, now time.Time) {
	auditID, err := uc.IDGen.NewID(ctx)
	if err == nil {
		err = uc.Audit.AppendAudit(ctx, entities.AuditEntry{
			AuditID:        auditID,
			AdminID:        adminID,
			Action:         entities.AuditActionDisputeResolved,
			TargetUserID:   dispute.CreatorID,
			TargetEntityID: dispute.DisputeID,
			Details: map[string]string{
				"resolution_type": string(dispute.Status),
				"delivery_id":     dispute.DeliveryID,
			},
			CreatedAt: now,
		})
	}
	if err != nil {
		logger.Error("dispute audit append failed",
			"event", "dispute_audit_failed",
			"module", "marketplace/workflow-service",
			"layer", "application",
			"dispute_id", dispute.DisputeID,
			"error", err.Error(),
		)
	}
}

func (uc ResolveDisputeUseCase) cascadeDelivery(ctx context.Context, logger *slog.Logger, dispute entities.Dispute, creatorFavor bool, now time.Time) {
	delivery, err := uc.Deliveries.GetDelivery(ctx, dispute.DeliveryID)
	if err != nil {
		// Missing delivery is tolerated; anything else is a cascade failure.
		if !errors.Is(err, domainerrors.ErrDeliveryNotFound) {
			logger.Error("dispute delivery cascade failed",
				"event", "dispute_delivery_cascade_failed",
				"module", "marketplace/workflow-service",
				"layer", "application",
				"dispute_id", dispute.DisputeID,
				"delivery_id", dispute.DeliveryID,
				"error", err.Error(),
			)
		}
		return
	}

	if creatorFavor {
		delivery.Status = entities.DeliveryStatusApproved
		delivery.PaymentStatus = entities.PaymentStatusPayable
		delivery.ApprovedAt = &now
	} else {
		delivery.Status = entities.DeliveryStatusClosed
		delivery.PaymentStatus = entities.PaymentStatusWithheld
	}
	delivery.ReviewedAt = &now
	delivery.UpdatedAt = now
	if err := uc.Deliveries.UpdateDelivery(ctx, delivery); err != nil {
		logger.Error("dispute delivery cascade failed",
			"event", "dispute_delivery_cascade_failed",
			"module", "marketplace/workflow-service",
			"layer", "application",
			"dispute_id", dispute.DisputeID,
			"delivery_id", delivery.DeliveryID,
			"error", err.Error(),
		)
	}
}

func (uc ResolveDisputeUseCase) cascadeCreatorFavor(ctx context.Context, logger *slog.Logger, dispute entities.Dispute, now time.Time) {
	delivery, err := uc.Deliveries.GetDelivery(ctx, dispute.DeliveryID)
	if err == nil && delivery.ApplicationID != "" {
		if app, appErr := uc.Applications.GetApplication(ctx, delivery.ApplicationID); appErr == nil {
			app.Status = entities.ApplicationStatusCompleted
			app.UpdatedAt = now
			if updateErr := uc.Applications.UpdateApplication(ctx, app); updateErr != nil {
				logger.Error("dispute application cascade failed",
					"event", "dispute_application_cascade_failed",
					"module", "marketplace/workflow-service",
					"layer", "application",
					"dispute_id", dispute.DisputeID,
					"application_id", app.ApplicationID,
					"error", updateErr.Error(),
				)
			}
		}
	}

	creator, found, err := uc.Profiles.GetCreator(ctx, dispute.CreatorID)
	if err != nil || !found {
		return
	}
	creator.CompletedCampaigns++
	creator.UpdatedAt = now
	if err := uc.Profiles.UpdateCreator(ctx, creator); err != nil {
		logger.Error("dispute creator cascade failed",
			"event", "dispute_creator_cascade_failed",
			"module", "marketplace/workflow-service",
			"layer", "application",
			"dispute_id", dispute.DisputeID,
			"creator_id", creator.CreatorID,
			"error", err.Error(),
		)
	}
}
