package ports

import (
	"context"
	"time"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	"brandcast/internal/shared/outbox"
)

type ApplicationFilter struct {
	CampaignID string
	CreatorID  string
	BrandID    string
	Status     entities.ApplicationStatus
}

// Repositories are typed per entity; every mutation of a tracked entity also
// records a change event in the outbox within the same store operation.
type CampaignRepository interface {
	GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error)
	CreateCampaign(ctx context.Context, campaign entities.Campaign) error
	UpdateCampaign(ctx context.Context, campaign entities.Campaign) error
}

type ApplicationRepository interface {
	GetApplication(ctx context.Context, applicationID string) (entities.Application, error)
	FindApplication(ctx context.Context, campaignID, creatorID string) (entities.Application, bool, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]entities.Application, error)
	CreateApplication(ctx context.Context, application entities.Application) error
	UpdateApplication(ctx context.Context, application entities.Application) error
	DeleteApplication(ctx context.Context, applicationID string) error
}

type DeliveryRepository interface {
	GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error)
	GetDeliveryByApplication(ctx context.Context, applicationID string) (entities.Delivery, bool, error)
	CreateDelivery(ctx context.Context, delivery entities.Delivery) error
	UpdateDelivery(ctx context.Context, delivery entities.Delivery) error
}

type DisputeRepository interface {
	GetDispute(ctx context.Context, disputeID string) (entities.Dispute, error)
	CreateDispute(ctx context.Context, dispute entities.Dispute) error
	UpdateDispute(ctx context.Context, dispute entities.Dispute) error
	DeleteDispute(ctx context.Context, disputeID string) error
}

type ProfileRepository interface {
	GetBrandByUser(ctx context.Context, userID string) (entities.BrandProfile, error)
	GetCreatorByUser(ctx context.Context, userID string) (entities.CreatorProfile, error)
	GetCreator(ctx context.Context, creatorID string) (entities.CreatorProfile, bool, error)
	UpdateCreator(ctx context.Context, creator entities.CreatorProfile) error
}

// AuditRecorder appends immutable records of privileged mutations.
type AuditRecorder interface {
	AppendAudit(ctx context.Context, entry entities.AuditEntry) error
}

type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
