package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/ports"
	"brandcast/internal/shared/events"
	"brandcast/internal/shared/outbox"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Repository implements the workflow ports over postgres. Every entity
// mutation writes its outbox change-event row in the same transaction, so the
// relay never observes a state change without its event or vice versa.
type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetCampaign(ctx context.Context, campaignID string) (entities.Campaign, error) {
	var row campaignModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Campaign{}, domainerrors.ErrCampaignNotFound
		}
		return entities.Campaign{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateCampaign(ctx context.Context, campaign entities.Campaign) error {
	row := campaignModelFromEntity(campaign)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeCreate, events.EntityCampaign, campaign.CampaignID,
			campaignSnapshot(campaign), nil)
	})
}

func (r *Repository) UpdateCampaign(ctx context.Context, campaign entities.Campaign) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old campaignModel
		if err := tx.Where("campaign_id = ?", campaign.CampaignID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrCampaignNotFound
			}
			return err
		}
		row := campaignModelFromEntity(campaign)
		if err := tx.Model(&campaignModel{}).
			Where("campaign_id = ?", campaign.CampaignID).
			Updates(map[string]any{
				"status":             row.Status,
				"slots_filled":       row.SlotsFilled,
				"total_applications": row.TotalApplications,
				"updated_at":         row.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeUpdate, events.EntityCampaign, campaign.CampaignID,
			campaignSnapshot(campaign), campaignSnapshot(old.toEntity()))
	})
}

func (r *Repository) GetApplication(ctx context.Context, applicationID string) (entities.Application, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, domainerrors.ErrApplicationNotFound
		}
		return entities.Application{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) FindApplication(ctx context.Context, campaignID, creatorID string) (entities.Application, bool, error) {
	var row applicationModel
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", strings.TrimSpace(campaignID)).
		Where("creator_id = ?", strings.TrimSpace(creatorID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Application{}, false, nil
		}
		return entities.Application{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListApplications(ctx context.Context, filter ports.ApplicationFilter) ([]entities.Application, error) {
	tx := r.db.WithContext(ctx).Model(&applicationModel{})
	if filter.CampaignID != "" {
		tx = tx.Where("campaign_id = ?", filter.CampaignID)
	}
	if filter.CreatorID != "" {
		tx = tx.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.BrandID != "" {
		tx = tx.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", string(filter.Status))
	}

	var rows []applicationModel
	if err := tx.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]entities.Application, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateApplication(ctx context.Context, app entities.Application) error {
	row := applicationModelFromEntity(app)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeCreate, events.EntityApplication, app.ApplicationID,
			applicationSnapshot(app), nil)
	})
	if err != nil && isUniqueViolation(err) {
		return domainerrors.ErrAlreadyApplied
	}
	return err
}

func (r *Repository) UpdateApplication(ctx context.Context, app entities.Application) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old applicationModel
		if err := tx.Where("application_id = ?", app.ApplicationID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrApplicationNotFound
			}
			return err
		}
		row := applicationModelFromEntity(app)
		if err := tx.Model(&applicationModel{}).
			Where("application_id = ?", app.ApplicationID).
			Updates(map[string]any{
				"status":      row.Status,
				"agreed_rate": row.AgreedRate,
				"accepted_at": row.AcceptedAt,
				"updated_at":  row.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeUpdate, events.EntityApplication, app.ApplicationID,
			applicationSnapshot(app), applicationSnapshot(old.toEntity()))
	})
}

func (r *Repository) DeleteApplication(ctx context.Context, applicationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old applicationModel
		if err := tx.Where("application_id = ?", applicationID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrApplicationNotFound
			}
			return err
		}
		if err := tx.Where("application_id = ?", applicationID).Delete(&applicationModel{}).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeDelete, events.EntityApplication, applicationID,
			applicationSnapshot(old.toEntity()), nil)
	})
}

func (r *Repository) GetDelivery(ctx context.Context, deliveryID string) (entities.Delivery, error) {
	var row deliveryModel
	err := r.db.WithContext(ctx).
		Where("delivery_id = ?", strings.TrimSpace(deliveryID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Delivery{}, domainerrors.ErrDeliveryNotFound
		}
		return entities.Delivery{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetDeliveryByApplication(ctx context.Context, applicationID string) (entities.Delivery, bool, error) {
	var row deliveryModel
	err := r.db.WithContext(ctx).
		Where("application_id = ?", strings.TrimSpace(applicationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Delivery{}, false, nil
		}
		return entities.Delivery{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CreateDelivery(ctx context.Context, delivery entities.Delivery) error {
	row := deliveryModelFromEntity(delivery)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeCreate, events.EntityDelivery, delivery.DeliveryID,
			deliverySnapshot(delivery), nil)
	})
}

func (r *Repository) UpdateDelivery(ctx context.Context, delivery entities.Delivery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old deliveryModel
		if err := tx.Where("delivery_id = ?", delivery.DeliveryID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrDeliveryNotFound
			}
			return err
		}
		row := deliveryModelFromEntity(delivery)
		if err := tx.Model(&deliveryModel{}).
			Where("delivery_id = ?", delivery.DeliveryID).
			Updates(map[string]any{
				"status":         row.Status,
				"payment_status": row.PaymentStatus,
				"submitted_at":   row.SubmittedAt,
				"approved_at":    row.ApprovedAt,
				"reviewed_at":    row.ReviewedAt,
				"on_time":        row.OnTime,
				"proof_urls":     row.ProofURLs,
				"content_urls":   row.ContentURLs,
				"updated_at":     row.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeUpdate, events.EntityDelivery, delivery.DeliveryID,
			deliverySnapshot(delivery), deliverySnapshot(old.toEntity()))
	})
}

func (r *Repository) GetDispute(ctx context.Context, disputeID string) (entities.Dispute, error) {
	var row disputeModel
	err := r.db.WithContext(ctx).
		Where("dispute_id = ?", strings.TrimSpace(disputeID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Dispute{}, domainerrors.ErrDisputeNotFound
		}
		return entities.Dispute{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateDispute(ctx context.Context, dispute entities.Dispute) error {
	row := disputeModelFromEntity(dispute)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeCreate, events.EntityDispute, dispute.DisputeID,
			disputeSnapshot(dispute), nil)
	})
}

func (r *Repository) UpdateDispute(ctx context.Context, dispute entities.Dispute) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old disputeModel
		if err := tx.Where("dispute_id = ?", dispute.DisputeID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrDisputeNotFound
			}
			return err
		}
		row := disputeModelFromEntity(dispute)
		if err := tx.Model(&disputeModel{}).
			Where("dispute_id = ?", dispute.DisputeID).
			Updates(map[string]any{
				"status":      row.Status,
				"resolution":  row.Resolution,
				"resolved_by": row.ResolvedBy,
				"resolved_at": row.ResolvedAt,
				"updated_at":  row.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeUpdate, events.EntityDispute, dispute.DisputeID,
			disputeSnapshot(dispute), disputeSnapshot(old.toEntity()))
	})
}

func (r *Repository) DeleteDispute(ctx context.Context, disputeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old disputeModel
		if err := tx.Where("dispute_id = ?", disputeID).First(&old).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrDisputeNotFound
			}
			return err
		}
		if err := tx.Where("dispute_id = ?", disputeID).Delete(&disputeModel{}).Error; err != nil {
			return err
		}
		return appendOutbox(tx, events.TypeDelete, events.EntityDispute, disputeID,
			disputeSnapshot(old.toEntity()), nil)
	})
}

func (r *Repository) GetBrandByUser(ctx context.Context, userID string) (entities.BrandProfile, error) {
	var row brandModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BrandProfile{}, domainerrors.ErrBrandNotFound
		}
		return entities.BrandProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCreatorByUser(ctx context.Context, userID string) (entities.CreatorProfile, error) {
	var row creatorModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CreatorProfile{}, domainerrors.ErrCreatorNotFound
		}
		return entities.CreatorProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetCreator(ctx context.Context, creatorID string) (entities.CreatorProfile, bool, error) {
	var row creatorModel
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", strings.TrimSpace(creatorID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CreatorProfile{}, false, nil
		}
		return entities.CreatorProfile{}, false, err
	}
	return row.toEntity(), true, nil
}

func (r *Repository) UpdateCreator(ctx context.Context, creator entities.CreatorProfile) error {
	result := r.db.WithContext(ctx).
		Model(&creatorModel{}).
		Where("creator_id = ?", creator.CreatorID).
		Updates(map[string]any{
			"subscription_status": string(creator.SubscriptionStatus),
			"trial_ends_at":       creator.TrialEndsAt,
			"completed_campaigns": creator.CompletedCampaigns,
			"updated_at":          creator.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCreatorNotFound
	}
	return nil
}

func (r *Repository) AppendAudit(ctx context.Context, entry entities.AuditEntry) error {
	details, err := json.Marshal(entry.Details)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&auditModel{
		AuditID:        entry.AuditID,
		AdminID:        entry.AdminID,
		Action:         entry.Action,
		TargetUserID:   entry.TargetUserID,
		TargetEntityID: entry.TargetEntityID,
		Details:        string(details),
		CreatedAt:      entry.CreatedAt,
	}).Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]outbox.Message, error) {
	var rows []outboxModel
	err := r.db.WithContext(ctx).
		Where("status = ?", outbox.StatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]outbox.Message, 0, len(rows))
	for _, row := range rows {
		items = append(items, outbox.Message{
			OutboxID:    row.OutboxID,
			Topic:       row.Topic,
			Payload:     row.Payload,
			Status:      row.Status,
			RetryCount:  row.RetryCount,
			CreatedAt:   row.CreatedAt,
			PublishedAt: row.PublishedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       outbox.StatusPublished,
			"published_at": publishedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func appendOutbox(tx *gorm.DB, eventType, entityType, entityID string, data, oldData any) error {
	payload, err := json.Marshal(events.ChangeEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Data:       marshalRaw(data),
		OldData:    marshalRaw(oldData),
	})
	if err != nil {
		return err
	}
	return tx.Create(&outboxModel{
		OutboxID:  uuid.NewString(),
		Topic:     events.Topic(entityType),
		Payload:   payload,
		Status:    outbox.StatusPending,
		CreatedAt: time.Now().UTC(),
	}).Error
}

func marshalRaw(value any) json.RawMessage {
	if value == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return raw
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func campaignSnapshot(c entities.Campaign) events.CampaignSnapshot {
	return events.CampaignSnapshot{
		CampaignID: c.CampaignID,
		BrandID:    c.BrandID,
		Status:     string(c.Status),
	}
}

func applicationSnapshot(a entities.Application) events.ApplicationSnapshot {
	return events.ApplicationSnapshot{
		ApplicationID: a.ApplicationID,
		CampaignID:    a.CampaignID,
		CreatorID:     a.CreatorID,
		BrandID:       a.BrandID,
		Status:        string(a.Status),
	}
}

func deliverySnapshot(d entities.Delivery) events.DeliverySnapshot {
	return events.DeliverySnapshot{
		DeliveryID:    d.DeliveryID,
		ApplicationID: d.ApplicationID,
		CampaignID:    d.CampaignID,
		CreatorID:     d.CreatorID,
		BrandID:       d.BrandID,
		Status:        string(d.Status),
	}
}

func disputeSnapshot(d entities.Dispute) events.DisputeSnapshot {
	return events.DisputeSnapshot{
		DisputeID:  d.DisputeID,
		DeliveryID: d.DeliveryID,
		BrandID:    d.BrandID,
		CreatorID:  d.CreatorID,
		Status:     string(d.Status),
	}
}
