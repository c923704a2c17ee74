package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	domainerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/ports"
	"brandcast/internal/shared/events"
	"brandcast/internal/shared/outbox"

	"github.com/google/uuid"
)

// Seed is the initial state for an in-memory store.
type Seed struct {
	Campaigns    []entities.Campaign
	Applications []entities.Application
	Deliveries   []entities.Delivery
	Disputes     []entities.Dispute
	Creators     []entities.CreatorProfile
	Brands       []entities.BrandProfile
}

// Store implements every workflow port over mutex-guarded maps. Each mutation
// of a tracked entity records a change event in the in-memory outbox, the
// same contract the postgres adapter keeps transactionally.
type Store struct {
	mu sync.RWMutex

	campaigns    map[string]entities.Campaign
	applications map[string]entities.Application
	deliveries   map[string]entities.Delivery
	disputes     map[string]entities.Dispute
	creators     map[string]entities.CreatorProfile
	brands       map[string]entities.BrandProfile
	audit        []entities.AuditEntry
	outboxRows   []outbox.Message

	// FailUpdateCampaign and friends force the next matching mutation to
	// fail; tests use them to drive saga rollback paths.
	FailUpdateCampaign bool
	FailCreateDelivery bool
	FailUpdateDelivery bool
}

func NewStore(seed Seed) *Store {
	s := &Store{
		campaigns:    make(map[string]entities.Campaign, len(seed.Campaigns)),
		applications: make(map[string]entities.Application, len(seed.Applications)),
		deliveries:   make(map[string]entities.Delivery, len(seed.Deliveries)),
		disputes:     make(map[string]entities.Dispute, len(seed.Disputes)),
		creators:     make(map[string]entities.CreatorProfile, len(seed.Creators)),
		brands:       make(map[string]entities.BrandProfile, len(seed.Brands)),
	}
	for _, item := range seed.Campaigns {
		s.campaigns[item.CampaignID] = item
	}
	for _, item := range seed.Applications {
		s.applications[item.ApplicationID] = item
	}
	for _, item := range seed.Deliveries {
		s.deliveries[item.DeliveryID] = item
	}
	for _, item := range seed.Disputes {
		s.disputes[item.DisputeID] = item
	}
	for _, item := range seed.Creators {
		s.creators[item.CreatorID] = item
	}
	for _, item := range seed.Brands {
		s.brands[item.BrandID] = item
	}
	return s
}

func (s *Store) GetCampaign(_ context.Context, campaignID string) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.campaigns[strings.TrimSpace(campaignID)]
	if !exists {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return item, nil
}

func (s *Store) CreateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns[campaign.CampaignID] = campaign
	s.recordChange(events.TypeCreate, events.EntityCampaign, campaign.CampaignID, campaignSnapshot(campaign), nil)
	return nil
}

func (s *Store) UpdateCampaign(_ context.Context, campaign entities.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpdateCampaign {
		s.FailUpdateCampaign = false
		return errStoreUnavailable
	}
	old, exists := s.campaigns[campaign.CampaignID]
	if !exists {
		return domainerrors.ErrCampaignNotFound
	}
	s.campaigns[campaign.CampaignID] = campaign
	s.recordChange(events.TypeUpdate, events.EntityCampaign, campaign.CampaignID, campaignSnapshot(campaign), campaignSnapshot(old))
	return nil
}

func (s *Store) GetApplication(_ context.Context, applicationID string) (entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.applications[strings.TrimSpace(applicationID)]
	if !exists {
		return entities.Application{}, domainerrors.ErrApplicationNotFound
	}
	return item, nil
}

func (s *Store) FindApplication(_ context.Context, campaignID, creatorID string) (entities.Application, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.applications {
		if item.CampaignID == campaignID && item.CreatorID == creatorID {
			return item, true, nil
		}
	}
	return entities.Application{}, false, nil
}

func (s *Store) ListApplications(_ context.Context, filter ports.ApplicationFilter) ([]entities.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Application, 0, len(s.applications))
	for _, item := range s.applications {
		if filter.CampaignID != "" && item.CampaignID != filter.CampaignID {
			continue
		}
		if filter.CreatorID != "" && item.CreatorID != filter.CreatorID {
			continue
		}
		if filter.BrandID != "" && item.BrandID != filter.BrandID {
			continue
		}
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) CreateApplication(_ context.Context, app entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.applications {
		if existing.CampaignID == app.CampaignID && existing.CreatorID == app.CreatorID {
			return domainerrors.ErrAlreadyApplied
		}
	}
	s.applications[app.ApplicationID] = app
	s.recordChange(events.TypeCreate, events.EntityApplication, app.ApplicationID, applicationSnapshot(app), nil)
	return nil
}

func (s *Store) UpdateApplication(_ context.Context, app entities.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, exists := s.applications[app.ApplicationID]
	if !exists {
		return domainerrors.ErrApplicationNotFound
	}
	s.applications[app.ApplicationID] = app
	s.recordChange(events.TypeUpdate, events.EntityApplication, app.ApplicationID, applicationSnapshot(app), applicationSnapshot(old))
	return nil
}

func (s *Store) DeleteApplication(_ context.Context, applicationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, exists := s.applications[applicationID]
	if !exists {
		return domainerrors.ErrApplicationNotFound
	}
	delete(s.applications, applicationID)
	s.recordChange(events.TypeDelete, events.EntityApplication, applicationID, applicationSnapshot(old), nil)
	return nil
}

func (s *Store) GetDelivery(_ context.Context, deliveryID string) (entities.Delivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.deliveries[strings.TrimSpace(deliveryID)]
	if !exists {
		return entities.Delivery{}, domainerrors.ErrDeliveryNotFound
	}
	return item, nil
}

func (s *Store) GetDeliveryByApplication(_ context.Context, applicationID string) (entities.Delivery, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.deliveries {
		if item.ApplicationID == applicationID {
			return item, true, nil
		}
	}
	return entities.Delivery{}, false, nil
}

func (s *Store) CreateDelivery(_ context.Context, delivery entities.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreateDelivery {
		s.FailCreateDelivery = false
		return errStoreUnavailable
	}
	s.deliveries[delivery.DeliveryID] = delivery
	s.recordChange(events.TypeCreate, events.EntityDelivery, delivery.DeliveryID, deliverySnapshot(delivery), nil)
	return nil
}

func (s *Store) UpdateDelivery(_ context.Context, delivery entities.Delivery) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailUpdateDelivery {
		s.FailUpdateDelivery = false
		return errStoreUnavailable
	}
	old, exists := s.deliveries[delivery.DeliveryID]
	if !exists {
		return domainerrors.ErrDeliveryNotFound
	}
	s.deliveries[delivery.DeliveryID] = delivery
	s.recordChange(events.TypeUpdate, events.EntityDelivery, delivery.DeliveryID, deliverySnapshot(delivery), deliverySnapshot(old))
	return nil
}

func (s *Store) GetDispute(_ context.Context, disputeID string) (entities.Dispute, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.disputes[strings.TrimSpace(disputeID)]
	if !exists {
		return entities.Dispute{}, domainerrors.ErrDisputeNotFound
	}
	return item, nil
}

func (s *Store) CreateDispute(_ context.Context, dispute entities.Dispute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disputes[dispute.DisputeID] = dispute
	s.recordChange(events.TypeCreate, events.EntityDispute, dispute.DisputeID, disputeSnapshot(dispute), nil)
	return nil
}

func (s *Store) UpdateDispute(_ context.Context, dispute entities.Dispute) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, exists := s.disputes[dispute.DisputeID]
	if !exists {
		return domainerrors.ErrDisputeNotFound
	}
	s.disputes[dispute.DisputeID] = dispute
	s.recordChange(events.TypeUpdate, events.EntityDispute, dispute.DisputeID, disputeSnapshot(dispute), disputeSnapshot(old))
	return nil
}

func (s *Store) DeleteDispute(_ context.Context, disputeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, exists := s.disputes[disputeID]
	if !exists {
		return domainerrors.ErrDisputeNotFound
	}
	delete(s.disputes, disputeID)
	s.recordChange(events.TypeDelete, events.EntityDispute, disputeID, disputeSnapshot(old), nil)
	return nil
}

func (s *Store) GetBrandByUser(_ context.Context, userID string) (entities.BrandProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.brands {
		if item.UserID == userID {
			return item, nil
		}
	}
	return entities.BrandProfile{}, domainerrors.ErrBrandNotFound
}

func (s *Store) GetCreatorByUser(_ context.Context, userID string) (entities.CreatorProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.creators {
		if item.UserID == userID {
			return item, nil
		}
	}
	return entities.CreatorProfile{}, domainerrors.ErrCreatorNotFound
}

func (s *Store) GetCreator(_ context.Context, creatorID string) (entities.CreatorProfile, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.creators[strings.TrimSpace(creatorID)]
	return item, exists, nil
}

func (s *Store) UpdateCreator(_ context.Context, creator entities.CreatorProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.creators[creator.CreatorID]; !exists {
		return domainerrors.ErrCreatorNotFound
	}
	s.creators[creator.CreatorID] = creator
	return nil
}

func (s *Store) AppendAudit(_ context.Context, entry entities.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.audit = append(s.audit, entry)
	return nil
}

// ListAudit returns a copy of the audit trail, oldest first.
func (s *Store) ListAudit() []entities.AuditEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]entities.AuditEntry(nil), s.audit...)
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]outbox.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]outbox.Message, 0, limit)
	for _, row := range s.outboxRows {
		if row.Status != outbox.StatusPending {
			continue
		}
		items = append(items, row)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.outboxRows {
		if row.OutboxID == outboxID {
			s.outboxRows[i].Status = outbox.StatusPublished
			s.outboxRows[i].PublishedAt = &publishedAt
			return nil
		}
	}
	return errOutboxRowMissing
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

// recordChange appends an outbox row; callers hold the write lock.
func (s *Store) recordChange(eventType, entityType, entityID string, data, oldData any) {
	payload, err := json.Marshal(events.ChangeEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Data:       mustMarshal(data),
		OldData:    mustMarshal(oldData),
	})
	if err != nil {
		return
	}
	s.outboxRows = append(s.outboxRows, outbox.Message{
		OutboxID:  uuid.NewString(),
		Topic:     events.Topic(entityType),
		Payload:   payload,
		Status:    outbox.StatusPending,
		CreatedAt: time.Now().UTC(),
	})
}

func mustMarshal(value any) json.RawMessage {
	if value == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return raw
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
