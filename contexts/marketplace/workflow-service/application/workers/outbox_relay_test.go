package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"brandcast/contexts/marketplace/workflow-service/adapters/memory"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
	"brandcast/internal/shared/events"
)

type capturingPublisher struct {
	published []events.ChangeEvent
	topics    []string
	failOnce  bool
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event events.ChangeEvent) error {
	if p.failOnce {
		p.failOnce = false
		return errors.New("bus unavailable")
	}
	p.topics = append(p.topics, topic)
	p.published = append(p.published, event)
	return nil
}

func seedStoreWithCampaignCreate(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore(memory.Seed{})
	err := store.CreateCampaign(context.Background(), entities.Campaign{
		CampaignID: "campaign-1",
		BrandID:    "brand-1",
		Title:      "Launch",
		Status:     entities.CampaignStatusActive,
		SlotsTotal: 3,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed campaign: %v", err)
	}
	return store
}

func TestOutboxRelayPublishesPendingRows(t *testing.T) {
	store := seedStoreWithCampaignCreate(t)
	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store, BatchSize: 10}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(publisher.published))
	}
	event := publisher.published[0]
	if event.EntityType != events.EntityCampaign || event.EventType != events.TypeCreate || event.EntityID != "campaign-1" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if publisher.topics[0] != events.Topic(events.EntityCampaign) {
		t.Fatalf("unexpected topic: %s", publisher.topics[0])
	}

	// A second cycle must find nothing pending.
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("second relay run failed: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("row was republished, got %d events", len(publisher.published))
	}
}

func TestOutboxRelayKeepsRowPendingOnPublishFailure(t *testing.T) {
	store := seedStoreWithCampaignCreate(t)
	publisher := &capturingPublisher{failOnce: true}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store, BatchSize: 10}

	if err := relay.RunOnce(context.Background()); err == nil {
		t.Fatal("expected publish failure to surface")
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("retry run failed: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected exactly one delivery after retry, got %d", len(publisher.published))
	}
}

func TestOutboxRelayDisabled(t *testing.T) {
	store := seedStoreWithCampaignCreate(t)
	publisher := &capturingPublisher{}
	relay := OutboxRelay{Outbox: store, Publisher: publisher, Clock: store, Disabled: true}

	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("disabled relay must be a no-op: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("disabled relay published %d events", len(publisher.published))
	}
}
