package workers

import (
	"context"
	"log/slog"
	"strings"

	application "brandcast/contexts/marketplace/progress-service/application"
	"brandcast/internal/shared/events"
)

const defaultChangeConsumerGroup = "progress-service-change-cg"

// ChangeSubscriber is the bus side consumed by the mission tracker.
type ChangeSubscriber interface {
	Subscribe(ctx context.Context, topic, consumerGroup string, handler func(context.Context, events.ChangeEvent) error) error
}

// ChangeConsumer feeds workflow entity-change topics into the mission tracker.
// Delivery is at-least-once; the tracker's status-edge gating absorbs replays.
type ChangeConsumer struct {
	Subscriber    ChangeSubscriber
	Tracker       application.Tracker
	ConsumerGroup string
	Disabled      bool
	Logger        *slog.Logger
}

func (c ChangeConsumer) Start(ctx context.Context) error {
	logger := application.ResolveLogger(c.Logger)
	if c.Disabled {
		logger.Info("mission change consumer disabled by feature flag",
			"event", "mission_consumer_disabled",
			"module", "marketplace/progress-service",
			"layer", "worker",
		)
		return nil
	}

	group := strings.TrimSpace(c.ConsumerGroup)
	if group == "" {
		group = defaultChangeConsumerGroup
	}

	topics := []string{
		events.Topic(events.EntityCampaign),
		events.Topic(events.EntityApplication),
		events.Topic(events.EntityDelivery),
	}
	for _, topic := range topics {
		if err := c.Subscriber.Subscribe(ctx, topic, group, c.handleChange); err != nil {
			return err
		}
	}
	return nil
}

func (c ChangeConsumer) handleChange(ctx context.Context, event events.ChangeEvent) error {
	logger := application.ResolveLogger(c.Logger)

	updates, err := c.Tracker.HandleChange(ctx, event)
	if err != nil {
		logger.Error("mission change handling failed",
			"event", "mission_change_failed",
			"module", "marketplace/progress-service",
			"layer", "worker",
			"event_id", event.EventID,
			"entity_type", event.EntityType,
			"error", err.Error(),
		)
		return err
	}

	if len(updates) > 0 {
		logger.Info("mission change consumed",
			"event", "mission_change_consumed",
			"module", "marketplace/progress-service",
			"layer", "worker",
			"event_id", event.EventID,
			"entity_type", event.EntityType,
			"updated_missions", len(updates),
		)
	}
	return nil
}
