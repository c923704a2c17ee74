package outbox

import "time"

const (
	StatusPending   = "pending"
	StatusPublished = "published"
	StatusFailed    = "failed"
)

// Message is an outbox row recorded alongside the state change that produced it.
// The worker relay reads pending rows and publishes them to the change bus.
type Message struct {
	OutboxID    string
	Topic       string
	Payload     []byte
	Status      string
	RetryCount  int
	CreatedAt   time.Time
	PublishedAt *time.Time
}
