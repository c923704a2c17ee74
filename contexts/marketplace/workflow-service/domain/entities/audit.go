package entities

import "time"

const (
	AuditActionDisputeResolved   = "dispute_resolved"
	AuditActionCampaignCancelled = "campaign_cancelled"
)

// AuditEntry is an append-only record of a privileged mutation.
// Entries are never updated or deleted after creation.
type AuditEntry struct {
	AuditID        string
	AdminID        string
	Action         string
	TargetUserID   string
	TargetEntityID string
	Details        map[string]string
	CreatedAt      time.Time
}
