package entities

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

// Application is a creator's bid for one campaign slot.
// Exactly one application exists per (campaign, creator) pair.
type Application struct {
	ApplicationID string
	CampaignID    string
	CreatorID     string
	BrandID       string
	Status        ApplicationStatus
	Message       string
	ProposedRate  *float64
	AgreedRate    *float64
	AcceptedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
