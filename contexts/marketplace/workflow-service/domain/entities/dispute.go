package entities

import "time"

type DisputeStatus string

const (
	DisputeStatusOpen                 DisputeStatus = "open"
	DisputeStatusUnderReview          DisputeStatus = "under_review"
	DisputeStatusResolvedCreatorFavor DisputeStatus = "resolved_creator_favor"
	DisputeStatusResolvedBrandFavor   DisputeStatus = "resolved_brand_favor"
)

type Dispute struct {
	DisputeID  string
	DeliveryID string
	CampaignID string
	BrandID    string
	CreatorID  string
	Status     DisputeStatus
	RaisedBy   string
	Reason     string
	Resolution string
	ResolvedBy string
	ResolvedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Resolvable reports whether the dispute can still be decided by an admin.
func (d Dispute) Resolvable() bool {
	return d.Status == DisputeStatusOpen || d.Status == DisputeStatusUnderReview
}
