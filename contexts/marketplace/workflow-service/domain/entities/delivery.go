package entities

import "time"

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusSubmitted DeliveryStatus = "submitted"
	DeliveryStatusApproved  DeliveryStatus = "approved"
	DeliveryStatusContested DeliveryStatus = "contested"
	DeliveryStatusInDispute DeliveryStatus = "in_dispute"
	DeliveryStatusResolved  DeliveryStatus = "resolved"
	DeliveryStatusClosed    DeliveryStatus = "closed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPayable  PaymentStatus = "payable"
	PaymentStatusWithheld PaymentStatus = "withheld"
)

// Delivery is created exactly once, as a side effect of application acceptance.
// OnTime is computed against Deadline at submission and again at approval.
type Delivery struct {
	DeliveryID    string
	ApplicationID string
	CampaignID    string
	CreatorID     string
	BrandID       string
	Status        DeliveryStatus
	PaymentStatus PaymentStatus
	Deadline      *time.Time
	SubmittedAt   *time.Time
	ApprovedAt    *time.Time
	ReviewedAt    *time.Time
	OnTime        *bool
	ProofURLs     []string
	ContentURLs   []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OnTimeAt reports whether a review at the given instant is within deadline.
// Deliveries without a deadline are always on time.
func (d Delivery) OnTimeAt(now time.Time) bool {
	if d.Deadline == nil {
		return true
	}
	return !now.After(*d.Deadline)
}
