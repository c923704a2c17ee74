package entities

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusFree    SubscriptionStatus = "free"
	SubscriptionStatusTrial   SubscriptionStatus = "trial"
	SubscriptionStatusPremium SubscriptionStatus = "premium"
	SubscriptionStatusLegacy  SubscriptionStatus = "legacy"
)

// CreatorProfile is the creator side of a user account.
type CreatorProfile struct {
	CreatorID          string
	UserID             string
	DisplayName        string
	SubscriptionStatus SubscriptionStatus
	TrialEndsAt        *time.Time
	CompletedCampaigns int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Subscribed reports whether the creator may apply to campaigns at the given
// instant: a paid plan, a grandfathered legacy plan, or an unexpired trial.
func (p CreatorProfile) Subscribed(now time.Time) bool {
	switch p.SubscriptionStatus {
	case SubscriptionStatusPremium, SubscriptionStatusLegacy:
		return true
	case SubscriptionStatusTrial:
		return p.TrialEndsAt != nil && now.Before(*p.TrialEndsAt)
	default:
		return false
	}
}

// BrandProfile is the brand side of a user account.
type BrandProfile struct {
	BrandID     string
	UserID      string
	CompanyName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
