package events

// Entity type names carried in ChangeEvent.EntityType.
const (
	EntityCampaign    = "campaign"
	EntityApplication = "application"
	EntityDelivery    = "delivery"
	EntityDispute     = "dispute"
)

// Snapshot payloads are the cross-context contract inside ChangeEvent.Data
// and ChangeEvent.OldData. Consumers must not assume more than these fields.

type CampaignSnapshot struct {
	CampaignID string `json:"campaign_id"`
	BrandID    string `json:"brand_id"`
	Status     string `json:"status"`
}

type ApplicationSnapshot struct {
	ApplicationID string `json:"application_id"`
	CampaignID    string `json:"campaign_id"`
	CreatorID     string `json:"creator_id"`
	BrandID       string `json:"brand_id"`
	Status        string `json:"status"`
}

type DeliverySnapshot struct {
	DeliveryID    string `json:"delivery_id"`
	ApplicationID string `json:"application_id"`
	CampaignID    string `json:"campaign_id"`
	CreatorID     string `json:"creator_id"`
	BrandID       string `json:"brand_id"`
	Status        string `json:"status"`
}

type DisputeSnapshot struct {
	DisputeID  string `json:"dispute_id"`
	DeliveryID string `json:"delivery_id"`
	BrandID    string `json:"brand_id"`
	CreatorID  string `json:"creator_id"`
	Status     string `json:"status"`
}
