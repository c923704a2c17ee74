package postgresadapter

import (
	"encoding/json"
	"time"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
)

type campaignModel struct {
	CampaignID        string     `gorm:"primaryKey;column:campaign_id"`
	BrandID           string     `gorm:"column:brand_id;index"`
	Title             string     `gorm:"column:title"`
	Status            string     `gorm:"column:status;index"`
	SlotsTotal        int        `gorm:"column:slots_total"`
	SlotsFilled       int        `gorm:"column:slots_filled"`
	TotalApplications int        `gorm:"column:total_applications"`
	Deadline          *time.Time `gorm:"column:deadline"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (campaignModel) TableName() string { return "campaigns" }

func campaignModelFromEntity(c entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID:        c.CampaignID,
		BrandID:           c.BrandID,
		Title:             c.Title,
		Status:            string(c.Status),
		SlotsTotal:        c.SlotsTotal,
		SlotsFilled:       c.SlotsFilled,
		TotalApplications: c.TotalApplications,
		Deadline:          c.Deadline,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID:        m.CampaignID,
		BrandID:           m.BrandID,
		Title:             m.Title,
		Status:            entities.CampaignStatus(m.Status),
		SlotsTotal:        m.SlotsTotal,
		SlotsFilled:       m.SlotsFilled,
		TotalApplications: m.TotalApplications,
		Deadline:          m.Deadline,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

type applicationModel struct {
	ApplicationID string     `gorm:"primaryKey;column:application_id"`
	CampaignID    string     `gorm:"column:campaign_id;uniqueIndex:ux_applications_campaign_creator"`
	CreatorID     string     `gorm:"column:creator_id;uniqueIndex:ux_applications_campaign_creator"`
	BrandID       string     `gorm:"column:brand_id;index"`
	Status        string     `gorm:"column:status;index"`
	Message       string     `gorm:"column:message"`
	ProposedRate  *float64   `gorm:"column:proposed_rate"`
	AgreedRate    *float64   `gorm:"column:agreed_rate"`
	AcceptedAt    *time.Time `gorm:"column:accepted_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (applicationModel) TableName() string { return "applications" }

func applicationModelFromEntity(a entities.Application) applicationModel {
	return applicationModel{
		ApplicationID: a.ApplicationID,
		CampaignID:    a.CampaignID,
		CreatorID:     a.CreatorID,
		BrandID:       a.BrandID,
		Status:        string(a.Status),
		Message:       a.Message,
		ProposedRate:  a.ProposedRate,
		AgreedRate:    a.AgreedRate,
		AcceptedAt:    a.AcceptedAt,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m applicationModel) toEntity() entities.Application {
	return entities.Application{
		ApplicationID: m.ApplicationID,
		CampaignID:    m.CampaignID,
		CreatorID:     m.CreatorID,
		BrandID:       m.BrandID,
		Status:        entities.ApplicationStatus(m.Status),
		Message:       m.Message,
		ProposedRate:  m.ProposedRate,
		AgreedRate:    m.AgreedRate,
		AcceptedAt:    m.AcceptedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type deliveryModel struct {
	DeliveryID    string     `gorm:"primaryKey;column:delivery_id"`
	ApplicationID string     `gorm:"column:application_id;uniqueIndex"`
	CampaignID    string     `gorm:"column:campaign_id;index"`
	CreatorID     string     `gorm:"column:creator_id;index"`
	BrandID       string     `gorm:"column:brand_id;index"`
	Status        string     `gorm:"column:status;index"`
	PaymentStatus string     `gorm:"column:payment_status"`
	Deadline      *time.Time `gorm:"column:deadline"`
	SubmittedAt   *time.Time `gorm:"column:submitted_at"`
	ApprovedAt    *time.Time `gorm:"column:approved_at"`
	ReviewedAt    *time.Time `gorm:"column:reviewed_at"`
	OnTime        *bool      `gorm:"column:on_time"`
	ProofURLs     string     `gorm:"column:proof_urls"`
	ContentURLs   string     `gorm:"column:content_urls"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (deliveryModel) TableName() string { return "deliveries" }

func deliveryModelFromEntity(d entities.Delivery) deliveryModel {
	return deliveryModel{
		DeliveryID:    d.DeliveryID,
		ApplicationID: d.ApplicationID,
		CampaignID:    d.CampaignID,
		CreatorID:     d.CreatorID,
		BrandID:       d.BrandID,
		Status:        string(d.Status),
		PaymentStatus: string(d.PaymentStatus),
		Deadline:      d.Deadline,
		SubmittedAt:   d.SubmittedAt,
		ApprovedAt:    d.ApprovedAt,
		ReviewedAt:    d.ReviewedAt,
		OnTime:        d.OnTime,
		ProofURLs:     marshalURLs(d.ProofURLs),
		ContentURLs:   marshalURLs(d.ContentURLs),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m deliveryModel) toEntity() entities.Delivery {
	return entities.Delivery{
		DeliveryID:    m.DeliveryID,
		ApplicationID: m.ApplicationID,
		CampaignID:    m.CampaignID,
		CreatorID:     m.CreatorID,
		BrandID:       m.BrandID,
		Status:        entities.DeliveryStatus(m.Status),
		PaymentStatus: entities.PaymentStatus(m.PaymentStatus),
		Deadline:      m.Deadline,
		SubmittedAt:   m.SubmittedAt,
		ApprovedAt:    m.ApprovedAt,
		ReviewedAt:    m.ReviewedAt,
		OnTime:        m.OnTime,
		ProofURLs:     unmarshalURLs(m.ProofURLs),
		ContentURLs:   unmarshalURLs(m.ContentURLs),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

type disputeModel struct {
	DisputeID  string     `gorm:"primaryKey;column:dispute_id"`
	DeliveryID string     `gorm:"column:delivery_id;index"`
	CampaignID string     `gorm:"column:campaign_id;index"`
	BrandID    string     `gorm:"column:brand_id"`
	CreatorID  string     `gorm:"column:creator_id"`
	Status     string     `gorm:"column:status;index"`
	RaisedBy   string     `gorm:"column:raised_by"`
	Reason     string     `gorm:"column:reason"`
	Resolution string     `gorm:"column:resolution"`
	ResolvedBy string     `gorm:"column:resolved_by"`
	ResolvedAt *time.Time `gorm:"column:resolved_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (disputeModel) TableName() string { return "disputes" }

func disputeModelFromEntity(d entities.Dispute) disputeModel {
	return disputeModel{
		DisputeID:  d.DisputeID,
		DeliveryID: d.DeliveryID,
		CampaignID: d.CampaignID,
		BrandID:    d.BrandID,
		CreatorID:  d.CreatorID,
		Status:     string(d.Status),
		RaisedBy:   d.RaisedBy,
		Reason:     d.Reason,
		Resolution: d.Resolution,
		ResolvedBy: d.ResolvedBy,
		ResolvedAt: d.ResolvedAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (m disputeModel) toEntity() entities.Dispute {
	return entities.Dispute{
		DisputeID:  m.DisputeID,
		DeliveryID: m.DeliveryID,
		CampaignID: m.CampaignID,
		BrandID:    m.BrandID,
		CreatorID:  m.CreatorID,
		Status:     entities.DisputeStatus(m.Status),
		RaisedBy:   m.RaisedBy,
		Reason:     m.Reason,
		Resolution: m.Resolution,
		ResolvedBy: m.ResolvedBy,
		ResolvedAt: m.ResolvedAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

type creatorModel struct {
	CreatorID          string     `gorm:"primaryKey;column:creator_id"`
	UserID             string     `gorm:"column:user_id;uniqueIndex"`
	DisplayName        string     `gorm:"column:display_name"`
	SubscriptionStatus string     `gorm:"column:subscription_status"`
	TrialEndsAt        *time.Time `gorm:"column:trial_ends_at"`
	CompletedCampaigns int        `gorm:"column:completed_campaigns"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (creatorModel) TableName() string { return "creator_profiles" }

func (m creatorModel) toEntity() entities.CreatorProfile {
	return entities.CreatorProfile{
		CreatorID:          m.CreatorID,
		UserID:             m.UserID,
		DisplayName:        m.DisplayName,
		SubscriptionStatus: entities.SubscriptionStatus(m.SubscriptionStatus),
		TrialEndsAt:        m.TrialEndsAt,
		CompletedCampaigns: m.CompletedCampaigns,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

type brandModel struct {
	BrandID     string    `gorm:"primaryKey;column:brand_id"`
	UserID      string    `gorm:"column:user_id;uniqueIndex"`
	CompanyName string    `gorm:"column:company_name"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (brandModel) TableName() string { return "brand_profiles" }

func (m brandModel) toEntity() entities.BrandProfile {
	return entities.BrandProfile{
		BrandID:     m.BrandID,
		UserID:      m.UserID,
		CompanyName: m.CompanyName,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type auditModel struct {
	AuditID        string    `gorm:"primaryKey;column:audit_id"`
	AdminID        string    `gorm:"column:admin_id;index"`
	Action         string    `gorm:"column:action;index"`
	TargetUserID   string    `gorm:"column:target_user_id"`
	TargetEntityID string    `gorm:"column:target_entity_id"`
	Details        string    `gorm:"column:details"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (auditModel) TableName() string { return "audit_log" }

type outboxModel struct {
	OutboxID    string     `gorm:"primaryKey;column:outbox_id"`
	Topic       string     `gorm:"column:topic"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status;index"`
	RetryCount  int        `gorm:"column:retry_count"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "workflow_outbox" }

func marshalURLs(urls []string) string {
	if len(urls) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(urls)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func unmarshalURLs(raw string) []string {
	if raw == "" {
		return nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err != nil {
		return nil
	}
	if len(urls) == 0 {
		return nil
	}
	return urls
}
