package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCampaignRequest struct {
	Title      string  `json:"title"`
	SlotsTotal int     `json:"slots_total"`
	Deadline   *string `json:"deadline,omitempty"`
}

type ChangeCampaignStatusRequest struct {
	Status string `json:"status"`
}

type ApplyToCampaignRequest struct {
	Message      string   `json:"message,omitempty"`
	ProposedRate *float64 `json:"proposed_rate,omitempty"`
}

type AcceptApplicationRequest struct {
	AgreedRate *float64 `json:"agreed_rate,omitempty"`
}

type SubmitDeliveryRequest struct {
	ContentURLs []string `json:"content_urls"`
	ProofURLs   []string `json:"proof_urls,omitempty"`
}

type RaiseDisputeRequest struct {
	Reason string `json:"reason"`
}

type ResolveDisputeRequest struct {
	Resolution     string `json:"resolution"`
	ResolutionType string `json:"resolution_type"`
}

type CampaignDTO struct {
	CampaignID        string `json:"campaign_id"`
	BrandID           string `json:"brand_id"`
	Title             string `json:"title"`
	Status            string `json:"status"`
	SlotsTotal        int    `json:"slots_total"`
	SlotsFilled       int    `json:"slots_filled"`
	TotalApplications int    `json:"total_applications"`
	Deadline          string `json:"deadline,omitempty"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

type ApplicationDTO struct {
	ApplicationID string   `json:"application_id"`
	CampaignID    string   `json:"campaign_id"`
	CreatorID     string   `json:"creator_id"`
	BrandID       string   `json:"brand_id"`
	Status        string   `json:"status"`
	Message       string   `json:"message,omitempty"`
	ProposedRate  *float64 `json:"proposed_rate,omitempty"`
	AgreedRate    *float64 `json:"agreed_rate,omitempty"`
	AcceptedAt    string   `json:"accepted_at,omitempty"`
	CreatedAt     string   `json:"created_at"`
}

type DeliveryDTO struct {
	DeliveryID    string   `json:"delivery_id"`
	ApplicationID string   `json:"application_id"`
	CampaignID    string   `json:"campaign_id"`
	CreatorID     string   `json:"creator_id"`
	BrandID       string   `json:"brand_id"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status,omitempty"`
	Deadline      string   `json:"deadline,omitempty"`
	SubmittedAt   string   `json:"submitted_at,omitempty"`
	ApprovedAt    string   `json:"approved_at,omitempty"`
	OnTime        *bool    `json:"on_time,omitempty"`
	ContentURLs   []string `json:"content_urls,omitempty"`
	ProofURLs     []string `json:"proof_urls,omitempty"`
}

type DisputeDTO struct {
	DisputeID  string `json:"dispute_id"`
	DeliveryID string `json:"delivery_id"`
	CampaignID string `json:"campaign_id"`
	BrandID    string `json:"brand_id"`
	CreatorID  string `json:"creator_id"`
	Status     string `json:"status"`
	RaisedBy   string `json:"raised_by"`
	Reason     string `json:"reason,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	ResolvedBy string `json:"resolved_by,omitempty"`
	ResolvedAt string `json:"resolved_at,omitempty"`
}

type CreatorDTO struct {
	CreatorID          string `json:"creator_id"`
	UserID             string `json:"user_id"`
	SubscriptionStatus string `json:"subscription_status"`
	CompletedCampaigns int    `json:"completed_campaigns"`
}

type CreateCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ChangeCampaignStatusResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type GetCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ApplyToCampaignResponse struct {
	Application ApplicationDTO `json:"application"`
	Campaign    CampaignDTO    `json:"campaign"`
}

type AcceptApplicationResponse struct {
	Application ApplicationDTO `json:"application"`
	Campaign    CampaignDTO    `json:"campaign"`
	Delivery    DeliveryDTO    `json:"delivery"`
	SlotsFilled int            `json:"slots_filled"`
	SlotsTotal  int            `json:"slots_total"`
}

type ListApplicationsResponse struct {
	Items []ApplicationDTO `json:"items"`
}

type SubmitDeliveryResponse struct {
	Delivery DeliveryDTO `json:"delivery"`
}

type GetDeliveryResponse struct {
	Delivery DeliveryDTO `json:"delivery"`
}

type ApproveDeliveryResponse struct {
	Delivery    DeliveryDTO    `json:"delivery"`
	Application ApplicationDTO `json:"application"`
	Creator     *CreatorDTO    `json:"creator,omitempty"`
}

type RaiseDisputeResponse struct {
	Dispute  DisputeDTO  `json:"dispute"`
	Delivery DeliveryDTO `json:"delivery"`
}

type GetDisputeResponse struct {
	Dispute DisputeDTO `json:"dispute"`
}

type ResolveDisputeResponse struct {
	Success bool       `json:"success"`
	Dispute DisputeDTO `json:"dispute"`
}
