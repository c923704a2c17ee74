package errors

import "errors"

var (
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrDeliveryNotFound    = errors.New("delivery not found")
	ErrDisputeNotFound     = errors.New("dispute not found")
	ErrBrandNotFound       = errors.New("brand profile not found")
	ErrCreatorNotFound     = errors.New("creator profile not found")

	ErrForbidden            = errors.New("actor does not own this resource")
	ErrAdminRequired        = errors.New("admin identity is required")
	ErrInvalidInput         = errors.New("invalid workflow input")
	ErrNoSlots              = errors.New("campaign has no open slots")
	ErrAlreadyApplied       = errors.New("creator already applied to this campaign")
	ErrCampaignNotAccepting = errors.New("campaign is not accepting applications")
	ErrCampaignNotActive    = errors.New("campaign is not active")
	ErrSubscriptionRequired = errors.New("an active subscription is required to apply")
)
