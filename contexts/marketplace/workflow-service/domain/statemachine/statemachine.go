package statemachine

import (
	"errors"
	"fmt"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
)

// ErrInvalidTransition is the sentinel matched by errors.Is for any rejected
// status transition. The concrete *TransitionError carries entity/from/to.
var ErrInvalidTransition = errors.New("invalid status transition")

type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %q to %q", e.Entity, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// Transition tables. No backward edges exist except those explicitly listed;
// terminal states have no outgoing edges and are simply absent.
var campaignTransitions = map[entities.CampaignStatus][]entities.CampaignStatus{
	entities.CampaignStatusDraft: {
		entities.CampaignStatusActive,
		entities.CampaignStatusCancelled,
	},
	entities.CampaignStatusActive: {
		entities.CampaignStatusPaused,
		entities.CampaignStatusApplicationsClosed,
		entities.CampaignStatusCompleted,
		entities.CampaignStatusCancelled,
	},
	entities.CampaignStatusPaused: {
		entities.CampaignStatusActive,
		entities.CampaignStatusCancelled,
	},
	entities.CampaignStatusApplicationsClosed: {
		entities.CampaignStatusActive,
		entities.CampaignStatusCompleted,
		entities.CampaignStatusCancelled,
	},
}

var applicationTransitions = map[entities.ApplicationStatus][]entities.ApplicationStatus{
	entities.ApplicationStatusPending: {
		entities.ApplicationStatusAccepted,
		entities.ApplicationStatusRejected,
		entities.ApplicationStatusWithdrawn,
	},
	entities.ApplicationStatusAccepted: {
		entities.ApplicationStatusCompleted,
	},
}

var deliveryTransitions = map[entities.DeliveryStatus][]entities.DeliveryStatus{
	entities.DeliveryStatusPending: {
		entities.DeliveryStatusSubmitted,
	},
	entities.DeliveryStatusSubmitted: {
		entities.DeliveryStatusApproved,
		entities.DeliveryStatusContested,
		entities.DeliveryStatusInDispute,
	},
}

var disputeTransitions = map[entities.DisputeStatus][]entities.DisputeStatus{
	entities.DisputeStatusOpen: {
		entities.DisputeStatusUnderReview,
		entities.DisputeStatusResolvedCreatorFavor,
		entities.DisputeStatusResolvedBrandFavor,
	},
	entities.DisputeStatusUnderReview: {
		entities.DisputeStatusResolvedCreatorFavor,
		entities.DisputeStatusResolvedBrandFavor,
	},
}

func check[S ~string](entity string, table map[S][]S, from, to S) error {
	for _, allowed := range table[from] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{Entity: entity, From: string(from), To: string(to)}
}

func CheckCampaign(from, to entities.CampaignStatus) error {
	return check("campaign", campaignTransitions, from, to)
}

func CheckApplication(from, to entities.ApplicationStatus) error {
	return check("application", applicationTransitions, from, to)
}

func CheckDelivery(from, to entities.DeliveryStatus) error {
	return check("delivery", deliveryTransitions, from, to)
}

func CheckDispute(from, to entities.DisputeStatus) error {
	return check("dispute", disputeTransitions, from, to)
}

// AllowedCampaign returns the legal next statuses from the given one.
func AllowedCampaign(from entities.CampaignStatus) []entities.CampaignStatus {
	return append([]entities.CampaignStatus(nil), campaignTransitions[from]...)
}
