package statemachine

import (
	"errors"
	"testing"

	"brandcast/contexts/marketplace/workflow-service/domain/entities"
)

func TestCampaignTransitions(t *testing.T) {
	if err := CheckCampaign(entities.CampaignStatusDraft, entities.CampaignStatusActive); err != nil {
		t.Fatalf("draft->active should be allowed: %v", err)
	}
	if err := CheckCampaign(entities.CampaignStatusPaused, entities.CampaignStatusActive); err != nil {
		t.Fatalf("paused->active should be allowed: %v", err)
	}
	if err := CheckCampaign(entities.CampaignStatusCompleted, entities.CampaignStatusActive); err == nil {
		t.Fatalf("completed is terminal, expected rejection")
	}
	if err := CheckCampaign(entities.CampaignStatusActive, entities.CampaignStatusDraft); err == nil {
		t.Fatalf("active->draft is a backward edge, expected rejection")
	}
}

func TestApplicationTransitions(t *testing.T) {
	if err := CheckApplication(entities.ApplicationStatusPending, entities.ApplicationStatusAccepted); err != nil {
		t.Fatalf("pending->accepted should be allowed: %v", err)
	}
	if err := CheckApplication(entities.ApplicationStatusAccepted, entities.ApplicationStatusPending); err == nil {
		t.Fatalf("accepted->pending should be rejected")
	}
	if err := CheckApplication(entities.ApplicationStatusRejected, entities.ApplicationStatusAccepted); err == nil {
		t.Fatalf("rejected is terminal, expected rejection")
	}
}

func TestDeliveryTransitions(t *testing.T) {
	if err := CheckDelivery(entities.DeliveryStatusPending, entities.DeliveryStatusSubmitted); err != nil {
		t.Fatalf("pending->submitted should be allowed: %v", err)
	}
	if err := CheckDelivery(entities.DeliveryStatusPending, entities.DeliveryStatusApproved); err == nil {
		t.Fatalf("pending->approved skips submission, expected rejection")
	}
	if err := CheckDelivery(entities.DeliveryStatusSubmitted, entities.DeliveryStatusInDispute); err != nil {
		t.Fatalf("submitted->in_dispute should be allowed: %v", err)
	}
}

func TestDisputeTransitions(t *testing.T) {
	if err := CheckDispute(entities.DisputeStatusOpen, entities.DisputeStatusResolvedCreatorFavor); err != nil {
		t.Fatalf("open->resolved_creator_favor should be allowed: %v", err)
	}
	if err := CheckDispute(entities.DisputeStatusResolvedBrandFavor, entities.DisputeStatusUnderReview); err == nil {
		t.Fatalf("resolved disputes are terminal, expected rejection")
	}
}

func TestTransitionErrorMatchesSentinel(t *testing.T) {
	err := CheckDelivery(entities.DeliveryStatusPending, entities.DeliveryStatusApproved)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	var transitionErr *TransitionError
	if !errors.As(err, &transitionErr) {
		t.Fatalf("expected *TransitionError, got %T", err)
	}
	if transitionErr.Entity != "delivery" || transitionErr.From != "pending" || transitionErr.To != "approved" {
		t.Fatalf("unexpected transition error fields: %+v", transitionErr)
	}
}
