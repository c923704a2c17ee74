package entities

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusDraft              CampaignStatus = "draft"
	CampaignStatusActive             CampaignStatus = "active"
	CampaignStatusPaused             CampaignStatus = "paused"
	CampaignStatusApplicationsClosed CampaignStatus = "applications_closed"
	CampaignStatusCompleted          CampaignStatus = "completed"
	CampaignStatusCancelled          CampaignStatus = "cancelled"
)

type Campaign struct {
	CampaignID        string
	BrandID           string
	Title             string
	Status            CampaignStatus
	SlotsTotal        int
	SlotsFilled       int
	TotalApplications int
	Deadline          *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Accepting reports whether the campaign can still accept pending applications.
func (c Campaign) Accepting() bool {
	return c.Status == CampaignStatusActive || c.Status == CampaignStatusApplicationsClosed
}

func (c Campaign) SlotsAvailable() bool {
	return c.SlotsFilled < c.SlotsTotal
}

func (c Campaign) ValidateCreate() bool {
	return strings.TrimSpace(c.BrandID) != "" && c.SlotsTotal >= 1
}
