package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	progressservice "brandcast/contexts/marketplace/progress-service"
	progressmemory "brandcast/contexts/marketplace/progress-service/adapters/memory"
	progressports "brandcast/contexts/marketplace/progress-service/ports"
	workflowservice "brandcast/contexts/marketplace/workflow-service"
	workflowmemory "brandcast/contexts/marketplace/workflow-service/adapters/memory"
	"brandcast/contexts/marketplace/workflow-service/domain/entities"
)

func newTestServer() *Server {
	created := time.Now().UTC().Add(-48 * time.Hour)
	workflow := workflowservice.NewInMemoryModule(workflowmemory.Seed{
		Brands: []entities.BrandProfile{
			{BrandID: "brand-1", UserID: "user-brand-1", CompanyName: "Acme"},
		},
		Creators: []entities.CreatorProfile{
			{
				CreatorID:          "creator-1",
				UserID:             "user-creator-1",
				SubscriptionStatus: entities.SubscriptionStatusPremium,
			},
		},
		Campaigns: []entities.Campaign{
			{
				CampaignID: "campaign-1",
				BrandID:    "brand-1",
				Title:      "Spring launch",
				Status:     entities.CampaignStatusActive,
				SlotsTotal: 1,
				CreatedAt:  created,
				UpdatedAt:  created,
			},
		},
		Applications: []entities.Application{
			{
				ApplicationID: "application-1",
				CampaignID:    "campaign-1",
				CreatorID:     "creator-1",
				BrandID:       "brand-1",
				Status:        entities.ApplicationStatusPending,
				CreatedAt:     created,
				UpdatedAt:     created,
			},
		},
	}, nil)

	progress := progressservice.NewInMemoryModule(progressmemory.Seed{
		Missions: []progressports.Mission{
			{
				MissionID:    "mission-1",
				UserID:       "user-creator-1",
				ProfileType:  progressports.ProfileCreator,
				TargetAction: progressports.ActionApplyCampaign,
				TargetValue:  1,
				Status:       progressports.MissionStatusActive,
				CreatedAt:    created,
				UpdatedAt:    created,
			},
		},
		CreatorUsers: map[string]string{"creator-1": "user-creator-1"},
		BrandUsers:   map[string]string{"brand-1": "user-brand-1"},
	}, nil)

	return New(workflow, progress, nil, "")
}

func TestAcceptApplicationEndpoint(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/applications/application-1/accept", bytes.NewReader([]byte(`{"agreed_rate":150}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-brand-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Application struct {
			Status string `json:"status"`
		} `json:"application"`
		SlotsFilled int `json:"slots_filled"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Application.Status != "accepted" || resp.SlotsFilled != 1 {
		t.Fatalf("unexpected response: %s", rr.Body.String())
	}
}

func TestAcceptApplicationRequiresIdentityHeader(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/applications/application-1/accept", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAcceptApplicationForeignBrandIsForbidden(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/applications/application-1/accept", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "user-creator-1")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestApproveUnsubmittedDeliveryConflicts(t *testing.T) {
	server := newTestServer()

	accept := httptest.NewRequest(http.MethodPost, "/v1/applications/application-1/accept", bytes.NewReader([]byte(`{}`)))
	accept.Header.Set("Content-Type", "application/json")
	accept.Header.Set("X-User-Id", "user-brand-1")
	acceptRR := httptest.NewRecorder()
	server.mux.ServeHTTP(acceptRR, accept)
	if acceptRR.Code != http.StatusOK {
		t.Fatalf("accept failed: %d body=%s", acceptRR.Code, acceptRR.Body.String())
	}
	var acceptResp struct {
		Delivery struct {
			DeliveryID string `json:"delivery_id"`
		} `json:"delivery"`
	}
	if err := json.Unmarshal(acceptRR.Body.Bytes(), &acceptResp); err != nil {
		t.Fatalf("decode accept response: %v", err)
	}

	approve := httptest.NewRequest(http.MethodPost, "/v1/deliveries/"+acceptResp.Delivery.DeliveryID+"/approve", nil)
	approve.Header.Set("X-User-Id", "user-brand-1")
	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, approve)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for pending delivery approval, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestResolveDisputeWithoutAdminHeaderIsForbidden(t *testing.T) {
	server := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/v1/disputes/dispute-1/resolve",
		bytes.NewReader([]byte(`{"resolution":"done","resolution_type":"resolved_creator_favor"}`)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestProgressNotifyCompletesMission(t *testing.T) {
	server := newTestServer()

	body := []byte(`{
		"event_type": "create",
		"entity_type": "application",
		"data": {"application_id":"application-9","campaign_id":"campaign-1","creator_id":"creator-1","brand_id":"brand-1","status":"pending"}
	}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/progress/notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Updates []struct {
			MissionID   string `json:"mission_id"`
			NewProgress int    `json:"new_progress"`
			IsComplete  bool   `json:"is_complete"`
		} `json:"updates"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Updates) != 1 || !resp.Updates[0].IsComplete {
		t.Fatalf("unexpected updates: %s", rr.Body.String())
	}

	missions := httptest.NewRequest(http.MethodGet, "/v1/progress/missions", nil)
	missions.Header.Set("X-User-Id", "user-creator-1")
	missionsRR := httptest.NewRecorder()
	server.mux.ServeHTTP(missionsRR, missions)
	if missionsRR.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", missionsRR.Code, missionsRR.Body.String())
	}
	var list struct {
		Items []struct {
			Status string `json:"status"`
		} `json:"items"`
	}
	if err := json.Unmarshal(missionsRR.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode missions: %v", err)
	}
	if len(list.Items) != 1 || list.Items[0].Status != "completed" {
		t.Fatalf("unexpected missions: %s", missionsRR.Body.String())
	}
}

func TestProgressNotifyRejectsMalformedSnapshot(t *testing.T) {
	server := newTestServer()

	body := []byte(`{"event_type":"create","entity_type":"application","data":"not-an-object"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/progress/notify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	server.mux.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}
