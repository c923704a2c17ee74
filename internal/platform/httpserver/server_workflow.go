package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	workflowsaga "brandcast/contexts/marketplace/workflow-service/application/saga"
	workflowerrors "brandcast/contexts/marketplace/workflow-service/domain/errors"
	"brandcast/contexts/marketplace/workflow-service/domain/statemachine"
	workflowhttp "brandcast/contexts/marketplace/workflow-service/transport/http"
)

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workflowhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.CreateCampaignHandler(r.Context(), userID, req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	resp, err := s.workflow.Handler.GetCampaignHandler(r.Context(), r.PathValue("campaign_id"))
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeCampaignStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workflowhttp.ChangeCampaignStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.ChangeCampaignStatusHandler(r.Context(), userID, r.PathValue("campaign_id"), req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApplyToCampaign(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workflowhttp.ApplyToCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.ApplyToCampaignHandler(r.Context(), userID, r.PathValue("campaign_id"), req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.workflow.Handler.ListApplicationsHandler(
		r.Context(),
		r.PathValue("campaign_id"),
		query.Get("creator_id"),
		query.Get("status"),
	)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAcceptApplication(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workflowhttp.AcceptApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.AcceptApplicationHandler(r.Context(), userID, r.PathValue("application_id"), req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitDelivery(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workflowhttp.SubmitDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.SubmitDeliveryHandler(r.Context(), userID, r.PathValue("delivery_id"), req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDelivery(w http.ResponseWriter, r *http.Request) {
	resp, err := s.workflow.Handler.GetDeliveryHandler(r.Context(), r.PathValue("delivery_id"))
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleApproveDelivery(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.workflow.Handler.ApproveDeliveryHandler(r.Context(), userID, r.PathValue("delivery_id"))
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRaiseDispute(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeWorkflowError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req workflowhttp.RaiseDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.RaiseDisputeHandler(r.Context(), userID, r.PathValue("delivery_id"), req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetDispute(w http.ResponseWriter, r *http.Request) {
	resp, err := s.workflow.Handler.GetDisputeHandler(r.Context(), r.PathValue("dispute_id"))
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleResolveDispute(w http.ResponseWriter, r *http.Request) {
	adminID := r.Header.Get("X-Admin-Id")

	var req workflowhttp.ResolveDisputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeWorkflowError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.workflow.Handler.ResolveDisputeHandler(r.Context(), adminID, r.PathValue("dispute_id"), req)
	if err != nil {
		writeWorkflowDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeWorkflowDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workflowerrors.ErrCampaignNotFound):
		writeWorkflowError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, workflowerrors.ErrApplicationNotFound):
		writeWorkflowError(w, http.StatusNotFound, "application_not_found", err.Error())
	case errors.Is(err, workflowerrors.ErrDeliveryNotFound):
		writeWorkflowError(w, http.StatusNotFound, "delivery_not_found", err.Error())
	case errors.Is(err, workflowerrors.ErrDisputeNotFound):
		writeWorkflowError(w, http.StatusNotFound, "dispute_not_found", err.Error())
	case errors.Is(err, workflowerrors.ErrBrandNotFound),
		errors.Is(err, workflowerrors.ErrCreatorNotFound):
		writeWorkflowError(w, http.StatusNotFound, "profile_not_found", err.Error())
	case errors.Is(err, workflowerrors.ErrAdminRequired):
		writeWorkflowError(w, http.StatusForbidden, "admin_required", err.Error())
	case errors.Is(err, workflowerrors.ErrForbidden):
		writeWorkflowError(w, http.StatusForbidden, "forbidden", err.Error())
	case errors.Is(err, statemachine.ErrInvalidTransition):
		writeWorkflowError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, workflowerrors.ErrNoSlots):
		writeWorkflowError(w, http.StatusConflict, "no_slots", err.Error())
	case errors.Is(err, workflowerrors.ErrAlreadyApplied):
		writeWorkflowError(w, http.StatusConflict, "already_applied", err.Error())
	case errors.Is(err, workflowerrors.ErrCampaignNotAccepting):
		writeWorkflowError(w, http.StatusConflict, "campaign_not_accepting", err.Error())
	case errors.Is(err, workflowerrors.ErrCampaignNotActive):
		writeWorkflowError(w, http.StatusConflict, "campaign_not_active", err.Error())
	case errors.Is(err, workflowerrors.ErrSubscriptionRequired):
		writeWorkflowError(w, http.StatusUnprocessableEntity, "subscription_required", err.Error())
	case errors.Is(err, workflowerrors.ErrInvalidInput):
		writeWorkflowError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		var stepErr *workflowsaga.StepError
		if errors.As(err, &stepErr) {
			// The message carries the failed step and rollback outcome.
			writeWorkflowError(w, http.StatusInternalServerError, "workflow_failed", stepErr.Error())
			return
		}
		writeWorkflowError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeWorkflowError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, workflowhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
