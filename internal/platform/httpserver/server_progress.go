package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	progresserrors "brandcast/contexts/marketplace/progress-service/domain/errors"
	progresshttp "brandcast/contexts/marketplace/progress-service/transport/http"
)

func (s *Server) handleProgressNotify(w http.ResponseWriter, r *http.Request) {
	var req progresshttp.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProgressError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.progress.Handler.NotifyHandler(r.Context(), req)
	if err != nil {
		writeProgressDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListMissions(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeProgressError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.progress.Handler.ListMissionsHandler(r.Context(), userID)
	if err != nil {
		writeProgressDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeProgressDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, progresserrors.ErrMissionNotFound):
		writeProgressError(w, http.StatusNotFound, "mission_not_found", err.Error())
	case errors.Is(err, progresserrors.ErrInvalidInput):
		writeProgressError(w, http.StatusBadRequest, "invalid_input", err.Error())
	default:
		writeProgressError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeProgressError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, progresshttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
