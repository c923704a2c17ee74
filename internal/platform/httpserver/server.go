package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	progressservice "brandcast/contexts/marketplace/progress-service"
	workflowservice "brandcast/contexts/marketplace/workflow-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "brandcast/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	workflow workflowservice.Module
	progress progressservice.Module
}

func New(
	workflow workflowservice.Module,
	progress progressservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		workflow: workflow,
		progress: progress,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_id}/status", s.handleChangeCampaignStatus)
	s.mux.HandleFunc("POST /v1/campaigns/{campaign_id}/apply", s.handleApplyToCampaign)
	s.mux.HandleFunc("GET /v1/campaigns/{campaign_id}/applications", s.handleListApplications)
	s.mux.HandleFunc("POST /v1/applications/{application_id}/accept", s.handleAcceptApplication)
	s.mux.HandleFunc("POST /v1/deliveries/{delivery_id}/submit", s.handleSubmitDelivery)
	s.mux.HandleFunc("GET /v1/deliveries/{delivery_id}", s.handleGetDelivery)
	s.mux.HandleFunc("POST /v1/deliveries/{delivery_id}/approve", s.handleApproveDelivery)
	s.mux.HandleFunc("POST /v1/deliveries/{delivery_id}/dispute", s.handleRaiseDispute)
	s.mux.HandleFunc("GET /v1/disputes/{dispute_id}", s.handleGetDispute)
	s.mux.HandleFunc("POST /v1/disputes/{dispute_id}/resolve", s.handleResolveDispute)

	s.mux.HandleFunc("POST /v1/progress/notify", s.handleProgressNotify)
	s.mux.HandleFunc("GET /v1/progress/missions", s.handleListMissions)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
