package workflowservice

import (
	"log/slog"

	httpadapter "brandcast/contexts/marketplace/workflow-service/adapters/http"
	"brandcast/contexts/marketplace/workflow-service/adapters/memory"
	"brandcast/contexts/marketplace/workflow-service/application/commands"
	"brandcast/contexts/marketplace/workflow-service/application/queries"
	"brandcast/contexts/marketplace/workflow-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Campaigns    ports.CampaignRepository
	Applications ports.ApplicationRepository
	Deliveries   ports.DeliveryRepository
	Disputes     ports.DisputeRepository
	Profiles     ports.ProfileRepository
	Audit        ports.AuditRecorder
	Clock        ports.Clock
	IDGen        ports.IDGenerator
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns: deps.Campaigns,
		Profiles:  deps.Profiles,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	changeCampaignStatus := commands.ChangeCampaignStatusUseCase{
		Campaigns: deps.Campaigns,
		Profiles:  deps.Profiles,
		Audit:     deps.Audit,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Logger:    deps.Logger,
	}
	applyToCampaign := commands.ApplyToCampaignUseCase{
		Applications: deps.Applications,
		Campaigns:    deps.Campaigns,
		Profiles:     deps.Profiles,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	acceptApplication := commands.AcceptApplicationUseCase{
		Applications: deps.Applications,
		Campaigns:    deps.Campaigns,
		Deliveries:   deps.Deliveries,
		Profiles:     deps.Profiles,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	submitDelivery := commands.SubmitDeliveryUseCase{
		Deliveries: deps.Deliveries,
		Profiles:   deps.Profiles,
		Clock:      deps.Clock,
		Logger:     deps.Logger,
	}
	approveDelivery := commands.ApproveDeliveryUseCase{
		Deliveries:   deps.Deliveries,
		Applications: deps.Applications,
		Profiles:     deps.Profiles,
		Clock:        deps.Clock,
		Logger:       deps.Logger,
	}
	raiseDispute := commands.RaiseDisputeUseCase{
		Disputes:   deps.Disputes,
		Deliveries: deps.Deliveries,
		Profiles:   deps.Profiles,
		Clock:      deps.Clock,
		IDGen:      deps.IDGen,
		Logger:     deps.Logger,
	}
	resolveDispute := commands.ResolveDisputeUseCase{
		Disputes:     deps.Disputes,
		Deliveries:   deps.Deliveries,
		Applications: deps.Applications,
		Profiles:     deps.Profiles,
		Audit:        deps.Audit,
		Clock:        deps.Clock,
		IDGen:        deps.IDGen,
		Logger:       deps.Logger,
	}
	queryUseCase := queries.QueryUseCase{
		Campaigns:    deps.Campaigns,
		Applications: deps.Applications,
		Deliveries:   deps.Deliveries,
		Disputes:     deps.Disputes,
		Logger:       deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign:       createCampaign,
			ChangeCampaignStatus: changeCampaignStatus,
			ApplyToCampaign:      applyToCampaign,
			AcceptApplication:    acceptApplication,
			SubmitDelivery:       submitDelivery,
			ApproveDelivery:      approveDelivery,
			RaiseDispute:         raiseDispute,
			ResolveDispute:       resolveDispute,
			Queries:              queryUseCase,
			Logger:               deps.Logger,
		},
	}
}

func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Campaigns:    store,
		Applications: store,
		Deliveries:   store,
		Disputes:     store,
		Profiles:     store,
		Audit:        store,
		Clock:        store,
		IDGen:        store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
