package progressservice

import (
	"log/slog"

	httpadapter "brandcast/contexts/marketplace/progress-service/adapters/http"
	"brandcast/contexts/marketplace/progress-service/adapters/memory"
	application "brandcast/contexts/marketplace/progress-service/application"
	"brandcast/contexts/marketplace/progress-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Tracker application.Tracker
	Store   *memory.Store
}

type Dependencies struct {
	Missions ports.MissionRepository
	Profiles ports.ProfileResolver
	Counter  ports.ActivityCounter
	Clock    ports.Clock
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	tracker := application.Tracker{
		Missions: deps.Missions,
		Profiles: deps.Profiles,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Tracker: tracker,
		Handler: httpadapter.Handler{
			Tracker: tracker,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed memory.Seed, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Missions: store,
		Profiles: store,
		Counter:  store,
		Clock:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
