package router

import (
	"github.com/oksasatya/crowdfund-backend/internal/application"
	"github.com/oksasatya/crowdfund-backend/internal/container"
	pginfra "github.com/oksasatya/crowdfund-backend/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/crowdfund-backend/internal/interface/http"
	"github.com/oksasatya/crowdfund-backend/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewUserService(repo, container.GetJWT(), container.GetLogger())
	handler := handlers.NewAuthHandler(svc, container.GetLogger())
	return modules.NewAuthModule(handler, svc)
}

func buildCampaignModule() *modules.CampaignModule {
	repo := pginfra.NewCampaignRepository(container.GetPGPool())
	svc := application.NewCampaignService(repo, container.GetBlobStore(), container.GetLogger())
	handler := handlers.NewCampaignHandler(svc, container.GetLogger())
	return modules.NewCampaignModule(handler)
}

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	r.Add(modules.NewHealthModule())
	r.Add(buildAuthModule())
	r.Add(buildCampaignModule())
}
