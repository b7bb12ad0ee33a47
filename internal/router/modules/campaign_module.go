package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/crowdfund-backend/internal/container"
	handlers "github.com/oksasatya/crowdfund-backend/internal/interface/http"
	"github.com/oksasatya/crowdfund-backend/internal/interface/middleware"
)

// CampaignModule wires the campaign routes.
// Public: POST /api/projects/upload, GET /api/projects
type CampaignModule struct {
	Handler *handlers.CampaignHandler
}

func NewCampaignModule(h *handlers.CampaignHandler) *CampaignModule {
	return &CampaignModule{Handler: h}
}

func (m *CampaignModule) Register(rg *gin.RouterGroup) {
	uploadLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())
	listLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP())

	rg.POST("/projects/upload", uploadLimiter, m.Handler.Upload)
	rg.GET("/projects", listLimiter, m.Handler.List)
}
