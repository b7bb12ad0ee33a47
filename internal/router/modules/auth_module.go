package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/crowdfund-backend/internal/container"
	handlers "github.com/oksasatya/crowdfund-backend/internal/interface/http"
	"github.com/oksasatya/crowdfund-backend/internal/interface/middleware"
)

// AuthModule wires the identity routes.
// Public: POST /api/auth/signup, POST /api/auth/login
// Protected: GET /api/auth/protected (raw token header)
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Verifier middleware.TokenVerifier
}

func NewAuthModule(h *handlers.AuthHandler, verifier middleware.TokenVerifier) *AuthModule {
	return &AuthModule{Handler: h, Verifier: verifier}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.TokenAuth(m.Verifier))
	{
		auth.GET("/auth/protected", m.Handler.Protected)
	}
}
