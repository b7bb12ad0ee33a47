package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/crowdfund-backend/internal/application"
	"github.com/oksasatya/crowdfund-backend/pkg/response"
	"github.com/oksasatya/crowdfund-backend/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing fields", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var verr application.ValidationError
		var cerr application.ConflictError
		switch {
		case errors.As(err, &verr):
			response.Error[any](c, http.StatusBadRequest, verr.Error(), nil)
		case errors.As(err, &cerr):
			response.Error[any](c, http.StatusBadRequest, cerr.Error(), nil)
		default:
			h.Logger.WithError(err).Error("signup failed")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": u.ID, "email": u.Email, "name": u.Name}, "user created")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing fields", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var aerr application.AuthError
		if errors.As(err, &aerr) {
			response.Error[any](c, http.StatusBadRequest, aerr.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "expires_at": exp}, "login successful")
}

// Protected GET /api/auth/protected
// Reached only through the token middleware; echoes the subject id the
// token carries.
func (h *AuthHandler) Protected(c *gin.Context) {
	uid := c.GetString("userID")
	response.Success(c, http.StatusOK, gin.H{"subjectId": uid}, "access granted")
}
