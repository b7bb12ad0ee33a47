package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/crowdfund-backend/internal/application"
	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
	"github.com/oksasatya/crowdfund-backend/pkg/response"
)

type CampaignHandler struct {
	Svc    *application.CampaignService
	Logger *logrus.Logger
}

func NewCampaignHandler(svc *application.CampaignService, logger *logrus.Logger) *CampaignHandler {
	return &CampaignHandler{Svc: svc, Logger: logger}
}

// projectResponse is the wire shape of a campaign; field names follow the
// public API (projectId/details/upiId), not the storage names.
type projectResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Name         string    `json:"name"`
	Details      string    `json:"details"`
	ImageURL     string    `json:"imageUrl"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	UpiID        string    `json:"upiId"`
	FundingGoal  float64   `json:"fundingGoal"`
	AmountRaised float64   `json:"amountRaised"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toProjectResponse(c *entity.Campaign) projectResponse {
	return projectResponse{
		ID:           c.ID,
		ProjectID:    c.CampaignID,
		Name:         c.Name,
		Details:      c.Description,
		ImageURL:     c.ImageRef,
		Email:        c.Contact.Email,
		Phone:        c.Contact.Phone,
		UpiID:        c.Contact.PayoutID,
		FundingGoal:  c.FundingGoal,
		AmountRaised: c.AmountRaised,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// Upload POST /api/projects/upload (multipart/form-data)
func (h *CampaignHandler) Upload(c *gin.Context) {
	in := application.SubmitInput{
		CampaignID:  c.PostForm("projectId"),
		Name:        c.PostForm("name"),
		Description: c.PostForm("details"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		PayoutID:    c.PostForm("upiId"),
		FundingGoal: c.PostForm("fundingGoal"),
	}

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			h.Logger.WithError(err).Error("opening uploaded image failed")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		defer func() { _ = f.Close() }()
		in.Image = &application.ImageUpload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      f,
		}
	}

	created, err := h.Svc.Submit(c.Request.Context(), in)
	if err != nil {
		var verr application.ValidationError
		var cerr application.ConflictError
		switch {
		case errors.As(err, &verr):
			response.Error[any](c, http.StatusBadRequest, verr.Error(), nil)
		case errors.As(err, &cerr):
			response.Error[any](c, http.StatusBadRequest, cerr.Error(), nil)
		default:
			h.Logger.WithError(err).Error("campaign submission failed")
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": toProjectResponse(created)}, "project created")
}

// List GET /api/projects
func (h *CampaignHandler) List(c *gin.Context) {
	campaigns, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("listing campaigns failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	projects := make([]projectResponse, 0, len(campaigns))
	for i := range campaigns {
		projects = append(projects, toProjectResponse(&campaigns[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"projects": projects}, "projects")
}
