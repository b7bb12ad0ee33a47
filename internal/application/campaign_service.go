package application

import (
	"context"
	"errors"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
	"github.com/oksasatya/crowdfund-backend/internal/domain/repository"
	"github.com/oksasatya/crowdfund-backend/internal/infrastructure/blob"
)

// defaultFundingGoal is used when the submitted goal is absent,
// non-numeric, or non-positive.
const defaultFundingGoal = 10000

var (
	campaignIDPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^[0-9+\-\s()]{10,}$`)
	payoutIDPattern   = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z]{3,}$`)
)

// ImageUpload carries the attached image file from the HTTP layer.
type ImageUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

// SubmitInput is the typed campaign submission. Multipart form values
// arrive as strings; FundingGoal is coerced during Submit.
type SubmitInput struct {
	CampaignID  string
	Name        string
	Description string
	Email       string
	Phone       string
	PayoutID    string
	FundingGoal string
	Image       *ImageUpload
}

// CampaignService validates and persists campaign submissions and lists
// stored campaigns.
type CampaignService struct {
	Repo   repository.CampaignRepository
	Blobs  blob.Store
	Logger *logrus.Logger
}

func NewCampaignService(repo repository.CampaignRepository, blobs blob.Store, logger *logrus.Logger) *CampaignService {
	return &CampaignService{Repo: repo, Blobs: blobs, Logger: logger}
}

// validate runs the submission checks in their fixed order; the first
// failing check determines the returned error. The duplicate-id lookup is
// the only check that touches storage, and it runs after every field
// check has passed.
func (s *CampaignService) validate(in SubmitInput) error {
	if in.CampaignID == "" || in.Name == "" || in.Description == "" ||
		in.Email == "" || in.Phone == "" || in.PayoutID == "" {
		return ValidationError("missing fields")
	}
	if !campaignIDPattern.MatchString(in.CampaignID) {
		return ValidationError("bad id format")
	}
	if !emailPattern.MatchString(in.Email) {
		return ValidationError("bad email")
	}
	if !phonePattern.MatchString(in.Phone) {
		return ValidationError("bad phone")
	}
	if !payoutIDPattern.MatchString(in.PayoutID) {
		return ValidationError("bad payout id")
	}
	exists, err := s.Repo.ExistsByCampaignID(in.CampaignID)
	if err != nil {
		return err
	}
	if exists {
		return ConflictError("id exists")
	}
	if in.Image == nil {
		return ValidationError("image required")
	}
	return nil
}

// coerceFundingGoal parses the submitted goal, falling back to the
// default for anything that is not a positive finite number. ParseFloat
// accepts "NaN" and "Inf", neither of which can be stored or serialized
// as a goal.
func coerceFundingGoal(raw string) float64 {
	goal, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(goal) || math.IsInf(goal, 0) || goal <= 0 {
		return defaultFundingGoal
	}
	return goal
}

// storedImageName derives a collision-resistant object name: a fresh UUID
// plus the original file extension.
func storedImageName(filename string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}

// Submit validates the submission, stores the image, and creates the
// campaign record. If the insert fails after the image was stored, the
// stored object is removed before the error is returned so no orphan is
// left behind.
func (s *CampaignService) Submit(ctx context.Context, in SubmitInput) (*entity.Campaign, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	name := storedImageName(in.Image.Filename)
	ref, err := s.Blobs.Save(ctx, name, in.Image.ContentType, in.Image.Reader)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("campaign_id", in.CampaignID).Error("image store failed")
		}
		return nil, err
	}

	c := &entity.Campaign{
		CampaignID:  in.CampaignID,
		Name:        in.Name,
		Description: in.Description,
		ImageRef:    ref,
		Contact: entity.Contact{
			Email:    in.Email,
			Phone:    in.Phone,
			PayoutID: in.PayoutID,
		},
		FundingGoal:  coerceFundingGoal(in.FundingGoal),
		AmountRaised: 0,
	}
	if err := s.Repo.Create(c); err != nil {
		if rmErr := s.Blobs.Remove(ctx, name); rmErr != nil && s.Logger != nil {
			s.Logger.WithError(rmErr).WithField("image", name).Warn("orphaned image cleanup failed")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ConflictError("id exists")
		}
		return nil, err
	}
	return c, nil
}

// List returns every stored campaign, unfiltered and unpaginated, in
// storage-native order.
func (s *CampaignService) List(ctx context.Context) ([]entity.Campaign, error) {
	return s.Repo.List()
}
