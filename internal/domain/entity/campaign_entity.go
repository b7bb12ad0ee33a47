package entity

import (
	"time"
)

// Campaign is a fundraising project record. CampaignID is the
// human-readable two-letter/two-digit identifier owners pick themselves;
// it is unique across all campaigns.
type Campaign struct {
	ID           string
	CampaignID   string
	Name         string
	Description  string
	ImageRef     string
	Contact      Contact
	FundingGoal  float64
	AmountRaised float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contact is the campaign owner's contact block. PayoutID is an external
// payment handle (e.g. a UPI id), validated by pattern only.
type Contact struct {
	Email    string
	Phone    string
	PayoutID string
}
