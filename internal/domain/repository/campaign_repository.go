package repository

import (
	"errors"

	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
)

// ErrDuplicate is returned by Create calls when a unique constraint rejects
// the row. The storage layer is the single arbiter of uniqueness; two
// concurrent inserts with the same key yield exactly one success and one
// ErrDuplicate.
var ErrDuplicate = errors.New("duplicate key")

// CampaignRepository defines the interface for campaign persistence.
type CampaignRepository interface {
	Create(c *entity.Campaign) error
	ExistsByCampaignID(campaignID string) (bool, error)
	List() ([]entity.Campaign, error)
}
