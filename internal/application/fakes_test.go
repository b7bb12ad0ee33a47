package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
	"github.com/oksasatya/crowdfund-backend/internal/domain/repository"
)

// fakeUserRepo is an in-memory UserRepository with the same uniqueness
// behavior as the Postgres implementation.
type fakeUserRepo struct {
	mu     sync.Mutex
	seq    int
	byID   map[string]entity.User
	emails map[string]string // email -> id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]entity.User{}, emails: map[string]string{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emails[u.Email]; ok {
		return repository.ErrDuplicate
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.byID[u.ID] = *u
	r.emails[u.Email] = u.ID
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		cp := u
		return &cp, nil
	}
	return nil, fmt.Errorf("not found")
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.emails[email]; ok {
		cp := r.byID[id]
		return &cp, nil
	}
	return nil, fmt.Errorf("not found")
}

// fakeCampaignRepo is an in-memory CampaignRepository that counts storage
// calls so tests can assert which checks reached it.
type fakeCampaignRepo struct {
	mu          sync.Mutex
	seq         int
	campaigns   map[string]entity.Campaign // keyed by CampaignID
	existsCalls int
	createCalls int
	listCalls   int

	// raceMode makes ExistsByCampaignID always report false so the
	// unique-key arbitration in Create is exercised, as it would be when
	// two submissions interleave.
	raceMode  bool
	createErr error
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: map[string]entity.Campaign{}}
}

func (r *fakeCampaignRepo) Create(c *entity.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.campaigns[c.CampaignID]; ok {
		return repository.ErrDuplicate
	}
	r.seq++
	c.ID = fmt.Sprintf("campaign-%d", r.seq)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.campaigns[c.CampaignID] = *c
	return nil
}

func (r *fakeCampaignRepo) ExistsByCampaignID(campaignID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.existsCalls++
	if r.raceMode {
		return false, nil
	}
	_, ok := r.campaigns[campaignID]
	return ok, nil
}

func (r *fakeCampaignRepo) List() ([]entity.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := make([]entity.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		out = append(out, c)
	}
	return out, nil
}

// fakeBlobStore records saved and removed blobs.
type fakeBlobStore struct {
	mu      sync.Mutex
	saved   []string
	removed []string
	saveErr error
}

func (s *fakeBlobStore) Save(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return "", s.saveErr
	}
	s.saved = append(s.saved, name)
	return "/uploads/" + name, nil
}

func (s *fakeBlobStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, name)
	return nil
}
