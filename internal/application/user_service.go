package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
	"github.com/oksasatya/crowdfund-backend/internal/domain/repository"
	"github.com/oksasatya/crowdfund-backend/pkg/helpers"
)

// UserService implements signup, login and token verification. Each call
// is stateless given its inputs; correctness depends only on the stored
// hash and the shared signing secret.
type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

// Signup registers a new user. The password is stored as a bcrypt hash
// and is never echoed back.
func (s *UserService) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, ValidationError("missing fields")
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ConflictError("email already registered")
		}
		return nil, err
	}
	u.Password = ""
	return u, nil
}

// Login checks the credentials and issues the bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// CheckAccess validates a raw token value and returns the subject id it
// carries.
func (s *UserService) CheckAccess(token string) (string, error) {
	if token == "" {
		return "", AuthError("missing token")
	}
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return "", AuthError("invalid or expired token")
	}
	return claims.UserID, nil
}
