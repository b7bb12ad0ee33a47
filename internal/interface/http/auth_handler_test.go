package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/crowdfund-backend/internal/application"
	"github.com/oksasatya/crowdfund-backend/internal/domain/entity"
	"github.com/oksasatya/crowdfund-backend/internal/domain/repository"
	"github.com/oksasatya/crowdfund-backend/internal/interface/middleware"
	"github.com/oksasatya/crowdfund-backend/pkg/helpers"
	"github.com/oksasatya/crowdfund-backend/pkg/validation"
)

// memUserRepo is a minimal in-memory UserRepository for handler tests.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]entity.User // keyed by email
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return repository.ErrDuplicate
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.Email] = *u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		cp := u
		return &cp, nil
	}
	return nil, fmt.Errorf("not found")
}

func newAuthRouter(ttl time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	jwt := helpers.NewJWTManager("test-secret", ttl)
	svc := application.NewUserService(newMemUserRepo(), jwt, helpers.NewLogger("test", "test"))
	h := NewAuthHandler(svc, helpers.NewLogger("test", "test"))

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/protected", middleware.TokenAuth(svc), h.Protected)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestSignupLoginProtectedFlow(t *testing.T) {
	r := newAuthRouter(time.Hour)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		gin.H{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"email": "alice@example.com", "password": "hunter22"}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginData struct {
		Token string `json:"token"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &loginData))
	require.NotEmpty(t, loginData.Token)

	w = doJSON(t, r, http.MethodGet, "/api/auth/protected", nil,
		map[string]string{middleware.TokenHeader: loginData.Token})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var protData struct {
		SubjectID string `json:"subjectId"`
	}
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &protData))
	assert.Equal(t, "user-1", protData.SubjectID)
}

func TestSignupMissingFieldRejected(t *testing.T) {
	r := newAuthRouter(time.Hour)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		gin.H{"name": "Alice", "email": "alice@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing fields", decodeEnvelope(t, w).Message)
}

func TestSignupDuplicateEmailRejected(t *testing.T) {
	r := newAuthRouter(time.Hour)
	payload := gin.H{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/signup", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "email already registered", decodeEnvelope(t, w).Message)
}

func TestLoginFailuresShareOneMessage(t *testing.T) {
	r := newAuthRouter(time.Hour)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup",
		gin.H{"name": "Alice", "email": "alice@example.com", "password": "hunter22"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	wUnknown := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"email": "nobody@example.com", "password": "whatever"}, nil)
	wWrongPwd := doJSON(t, r, http.MethodPost, "/api/auth/login",
		gin.H{"email": "alice@example.com", "password": "wrong"}, nil)

	assert.Equal(t, http.StatusBadRequest, wUnknown.Code)
	assert.Equal(t, http.StatusBadRequest, wWrongPwd.Code)
	assert.Equal(t, decodeEnvelope(t, wUnknown).Message, decodeEnvelope(t, wWrongPwd).Message)
	assert.Equal(t, "invalid email or password", decodeEnvelope(t, wUnknown).Message)
}

func TestProtectedWithoutToken(t *testing.T) {
	r := newAuthRouter(time.Hour)

	w := doJSON(t, r, http.MethodGet, "/api/auth/protected", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedWithExpiredToken(t *testing.T) {
	r := newAuthRouter(time.Hour)

	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	token, _, err := expired.Generate("user-1")
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/auth/protected", nil,
		map[string]string{middleware.TokenHeader: token})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedWithGarbageToken(t *testing.T) {
	r := newAuthRouter(time.Hour)

	w := doJSON(t, r, http.MethodGet, "/api/auth/protected", nil,
		map[string]string{middleware.TokenHeader: "not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
