package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/crowdfund-backend/pkg/helpers"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	return NewUserService(repo, jwt, nil), repo
}

func TestSignupThenLogin(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Empty(t, u.Password, "signup must not return the hash")

	token, exp, err := svc.Login(ctx, "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	uid, err := svc.CheckAccess(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.IsType(t, ValidationError(""), err)
	assert.EqualError(t, err, "missing fields")
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Other Alice", "alice@example.com", "different")
	require.Error(t, err)
	assert.IsType(t, ConflictError(""), err)
}

func TestLoginFailureMessageIsUniform(t *testing.T) {
	svc, _ := newUserService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, errUnknown := svc.Login(ctx, "nobody@example.com", "whatever")
	_, _, errWrongPwd := svc.Login(ctx, "alice@example.com", "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPwd)
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error(),
		"unknown email and wrong password must be indistinguishable")
	assert.EqualError(t, errUnknown, "invalid email or password")
}

func TestCheckAccessRejectsExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", -time.Minute)
	svc := NewUserService(repo, jwt, nil)

	token, _, err := jwt.Generate("user-1")
	require.NoError(t, err)

	_, err = svc.CheckAccess(token)
	require.Error(t, err)
	assert.IsType(t, AuthError(""), err)
}

func TestCheckAccessRejectsEmptyAndGarbage(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.CheckAccess("")
	require.Error(t, err)

	_, err = svc.CheckAccess("garbage")
	require.Error(t, err)
	assert.IsType(t, AuthError(""), err)
}
