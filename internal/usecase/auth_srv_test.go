package usecase

import (
	"context"
	"testing"

	"velvet-vogue/internal/data/entity"
	"velvet-vogue/internal/dto/request"
	"velvet-vogue/pkg/token"
	"velvet-vogue/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(users *fakeUserRepo) (AuthService, *token.Manager) {
	tokens := token.NewManager("test-secret", 24)
	return NewAuthService(users, tokens, zap.NewNop()), tokens
}

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	userID, err := uuid.Parse(resp.UserID)
	require.NoError(t, err)

	stored, err := users.FindByID(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.Equal(t, entity.RoleUser, stored.Role)
	// only the hash is persisted
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	req := &request.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123"}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())

	tests := []struct {
		name string
		req  request.RegisterRequest
	}{
		{"missing name", request.RegisterRequest{Email: "a@b.c", Password: "secret123"}},
		{"missing email", request.RegisterRequest{Name: "Jane", Password: "secret123"}},
		{"missing password", request.RegisterRequest{Name: "Jane", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, utils.ErrValidation)
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	users := newFakeUserRepo()
	svc, tokens := newAuthService(users)
	ctx := context.Background()

	reg, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "jane@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, claims.UserID.String())
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginEnumerationSafety(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// wrong password for an existing user
	_, wrongPassErr := svc.Login(ctx, &request.LoginRequest{Email: "jane@example.com", Password: "nope12"})
	require.Error(t, wrongPassErr)
	assert.ErrorIs(t, wrongPassErr, utils.ErrInvalidCredentials)

	// non-existent account
	_, noUserErr := svc.Login(ctx, &request.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
	require.Error(t, noUserErr)
	assert.ErrorIs(t, noUserErr, utils.ErrInvalidCredentials)

	// the two failures must be indistinguishable to the caller
	assert.Equal(t, wrongPassErr.Error(), noUserErr.Error())
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
