package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/auth"
	"portfolio-backend/models"
	"portfolio-backend/repository"
)

type memoryUserStore struct {
	byEmail map[string]*models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{byEmail: map[string]*models.User{}}
}

func (s *memoryUserStore) Create(_ context.Context, u *models.User) error {
	if _, ok := s.byEmail[u.Email]; ok {
		return &duplicateErr{}
	}
	if u.ID == "" {
		u.ID = models.NewID(models.PrefixUser)
	}
	s.byEmail[u.Email] = u
	return nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

type duplicateErr struct{}

func (*duplicateErr) Error() string { return "duplicate" }

func newTestAuthService() (*AuthService, *memoryUserStore) {
	store := newMemoryUserStore()
	svc := NewAuthService(
		WithUserStore(store),
		WithTokenManager(auth.NewTokenManager("test-secret", time.Hour)),
	)
	return svc, store
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterRequest{
		Email:    "owner@example.com",
		Password: "testpassword123",
		Name:     "Portfolio Owner",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.User.ID)
	assert.NotEmpty(t, reg.Token)
	assert.NotEqual(t, "testpassword123", reg.User.PasswordHash)

	login, err := svc.Login(ctx, "owner@example.com", "testpassword123")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterShortPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "owner@example.com",
		Password: "short",
		Name:     "Owner",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Email:    "owner@example.com",
		Password: "testpassword123",
		Name:     "Owner",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{
		Email:    "owner@example.com",
		Password: "anotherpassword",
		Name:     "Someone Else",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{
		Email:    "owner@example.com",
		Password: "testpassword123",
		Name:     "Owner",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "owner@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
