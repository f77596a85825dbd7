package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/caption-studio/backend/internal/auth/service"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/clock"
	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/caption-studio/backend/internal/user/domain"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

type mockUserRepo struct {
	createFunc          func(ctx context.Context, user userdomain.User) error
	findByEmailFunc     func(ctx context.Context, email string) (userdomain.User, error)
	updateLastLoginFunc func(ctx context.Context, id userdomain.ID, at time.Time) error
	listFunc            func(ctx context.Context) ([]userdomain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user userdomain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (userdomain.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return userdomain.User{}, commonerrors.ErrUserNotFound
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id userdomain.ID, at time.Time) error {
	if m.updateLastLoginFunc != nil {
		return m.updateLastLoginFunc(ctx, id, at)
	}
	return nil
}

func (m *mockUserRepo) List(ctx context.Context) ([]userdomain.User, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockHasher struct {
	hashFunc    func(password string) (string, error)
	compareFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *mockHasher) Compare(hash, password string) error {
	if m.compareFunc != nil {
		return m.compareFunc(hash, password)
	}
	if hash != "hashed_"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockIDGenerator struct {
	newIDFunc func() (string, error)
	counter   int
}

func (m *mockIDGenerator) NewID() (string, error) {
	if m.newIDFunc != nil {
		return m.newIDFunc()
	}
	m.counter++
	return "id-" + string(rune('0'+m.counter)), nil
}

func setupAuthService(t *testing.T) (*service.AuthService, *mockUserRepo, *mockHasher, *mockIDGenerator, *clock.MockClock) {
	t.Helper()

	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	idGen := &mockIDGenerator{}
	clk := clock.NewMockClock(time.Now().UTC().Truncate(time.Second))
	tokens := service.NewTokenIssuer(testJWTSecret, idGen, time.Hour, clk)

	svc := service.NewAuthService(repo, hasher, idGen, tokens, clk, logger.NewNop())
	return svc, repo, hasher, idGen, clk
}
