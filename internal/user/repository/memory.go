package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	commonerrors "github.com/AlibekovAA/caption-studio/backend/internal/common/errors"
	"github.com/AlibekovAA/caption-studio/backend/internal/user/domain"
)

// MemoryRepository backs the API when no DATABASE_URL is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]domain.User
	order   []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]domain.User)}
}

func (r *MemoryRepository) Create(_ context.Context, user domain.User) error {
	key := domain.NormalizeEmail(user.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[key]; ok {
		return commonerrors.ErrEmailAlreadyExists
	}
	r.byEmail[key] = user
	r.order = append(r.order, key)
	return nil
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return domain.User{}, commonerrors.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *MemoryRepository) UpdateLastLogin(_ context.Context, id domain.ID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, user := range r.byEmail {
		if user.ID == id {
			t := at
			user.LastLogin = &t
			r.byEmail[key] = user
			return nil
		}
	}
	return commonerrors.ErrUserNotFound
}

func (r *MemoryRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.order))
	for _, key := range r.order {
		users = append(users, copyUser(r.byEmail[key]))
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func copyUser(u domain.User) domain.User {
	if u.LastLogin != nil {
		t := *u.LastLogin
		u.LastLogin = &t
	}
	return u
}
