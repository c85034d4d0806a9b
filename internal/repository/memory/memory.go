// Package memory implements the repository in process memory.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/Yosipmikecolin/app-web-wesense/internal/entities"
	"github.com/Yosipmikecolin/app-web-wesense/internal/seed"

	"go.uber.org/zap"
)

// Memory keeps users in insertion order and session values in a map.
type Memory struct {
	log  *zap.SugaredLogger
	seed bool

	mu    sync.RWMutex
	users []entities.User
	kv    map[string]string
}

// New creates an in-memory repository. With withSeed the collection starts
// with seed.Users() on OnStart.
func New(log *zap.SugaredLogger, withSeed bool) *Memory {
	return &Memory{
		log:  log.Named("repo.memory"),
		seed: withSeed,
		kv:   make(map[string]string),
	}
}

// OnStart loads the seed collection.
func (m *Memory) OnStart(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seed && len(m.users) == 0 {
		m.users = seed.Users()
	}
	m.log.Infow("memory repository ready", "users", len(m.users))
	return nil
}

// OnStop is a no-op.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}

// ListUsers returns a copy of the collection.
func (m *Memory) ListUsers(_ context.Context) ([]entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entities.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// GetUser returns the user with id.
func (m *Memory) GetUser(_ context.Context, id string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexByID(id)
	if i < 0 {
		return nil, entities.ErrUserNotFound
	}
	u := m.users[i]
	return &u, nil
}

// FindUserByEmail matches email ignoring case.
func (m *Memory) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i := m.indexByEmail(email, "")
	if i < 0 {
		return nil, entities.ErrUserNotFound
	}
	u := m.users[i]
	return &u, nil
}

// CreateUser appends user; id and email must be unique.
func (m *Memory) CreateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexByID(user.ID) >= 0 || m.indexByEmail(user.Email, "") >= 0 {
		return nil, entities.ErrUserExists
	}
	m.users = append(m.users, user)

	m.log.Infow("user created", "user_id", user.ID)
	return &user, nil
}

// UpdateUser replaces the user in place, keeping its position.
func (m *Memory) UpdateUser(_ context.Context, user entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexByID(user.ID)
	if i < 0 {
		return nil, entities.ErrUserNotFound
	}
	if m.indexByEmail(user.Email, user.ID) >= 0 {
		return nil, entities.ErrUserExists
	}
	user.CreatedAt = m.users[i].CreatedAt
	m.users[i] = user

	m.log.Infow("user updated", "user_id", user.ID)
	return &user, nil
}

// DeleteUser removes the user with id.
func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexByID(id)
	if i < 0 {
		return entities.ErrUserNotFound
	}
	m.users = append(m.users[:i:i], m.users[i+1:]...)

	m.log.Infow("user deleted", "user_id", id)
	return nil
}

func (m *Memory) indexByID(id string) int {
	for i, u := range m.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) indexByEmail(email, exceptID string) int {
	email = strings.TrimSpace(email)
	for i, u := range m.users {
		if u.ID != exceptID && u.EmailMatches(email) {
			return i
		}
	}
	return -1
}
