package contact

import (
	"context"
	"sync"

	"crm-inbox-backend/internal/model"
)

// MemoryRepository is the default backing store when no DynamoDB endpoint
// is configured.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[string]model.UserItem
}

func NewMemoryRepository(seed []model.UserItem) *MemoryRepository {
	repo := &MemoryRepository{
		users: make(map[string]model.UserItem, len(seed)),
	}
	for _, user := range seed {
		repo.users[user.UserID] = user
	}
	return repo
}

func (m *MemoryRepository) GetUser(ctx context.Context, userID string) (model.UserItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return model.UserItem{}, ErrNotFound
	}
	return user, nil
}

func (m *MemoryRepository) ListUsers(ctx context.Context) ([]model.UserItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]model.UserItem, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	SortUsers(users)
	return users, nil
}

func (m *MemoryRepository) PutUser(ctx context.Context, user model.UserItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.UserID] = user
	return nil
}
