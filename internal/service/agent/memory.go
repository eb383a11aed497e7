package agent

import (
	"context"
	"sync"

	"crm-inbox-backend/internal/model"
)

type MemoryRepository struct {
	mu     sync.Mutex
	agents map[string]model.AgentItem
}

func NewMemoryRepository(seed []model.AgentItem) *MemoryRepository {
	repo := &MemoryRepository{
		agents: make(map[string]model.AgentItem, len(seed)),
	}
	for _, a := range seed {
		repo.agents[a.AgentID] = a
	}
	return repo
}

func (m *MemoryRepository) GetAgent(ctx context.Context, agentID string) (model.AgentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agent, ok := m.agents[agentID]
	if !ok {
		return model.AgentItem{}, ErrNotFound
	}
	return agent, nil
}

func (m *MemoryRepository) ListAgents(ctx context.Context) ([]model.AgentItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	agents := make([]model.AgentItem, 0, len(m.agents))
	for _, a := range m.agents {
		agents = append(agents, a)
	}
	SortAgents(agents)
	return agents, nil
}
