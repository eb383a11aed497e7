package workflow

import (
	"context"
	"sync"

	"crm-inbox-backend/internal/model"
)

type MemoryRepository struct {
	mu        sync.Mutex
	workflows map[string]model.WorkflowItem
}

func NewMemoryRepository(seed []model.WorkflowItem) *MemoryRepository {
	repo := &MemoryRepository{
		workflows: make(map[string]model.WorkflowItem, len(seed)),
	}
	for _, wf := range seed {
		repo.workflows[wf.WorkflowID] = wf
	}
	return repo
}

func (m *MemoryRepository) GetWorkflow(ctx context.Context, workflowID string) (model.WorkflowItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wf, ok := m.workflows[workflowID]
	if !ok {
		return model.WorkflowItem{}, ErrNotFound
	}
	return wf, nil
}

func (m *MemoryRepository) ListWorkflows(ctx context.Context) ([]model.WorkflowItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	workflows := make([]model.WorkflowItem, 0, len(m.workflows))
	for _, wf := range m.workflows {
		workflows = append(workflows, wf)
	}
	SortWorkflows(workflows)
	return workflows, nil
}

func (m *MemoryRepository) PutWorkflow(ctx context.Context, wf model.WorkflowItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workflows[wf.WorkflowID] = wf
	return nil
}
