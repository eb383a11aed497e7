package conversation

import (
	"context"
	"sync"

	"crm-inbox-backend/internal/model"
)

type MemoryRepository struct {
	mu             sync.Mutex
	conversations  map[string]model.ConversationItem
	messages       map[string][]model.MessageItem
	systemMessages map[string][]model.SystemMessageItem
	agents         map[string]model.AgentItem
}

func NewMemoryRepository(convs []model.ConversationItem, messages []model.MessageItem, agents []model.AgentItem) *MemoryRepository {
	repo := &MemoryRepository{
		conversations:  make(map[string]model.ConversationItem, len(convs)),
		messages:       make(map[string][]model.MessageItem),
		systemMessages: make(map[string][]model.SystemMessageItem),
		agents:         make(map[string]model.AgentItem, len(agents)),
	}
	for _, c := range convs {
		repo.conversations[c.ConversationID] = c
	}
	for _, m := range messages {
		repo.messages[m.ConversationID] = append(repo.messages[m.ConversationID], m)
	}
	for _, a := range agents {
		repo.agents[a.AgentID] = a
	}
	return repo
}

func (m *MemoryRepository) GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conv, ok := m.conversations[conversationID]
	if !ok {
		return model.ConversationItem{}, ErrNotFound
	}
	return conv, nil
}

func (m *MemoryRepository) ListConversations(ctx context.Context) ([]model.ConversationItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	convs := make([]model.ConversationItem, 0, len(m.conversations))
	for _, c := range m.conversations {
		convs = append(convs, c)
	}
	sortByID(convs)
	return convs, nil
}

func (m *MemoryRepository) PutConversation(ctx context.Context, conv model.ConversationItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversations[conv.ConversationID] = conv
	return nil
}

func (m *MemoryRepository) ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages := make([]model.MessageItem, len(m.messages[conversationID]))
	copy(messages, m.messages[conversationID])
	return messages, nil
}

func (m *MemoryRepository) CreateMessage(ctx context.Context, message model.MessageItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[message.ConversationID] = append(m.messages[message.ConversationID], message)
	return nil
}

func (m *MemoryRepository) ListSystemMessages(ctx context.Context, conversationID string) ([]model.SystemMessageItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	messages := make([]model.SystemMessageItem, len(m.systemMessages[conversationID]))
	copy(messages, m.systemMessages[conversationID])
	return messages, nil
}

func (m *MemoryRepository) CreateSystemMessage(ctx context.Context, message model.SystemMessageItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.systemMessages[message.ConversationID] = append(m.systemMessages[message.ConversationID], message)
	return nil
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
