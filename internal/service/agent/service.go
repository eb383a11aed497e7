package agent

import (
	"context"
	"errors"
	"strings"
	"time"

	"crm-inbox-backend/internal/database"
	"crm-inbox-backend/internal/model"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeInternal   ErrorCode = "internal_error"
)

type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func New(db *database.Database) *Service {
	return &Service{
		repo: NewDynamoRepository(db),
		now:  time.Now,
	}
}

func NewWithRepository(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo: repo,
		now:  now,
	}
}

func (s *Service) GetAgent(ctx context.Context, agentID string) (model.AgentItem, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return model.AgentItem{}, newError(ErrorCodeValidation, "agent id is required", nil)
	}

	agent, err := s.repo.GetAgent(ctx, agentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.AgentItem{}, newError(ErrorCodeNotFound, "agent not found", err)
		}
		return model.AgentItem{}, newError(ErrorCodeInternal, "failed to fetch agent", err)
	}
	return agent, nil
}

func (s *Service) ListAgents(ctx context.Context) ([]model.AgentItem, error) {
	agents, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list agents", err)
	}
	return agents, nil
}

func (s *Service) ListAgentsByType(ctx context.Context, agentType model.AgentType) ([]model.AgentItem, error) {
	agents, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list agents", err)
	}

	filtered := make([]model.AgentItem, 0, len(agents))
	for _, agent := range agents {
		if agent.Type == agentType {
			filtered = append(filtered, agent)
		}
	}
	return filtered, nil
}

func (s *Service) ListAvailableAgents(ctx context.Context) ([]model.AgentItem, error) {
	agents, err := s.repo.ListAgents(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list agents", err)
	}

	available := make([]model.AgentItem, 0, len(agents))
	for _, agent := range agents {
		if agent.IsAvailable {
			available = append(available, agent)
		}
	}
	return available, nil
}
