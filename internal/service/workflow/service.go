package workflow

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
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

type SortMode string

const (
	SortNameAsc    SortMode = "name_asc"
	SortNameDesc   SortMode = "name_desc"
	SortLastEdited SortMode = "last_edited"
)

// ViewQuery narrows the workflow listing. A search query shorter than three
// characters is ignored.
type ViewQuery struct {
	Query        string
	Sort         SortMode
	HideInactive bool
}

const minQueryLength = 3

type Service struct {
	repo Repository
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*FilterState
}

func New(db *database.Database) *Service {
	return &Service{
		repo:     NewDynamoRepository(db),
		now:      time.Now,
		sessions: make(map[string]*FilterState),
	}
}

func NewWithRepository(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:     repo,
		now:      now,
		sessions: make(map[string]*FilterState),
	}
}

// FilterSession returns the per-session filter state, creating it on first
// use. Dimension filters only shape the chip row; they do not constrain the
// workflow listing itself.
func (s *Service) FilterSession(sessionID string) *FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		state = NewFilterState()
		s.sessions[sessionID] = state
	}
	return state
}

func (s *Service) GetWorkflow(ctx context.Context, workflowID string) (model.WorkflowItem, error) {
	workflowID = strings.TrimSpace(workflowID)
	if workflowID == "" {
		return model.WorkflowItem{}, newError(ErrorCodeValidation, "workflow id is required", nil)
	}

	wf, err := s.repo.GetWorkflow(ctx, workflowID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.WorkflowItem{}, newError(ErrorCodeNotFound, "workflow not found", err)
		}
		return model.WorkflowItem{}, newError(ErrorCodeInternal, "failed to fetch workflow", err)
	}
	return wf, nil
}

// ListWorkflows applies, in order: the hide-inactive toggle, the search
// query, then the sort mode.
func (s *Service) ListWorkflows(ctx context.Context, view ViewQuery) ([]model.WorkflowItem, error) {
	workflows, err := s.repo.ListWorkflows(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list workflows", err)
	}

	if view.HideInactive {
		visible := workflows[:0]
		for _, wf := range workflows {
			if wf.Active {
				visible = append(visible, wf)
			}
		}
		workflows = visible
	}

	if query := strings.TrimSpace(view.Query); len(query) >= minQueryLength {
		query = strings.ToLower(query)
		matched := workflows[:0]
		for _, wf := range workflows {
			if strings.Contains(strings.ToLower(wf.Name), query) {
				matched = append(matched, wf)
			}
		}
		workflows = matched
	}

	switch view.Sort {
	case SortNameAsc:
		sort.SliceStable(workflows, func(i, j int) bool {
			return strings.Compare(workflows[i].Name, workflows[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(workflows, func(i, j int) bool {
			return strings.Compare(workflows[i].Name, workflows[j].Name) > 0
		})
	case SortLastEdited, "":
		// Stored order already reflects last edit.
	}

	return workflows, nil
}

func (s *Service) SetActive(ctx context.Context, workflowID string, active bool) (model.WorkflowItem, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return model.WorkflowItem{}, err
	}

	wf.Active = active
	if err := s.repo.PutWorkflow(ctx, wf); err != nil {
		return model.WorkflowItem{}, newError(ErrorCodeInternal, "failed to update workflow", err)
	}
	return wf, nil
}

// GetConditions returns the workflow's condition rows, materialising the
// single blank IF row on first access.
func (s *Service) GetConditions(ctx context.Context, workflowID string) ([]model.WorkflowCondition, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}
	if len(wf.Conditions) == 0 {
		return []model.WorkflowCondition{model.BlankCondition()}, nil
	}
	return wf.Conditions, nil
}

// AddCondition appends a blank AND row.
func (s *Service) AddCondition(ctx context.Context, workflowID string) ([]model.WorkflowCondition, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	conditions := wf.Conditions
	if len(conditions) == 0 {
		conditions = []model.WorkflowCondition{model.BlankCondition()}
	}
	conditions = append(conditions, model.WorkflowCondition{Logic: model.LogicAnd})

	wf.Conditions = conditions
	if err := s.repo.PutWorkflow(ctx, wf); err != nil {
		return nil, newError(ErrorCodeInternal, "failed to update workflow", err)
	}
	return conditions, nil
}

// UpdateConditionParams patches one condition row. Nil fields are untouched.
type UpdateConditionParams struct {
	Logic         *model.ConditionLogic
	ConditionType *string
	Operator      *string
	Value         *string
}

// UpdateCondition applies a patch to the row at index. The first row's
// connective is pinned to IF and cannot be changed.
func (s *Service) UpdateCondition(ctx context.Context, workflowID string, index int, params UpdateConditionParams) ([]model.WorkflowCondition, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	conditions := wf.Conditions
	if len(conditions) == 0 {
		conditions = []model.WorkflowCondition{model.BlankCondition()}
	}
	if index < 0 || index >= len(conditions) {
		return nil, newError(ErrorCodeValidation, "condition index out of range", nil)
	}

	row := conditions[index]
	if params.Logic != nil && index > 0 {
		row.Logic = *params.Logic
	}
	if params.ConditionType != nil {
		row.ConditionType = params.ConditionType
	}
	if params.Operator != nil {
		row.Operator = params.Operator
	}
	if params.Value != nil {
		row.Value = params.Value
	}
	conditions[index] = row

	wf.Conditions = conditions
	if err := s.repo.PutWorkflow(ctx, wf); err != nil {
		return nil, newError(ErrorCodeInternal, "failed to update workflow", err)
	}
	return conditions, nil
}

// RemoveCondition deletes the row at index. Removing the last remaining row
// restores a single blank IF row in the same call.
func (s *Service) RemoveCondition(ctx context.Context, workflowID string, index int) ([]model.WorkflowCondition, error) {
	wf, err := s.GetWorkflow(ctx, workflowID)
	if err != nil {
		return nil, err
	}

	conditions := wf.Conditions
	if len(conditions) == 0 {
		conditions = []model.WorkflowCondition{model.BlankCondition()}
	}
	if index < 0 || index >= len(conditions) {
		return nil, newError(ErrorCodeValidation, "condition index out of range", nil)
	}

	conditions = append(conditions[:index], conditions[index+1:]...)
	if len(conditions) == 0 {
		conditions = []model.WorkflowCondition{model.BlankCondition()}
	} else {
		conditions[0].Logic = model.LogicIf
	}

	wf.Conditions = conditions
	if err := s.repo.PutWorkflow(ctx, wf); err != nil {
		return nil, newError(ErrorCodeInternal, "failed to update workflow", err)
	}
	return conditions, nil
}

// IsSatisfied reports whether at least one row has all three fields set.
func IsSatisfied(conditions []model.WorkflowCondition) bool {
	for _, c := range conditions {
		if c.Complete() {
			return true
		}
	}
	return false
}
