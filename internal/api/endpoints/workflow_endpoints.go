package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"crm-inbox-backend/internal/dto"
	"crm-inbox-backend/internal/model"
	workflowservice "crm-inbox-backend/internal/service/workflow"
)

type WorkflowEndpoints interface {
	Workflows(http.ResponseWriter, *http.Request) error
	WorkflowSub(http.ResponseWriter, *http.Request) error
	Filters(http.ResponseWriter, *http.Request) error
	FilterOperator(http.ResponseWriter, *http.Request) error
	FilterClear(http.ResponseWriter, *http.Request) error
}

const sessionHeader = "X-Session-ID"

type workflowEndpoints struct {
	service   *workflowservice.Service
	subPrefix string
}

func NewWorkflowEndpoints(service *workflowservice.Service, prefix string) WorkflowEndpoints {
	return &workflowEndpoints{
		service:   service,
		subPrefix: strings.TrimRight(prefix, "/") + "/workflows/",
	}
}

func (h *workflowEndpoints) Workflows(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleListWorkflows,
	})
}

// WorkflowSub routes /workflows/{id} and the condition builder underneath it.
func (h *workflowEndpoints) WorkflowSub(w http.ResponseWriter, r *http.Request) error {
	rest := strings.TrimPrefix(r.URL.Path, h.subPrefix)
	if rest == r.URL.Path {
		return h.notFound(r.URL.Path)
	}
	rest = strings.Trim(rest, "/")

	parts := strings.Split(rest, "/")
	workflowID := parts[0]
	if workflowID == "" {
		return h.notFound(r.URL.Path)
	}

	switch {
	case len(parts) == 1:
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet:   h.withID(workflowID, h.handleGetWorkflow),
			http.MethodPatch: h.withID(workflowID, h.handleSetActive),
		})
	case len(parts) == 2 && parts[1] == "conditions":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet:  h.withID(workflowID, h.handleGetConditions),
			http.MethodPost: h.withID(workflowID, h.handleAddCondition),
		})
	case len(parts) == 3 && parts[1] == "conditions":
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return &HTTPError{
				StatusCode: http.StatusBadRequest,
				Message:    "Invalid condition index",
				ErrorLog:   fmt.Errorf("parse condition index %q: %w", parts[2], err),
			}
		}
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodPatch: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleUpdateCondition(workflowID, index, w, r)
			},
			http.MethodDelete: func(w http.ResponseWriter, r *http.Request) error {
				return h.handleRemoveCondition(workflowID, index, w, r)
			},
		})
	default:
		return h.notFound(r.URL.Path)
	}
}

type workflowIDHandler func(workflowID string, w http.ResponseWriter, r *http.Request) error

func (h *workflowEndpoints) withID(workflowID string, f workflowIDHandler) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		return f(workflowID, w, r)
	}
}

func (h *workflowEndpoints) handleListWorkflows(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	view := workflowservice.ViewQuery{
		Query:        query.Get("q"),
		HideInactive: query.Get("hideInactive") == "true",
	}
	switch query.Get("sort") {
	case "name_asc":
		view.Sort = workflowservice.SortNameAsc
	case "name_desc":
		view.Sort = workflowservice.SortNameDesc
	default:
		view.Sort = workflowservice.SortLastEdited
	}

	workflows, err := h.service.ListWorkflows(r.Context(), view)
	if err != nil {
		return h.serviceError(err)
	}

	res := dto.ListWorkflowsResponse{Workflows: make([]dto.WorkflowResponse, 0, len(workflows))}
	for _, wf := range workflows {
		res.Workflows = append(res.Workflows, toWorkflowResponse(wf))
	}
	return WriteJSON(w, http.StatusOK, res)
}

func (h *workflowEndpoints) handleGetWorkflow(workflowID string, w http.ResponseWriter, r *http.Request) error {
	wf, err := h.service.GetWorkflow(r.Context(), workflowID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toWorkflowResponse(wf))
}

func (h *workflowEndpoints) handleSetActive(workflowID string, w http.ResponseWriter, r *http.Request) error {
	var req dto.SetWorkflowActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode set active request: %w", err),
		}
	}

	wf, err := h.service.SetActive(r.Context(), workflowID, req.Active)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toWorkflowResponse(wf))
}

func (h *workflowEndpoints) handleGetConditions(workflowID string, w http.ResponseWriter, r *http.Request) error {
	conditions, err := h.service.GetConditions(r.Context(), workflowID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toConditionsResponse(conditions))
}

func (h *workflowEndpoints) handleAddCondition(workflowID string, w http.ResponseWriter, r *http.Request) error {
	conditions, err := h.service.AddCondition(r.Context(), workflowID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, toConditionsResponse(conditions))
}

func (h *workflowEndpoints) handleUpdateCondition(workflowID string, index int, w http.ResponseWriter, r *http.Request) error {
	var req dto.UpdateConditionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode update condition request: %w", err),
		}
	}

	params := workflowservice.UpdateConditionParams{
		ConditionType: req.ConditionType,
		Operator:      req.Operator,
		Value:         req.Value,
	}
	if req.Logic != nil {
		logic := model.ConditionLogic(*req.Logic)
		params.Logic = &logic
	}

	conditions, err := h.service.UpdateCondition(r.Context(), workflowID, index, params)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toConditionsResponse(conditions))
}

func (h *workflowEndpoints) handleRemoveCondition(workflowID string, index int, w http.ResponseWriter, r *http.Request) error {
	conditions, err := h.service.RemoveCondition(r.Context(), workflowID, index)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toConditionsResponse(conditions))
}

// Filters manages the per-session filter chip row for the workflow view.
func (h *workflowEndpoints) Filters(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:  h.handleGetFilters,
		http.MethodPost: h.handleToggleFilterValue,
	})
}

func (h *workflowEndpoints) FilterOperator(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleSetFilterOperator,
	})
}

func (h *workflowEndpoints) FilterClear(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodPost: h.handleClearFilter,
	})
}

func (h *workflowEndpoints) session(r *http.Request) *workflowservice.FilterState {
	sessionID := r.Header.Get(sessionHeader)
	if sessionID == "" {
		sessionID = "default"
	}
	return h.service.FilterSession(sessionID)
}

func (h *workflowEndpoints) handleGetFilters(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, http.StatusOK, toFilterStateResponse(h.session(r)))
}

func (h *workflowEndpoints) handleToggleFilterValue(w http.ResponseWriter, r *http.Request) error {
	var req dto.ToggleFilterValueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode toggle filter request: %w", err),
		}
	}
	if req.Dimension == "" || req.Value == "" {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Dimension and value are required",
			ErrorLog:   fmt.Errorf("toggle filter: empty dimension or value"),
		}
	}

	state := h.session(r)
	state.ToggleValue(req.Dimension, req.Value)
	return WriteJSON(w, http.StatusOK, toFilterStateResponse(state))
}

func (h *workflowEndpoints) handleSetFilterOperator(w http.ResponseWriter, r *http.Request) error {
	var req dto.SetFilterOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode set operator request: %w", err),
		}
	}

	op := workflowservice.Operator(req.Operator)
	if req.Dimension == "" || !workflowservice.ValidOperator(op) {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Unknown filter operator",
			ErrorLog:   fmt.Errorf("set operator: dimension %q operator %q", req.Dimension, req.Operator),
		}
	}

	state := h.session(r)
	state.SetOperator(req.Dimension, op)
	return WriteJSON(w, http.StatusOK, toFilterStateResponse(state))
}

func (h *workflowEndpoints) handleClearFilter(w http.ResponseWriter, r *http.Request) error {
	var req dto.ClearFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode clear filter request: %w", err),
		}
	}
	if req.Dimension == "" {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Dimension is required",
			ErrorLog:   fmt.Errorf("clear filter: empty dimension"),
		}
	}

	state := h.session(r)
	state.ClearDimension(req.Dimension)
	return WriteJSON(w, http.StatusOK, toFilterStateResponse(state))
}

func (h *workflowEndpoints) notFound(path string) error {
	return &HTTPError{
		StatusCode: http.StatusNotFound,
		Message:    "Workflow not found",
		ErrorLog:   fmt.Errorf("workflow path mismatch: %s", path),
	}
}

func (h *workflowEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*workflowservice.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("workflow service: %w", err),
		}
	}

	var logErr error
	if svcErr.Err != nil {
		logErr = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		logErr = svcErr
	}

	switch svcErr.Code {
	case workflowservice.ErrorCodeValidation:
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: svcErr.Message, ErrorLog: logErr}
	case workflowservice.ErrorCodeNotFound:
		return &HTTPError{StatusCode: http.StatusNotFound, Message: svcErr.Message, ErrorLog: logErr}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", ErrorLog: logErr}
	}
}

func toWorkflowResponse(wf model.WorkflowItem) dto.WorkflowResponse {
	return dto.WorkflowResponse{
		WorkflowID: wf.WorkflowID,
		Name:       wf.Name,
		Trigger:    wf.Trigger,
		Active:     wf.Active,
		Recurring:  wf.Recurring,
		Author: dto.WorkflowAuthorResponse{
			Name:     wf.Author.Name,
			Initials: wf.Author.Initials,
			Avatar:   wf.Author.Avatar,
		},
	}
}

func toConditionsResponse(conditions []model.WorkflowCondition) dto.ListConditionsResponse {
	res := dto.ListConditionsResponse{
		Conditions:  make([]dto.ConditionResponse, 0, len(conditions)),
		IsSatisfied: workflowservice.IsSatisfied(conditions),
	}
	for _, c := range conditions {
		res.Conditions = append(res.Conditions, dto.ConditionResponse{
			Logic:         string(c.Logic),
			ConditionType: c.ConditionType,
			Operator:      c.Operator,
			Value:         c.Value,
		})
	}
	return res
}

func toFilterStateResponse(state *workflowservice.FilterState) dto.FilterStateResponse {
	chips := state.ActiveChips()
	res := dto.FilterStateResponse{Chips: make([]dto.FilterChipResponse, 0, len(chips))}
	for _, chip := range chips {
		res.Chips = append(res.Chips, dto.FilterChipResponse{
			Dimension: chip.Dimension,
			Values:    chip.Values,
			Operator:  string(chip.Operator),
		})
	}
	return res
}
