package endpoints

import (
	"fmt"
	"net/http"
	"strings"

	"crm-inbox-backend/internal/dto"
	"crm-inbox-backend/internal/model"
	agentservice "crm-inbox-backend/internal/service/agent"
)

type AgentEndpoints interface {
	Agents(http.ResponseWriter, *http.Request) error
	AgentByID(http.ResponseWriter, *http.Request) error
}

type agentEndpoints struct {
	service *agentservice.Service
	prefix  string
}

func NewAgentEndpoints(service *agentservice.Service, prefix string) AgentEndpoints {
	return &agentEndpoints{
		service: service,
		prefix:  strings.TrimRight(prefix, "/") + "/agents/",
	}
}

func (h *agentEndpoints) Agents(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleListAgents,
	})
}

func (h *agentEndpoints) AgentByID(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleGetAgent,
	})
}

func (h *agentEndpoints) handleListAgents(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		agents []model.AgentItem
		err    error
	)
	switch {
	case query.Get("available") == "true":
		agents, err = h.service.ListAvailableAgents(ctx)
	case query.Get("type") != "":
		agents, err = h.service.ListAgentsByType(ctx, model.AgentType(query.Get("type")))
	default:
		agents, err = h.service.ListAgents(ctx)
	}
	if err != nil {
		return h.serviceError(err)
	}

	res := dto.ListAgentsResponse{Agents: make([]dto.AgentResponse, 0, len(agents))}
	for _, agent := range agents {
		res.Agents = append(res.Agents, toAgentResponse(agent))
	}
	return WriteJSON(w, http.StatusOK, res)
}

func (h *agentEndpoints) handleGetAgent(w http.ResponseWriter, r *http.Request) error {
	agentID := strings.TrimPrefix(r.URL.Path, h.prefix)
	agentID = strings.Trim(agentID, "/")
	if agentID == "" || strings.Contains(agentID, "/") {
		return &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    "Agent not found",
			ErrorLog:   fmt.Errorf("agent path mismatch: %s", r.URL.Path),
		}
	}

	agent, err := h.service.GetAgent(r.Context(), agentID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toAgentResponse(agent))
}

func (h *agentEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*agentservice.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("agent service: %w", err),
		}
	}

	var logErr error
	if svcErr.Err != nil {
		logErr = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		logErr = svcErr
	}

	switch svcErr.Code {
	case agentservice.ErrorCodeValidation:
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: svcErr.Message, ErrorLog: logErr}
	case agentservice.ErrorCodeNotFound:
		return &HTTPError{StatusCode: http.StatusNotFound, Message: svcErr.Message, ErrorLog: logErr}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", ErrorLog: logErr}
	}
}

func toAgentResponse(agent model.AgentItem) dto.AgentResponse {
	return dto.AgentResponse{
		AgentID:     agent.AgentID,
		Name:        agent.Name,
		Initials:    agent.Initials,
		AvatarBg:    agent.AvatarBg,
		AvatarText:  agent.AvatarText,
		Type:        string(agent.Type),
		Status:      string(agent.Status),
		IsAvailable: agent.IsAvailable,
	}
}
