package router

import (
	"net/http"

	"crm-inbox-backend/internal/api"
	"crm-inbox-backend/internal/api/endpoints"
	agentservice "crm-inbox-backend/internal/service/agent"
)

func AgentRoutes(prefix string, service *agentservice.Service) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		agentEndpoints := endpoints.NewAgentEndpoints(service, prefix)
		mux.HandleFunc(prefix+"/agents", s.MakeHTTPHandleFunc(agentEndpoints.Agents))
		mux.HandleFunc(prefix+"/agents/", s.MakeHTTPHandleFunc(agentEndpoints.AgentByID))
	}
}
