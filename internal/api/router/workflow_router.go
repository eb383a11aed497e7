package router

import (
	"net/http"

	"crm-inbox-backend/internal/api"
	"crm-inbox-backend/internal/api/endpoints"
	workflowservice "crm-inbox-backend/internal/service/workflow"
)

func WorkflowRoutes(prefix string, service *workflowservice.Service) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		workflowEndpoints := endpoints.NewWorkflowEndpoints(service, prefix)

		mux.HandleFunc(prefix+"/workflows", s.MakeHTTPHandleFunc(workflowEndpoints.Workflows))
		mux.HandleFunc(prefix+"/workflows/", s.MakeHTTPHandleFunc(workflowEndpoints.WorkflowSub))
		mux.HandleFunc(prefix+"/filters", s.MakeHTTPHandleFunc(workflowEndpoints.Filters))
		mux.HandleFunc(prefix+"/filters/operator", s.MakeHTTPHandleFunc(workflowEndpoints.FilterOperator))
		mux.HandleFunc(prefix+"/filters/clear", s.MakeHTTPHandleFunc(workflowEndpoints.FilterClear))
	}
}
