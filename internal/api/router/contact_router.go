package router

import (
	"net/http"

	"crm-inbox-backend/internal/api"
	"crm-inbox-backend/internal/api/endpoints"
	contactservice "crm-inbox-backend/internal/service/contact"
)

func ContactRoutes(prefix string, service *contactservice.Service) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		contactEndpoints := endpoints.NewContactEndpoints(service, prefix)
		mux.HandleFunc(prefix+"/contacts", s.MakeHTTPHandleFunc(contactEndpoints.Contacts))
		mux.HandleFunc(prefix+"/contacts/", s.MakeHTTPHandleFunc(contactEndpoints.ContactByID))
	}
}
