package router

import (
	"net/http"

	"crm-inbox-backend/internal/api"
	"crm-inbox-backend/internal/api/endpoints"
	"crm-inbox-backend/internal/flags"
	conversationservice "crm-inbox-backend/internal/service/conversation"
)

func ConversationRoutes(prefix string, service *conversationservice.Service, registry *flags.Registry) api.RouteRegistrar {
	return func(mux *http.ServeMux, s *api.APIServer) {
		convEndpoints := endpoints.NewConversationEndpoints(service, registry, s.Handler(), prefix)

		mux.HandleFunc(prefix+"/conversations", s.MakeHTTPHandleFunc(convEndpoints.Conversations))
		mux.HandleFunc(prefix+"/conversations/", s.MakeHTTPHandleFunc(convEndpoints.ConversationSub))
		mux.HandleFunc(prefix+"/ws/conversations/", s.MakeHTTPHandleFunc(convEndpoints.Websocket))
		mux.HandleFunc(prefix+"/ws/inbox", s.MakeHTTPHandleFunc(convEndpoints.InboxWebsocket))
	}
}
