package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"crm-inbox-backend/internal/dto"
	"crm-inbox-backend/internal/flags"
	"crm-inbox-backend/internal/model"
	conversationservice "crm-inbox-backend/internal/service/conversation"
	"crm-inbox-backend/internal/timeline"
	"crm-inbox-backend/internal/websocket"

	"github.com/google/uuid"
)

type ConversationEndpoints interface {
	Conversations(http.ResponseWriter, *http.Request) error
	ConversationSub(http.ResponseWriter, *http.Request) error
	Websocket(http.ResponseWriter, *http.Request) error
	InboxWebsocket(http.ResponseWriter, *http.Request) error
}

type conversationEndpoints struct {
	service   *conversationservice.Service
	flags     *flags.Registry
	handler   *websocket.Handler
	subPrefix string
	wsPrefix  string
}

func NewConversationEndpoints(
	service *conversationservice.Service,
	registry *flags.Registry,
	handler *websocket.Handler,
	prefix string,
) ConversationEndpoints {
	base := strings.TrimRight(prefix, "/")
	return &conversationEndpoints{
		service:   service,
		flags:     registry,
		handler:   handler,
		subPrefix: base + "/conversations/",
		wsPrefix:  base + "/ws/conversations/",
	}
}

func (h *conversationEndpoints) Conversations(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleListConversations,
	})
}

// ConversationSub routes /conversations/{id} and its subresources.
func (h *conversationEndpoints) ConversationSub(w http.ResponseWriter, r *http.Request) error {
	rest := strings.TrimPrefix(r.URL.Path, h.subPrefix)
	if rest == r.URL.Path {
		return h.notFound(r.URL.Path)
	}
	rest = strings.Trim(rest, "/")

	convID := rest
	action := ""
	if i := strings.Index(rest, "/"); i >= 0 {
		convID = rest[:i]
		action = rest[i+1:]
	}
	if convID == "" {
		return h.notFound(r.URL.Path)
	}

	switch action {
	case "":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet: h.withID(convID, h.handleGetConversation),
		})
	case "timeline":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet: h.withID(convID, h.handleTimeline),
		})
	case "messages":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet:  h.withID(convID, h.handleListMessages),
			http.MethodPost: h.withID(convID, h.handlePostMessage),
		})
	case "agents":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodPut: h.withID(convID, h.handleSetAgents),
		})
	case "close":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodPost: h.withID(convID, h.handleClose),
		})
	case "reopen":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodPost: h.withID(convID, h.handleReopen),
		})
	case "read":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodPost: h.withID(convID, h.handleMarkRead),
		})
	case "important":
		return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
			http.MethodGet:  h.withID(convID, h.handleGetImportant),
			http.MethodPost: h.withID(convID, h.handleToggleImportant),
		})
	default:
		return h.notFound(r.URL.Path)
	}
}

type idHandler func(convID string, w http.ResponseWriter, r *http.Request) error

func (h *conversationEndpoints) withID(convID string, f idHandler) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		return f(convID, w, r)
	}
}

func (h *conversationEndpoints) handleListConversations(w http.ResponseWriter, r *http.Request) error {
	convs, err := h.service.ListConversations(r.Context())
	if err != nil {
		return h.serviceError(err)
	}

	res := dto.ListConversationsResponse{Conversations: make([]dto.ConversationResponse, 0, len(convs))}
	for _, conv := range convs {
		res.Conversations = append(res.Conversations, h.toConversationResponse(conv))
	}
	return WriteJSON(w, http.StatusOK, res)
}

func (h *conversationEndpoints) handleGetConversation(convID string, w http.ResponseWriter, r *http.Request) error {
	conv, err := h.service.GetConversation(r.Context(), convID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, h.toConversationResponse(conv))
}

func (h *conversationEndpoints) handleTimeline(convID string, w http.ResponseWriter, r *http.Request) error {
	entries, err := h.service.Timeline(r.Context(), convID)
	if err != nil {
		return h.serviceError(err)
	}

	res := dto.TimelineResponse{Entries: make([]dto.TimelineEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		res.Entries = append(res.Entries, toTimelineEntryResponse(entry))
	}
	return WriteJSON(w, http.StatusOK, res)
}

func (h *conversationEndpoints) handleListMessages(convID string, w http.ResponseWriter, r *http.Request) error {
	messages, err := h.service.ListMessages(r.Context(), convID)
	if err != nil {
		return h.serviceError(err)
	}

	res := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageResponse(m))
	}
	return WriteJSON(w, http.StatusOK, res)
}

func (h *conversationEndpoints) handlePostMessage(convID string, w http.ResponseWriter, r *http.Request) error {
	var req dto.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode post message request: %w", err),
		}
	}

	message, err := h.service.PostMessage(r.Context(), convID, req.SenderID, req.Body)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusCreated, toMessageResponse(message))
}

func (h *conversationEndpoints) handleSetAgents(convID string, w http.ResponseWriter, r *http.Request) error {
	var req dto.SetAssignedAgentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode set agents request: %w", err),
		}
	}

	conv, err := h.service.SetAssignedAgents(r.Context(), convID, req.AgentIDs)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, h.toConversationResponse(conv))
}

func (h *conversationEndpoints) handleClose(convID string, w http.ResponseWriter, r *http.Request) error {
	conv, err := h.service.Close(r.Context(), convID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, h.toConversationResponse(conv))
}

func (h *conversationEndpoints) handleReopen(convID string, w http.ResponseWriter, r *http.Request) error {
	conv, err := h.service.Reopen(r.Context(), convID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, h.toConversationResponse(conv))
}

func (h *conversationEndpoints) handleMarkRead(convID string, w http.ResponseWriter, r *http.Request) error {
	conv, err := h.service.MarkRead(r.Context(), convID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, h.toConversationResponse(conv))
}

func (h *conversationEndpoints) handleGetImportant(convID string, w http.ResponseWriter, r *http.Request) error {
	if _, err := h.service.GetConversation(r.Context(), convID); err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, dto.ImportantResponse{
		ConversationID: convID,
		Important:      h.flags.IsImportant(convID),
	})
}

func (h *conversationEndpoints) handleToggleImportant(convID string, w http.ResponseWriter, r *http.Request) error {
	if _, err := h.service.GetConversation(r.Context(), convID); err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, dto.ImportantResponse{
		ConversationID: convID,
		Important:      h.flags.Toggle(convID),
	})
}

// Websocket upgrades /ws/conversations/{id} into the conversation's room.
func (h *conversationEndpoints) Websocket(w http.ResponseWriter, r *http.Request) error {
	convID := strings.TrimPrefix(r.URL.Path, h.wsPrefix)
	if convID == r.URL.Path {
		return h.notFound(r.URL.Path)
	}
	convID = strings.Trim(convID, "/")
	if convID == "" {
		return h.notFound(r.URL.Path)
	}

	if _, err := h.service.GetConversation(r.Context(), convID); err != nil {
		return h.serviceError(err)
	}

	h.handler.JoinRoom(w, r, websocket.ConversationRoom(convID), uuid.NewString())
	return nil
}

// InboxWebsocket upgrades into the cross-conversation inbox feed.
func (h *conversationEndpoints) InboxWebsocket(w http.ResponseWriter, r *http.Request) error {
	h.handler.JoinRoom(w, r, websocket.InboxRoom, uuid.NewString())
	return nil
}

func (h *conversationEndpoints) notFound(path string) error {
	return &HTTPError{
		StatusCode: http.StatusNotFound,
		Message:    "Conversation not found",
		ErrorLog:   fmt.Errorf("conversation path mismatch: %s", path),
	}
}

func (h *conversationEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*conversationservice.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("conversation service: %w", err),
		}
	}

	var logErr error
	if svcErr.Err != nil {
		logErr = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		logErr = svcErr
	}

	switch svcErr.Code {
	case conversationservice.ErrorCodeValidation:
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: svcErr.Message, ErrorLog: logErr}
	case conversationservice.ErrorCodeNotFound:
		return &HTTPError{StatusCode: http.StatusNotFound, Message: svcErr.Message, ErrorLog: logErr}
	case conversationservice.ErrorCodeConflict:
		return &HTTPError{StatusCode: http.StatusConflict, Message: svcErr.Message, ErrorLog: logErr}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", ErrorLog: logErr}
	}
}

func (h *conversationEndpoints) toConversationResponse(conv model.ConversationItem) dto.ConversationResponse {
	assigned := conv.AssignedAgents
	if assigned == nil {
		assigned = []string{}
	}
	return dto.ConversationResponse{
		ConversationID:  conv.ConversationID,
		UserID:          conv.UserID,
		AssignedAgents:  assigned,
		Status:          string(conv.Status),
		LastMessage:     conv.LastMessage,
		LastMessageTime: conv.LastMessageTime,
		UnreadCount:     conv.UnreadCount,
		Important:       h.flags.IsImportant(conv.ConversationID),
	}
}

func toMessageResponse(m model.MessageItem) dto.MessageResponse {
	res := dto.MessageResponse{
		MessageID:      m.MessageID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Body:           m.Body,
		Timestamp:      m.Timestamp,
		Info: dto.MessageInfoResponse{
			Channel:  m.Info.Channel,
			Page:     m.Info.Page,
			Received: m.Info.Received,
			SentTo:   m.Info.SentTo,
			CC:       m.Info.CC,
			Source:   m.Info.Source,
		},
	}
	if m.Status != nil {
		res.Status = &dto.MessageStatusResponse{
			Status:     string(m.Status.Status),
			StatusText: m.Status.StatusText,
		}
	}
	return res
}

func toSystemMessageResponse(m model.SystemMessageItem) dto.SystemMessageResponse {
	return dto.SystemMessageResponse{
		SystemMessageID: m.SystemMessageID,
		ConversationID:  m.ConversationID,
		Kind:            string(m.Kind),
		Content:         m.Content,
		Timestamp:       m.Timestamp,
	}
}

func toTimelineEntryResponse(entry timeline.Entry) dto.TimelineEntryResponse {
	var res dto.TimelineEntryResponse
	if entry.Message != nil {
		m := toMessageResponse(*entry.Message)
		res.Message = &m
	}
	if entry.System != nil {
		s := toSystemMessageResponse(*entry.System)
		res.System = &s
	}
	return res
}
