package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"crm-inbox-backend/internal/database"
	"crm-inbox-backend/internal/model"
	"crm-inbox-backend/internal/timeline"
	"crm-inbox-backend/internal/validation"
	"crm-inbox-backend/internal/websocket"

	"github.com/google/uuid"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeConflict   ErrorCode = "conflict"
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

type Publisher func(room string, payload interface{}) error

type Service struct {
	repo    Repository
	now     func() time.Time
	publish Publisher
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

func (s *Service) SetPublisher(publish Publisher) {
	s.publish = publish
}

func (s *Service) GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return model.ConversationItem{}, newError(ErrorCodeValidation, "conversation id is required", nil)
	}

	conv, err := s.repo.GetConversation(ctx, conversationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.ConversationItem{}, newError(ErrorCodeNotFound, "conversation not found", err)
		}
		return model.ConversationItem{}, newError(ErrorCodeInternal, "failed to fetch conversation", err)
	}
	return conv, nil
}

// ListConversations returns conversations most recently active first. Every
// last-activity label is resolved against a single clock reading so the
// ordering is consistent within one call.
func (s *Service) ListConversations(ctx context.Context) ([]model.ConversationItem, error) {
	convs, err := s.repo.ListConversations(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list conversations", err)
	}

	now := s.now()
	sort.SliceStable(convs, func(i, j int) bool {
		return timeline.Resolve(convs[i].LastMessageTime, now).After(
			timeline.Resolve(convs[j].LastMessageTime, now))
	})
	return convs, nil
}

// Timeline merges the conversation's messages and system messages into a
// single chronological feed.
func (s *Service) Timeline(ctx context.Context, conversationID string) ([]timeline.Entry, error) {
	if _, err := s.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list messages", err)
	}
	systemMessages, err := s.repo.ListSystemMessages(ctx, conversationID)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list system messages", err)
	}

	return timeline.Merge(messages, systemMessages, s.now()), nil
}

func (s *Service) ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error) {
	if _, err := s.GetConversation(ctx, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list messages", err)
	}
	return messages, nil
}

// PostMessage appends a message to an active conversation. A message from
// the conversation's contact bumps the unread counter; a message from anyone
// else is treated as an agent reply.
func (s *Service) PostMessage(ctx context.Context, conversationID, senderID, body string) (model.MessageItem, error) {
	senderID = strings.TrimSpace(senderID)
	if senderID == "" {
		return model.MessageItem{}, newError(ErrorCodeValidation, "sender id is required", nil)
	}

	if res := validation.ValidateMessage(body); !res.IsValid {
		return model.MessageItem{}, newError(ErrorCodeValidation, res.Error, nil)
	}
	body = validation.SanitizeInput(body)

	conv, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return model.MessageItem{}, err
	}
	if conv.Status == model.ConversationStatusClosed {
		return model.MessageItem{}, newError(ErrorCodeConflict, "conversation is closed", nil)
	}

	message := model.MessageItem{
		MessageID:      uuid.NewString(),
		ConversationID: conv.ConversationID,
		SenderID:       senderID,
		Body:           body,
		Timestamp:      "now",
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return model.MessageItem{}, newError(ErrorCodeInternal, "failed to store message", err)
	}

	if senderID == conv.UserID {
		conv.LastMessage = body
		conv.UnreadCount++
	} else {
		conv.LastMessage = "You: " + body
	}
	conv.LastMessageTime = "now"

	if err := s.repo.PutConversation(ctx, conv); err != nil {
		return model.MessageItem{}, newError(ErrorCodeInternal, "failed to update conversation", err)
	}

	s.notify(websocket.ConversationRoom(conv.ConversationID), "message_created", conv.ConversationID)
	s.notify(websocket.InboxRoom, "conversation_updated", conv.ConversationID)
	return message, nil
}

// AddSystemMessage records an out-of-band event in the conversation feed.
func (s *Service) AddSystemMessage(ctx context.Context, conversationID string, kind model.SystemMessageKind, content string) (model.SystemMessageItem, error) {
	conv, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return model.SystemMessageItem{}, err
	}

	item := model.SystemMessageItem{
		SystemMessageID: uuid.NewString(),
		ConversationID:  conv.ConversationID,
		Kind:            kind,
		Content:         content,
		Timestamp:       "now",
	}
	if err := s.repo.CreateSystemMessage(ctx, item); err != nil {
		return model.SystemMessageItem{}, newError(ErrorCodeInternal, "failed to store system message", err)
	}

	s.notify(websocket.ConversationRoom(conv.ConversationID), "message_created", conv.ConversationID)
	return item, nil
}

// SetAssignedAgents replaces the assignment set. Each change produces a
// system message naming the agent; ids that resolve to no known agent are
// skipped.
func (s *Service) SetAssignedAgents(ctx context.Context, conversationID string, agentIDs []string) (model.ConversationItem, error) {
	conv, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return model.ConversationItem{}, err
	}

	next := make([]string, 0, len(agentIDs))
	seen := make(map[string]bool, len(agentIDs))
	for _, id := range agentIDs {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		if _, err := s.repo.GetAgent(ctx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return model.ConversationItem{}, newError(ErrorCodeInternal, "failed to resolve agent", err)
		}
		seen[id] = true
		next = append(next, id)
	}

	previous := make(map[string]bool, len(conv.AssignedAgents))
	for _, id := range conv.AssignedAgents {
		previous[id] = true
	}

	var added, removed []string
	for _, id := range next {
		if !previous[id] {
			added = append(added, id)
		}
	}
	for _, id := range conv.AssignedAgents {
		if !seen[id] {
			removed = append(removed, id)
		}
	}

	conv.AssignedAgents = next
	if err := s.repo.PutConversation(ctx, conv); err != nil {
		return model.ConversationItem{}, newError(ErrorCodeInternal, "failed to update conversation", err)
	}

	for _, id := range added {
		s.recordAssignment(ctx, conv.ConversationID, id, model.SystemMessageAgentAssigned, "%s was added to the conversation")
	}
	for _, id := range removed {
		s.recordAssignment(ctx, conv.ConversationID, id, model.SystemMessageAgentRemoved, "%s was removed from the conversation")
	}

	s.notify(websocket.InboxRoom, "conversation_updated", conv.ConversationID)
	return conv, nil
}

func (s *Service) recordAssignment(ctx context.Context, conversationID, agentID string, kind model.SystemMessageKind, format string) {
	name := agentID
	if agent, err := s.repo.GetAgent(ctx, agentID); err == nil {
		name = agent.Name
	}

	item := model.SystemMessageItem{
		SystemMessageID: uuid.NewString(),
		ConversationID:  conversationID,
		Kind:            kind,
		Content:         fmt.Sprintf(format, name),
		Timestamp:       "now",
	}
	if err := s.repo.CreateSystemMessage(ctx, item); err != nil {
		log.Printf("conversation: record assignment change for %s: %v", conversationID, err)
	}
}

func (s *Service) Close(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	conv, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return model.ConversationItem{}, err
	}
	if conv.Status == model.ConversationStatusClosed {
		return model.ConversationItem{}, newError(ErrorCodeConflict, "conversation is already closed", nil)
	}

	conv.Status = model.ConversationStatusClosed
	if err := s.repo.PutConversation(ctx, conv); err != nil {
		return model.ConversationItem{}, newError(ErrorCodeInternal, "failed to update conversation", err)
	}

	if _, err := s.AddSystemMessage(ctx, conv.ConversationID, model.SystemMessageConversationClosed, "Conversation was closed"); err != nil {
		log.Printf("conversation: record close of %s: %v", conv.ConversationID, err)
	}

	s.notify(websocket.InboxRoom, "conversation_updated", conv.ConversationID)
	return conv, nil
}

func (s *Service) Reopen(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	conv, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return model.ConversationItem{}, err
	}
	if conv.Status == model.ConversationStatusActive {
		return model.ConversationItem{}, newError(ErrorCodeConflict, "conversation is not closed", nil)
	}

	conv.Status = model.ConversationStatusActive
	if err := s.repo.PutConversation(ctx, conv); err != nil {
		return model.ConversationItem{}, newError(ErrorCodeInternal, "failed to update conversation", err)
	}

	if _, err := s.AddSystemMessage(ctx, conv.ConversationID, model.SystemMessageConversationReopened, "Conversation was reopened"); err != nil {
		log.Printf("conversation: record reopen of %s: %v", conv.ConversationID, err)
	}

	s.notify(websocket.InboxRoom, "conversation_updated", conv.ConversationID)
	return conv, nil
}

func (s *Service) MarkRead(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	conv, err := s.GetConversation(ctx, conversationID)
	if err != nil {
		return model.ConversationItem{}, err
	}
	if conv.UnreadCount == 0 {
		return conv, nil
	}

	conv.UnreadCount = 0
	if err := s.repo.PutConversation(ctx, conv); err != nil {
		return model.ConversationItem{}, newError(ErrorCodeInternal, "failed to update conversation", err)
	}

	s.notify(websocket.InboxRoom, "conversation_updated", conv.ConversationID)
	return conv, nil
}

type conversationEvent struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversationId"`
}

func (s *Service) notify(room, eventType, conversationID string) {
	if s.publish == nil {
		return
	}
	event := conversationEvent{
		Type:           eventType,
		ConversationID: conversationID,
	}
	if err := s.publish(room, event); err != nil {
		log.Printf("conversation: publish %s for %s: %v", eventType, conversationID, err)
	}
}
