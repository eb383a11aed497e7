package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"crm-inbox-backend/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2024, time.January, 8, 16, 45, 0, 0, time.UTC)
}

func seedConversations() []model.ConversationItem {
	return []model.ConversationItem{
		{ConversationID: "1", UserID: "u1", Status: model.ConversationStatusActive, LastMessage: "hello", LastMessageTime: "45m"},
		{ConversationID: "2", UserID: "u2", Status: model.ConversationStatusActive, LastMessage: "hi", LastMessageTime: "2h"},
		{ConversationID: "3", UserID: "u3", Status: model.ConversationStatusClosed, LastMessage: "bye", LastMessageTime: "1d"},
	}
}

func seedMessages() []model.MessageItem {
	return []model.MessageItem{
		{MessageID: "m1", ConversationID: "1", SenderID: "u1", Body: "first", Timestamp: "2h"},
		{MessageID: "m2", ConversationID: "1", SenderID: "agent-1", Body: "reply", Timestamp: "1h"},
		{MessageID: "m3", ConversationID: "1", SenderID: "u1", Body: "hello", Timestamp: "45m"},
	}
}

func seedAgents() []model.AgentItem {
	return []model.AgentItem{
		{AgentID: "agent-1", Name: "Sarah Johnson", Type: model.AgentTypeAgent},
		{AgentID: "agent-2", Name: "Mike Chen", Type: model.AgentTypeAgent},
	}
}

func newTestService() (*Service, *MemoryRepository) {
	repo := NewMemoryRepository(seedConversations(), seedMessages(), seedAgents())
	return NewWithRepository(repo, fixedNow), repo
}

func TestListConversationsMostRecentFirst(t *testing.T) {
	svc, _ := newTestService()

	convs, err := svc.ListConversations(context.Background())
	if err != nil {
		t.Fatalf("ListConversations returned error: %v", err)
	}

	want := []string{"1", "2", "3"}
	if len(convs) != len(want) {
		t.Fatalf("expected %d conversations, got %d", len(want), len(convs))
	}
	for i, id := range want {
		if convs[i].ConversationID != id {
			t.Fatalf("position %d: expected conversation %s, got %s", i, id, convs[i].ConversationID)
		}
	}
}

func TestTimelineInterleavesSystemMessages(t *testing.T) {
	svc, repo := newTestService()

	repo.CreateSystemMessage(context.Background(), model.SystemMessageItem{
		SystemMessageID: "s1",
		ConversationID:  "1",
		Kind:            model.SystemMessageAgentAssigned,
		Content:         "Sarah Johnson was added to the conversation",
		Timestamp:       "90m",
	})

	entries, err := svc.Timeline(context.Background(), "1")
	if err != nil {
		t.Fatalf("Timeline returned error: %v", err)
	}

	want := []string{"m1", "s1", "m2", "m3"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, id := range want {
		if entries[i].ID() != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, entries[i].ID())
		}
	}
}

func TestPostMessageFromContactBumpsUnread(t *testing.T) {
	svc, _ := newTestService()

	msg, err := svc.PostMessage(context.Background(), "1", "u1", "any update?")
	if err != nil {
		t.Fatalf("PostMessage returned error: %v", err)
	}
	if msg.Timestamp != "now" {
		t.Fatalf("expected timestamp now, got %q", msg.Timestamp)
	}

	conv, err := svc.GetConversation(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetConversation returned error: %v", err)
	}
	if conv.UnreadCount != 1 {
		t.Fatalf("expected unread count 1, got %d", conv.UnreadCount)
	}
	if conv.LastMessage != "any update?" {
		t.Fatalf("unexpected last message %q", conv.LastMessage)
	}
}

func TestPostMessageFromAgentPrefixesLastMessage(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.PostMessage(context.Background(), "1", "agent-1", "on it"); err != nil {
		t.Fatalf("PostMessage returned error: %v", err)
	}

	conv, _ := svc.GetConversation(context.Background(), "1")
	if conv.LastMessage != "You: on it" {
		t.Fatalf("unexpected last message %q", conv.LastMessage)
	}
	if conv.UnreadCount != 0 {
		t.Fatalf("agent reply should not bump unread, got %d", conv.UnreadCount)
	}
}

func TestPostMessageToClosedConversationConflicts(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.PostMessage(context.Background(), "3", "u3", "hello again")
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestPostMessageRejectsOversizedBody(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.PostMessage(context.Background(), "1", "u1", strings.Repeat("a", 1001))
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSetAssignedAgentsRecordsChanges(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	if _, err := svc.SetAssignedAgents(ctx, "1", []string{"agent-1"}); err != nil {
		t.Fatalf("SetAssignedAgents returned error: %v", err)
	}
	if _, err := svc.SetAssignedAgents(ctx, "1", []string{"agent-2", "ghost-agent"}); err != nil {
		t.Fatalf("SetAssignedAgents returned error: %v", err)
	}

	conv, _ := svc.GetConversation(ctx, "1")
	if len(conv.AssignedAgents) != 1 || conv.AssignedAgents[0] != "agent-2" {
		t.Fatalf("expected only agent-2 assigned, got %v", conv.AssignedAgents)
	}

	system, _ := repo.ListSystemMessages(ctx, "1")
	var contents []string
	for _, s := range system {
		contents = append(contents, s.Content)
	}
	want := []string{
		"Sarah Johnson was added to the conversation",
		"Mike Chen was added to the conversation",
		"Sarah Johnson was removed from the conversation",
	}
	if len(contents) != len(want) {
		t.Fatalf("expected %d system messages, got %v", len(want), contents)
	}
	for i, w := range want {
		if contents[i] != w {
			t.Fatalf("system message %d: expected %q, got %q", i, w, contents[i])
		}
	}
}

func TestCloseAndReopen(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	conv, err := svc.Close(ctx, "1")
	if err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if conv.Status != model.ConversationStatusClosed {
		t.Fatalf("expected closed status, got %s", conv.Status)
	}

	_, err = svc.Close(ctx, "1")
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeConflict {
		t.Fatalf("expected conflict on double close, got %v", err)
	}

	conv, err = svc.Reopen(ctx, "1")
	if err != nil {
		t.Fatalf("Reopen returned error: %v", err)
	}
	if conv.Status != model.ConversationStatusActive {
		t.Fatalf("expected active status, got %s", conv.Status)
	}

	system, _ := repo.ListSystemMessages(ctx, "1")
	if len(system) != 2 {
		t.Fatalf("expected close and reopen system messages, got %d", len(system))
	}
	if system[0].Kind != model.SystemMessageConversationClosed || system[1].Kind != model.SystemMessageConversationReopened {
		t.Fatalf("unexpected system message kinds: %s, %s", system[0].Kind, system[1].Kind)
	}
}

func TestMarkReadClearsUnread(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.PostMessage(ctx, "1", "u1", "ping"); err != nil {
		t.Fatalf("PostMessage returned error: %v", err)
	}

	conv, err := svc.MarkRead(ctx, "1")
	if err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if conv.UnreadCount != 0 {
		t.Fatalf("expected unread count 0, got %d", conv.UnreadCount)
	}
}
