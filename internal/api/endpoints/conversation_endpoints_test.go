package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"crm-inbox-backend/internal/dto"
	"crm-inbox-backend/internal/flags"
	"crm-inbox-backend/internal/model"
	conversationservice "crm-inbox-backend/internal/service/conversation"
)

func fixedNow() time.Time {
	return time.Date(2024, time.January, 8, 16, 45, 0, 0, time.UTC)
}

func newConversationFixture() ConversationEndpoints {
	repo := conversationservice.NewMemoryRepository(
		[]model.ConversationItem{
			{ConversationID: "1", UserID: "u1", Status: model.ConversationStatusActive, LastMessage: "hello", LastMessageTime: "45m"},
			{ConversationID: "2", UserID: "u2", Status: model.ConversationStatusActive, LastMessage: "hi", LastMessageTime: "2h"},
		},
		[]model.MessageItem{
			{MessageID: "m1", ConversationID: "1", SenderID: "u1", Body: "hello", Timestamp: "45m"},
		},
		[]model.AgentItem{
			{AgentID: "agent-1", Name: "Sarah Johnson", Type: model.AgentTypeAgent},
		},
	)
	svc := conversationservice.NewWithRepository(repo, fixedNow)
	return NewConversationEndpoints(svc, flags.NewRegistry(), nil, "/api/v1")
}

func TestListConversationsEndpoint(t *testing.T) {
	h := newConversationFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations", nil)
	rec := httptest.NewRecorder()
	if err := h.Conversations(rec, req); err != nil {
		t.Fatalf("Conversations returned error: %v", err)
	}

	var res dto.ListConversationsResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Conversations) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(res.Conversations))
	}
	if res.Conversations[0].ConversationID != "1" {
		t.Fatalf("expected most recent conversation first, got %s", res.Conversations[0].ConversationID)
	}
}

func TestPostMessageEndpoint(t *testing.T) {
	h := newConversationFixture()

	body := strings.NewReader(`{"senderId":"u1","body":"any update?"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/1/messages", body)
	rec := httptest.NewRecorder()
	if err := h.ConversationSub(rec, req); err != nil {
		t.Fatalf("ConversationSub returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var res dto.MessageResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Timestamp != "now" {
		t.Fatalf("expected timestamp now, got %q", res.Timestamp)
	}
}

func TestPostMessageEndpointRejectsOversizedBody(t *testing.T) {
	h := newConversationFixture()

	oversized := `{"senderId":"u1","body":"` + strings.Repeat("a", 1001) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/1/messages", strings.NewReader(oversized))
	rec := httptest.NewRecorder()

	err := h.ConversationSub(rec, req)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}

func TestTimelineEndpoint(t *testing.T) {
	h := newConversationFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/1/timeline", nil)
	rec := httptest.NewRecorder()
	if err := h.ConversationSub(rec, req); err != nil {
		t.Fatalf("ConversationSub returned error: %v", err)
	}

	var res dto.TimelineResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Entries) != 1 || res.Entries[0].Message == nil {
		t.Fatalf("expected one message entry, got %+v", res.Entries)
	}
}

func TestToggleImportantEndpoint(t *testing.T) {
	h := newConversationFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/1/important", nil)
	rec := httptest.NewRecorder()
	if err := h.ConversationSub(rec, req); err != nil {
		t.Fatalf("ConversationSub returned error: %v", err)
	}

	var res dto.ImportantResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.Important {
		t.Fatal("expected conversation to be marked important")
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/conversations/1/important", nil)
	if err := h.ConversationSub(rec, req); err != nil {
		t.Fatalf("ConversationSub returned error: %v", err)
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Important {
		t.Fatal("expected second toggle to clear the flag")
	}
}

func TestUnknownConversationReturns404(t *testing.T) {
	h := newConversationFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/conversations/missing", nil)
	rec := httptest.NewRecorder()

	err := h.ConversationSub(rec, req)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 error, got %v", err)
	}
}

func TestCloseEndpointConflictsOnDoubleClose(t *testing.T) {
	h := newConversationFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/conversations/1/close", nil)
	rec := httptest.NewRecorder()
	if err := h.ConversationSub(rec, req); err != nil {
		t.Fatalf("first close returned error: %v", err)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/conversations/1/close", nil)
	rec = httptest.NewRecorder()
	err := h.ConversationSub(rec, req)
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 error, got %v", err)
	}
}
