package dto

type ConversationResponse struct {
	ConversationID  string   `json:"conversationId"`
	UserID          string   `json:"userId"`
	AssignedAgents  []string `json:"assignedAgents"`
	Status          string   `json:"status"`
	LastMessage     string   `json:"lastMessage"`
	LastMessageTime string   `json:"lastMessageTime"`
	UnreadCount     int      `json:"unreadCount"`
	Important       bool     `json:"important"`
}

type ListConversationsResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

type MessageInfoResponse struct {
	Channel  string `json:"channel,omitempty"`
	Page     string `json:"page,omitempty"`
	Received string `json:"received,omitempty"`
	SentTo   string `json:"sentTo,omitempty"`
	CC       string `json:"cc,omitempty"`
	Source   string `json:"source,omitempty"`
}

type MessageStatusResponse struct {
	Status     string `json:"status"`
	StatusText string `json:"statusText,omitempty"`
}

type MessageResponse struct {
	MessageID      string                 `json:"messageId"`
	ConversationID string                 `json:"conversationId"`
	SenderID       string                 `json:"senderId"`
	Body           string                 `json:"body"`
	Timestamp      string                 `json:"timestamp"`
	Info           MessageInfoResponse    `json:"info"`
	Status         *MessageStatusResponse `json:"status,omitempty"`
}

type SystemMessageResponse struct {
	SystemMessageID string `json:"systemMessageId"`
	ConversationID  string `json:"conversationId"`
	Kind            string `json:"kind"`
	Content         string `json:"content"`
	Timestamp       string `json:"timestamp"`
}

// TimelineEntryResponse carries exactly one of Message or System.
type TimelineEntryResponse struct {
	Message *MessageResponse       `json:"message,omitempty"`
	System  *SystemMessageResponse `json:"system,omitempty"`
}

type TimelineResponse struct {
	Entries []TimelineEntryResponse `json:"entries"`
}

type PostMessageRequest struct {
	SenderID string `json:"senderId"`
	Body     string `json:"body"`
}

type SetAssignedAgentsRequest struct {
	AgentIDs []string `json:"agentIds"`
}

type ImportantResponse struct {
	ConversationID string `json:"conversationId"`
	Important      bool   `json:"important"`
}
