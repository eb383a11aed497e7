package model

import "fmt"

type ConversationStatus string

const (
	ConversationStatusActive ConversationStatus = "active"
	ConversationStatusClosed ConversationStatus = "closed"
)

type SystemMessageKind string

const (
	SystemMessageAgentAssigned        SystemMessageKind = "agent_assigned"
	SystemMessageAgentRemoved         SystemMessageKind = "agent_removed"
	SystemMessageConversationClosed   SystemMessageKind = "conversation_closed"
	SystemMessageConversationReopened SystemMessageKind = "conversation_reopened"
)

type DeliveryStatus string

const (
	DeliveryStatusSent      DeliveryStatus = "sent"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusRead      DeliveryStatus = "read"
)

func MessagePK(conversationID, messageID string) string {
	return fmt.Sprintf("%s#%s", conversationID, messageID)
}

type ConversationItem struct {
	ConversationID  string             `dynamodbav:"conversationId"`
	UserID          string             `dynamodbav:"userId"`
	AssignedAgents  []string           `dynamodbav:"assignedAgents,omitempty"`
	Status          ConversationStatus `dynamodbav:"status"`
	LastMessage     string             `dynamodbav:"lastMessage,omitempty"`
	LastMessageTime string             `dynamodbav:"lastMessageTime,omitempty"`
	UnreadCount     int                `dynamodbav:"unreadCount"`
}

// MessageInfo carries the delivery metadata shown in a message's detail popover.
type MessageInfo struct {
	Channel  string `dynamodbav:"channel,omitempty"`
	Page     string `dynamodbav:"page,omitempty"`
	Received string `dynamodbav:"received,omitempty"`
	SentTo   string `dynamodbav:"sentTo,omitempty"`
	CC       string `dynamodbav:"cc,omitempty"`
	Source   string `dynamodbav:"source,omitempty"`
}

type MessageStatus struct {
	Status     DeliveryStatus `dynamodbav:"status"`
	StatusText string         `dynamodbav:"statusText,omitempty"`
}

type MessageItem struct {
	PK             string         `dynamodbav:"pk"`
	MessageID      string         `dynamodbav:"messageId"`
	ConversationID string         `dynamodbav:"conversationId"`
	SenderID       string         `dynamodbav:"senderId"`
	Body           string         `dynamodbav:"body"`
	Timestamp      string         `dynamodbav:"timestamp"`
	Info           MessageInfo    `dynamodbav:"info,omitempty"`
	Status         *MessageStatus `dynamodbav:"messageStatus,omitempty"`
}

type SystemMessageItem struct {
	PK              string            `dynamodbav:"pk"`
	SystemMessageID string            `dynamodbav:"systemMessageId"`
	ConversationID  string            `dynamodbav:"conversationId"`
	Kind            SystemMessageKind `dynamodbav:"kind"`
	Content         string            `dynamodbav:"content"`
	Timestamp       string            `dynamodbav:"timestamp"`
}
