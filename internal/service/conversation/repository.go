package conversation

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"crm-inbox-backend/internal/database"
	"crm-inbox-backend/internal/model"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrNotFound = errors.New("conversation repository: not found")

type Repository interface {
	GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error)
	ListConversations(ctx context.Context) ([]model.ConversationItem, error)
	PutConversation(ctx context.Context, conv model.ConversationItem) error
	ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error)
	CreateMessage(ctx context.Context, message model.MessageItem) error
	ListSystemMessages(ctx context.Context, conversationID string) ([]model.SystemMessageItem, error)
	CreateSystemMessage(ctx context.Context, message model.SystemMessageItem) error
	GetAgent(ctx context.Context, agentID string) (model.AgentItem, error)
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) GetConversation(ctx context.Context, conversationID string) (model.ConversationItem, error) {
	var conv model.ConversationItem
	err := r.db.Client.GetItem(
		ctx,
		model.ConversationsTable,
		map[string]types.AttributeValue{
			"conversationId": &types.AttributeValueMemberS{Value: conversationID},
		},
		&conv,
	)
	if err != nil {
		if isNotFound(err) {
			return model.ConversationItem{}, ErrNotFound
		}
		return model.ConversationItem{}, err
	}
	return conv, nil
}

func (r *DynamoRepository) ListConversations(ctx context.Context) ([]model.ConversationItem, error) {
	items, err := r.db.Client.ScanAll(ctx, model.ConversationsTable)
	if err != nil {
		return nil, err
	}

	convs := make([]model.ConversationItem, 0, len(items))
	for _, item := range items {
		var conv model.ConversationItem
		if err := attributevalue.UnmarshalMap(item, &conv); err != nil {
			return nil, err
		}
		convs = append(convs, conv)
	}

	sortByID(convs)
	return convs, nil
}

func (r *DynamoRepository) PutConversation(ctx context.Context, conv model.ConversationItem) error {
	return r.db.Client.PutItem(ctx, model.ConversationsTable, conv)
}

func (r *DynamoRepository) ListMessages(ctx context.Context, conversationID string) ([]model.MessageItem, error) {
	items, err := r.db.Client.QueryItems(
		ctx,
		model.MessagesTable,
		nil,
		"conversationId = :conversationId",
		map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		},
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	messages := make([]model.MessageItem, 0, len(items))
	for _, item := range items {
		var message model.MessageItem
		if err := attributevalue.UnmarshalMap(item, &message); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (r *DynamoRepository) CreateMessage(ctx context.Context, message model.MessageItem) error {
	message.PK = model.MessagePK(message.ConversationID, message.MessageID)
	return r.db.Client.PutItem(ctx, model.MessagesTable, message)
}

func (r *DynamoRepository) ListSystemMessages(ctx context.Context, conversationID string) ([]model.SystemMessageItem, error) {
	items, err := r.db.Client.QueryItems(
		ctx,
		model.SystemMessagesTable,
		nil,
		"conversationId = :conversationId",
		map[string]types.AttributeValue{
			":conversationId": &types.AttributeValueMemberS{Value: conversationID},
		},
		nil,
		nil,
	)
	if err != nil {
		return nil, err
	}

	messages := make([]model.SystemMessageItem, 0, len(items))
	for _, item := range items {
		var message model.SystemMessageItem
		if err := attributevalue.UnmarshalMap(item, &message); err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (r *DynamoRepository) CreateSystemMessage(ctx context.Context, message model.SystemMessageItem) error {
	message.PK = model.MessagePK(message.ConversationID, message.SystemMessageID)
	return r.db.Client.PutItem(ctx, model.SystemMessagesTable, message)
}

func (r *DynamoRepository) GetAgent(ctx context.Context, agentID string) (model.AgentItem, error) {
	var agent model.AgentItem
	err := r.db.Client.GetItem(
		ctx,
		model.AgentsTable,
		map[string]types.AttributeValue{
			"agentId": &types.AttributeValueMemberS{Value: agentID},
		},
		&agent,
	)
	if err != nil {
		if isNotFound(err) {
			return model.AgentItem{}, ErrNotFound
		}
		return model.AgentItem{}, err
	}
	return agent, nil
}

func sortByID(convs []model.ConversationItem) {
	sort.Slice(convs, func(i, j int) bool {
		a, aErr := strconv.Atoi(convs[i].ConversationID)
		b, bErr := strconv.Atoi(convs[j].ConversationID)
		if aErr == nil && bErr == nil {
			return a < b
		}
		return convs[i].ConversationID < convs[j].ConversationID
	})
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "item not found")
}
