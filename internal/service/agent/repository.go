package agent

import (
	"context"
	"errors"
	"sort"
	"strings"

	"crm-inbox-backend/internal/database"
	"crm-inbox-backend/internal/model"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var ErrNotFound = errors.New("agent repository: not found")

type Repository interface {
	GetAgent(ctx context.Context, agentID string) (model.AgentItem, error)
	ListAgents(ctx context.Context) ([]model.AgentItem, error)
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
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

func (r *DynamoRepository) ListAgents(ctx context.Context) ([]model.AgentItem, error) {
	items, err := r.db.Client.ScanAll(ctx, model.AgentsTable)
	if err != nil {
		return nil, err
	}

	agents := make([]model.AgentItem, 0, len(items))
	for _, item := range items {
		var agent model.AgentItem
		if err := attributevalue.UnmarshalMap(item, &agent); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}

	SortAgents(agents)
	return agents, nil
}

// SortAgents lists individual agents before teams, each group by id.
func SortAgents(agents []model.AgentItem) {
	sort.Slice(agents, func(i, j int) bool {
		if agents[i].Type != agents[j].Type {
			return agents[i].Type == model.AgentTypeAgent
		}
		return agents[i].AgentID < agents[j].AgentID
	})
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "item not found")
}
