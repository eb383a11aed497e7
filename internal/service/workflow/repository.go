package workflow

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

var ErrNotFound = errors.New("workflow repository: not found")

type Repository interface {
	GetWorkflow(ctx context.Context, workflowID string) (model.WorkflowItem, error)
	ListWorkflows(ctx context.Context) ([]model.WorkflowItem, error)
	PutWorkflow(ctx context.Context, wf model.WorkflowItem) error
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) GetWorkflow(ctx context.Context, workflowID string) (model.WorkflowItem, error) {
	var wf model.WorkflowItem
	err := r.db.Client.GetItem(
		ctx,
		model.WorkflowsTable,
		map[string]types.AttributeValue{
			"workflowId": &types.AttributeValueMemberS{Value: workflowID},
		},
		&wf,
	)
	if err != nil {
		if isNotFound(err) {
			return model.WorkflowItem{}, ErrNotFound
		}
		return model.WorkflowItem{}, err
	}
	return wf, nil
}

func (r *DynamoRepository) ListWorkflows(ctx context.Context) ([]model.WorkflowItem, error) {
	items, err := r.db.Client.ScanAll(ctx, model.WorkflowsTable)
	if err != nil {
		return nil, err
	}

	workflows := make([]model.WorkflowItem, 0, len(items))
	for _, item := range items {
		var wf model.WorkflowItem
		if err := attributevalue.UnmarshalMap(item, &wf); err != nil {
			return nil, err
		}
		workflows = append(workflows, wf)
	}

	SortWorkflows(workflows)
	return workflows, nil
}

func (r *DynamoRepository) PutWorkflow(ctx context.Context, wf model.WorkflowItem) error {
	return r.db.Client.PutItem(ctx, model.WorkflowsTable, wf)
}

// SortWorkflows restores the stored listing order by numeric id.
func SortWorkflows(workflows []model.WorkflowItem) {
	sort.Slice(workflows, func(i, j int) bool {
		a, aErr := strconv.Atoi(workflows[i].WorkflowID)
		b, bErr := strconv.Atoi(workflows[j].WorkflowID)
		if aErr == nil && bErr == nil {
			return a < b
		}
		return workflows[i].WorkflowID < workflows[j].WorkflowID
	})
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "item not found")
}
