package contact

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

var ErrNotFound = errors.New("contact repository: not found")

type Repository interface {
	GetUser(ctx context.Context, userID string) (model.UserItem, error)
	ListUsers(ctx context.Context) ([]model.UserItem, error)
	PutUser(ctx context.Context, user model.UserItem) error
}

type DynamoRepository struct {
	db *database.Database
}

func NewDynamoRepository(db *database.Database) Repository {
	return &DynamoRepository{db: db}
}

func (r *DynamoRepository) GetUser(ctx context.Context, userID string) (model.UserItem, error) {
	var user model.UserItem
	err := r.db.Client.GetItem(
		ctx,
		model.UsersTable,
		map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		&user,
	)
	if err != nil {
		if isNotFound(err) {
			return model.UserItem{}, ErrNotFound
		}
		return model.UserItem{}, err
	}
	return user, nil
}

func (r *DynamoRepository) ListUsers(ctx context.Context) ([]model.UserItem, error) {
	items, err := r.db.Client.ScanAll(ctx, model.UsersTable)
	if err != nil {
		return nil, err
	}

	users := make([]model.UserItem, 0, len(items))
	for _, item := range items {
		var user model.UserItem
		if err := attributevalue.UnmarshalMap(item, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	SortUsers(users)
	return users, nil
}

func (r *DynamoRepository) PutUser(ctx context.Context, user model.UserItem) error {
	return r.db.Client.PutItem(ctx, model.UsersTable, user)
}

// SortUsers orders users by numeric id where possible, lexicographic
// otherwise, so listings are stable across backends.
func SortUsers(users []model.UserItem) {
	sort.Slice(users, func(i, j int) bool {
		a, aErr := strconv.Atoi(users[i].UserID)
		b, bErr := strconv.Atoi(users[j].UserID)
		if aErr == nil && bErr == nil {
			return a < b
		}
		return users[i].UserID < users[j].UserID
	})
}

func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "item not found")
}
