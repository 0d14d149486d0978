package repository

import (
	"context"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "users"
	usersRoleIndex        = "role-index"
	usersEmailIndex       = "email-index"
)

type userItem struct {
	ID               string   `dynamodbav:"id"`
	Email            string   `dynamodbav:"email"`
	Name             string   `dynamodbav:"name,omitempty"`
	Phone            string   `dynamodbav:"phone,omitempty"`
	Role             string   `dynamodbav:"role"`
	SubscriptionTier string   `dynamodbav:"subscription_tier"`
	ServiceType      string   `dynamodbav:"service_type,omitempty"`
	ServiceSlugs     []string `dynamodbav:"service_slugs,omitempty"`
	ServiceAreaSlugs []string `dynamodbav:"service_area_slugs,omitempty"`
	CitySlug         string   `dynamodbav:"city_slug,omitempty"`
	BusinessID       string   `dynamodbav:"business_id,omitempty"`
}

// UserDynamoRepository is the directory-service adapter backed by DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
//   - GSI: role-index (PK: role)
//
// ListProviders queries the role-index once per provider role; the matching
// engine filters and partitions the result in memory.

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserDirectory = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ListProviders(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	for _, role := range entities.ProviderRoles {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(usersRoleIndex),
			KeyConditionExpression: aws.String("#role = :role"),
			ExpressionAttributeNames: map[string]string{
				"#role": "role",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":role": &types.AttributeValueMemberS{Value: string(role)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it userItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			users = append(users, fromUserItem(it))
		}
	}
	return users, nil
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:               it.ID,
		Email:            it.Email,
		Name:             it.Name,
		Phone:            it.Phone,
		Role:             entities.Role(it.Role),
		SubscriptionTier: entities.SubscriptionTier(it.SubscriptionTier),
		ServiceType:      it.ServiceType,
		ServiceSlugs:     it.ServiceSlugs,
		ServiceAreaSlugs: it.ServiceAreaSlugs,
		CitySlug:         it.CitySlug,
		BusinessID:       it.BusinessID,
	}
}
