package repository

import (
	"context"
	"errors"

	"tradeportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTokensTableName = "auth_tokens"

// TokenDynamoRepository is the persisted one-time token store.
//
// Table requirements:
//   - PK: token (string)
//
// Consume deletes the token in the same call that reads it, so a token can
// be consumed at most once even under concurrent requests.

type TokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITokenStore = (*TokenDynamoRepository)(nil)

func NewTokenDynamoRepository(ddb *dynamodb.Client) *TokenDynamoRepository {
	return &TokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUTH_TOKENS_TABLE", defaultTokensTableName),
	}
}

func (r *TokenDynamoRepository) Create(ctx context.Context, token, subject string) error {
	_, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item: map[string]types.AttributeValue{
			"token":   &types.AttributeValueMemberS{Value: token},
			"subject": &types.AttributeValueMemberS{Value: subject},
		},
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	return err
}

func (r *TokenDynamoRepository) Check(ctx context.Context, token string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *TokenDynamoRepository) Consume(ctx context.Context, token string) (string, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression: aws.String("attribute_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return "", nil
		}
		return "", err
	}
	if subject, ok := out.Attributes["subject"].(*types.AttributeValueMemberS); ok {
		return subject.Value, nil
	}
	return "", nil
}
