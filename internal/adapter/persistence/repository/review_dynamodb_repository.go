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

const defaultReviewsTableName = "reviews"

type reviewItem struct {
	ID         string `dynamodbav:"id"`
	JobID      string `dynamodbav:"job_id"`
	CustomerID string `dynamodbav:"customer_id"`
	Rating     int    `dynamodbav:"rating"`
	Comment    string `dynamodbav:"comment,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ReviewDynamoRepository persists the thin review records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type ReviewDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReviewRepository = (*ReviewDynamoRepository)(nil)

func NewReviewDynamoRepository(ddb *dynamodb.Client) *ReviewDynamoRepository {
	return &ReviewDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ReviewDynamoRepository) Create(ctx context.Context, rev entities.Review) (entities.Review, error) {
	av, err := attributevalue.MarshalMap(toReviewItem(rev))
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Review{}, err
	}
	return rev, nil
}

func (r *ReviewDynamoRepository) GetByID(ctx context.Context, id string) (entities.Review, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Review{}, err
	}
	if len(out.Item) == 0 {
		return entities.Review{}, nil
	}

	var it reviewItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Review{}, err
	}
	return fromReviewItem(it), nil
}

func toReviewItem(r entities.Review) reviewItem {
	return reviewItem{
		ID:         r.ID,
		JobID:      r.JobID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  formatTime(r.CreatedAt),
	}
}

func fromReviewItem(it reviewItem) entities.Review {
	return entities.Review{
		ID:         it.ID,
		JobID:      it.JobID,
		CustomerID: it.CustomerID,
		Rating:     it.Rating,
		Comment:    it.Comment,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
