package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNotificationsTableName = "notifications"
	notificationsRecipientIndex   = "recipient_id-index"
)

type notificationItem struct {
	ID          string            `dynamodbav:"id"`
	RecipientID string            `dynamodbav:"recipient_id"`
	Type        string            `dynamodbav:"type"`
	Message     string            `dynamodbav:"message"`
	Metadata    map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
	ReadAt      string            `dynamodbav:"read_at,omitempty"`
}

// NotificationDynamoRepository persists in-app notifications in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: recipient_id-index (PK: recipient_id)

type NotificationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb *dynamodb.Client) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NOTIFICATIONS_TABLE", defaultNotificationsTableName),
	}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) (entities.Notification, error) {
	av, err := attributevalue.MarshalMap(toNotificationItem(n))
	if err != nil {
		return entities.Notification{}, err
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
		return entities.Notification{}, err
	}
	return n, nil
}

func (r *NotificationDynamoRepository) ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsRecipientIndex),
		KeyConditionExpression: aws.String("recipient_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: recipientID},
		},
	})
	if err != nil {
		return nil, err
	}

	list := make([]entities.Notification, 0, len(out.Items))
	for _, raw := range out.Items {
		var it notificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		list = append(list, fromNotificationItem(it))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// MarkRead sets read_at, conditioned on the notification belonging to the
// recipient so one user cannot mark another's notifications.
func (r *NotificationDynamoRepository) MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND recipient_id = :rid"),
		UpdateExpression:    aws.String("SET #read_at = :read_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#read_at": "read_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid":     &types.AttributeValueMemberS{Value: recipientID},
			":read_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Notification{}, nil
		}
		return entities.Notification{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Notification{}, nil
	}
	var it notificationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Notification{}, err
	}
	return fromNotificationItem(it), nil
}

func toNotificationItem(n entities.Notification) notificationItem {
	it := notificationItem{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        string(n.Type),
		Message:     n.Message,
		Metadata:    n.Metadata,
		CreatedAt:   formatTime(n.CreatedAt),
	}
	if n.ReadAt != nil {
		it.ReadAt = formatTime(*n.ReadAt)
	}
	return it
}

func fromNotificationItem(it notificationItem) entities.Notification {
	n := entities.Notification{
		ID:          it.ID,
		RecipientID: it.RecipientID,
		Type:        entities.NotificationType(it.Type),
		Message:     it.Message,
		Metadata:    it.Metadata,
		CreatedAt:   parseTime(it.CreatedAt),
	}
	if it.ReadAt != "" {
		t := parseTime(it.ReadAt)
		n.ReadAt = &t
	}
	return n
}
