package repository

import (
	"context"
	"errors"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTemplatesTableName = "quote_templates"
	templatesOwnerIDIndex     = "owner_id-index"
)

type quoteTemplateItem struct {
	ID              string  `dynamodbav:"id"`
	OwnerUserID     string  `dynamodbav:"owner_id"`
	BusinessID      string  `dynamodbav:"business_id,omitempty"`
	Scope           string  `dynamodbav:"scope"`
	Category        string  `dynamodbav:"category"`
	Unit            string  `dynamodbav:"unit"`
	DefaultQuantity float64 `dynamodbav:"default_quantity"`
	UnitPrice       float64 `dynamodbav:"unit_price"`
	VATRate         float64 `dynamodbav:"vat_rate"`
	IsArchived      bool    `dynamodbav:"is_archived"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// QuoteTemplateDynamoRepository persists QuoteTemplate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Templates are only ever archived, never deleted, so the item count per
// owner grows monotonically; CountActivePersonal filters archived items out
// on read.

type QuoteTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteTemplateRepository = (*QuoteTemplateDynamoRepository)(nil)

func NewQuoteTemplateDynamoRepository(ddb *dynamodb.Client) *QuoteTemplateDynamoRepository {
	return &QuoteTemplateDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_TEMPLATES_TABLE", defaultTemplatesTableName),
	}
}

func (r *QuoteTemplateDynamoRepository) Create(ctx context.Context, t entities.QuoteTemplate) (entities.QuoteTemplate, error) {
	av, err := attributevalue.MarshalMap(toQuoteTemplateItem(t))
	if err != nil {
		return entities.QuoteTemplate{}, err
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
		return entities.QuoteTemplate{}, err
	}
	return t, nil
}

func (r *QuoteTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteTemplate{}, nil
	}

	var it quoteTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteTemplate{}, err
	}
	return fromQuoteTemplateItem(it), nil
}

func (r *QuoteTemplateDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.QuoteTemplate, error) {
	out, err := r.queryByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	templates := make([]entities.QuoteTemplate, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteTemplateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		templates = append(templates, fromQuoteTemplateItem(it))
	}
	return templates, nil
}

func (r *QuoteTemplateDynamoRepository) CountActivePersonal(ctx context.Context, ownerID string) (int, error) {
	out, err := r.queryByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, raw := range out.Items {
		var it quoteTemplateItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return 0, err
		}
		if !it.IsArchived && it.Scope == string(entities.ScopePersonal) {
			count++
		}
	}
	return count, nil
}

func (r *QuoteTemplateDynamoRepository) Patch(ctx context.Context, id string, p entities.QuoteTemplatePatch) (entities.QuoteTemplate, error) {
	expr := newUpdateExpr()
	if p.Category != nil {
		expr.set("category", &types.AttributeValueMemberS{Value: *p.Category})
	}
	if p.Unit != nil {
		expr.set("unit", &types.AttributeValueMemberS{Value: *p.Unit})
	}
	if p.DefaultQuantity != nil {
		expr.set("default_quantity", &types.AttributeValueMemberN{Value: floatToString(*p.DefaultQuantity)})
	}
	if p.UnitPrice != nil {
		expr.set("unit_price", &types.AttributeValueMemberN{Value: floatToString(*p.UnitPrice)})
	}
	if p.VATRate != nil {
		expr.set("vat_rate", &types.AttributeValueMemberN{Value: floatToString(*p.VATRate)})
	}
	if p.IsArchived != nil {
		expr.set("is_archived", &types.AttributeValueMemberBOOL{Value: *p.IsArchived})
	}
	if expr.empty() {
		return r.GetByID(ctx, id)
	}
	expr.set("updated_at", &types.AttributeValueMemberS{Value: formatTime(time.Now())})

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr.expression()),
		ExpressionAttributeValues: expr.values,
		ExpressionAttributeNames:  mergeNames(expr.names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteTemplate{}, nil
		}
		return entities.QuoteTemplate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteTemplate{}, nil
	}
	var it quoteTemplateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteTemplate{}, err
	}
	return fromQuoteTemplateItem(it), nil
}

func (r *QuoteTemplateDynamoRepository) queryByOwner(ctx context.Context, ownerID string) (*dynamodb.QueryOutput, error) {
	return r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(templatesOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
	})
}

func toQuoteTemplateItem(t entities.QuoteTemplate) quoteTemplateItem {
	return quoteTemplateItem{
		ID:              t.ID,
		OwnerUserID:     t.OwnerUserID,
		BusinessID:      t.BusinessID,
		Scope:           string(t.Scope),
		Category:        t.Category,
		Unit:            t.Unit,
		DefaultQuantity: t.DefaultQuantity,
		UnitPrice:       t.UnitPrice,
		VATRate:         t.VATRate,
		IsArchived:      t.IsArchived,
		CreatedAt:       formatTime(t.CreatedAt),
		UpdatedAt:       formatTime(t.UpdatedAt),
	}
}

func fromQuoteTemplateItem(it quoteTemplateItem) entities.QuoteTemplate {
	return entities.QuoteTemplate{
		ID:              it.ID,
		OwnerUserID:     it.OwnerUserID,
		BusinessID:      it.BusinessID,
		Scope:           entities.TemplateScope(it.Scope),
		Category:        it.Category,
		Unit:            it.Unit,
		DefaultQuantity: it.DefaultQuantity,
		UnitPrice:       it.UnitPrice,
		VATRate:         it.VATRate,
		IsArchived:      it.IsArchived,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
