package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradeportal/internal/domain/entities"
	"tradeportal/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobsTableName = "jobs"
	jobsStatusIndex      = "status-index"
)

type paymentRecordItem struct {
	Type            string  `dynamodbav:"type"`
	Amount          float64 `dynamodbav:"amount"`
	PaidAt          string  `dynamodbav:"paid_at"`
	PaymentIntentID string  `dynamodbav:"payment_intent_id"`
	ReceiptURL      string  `dynamodbav:"receipt_url,omitempty"`
}

type jobItem struct {
	ID                     string              `dynamodbav:"id"`
	CustomerID             string              `dynamodbav:"customer_id"`
	Title                  string              `dynamodbav:"title"`
	Description            string              `dynamodbav:"description,omitempty"`
	Urgency                string              `dynamodbav:"urgency"`
	ServiceType            string              `dynamodbav:"service_type"`
	Specialties            []string            `dynamodbav:"specialties,omitempty"`
	Postcode               string              `dynamodbav:"postcode"`
	Town                   string              `dynamodbav:"town,omitempty"`
	CitySlug               string              `dynamodbav:"city_slug,omitempty"`
	Budget                 *float64            `dynamodbav:"budget,omitempty"`
	ScheduledDate          string              `dynamodbav:"scheduled_date,omitempty"`
	Status                 string              `dynamodbav:"status"`
	Photos                 []string            `dynamodbav:"photos,omitempty"`
	TradespersonID         string              `dynamodbav:"tradesperson_id,omitempty"`
	DepositPaymentIntentID string              `dynamodbav:"deposit_payment_intent_id,omitempty"`
	FinalPaymentIntentID   string              `dynamodbav:"final_payment_intent_id,omitempty"`
	PaymentStatus          string              `dynamodbav:"payment_status"`
	Payments               []paymentRecordItem `dynamodbav:"payments,omitempty"`
	ReviewID               string              `dynamodbav:"review_id,omitempty"`
	CreatedAt              string              `dynamodbav:"created_at"`
	UpdatedAt              string              `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists Job entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Patch builds a single UpdateItem touching only the fields present in the
// JobPatch, so concurrent requests updating disjoint fields never clobber
// each other. AppendPayment uses list_append for the same reason.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
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
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListOpen(ctx context.Context) ([]entities.Job, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.JobStatusOpen)},
		},
	})
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(out.Items))
	for _, raw := range out.Items {
		var it jobItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		jobs = append(jobs, fromJobItem(it))
	}
	return jobs, nil
}

func (r *JobDynamoRepository) Patch(ctx context.Context, id string, p entities.JobPatch) (entities.Job, error) {
	expr := newUpdateExpr()
	if p.Title != nil {
		expr.set("title", &types.AttributeValueMemberS{Value: *p.Title})
	}
	if p.Description != nil {
		expr.set("description", &types.AttributeValueMemberS{Value: *p.Description})
	}
	if p.Urgency != nil {
		expr.set("urgency", &types.AttributeValueMemberS{Value: string(*p.Urgency)})
	}
	if p.ServiceType != nil {
		expr.set("service_type", &types.AttributeValueMemberS{Value: *p.ServiceType})
	}
	if p.Specialties != nil {
		expr.set("specialties", stringListAttr(*p.Specialties))
	}
	if p.Postcode != nil {
		expr.set("postcode", &types.AttributeValueMemberS{Value: *p.Postcode})
	}
	if p.Town != nil {
		expr.set("town", &types.AttributeValueMemberS{Value: *p.Town})
	}
	if p.CitySlug != nil {
		expr.set("city_slug", &types.AttributeValueMemberS{Value: *p.CitySlug})
	}
	if p.Budget != nil {
		expr.set("budget", &types.AttributeValueMemberN{Value: floatToString(*p.Budget)})
	}
	if p.ScheduledDate != nil {
		expr.set("scheduled_date", &types.AttributeValueMemberS{Value: formatTime(*p.ScheduledDate)})
	}
	if p.Photos != nil {
		expr.set("photos", stringListAttr(*p.Photos))
	}
	if p.Status != nil {
		expr.set("status", &types.AttributeValueMemberS{Value: string(*p.Status)})
	}
	if p.TradespersonID != nil {
		expr.set("tradesperson_id", &types.AttributeValueMemberS{Value: *p.TradespersonID})
	}
	if p.DepositPaymentIntentID != nil {
		expr.set("deposit_payment_intent_id", &types.AttributeValueMemberS{Value: *p.DepositPaymentIntentID})
	}
	if p.FinalPaymentIntentID != nil {
		expr.set("final_payment_intent_id", &types.AttributeValueMemberS{Value: *p.FinalPaymentIntentID})
	}
	if p.PaymentStatus != nil {
		expr.set("payment_status", &types.AttributeValueMemberS{Value: string(*p.PaymentStatus)})
	}
	if p.ReviewID != nil {
		expr.set("review_id", &types.AttributeValueMemberS{Value: *p.ReviewID})
	}
	if expr.empty() {
		return r.GetByID(ctx, id)
	}
	expr.set("updated_at", &types.AttributeValueMemberS{Value: formatTime(time.Now())})

	return r.update(ctx, id, expr)
}

func (r *JobDynamoRepository) AppendPayment(ctx context.Context, id string, rec entities.PaymentRecord, status entities.JobPaymentStatus) (entities.Job, error) {
	recAttr, err := attributevalue.MarshalMap(paymentRecordItem{
		Type:            string(rec.Type),
		Amount:          rec.Amount,
		PaidAt:          formatTime(rec.PaidAt),
		PaymentIntentID: rec.PaymentIntentID,
		ReceiptURL:      rec.ReceiptURL,
	})
	if err != nil {
		return entities.Job{}, err
	}

	expr := newUpdateExpr()
	expr.setRaw("payments", "list_append(if_not_exists(#payments, :empty_list), :payment)",
		map[string]types.AttributeValue{
			":empty_list": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":payment":    &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: recAttr}}},
		})
	expr.set("payment_status", &types.AttributeValueMemberS{Value: string(status)})
	expr.set("updated_at", &types.AttributeValueMemberS{Value: formatTime(time.Now())})

	return r.update(ctx, id, expr)
}

func (r *JobDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func (r *JobDynamoRepository) update(ctx context.Context, id string, expr *updateExpr) (entities.Job, error) {
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
			return entities.Job{}, nil
		}
		return entities.Job{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Job{}, nil
	}
	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// updateExpr accumulates SET clauses for one merge write.
type updateExpr struct {
	clauses []string
	values  map[string]types.AttributeValue
	names   map[string]string
}

func newUpdateExpr() *updateExpr {
	return &updateExpr{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{},
	}
}

func (e *updateExpr) set(field string, v types.AttributeValue) {
	e.names["#"+field] = field
	e.values[":"+field] = v
	e.clauses = append(e.clauses, fmt.Sprintf("#%s = :%s", field, field))
}

func (e *updateExpr) setRaw(field, rhs string, values map[string]types.AttributeValue) {
	e.names["#"+field] = field
	for k, v := range values {
		e.values[k] = v
	}
	e.clauses = append(e.clauses, fmt.Sprintf("#%s = %s", field, rhs))
}

func (e *updateExpr) empty() bool { return len(e.clauses) == 0 }

func (e *updateExpr) expression() string {
	return "SET " + strings.Join(e.clauses, ", ")
}

func stringListAttr(values []string) types.AttributeValue {
	items := make([]types.AttributeValue, 0, len(values))
	for _, v := range values {
		items = append(items, &types.AttributeValueMemberS{Value: v})
	}
	return &types.AttributeValueMemberL{Value: items}
}

func toJobItem(j entities.Job) jobItem {
	it := jobItem{
		ID:                     j.ID,
		CustomerID:             j.CustomerID,
		Title:                  j.Title,
		Description:            j.Description,
		Urgency:                string(j.Urgency),
		ServiceType:            j.ServiceType,
		Specialties:            j.Specialties,
		Postcode:               j.Location.Postcode,
		Town:                   j.Location.Town,
		CitySlug:               j.Location.CitySlug,
		Budget:                 j.Budget,
		Status:                 string(j.Status),
		Photos:                 j.Photos,
		TradespersonID:         j.TradespersonID,
		DepositPaymentIntentID: j.DepositPaymentIntentID,
		FinalPaymentIntentID:   j.FinalPaymentIntentID,
		PaymentStatus:          string(j.PaymentStatus),
		ReviewID:               j.ReviewID,
		CreatedAt:              formatTime(j.CreatedAt),
		UpdatedAt:              formatTime(j.UpdatedAt),
	}
	if j.ScheduledDate != nil {
		it.ScheduledDate = formatTime(*j.ScheduledDate)
	}
	for _, p := range j.Payments {
		it.Payments = append(it.Payments, paymentRecordItem{
			Type:            string(p.Type),
			Amount:          p.Amount,
			PaidAt:          formatTime(p.PaidAt),
			PaymentIntentID: p.PaymentIntentID,
			ReceiptURL:      p.ReceiptURL,
		})
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	j := entities.Job{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		Title:       it.Title,
		Description: it.Description,
		Urgency:     entities.Urgency(it.Urgency),
		ServiceType: it.ServiceType,
		Specialties: it.Specialties,
		Location: entities.JobLocation{
			Postcode: it.Postcode,
			Town:     it.Town,
			CitySlug: it.CitySlug,
		},
		Budget:                 it.Budget,
		Status:                 entities.JobStatus(it.Status),
		Photos:                 it.Photos,
		TradespersonID:         it.TradespersonID,
		DepositPaymentIntentID: it.DepositPaymentIntentID,
		FinalPaymentIntentID:   it.FinalPaymentIntentID,
		PaymentStatus:          entities.JobPaymentStatus(it.PaymentStatus),
		ReviewID:               it.ReviewID,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
	if it.ScheduledDate != "" {
		d := parseTime(it.ScheduledDate)
		j.ScheduledDate = &d
	}
	for _, p := range it.Payments {
		j.Payments = append(j.Payments, entities.PaymentRecord{
			Type:            entities.PaymentType(p.Type),
			Amount:          p.Amount,
			PaidAt:          parseTime(p.PaidAt),
			PaymentIntentID: p.PaymentIntentID,
			ReceiptURL:      p.ReceiptURL,
		})
	}
	return j
}
