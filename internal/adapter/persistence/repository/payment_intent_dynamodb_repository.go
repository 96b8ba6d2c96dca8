package repository

import (
	"context"
	"errors"
	"time"

	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentIntentsTableName = "payment_intents"

type paymentIntentItem struct {
	ID           string  `dynamodbav:"id"`
	Amount       float64 `dynamodbav:"amount"`
	Description  string  `dynamodbav:"description,omitempty"`
	PayerName    string  `dynamodbav:"payer_name,omitempty"`
	PayerSurname string  `dynamodbav:"payer_surname,omitempty"`
	PayerEmail   string  `dynamodbav:"payer_email"`
	Status       string  `dynamodbav:"status"`
	CreatedAt    string  `dynamodbav:"created_at"`
	CompletedAt  string  `dynamodbav:"completed_at,omitempty"`
}

// PaymentIntentDynamoRepository persists PaymentIntent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The completion transition is a conditional update so that concurrent
// webhook deliveries for the same intent settle it exactly once.

type PaymentIntentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentIntentRepository = (*PaymentIntentDynamoRepository)(nil)

func NewPaymentIntentDynamoRepository(ddb *dynamodb.Client) *PaymentIntentDynamoRepository {
	return &PaymentIntentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_INTENTS_TABLE", defaultPaymentIntentsTableName),
	}
}

func (r *PaymentIntentDynamoRepository) Create(ctx context.Context, p entities.PaymentIntent) (entities.PaymentIntent, error) {
	it := toPaymentIntentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PaymentIntent{}, err
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
		return entities.PaymentIntent{}, err
	}
	return p, nil
}

func (r *PaymentIntentDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentIntent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentIntent{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentIntent{}, nil
	}

	var it paymentIntentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentIntent{}, err
	}
	return fromPaymentIntentItem(it), nil
}

// MarkCompleted performs the pending -> completed transition. The condition
// on the current status makes duplicate deliveries no-ops: a conditional
// check failure means another delivery already settled the intent.
func (r *PaymentIntentDynamoRepository) MarkCompleted(ctx context.Context, id string) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :completed, #completed_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#status":       "status",
			"#completed_at": "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":   &types.AttributeValueMemberS{Value: string(entities.PaymentIntentStatusPending)},
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentIntentStatusCompleted)},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toPaymentIntentItem(p entities.PaymentIntent) paymentIntentItem {
	it := paymentIntentItem{
		ID:           p.ID,
		Amount:       p.Amount,
		Description:  p.Description,
		PayerName:    p.PayerName,
		PayerSurname: p.PayerSurname,
		PayerEmail:   p.PayerEmail,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !p.CompletedAt.IsZero() {
		it.CompletedAt = p.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentIntentItem(it paymentIntentItem) entities.PaymentIntent {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	completedAt, _ := time.Parse(time.RFC3339Nano, it.CompletedAt)
	return entities.PaymentIntent{
		ID:           it.ID,
		Amount:       it.Amount,
		Description:  it.Description,
		PayerName:    it.PayerName,
		PayerSurname: it.PayerSurname,
		PayerEmail:   it.PayerEmail,
		Status:       entities.PaymentIntentStatus(it.Status),
		CreatedAt:    createdAt,
		CompletedAt:  completedAt,
	}
}
