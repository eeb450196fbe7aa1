package repository

import (
	"context"
	"sort"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsUserEmailIndex   = "user_email-index"
)

type paymentItem struct {
	ID              string  `dynamodbav:"id"`
	UserEmail       string  `dynamodbav:"user_email"`
	Amount          float64 `dynamodbav:"amount"`
	Month           string  `dynamodbav:"month"`
	PaymentIntentID string  `dynamodbav:"payment_intent_id"`
	ApartmentNo     string  `dynamodbav:"apartment_no,omitempty"`
	BlockName       string  `dynamodbav:"block_name,omitempty"`
	FloorNo         string  `dynamodbav:"floor_no,omitempty"`
	CreatedAt       string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists the rent payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_email-index (PK: user_email)
//
// Rows are keyed by a fresh uuid, never by the gateway transaction id; the
// ledger is append-only and duplicate transaction ids land as distinct rows.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context, email string) ([]entities.Payment, error) {
	var items []paymentItem
	var err error
	if email != "" {
		items, err = r.queryByEmail(ctx, email)
	} else {
		items, err = r.scanAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		payments = append(payments, fromPaymentItem(it))
	}
	// Neither the scan nor the GSI query comes back ordered.
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	return payments, nil
}

func (r *PaymentDynamoRepository) queryByEmail(ctx context.Context, email string) ([]paymentItem, error) {
	var items []paymentItem

	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserEmailIndex),
		KeyConditionExpression: aws.String("user_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *PaymentDynamoRepository) scanAll(ctx context.Context) ([]paymentItem, error) {
	var items []paymentItem

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:              p.ID,
		UserEmail:       p.UserEmail,
		Amount:          p.Amount,
		Month:           p.Month,
		PaymentIntentID: p.PaymentIntentID,
		ApartmentNo:     p.ApartmentNo,
		BlockName:       p.BlockName,
		FloorNo:         p.FloorNo,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payment{
		ID:              it.ID,
		UserEmail:       it.UserEmail,
		Amount:          it.Amount,
		Month:           it.Month,
		PaymentIntentID: it.PaymentIntentID,
		ApartmentNo:     it.ApartmentNo,
		BlockName:       it.BlockName,
		FloorNo:         it.FloorNo,
		CreatedAt:       createdAt,
	}
}
