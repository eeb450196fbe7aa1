package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCouponsTableName = "coupons"

type couponItem struct {
	ID          string  `dynamodbav:"id"`
	Code        string  `dynamodbav:"code"`
	Discount    float64 `dynamodbav:"discount"`
	Description string  `dynamodbav:"description,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	it := toCouponItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Coupon{}, err
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
		return entities.Coupon{}, err
	}
	return c, nil
}

func (r *CouponDynamoRepository) Update(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #code = :code, #discount = :discount, #description = :description"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#code":        "code",
			"#discount":    "discount",
			"#description": "description",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code":        &types.AttributeValueMemberS{Value: c.Code},
			":discount":    &types.AttributeValueMemberN{Value: floatToString(c.Discount)},
			":description": &types.AttributeValueMemberS{Value: c.Description},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Coupon{}, nil
		}
		return entities.Coupon{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) Delete(ctx context.Context, id string) (int, error) {
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
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return 0, nil
		}
		return 0, err
	}
	return 1, nil
}

func (r *CouponDynamoRepository) List(ctx context.Context, code string) ([]entities.Coupon, error) {
	in := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}
	if code != "" {
		in.FilterExpression = aws.String("#code = :code")
		in.ExpressionAttributeNames = map[string]string{"#code": "code"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		}
	}

	var coupons []entities.Coupon
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it couponItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			coupons = append(coupons, fromCouponItem(it))
		}
	}

	sort.Slice(coupons, func(i, j int) bool {
		return coupons[i].CreatedAt.After(coupons[j].CreatedAt)
	})
	return coupons, nil
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{
		ID:          c.ID,
		Code:        c.Code,
		Discount:    c.Discount,
		Description: c.Description,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Coupon{
		ID:          it.ID,
		Code:        it.Code,
		Discount:    it.Discount,
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
